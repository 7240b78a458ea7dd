package graph

import (
	"context"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/node"
	"github.com/vk/gridcalc/internal/value"
)

// Graph is a unified interface for interacting with the evaluation DAG,
// combining static topology queries with dynamic state updates.
//
// # Usage Patterns
//
// **Scheduler** uses Graph to:
//   - Query all nodes: AllNodes()
//   - Walk edges: DependenciesOf(), DependentsOf()
//
// **Executor** uses Graph to:
//   - Read already computed cells: NodeStatus(), Output()
//   - Record results: MarkRunning(), MarkCompleted(), MarkFailed()
//
// **Session** uses Graph to flatten results: AllNodes(), Output(), NodeError()
//
// # Thread-Safety
//
// Implementations MUST be safe for concurrent use.
type Graph interface {
	// Node retrieves a node by its address. Returns nil and false if the
	// cell is not part of the topology.
	Node(ctx context.Context, id cellid.Address) (*node.Node, bool)

	// DependenciesOf retrieves the nodes the given node reads, in insertion order.
	DependenciesOf(ctx context.Context, id cellid.Address) ([]*node.Node, error)

	// DependentsOf retrieves the nodes that read the given node, in insertion order.
	DependentsOf(ctx context.Context, id cellid.Address) ([]*node.Node, error)

	// NodeStatus retrieves the current status of a node. Returns
	// StatusPending and false if the node is not part of the topology.
	NodeStatus(ctx context.Context, id cellid.Address) (node.Status, bool)

	// AllNodes returns all nodes in insertion order.
	AllNodes(ctx context.Context) []*node.Node

	// Output returns the value recorded for a node, blank if none.
	Output(ctx context.Context, id cellid.Address) (value.Value, error)

	// NodeError returns the cell error recorded for a node, nil if none.
	NodeError(ctx context.Context, id cellid.Address) (error, error)

	// MarkRunning transitions a node to Running status.
	//
	// State transition: Pending → Running
	MarkRunning(ctx context.Context, id cellid.Address) error

	// MarkCompleted transitions a node to Completed status and records its value.
	//
	// State transition: Running → Completed
	MarkCompleted(ctx context.Context, id cellid.Address, output value.Value) error

	// MarkFailed transitions a node to Failed status and records the cell error.
	//
	// State transition: Pending|Running → Failed
	MarkFailed(ctx context.Context, id cellid.Address, nodeErr error) error
}
