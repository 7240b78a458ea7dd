// Package scheduler provides the ordering logic for the evaluation DAG.
//
// # How It Works
//
// The scheduler runs Kahn's algorithm over the graph:
//  1. Count, for every node, the dependencies it still waits for
//  2. Seed the ready set with nodes that wait for nothing
//  3. Repeatedly take the ready node that was added to the graph first,
//     emit it, and release its dependents
//  4. If nodes remain once the ready set is empty, the graph has a cycle
//
// Taking the earliest-inserted ready node makes the order deterministic:
// for a given table the same order comes out every time.
//
// # Relationship with Other Components
//
//   - **Graph:** The scheduler only reads structure (AllNodes, DependentsOf, DependenciesOf)
//   - **Executor:** Evaluates the nodes in the order the scheduler returns
package scheduler

import (
	"context"
	"errors"

	"github.com/vk/gridcalc/internal/node"
)

// ErrDeadlock is wrapped by Order when some nodes can never become ready.
// The builder rejects cycle-closing edges, so this signals a defect.
var ErrDeadlock = errors.New("scheduler deadlock: dependency cycle in graph")

// Scheduler analyzes the dependency graph and produces an evaluation order.
type Scheduler interface {
	// Order returns every node of the graph in a valid topological order.
	Order(ctx context.Context) ([]*node.Node, error)
}
