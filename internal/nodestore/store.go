// Package nodestore defines the interface for storing and retrieving the
// mutable evaluation state of cells.
//
// # Why Node Store Exists
//
// The node store isolates **evaluation state** (status, computed value,
// cell error) from the **graph structure** managed by topologystore. The
// builder writes into it when it flags a cell before evaluation (a cycle, an
// out-of-range reference, a formula that does not parse); the executor writes
// into it as it evaluates each formula; the session reads it to flatten the
// result back into a table.
//
// # Lifecycle and Usage
//
// The node store is:
//  1. **Created** once per evaluation request
//  2. **Seeded** by the builder with errors for cells it already rejected
//  3. **Mutated** by the executor, one node at a time in topological order
//  4. **Read** by the session to produce the output table
//  5. **Discarded** with the session
//
// # State Transitions
//
// Nodes follow this lifecycle:
//
//	Pending → Running → Completed (with value) OR Failed (with cell error)
//	Pending → Failed (flagged by the builder)
package nodestore

import (
	"context"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/node"
	"github.com/vk/gridcalc/internal/value"
)

// Store is the interface for managing the evaluation state of nodes.
//
// This interface does NOT manage graph structure. That responsibility belongs
// to topologystore.Store.
//
// # Thread-Safety Requirements
//
// Implementations MUST be safe for concurrent reads and writes.
type Store interface {
	// SetStatus updates the evaluation status of a node.
	SetStatus(ctx context.Context, id cellid.Address, status node.Status) error

	// GetStatus retrieves the current status of a node. Returns
	// StatusPending if no status has been set for this node yet.
	GetStatus(ctx context.Context, id cellid.Address) (node.Status, error)

	// SetOutput records the computed value of a node.
	SetOutput(ctx context.Context, id cellid.Address, output value.Value) error

	// GetOutput retrieves the recorded value of a node. Returns a blank
	// value if none was recorded.
	GetOutput(ctx context.Context, id cellid.Address) (value.Value, error)

	// SetError records the cell error of a node, typically a *cellerr.Error.
	SetError(ctx context.Context, id cellid.Address, nodeErr error) error

	// GetError retrieves the recorded cell error of a node. Returns nil if
	// none was recorded.
	GetError(ctx context.Context, id cellid.Address) (error, error)
}
