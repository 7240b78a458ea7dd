// Package topologystore defines the interface for storing and retrieving the
// static structure of the cell dependency graph.
//
// # Why Topology Store Exists
//
// The topology store isolates the **graph structure** (which cells exist and
// which cells read which) from the **evaluation state** (status, computed
// value, error) managed by nodestore.
//
// This separation keeps the builder's work (adding nodes, rejecting
// cycle-closing edges) independent from the executor's work (recording
// values), and lets each be tested on its own.
//
// # Lifecycle and Usage
//
// The topology store is:
//  1. **Created** once per evaluation request (nothing survives the request)
//  2. **Populated** by the builder (nodes, then dependency edges)
//  3. **Read-only** while the scheduler orders nodes and the executor evaluates them
//  4. **Discarded** with the session
//
// The store enforces acyclicity: AddDependency refuses an edge that would
// close a cycle, so the structure is a DAG at every point in time.
package topologystore

import (
	"context"
	"errors"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/node"
)

// ErrCycle is returned by AddDependency when the edge would close a cycle.
var ErrCycle = errors.New("dependency would create a cycle")

// Store is the interface for managing the static topology of the cell graph.
//
// This interface does NOT manage evaluation state (status, values, errors).
// That responsibility belongs to nodestore.Store.
//
// # Ordering
//
// Implementations remember the order in which nodes were first added and
// return every listing (AllNodes, DependenciesOf, DependentsOf) in that order,
// so scheduling ties break deterministically.
//
// # Thread-Safety Requirements
//
// Implementations MUST be safe for concurrent use. A single evaluation is
// sequential, but stores may be inspected from other goroutines (tests, logging).
type Store interface {
	// AddNode registers a node in the topology.
	//
	// Adding a node whose ID already exists is a no-op, with one exception:
	// a synthesized placeholder is replaced by a real table entry for the
	// same cell. The replacement keeps the placeholder's position and edges.
	AddNode(ctx context.Context, n *node.Node) error

	// AddDependency records that the cell 'to' reads the cell 'from'.
	//
	// Both nodes must already exist. An edge that would create a cycle
	// (including a self-reference) is rejected with an error wrapping ErrCycle.
	// Adding an existing edge again is a no-op.
	AddDependency(ctx context.Context, from, to cellid.Address) error

	// WillCreateCycle reports whether AddDependency(from, to) would be rejected
	// as a cycle, without modifying the topology.
	WillCreateCycle(ctx context.Context, from, to cellid.Address) bool

	// PathBetween returns the cells on the dependency chain from 'from' to
	// 'to' (both included), or nil if 'to' does not read 'from' even
	// transitively.
	PathBetween(ctx context.Context, from, to cellid.Address) []cellid.Address

	// GetNode retrieves a single node by its address.
	GetNode(ctx context.Context, id cellid.Address) (*node.Node, bool)

	// AllNodes returns all nodes in insertion order. The returned slice is a
	// snapshot owned by the caller.
	AllNodes(ctx context.Context) []*node.Node

	// DependenciesOf returns the cells the given cell reads, in insertion order.
	// It returns an error if the node doesn't exist in the topology.
	DependenciesOf(ctx context.Context, id cellid.Address) ([]cellid.Address, error)

	// DependentsOf returns the cells that read the given cell, in insertion
	// order. It returns an error if the node doesn't exist in the topology.
	DependentsOf(ctx context.Context, id cellid.Address) ([]cellid.Address, error)
	// Validate runs a full cycle check over the stored structure. It returns
	// an error wrapping ErrCycle if a cycle got in despite AddDependency.
	Validate(ctx context.Context) error
}
