// Package graph provides a unified, high-level interface over the evaluation graph.
//
// # Why Graph Package Exists
//
// The Graph interface is a facade that combines topology (structure) and node
// state (evaluation results) into a single API. The scheduler and executor
// talk to one interface instead of coordinating topologystore and nodestore
// themselves.
//
// # Responsibilities
//
// The graph package orchestrates two underlying stores:
//   - **Topology Store** (topologystore.Store): cells and who reads whom
//   - **Node Store** (nodestore.Store): status, computed value and error per cell
//
// Convenience methods combine both, e.g. DependenciesOf returns full nodes
// rather than addresses.
//
// # Lifecycle
//
//  1. **Created** by the session factory with both stores injected
//  2. **Populated** by the builder through the stores
//  3. **Queried and updated** by the scheduler and executor
//  4. **Discarded** when the session ends
package graph
