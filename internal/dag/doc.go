// Package dag is a small, generic directed acyclic graph keyed by string IDs.
// An edge from -> to means "to depends on from". Nodes remember the order in
// which they were first added, and every listing is returned in that order so
// callers get deterministic traversals.
//
// The graph does not reject cycles on its own: callers ask WillCreateCycle
// before AddEdge, and DetectCycles is available as a final validation pass.
package dag
