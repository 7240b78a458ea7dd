package builder

import (
	"context"

	"github.com/vk/gridcalc/internal/graph"
	"github.com/vk/gridcalc/internal/sheet"
	"github.com/vk/gridcalc/internal/topologystore"
)

// Builder populates a topology store from a table and records the cells it
// rejects (cycles, out-of-range references, unparseable formulas) in the graph.
//
// The table must have passed sheet.Table.Validate. Build returns an error only
// for structural defects, never for a user formula.
type Builder interface {
	Build(ctx context.Context, tbl *sheet.Table, ts topologystore.Store, g graph.Graph) (*Result, error)
}

// Result summarizes one build for logging and tests.
type Result struct {
	// Nodes is the number of nodes in the topology, synthesized ones included.
	Nodes int
	// Edges is the number of dependency edges added.
	Edges int
	// Synthesized is the number of placeholder nodes created for referenced
	// cells absent from the table (and not supplied later).
	Synthesized int
	// Flagged lists the normalized keys of cells the builder marked with an
	// error, in the order they were flagged. A key appears once.
	Flagged []string
}
