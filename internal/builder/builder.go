package builder

import (
	"context"
	"fmt"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/graph"
	"github.com/vk/gridcalc/internal/sheet"
	"github.com/vk/gridcalc/internal/topologystore"
)

// DefaultBuilder implements the single-pass graph construction described in
// the package documentation.
type DefaultBuilder struct{}

// New creates a new default builder.
func New() Builder {
	return &DefaultBuilder{}
}

// buildState carries what one Build call accumulates.
type buildState struct {
	ts      topologystore.Store
	g       graph.Graph
	bounds  cellid.Bounds
	result  *Result
	flagged map[string]bool
}

// Build implements the Builder interface.
func (b *DefaultBuilder) Build(ctx context.Context, tbl *sheet.Table, ts topologystore.Store, g graph.Graph) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "cells", len(tbl.Data), "rows", tbl.Rows, "columns", len(tbl.Columns))

	st := &buildState{
		ts:      ts,
		g:       g,
		bounds:  tbl.Bounds(),
		result:  &Result{},
		flagged: make(map[string]bool),
	}

	for _, key := range tbl.SortedKeys() {
		addr, err := cellid.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", key, err)
		}
		cell := tbl.Data[key]
		if cell == nil {
			cell = &sheet.Cell{}
		}
		if err := st.addCell(ctx, addr, key, cell); err != nil {
			return nil, err
		}
	}

	if err := ts.Validate(ctx); err != nil {
		return nil, fmt.Errorf("error validating dependency graph: %w", err)
	}
	logger.Debug("Build: Cycle detection passed.")

	nodes := ts.AllNodes(ctx)
	st.result.Nodes = len(nodes)
	for _, n := range nodes {
		if n.IsPlaceholder() {
			st.result.Synthesized++
		}
	}

	logger.Debug("Build: Graph construction complete.",
		"nodes", st.result.Nodes,
		"edges", st.result.Edges,
		"synthesized", st.result.Synthesized,
		"flagged", len(st.result.Flagged),
	)
	return st.result, nil
}
