package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/gridcalc/internal/cellerr"
	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/formula"
	"github.com/vk/gridcalc/internal/node"
	"github.com/vk/gridcalc/internal/sheet"
)

// addCell creates the node for one table entry and, for formulas, links its
// references.
func (st *buildState) addCell(ctx context.Context, addr *cellid.Address, key string, cell *sheet.Cell) error {
	logger := ctxlog.FromContext(ctx)

	if !cell.IsFormula() {
		if err := st.ts.AddNode(ctx, node.CreateLiteralNode(addr, key, cell)); err != nil {
			return fmt.Errorf("adding literal node %s: %w", key, err)
		}
		return nil
	}

	n := node.CreateFormulaNode(addr, key, cell)
	if err := st.ts.AddNode(ctx, n); err != nil {
		return fmt.Errorf("adding formula node %s: %w", key, err)
	}

	if n.ParseErr != nil {
		logger.Debug("Build: Formula failed to parse.", "cell", key, "formula", cell.Formula, "error", n.ParseErr)
		return st.flag(ctx, *addr, cellerr.New(cellerr.Formula, "%v", n.ParseErr))
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("Build: Parsed formula.", "cell", key, "tree", formula.Dump(n.Program))
	}

	return st.linkReferences(ctx, n)
}

// flag records a builder-detected cell error. A cell keeps the first error
// it is flagged with.
func (st *buildState) flag(ctx context.Context, addr cellid.Address, cellErr *cellerr.Error) error {
	key := addr.String()
	if st.flagged[key] {
		return nil
	}
	st.flagged[key] = true
	st.result.Flagged = append(st.result.Flagged, key)
	if err := st.g.MarkFailed(ctx, addr, cellErr); err != nil {
		return fmt.Errorf("flagging %s: %w", key, err)
	}
	return nil
}
