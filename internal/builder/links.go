package builder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vk/gridcalc/internal/cellerr"
	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/formula"
	"github.com/vk/gridcalc/internal/node"
	"github.com/vk/gridcalc/internal/topologystore"
)

// linkReferences adds an edge for every distinct cell reference in n's formula.
func (st *buildState) linkReferences(ctx context.Context, n *node.Node) error {
	logger := ctxlog.FromContext(ctx)
	current := *n.Address()

	seen := make(map[string]bool)
	for _, tok := range formula.References(n.Program) {
		ref := tok.Ref()
		if seen[ref] {
			continue
		}
		seen[ref] = true

		target, err := cellid.Parse(ref)
		if err != nil {
			// Only column names past the sheet limit get here, e.g. ZZZZ1.
			logger.Debug("Build: Reference out of range.", "cell", n.Key, "ref", ref, "error", err)
			if err := st.flag(ctx, current, cellerr.New(cellerr.Ref, "reference %s is out of range", ref)); err != nil {
				return err
			}
			continue
		}

		if st.ts.WillCreateCycle(ctx, *target, current) {
			if err := st.rejectCycle(ctx, current, *target); err != nil {
				return err
			}
			continue
		}

		if !st.bounds.Contains(target) {
			logger.Debug("Build: Reference out of range.", "cell", n.Key, "ref", ref)
			if err := st.flag(ctx, current, cellerr.New(cellerr.Ref, "reference %s is out of range", ref)); err != nil {
				return err
			}
			continue
		}

		if _, exists := st.ts.GetNode(ctx, *target); !exists {
			if err := st.ts.AddNode(ctx, node.CreateSynthesizedNode(target)); err != nil {
				return fmt.Errorf("synthesizing node %s: %w", ref, err)
			}
		}
		if err := st.ts.AddDependency(ctx, *target, current); err != nil {
			if errors.Is(err, topologystore.ErrCycle) {
				return fmt.Errorf("internal inconsistency: cycle check passed but edge was rejected: %w", err)
			}
			return fmt.Errorf("linking %s -> %s: %w", ref, n.Key, err)
		}
		st.result.Edges++
	}
	return nil
}

// rejectCycle flags every cell on the chain current -> ... -> target, which
// together with the rejected edge target -> current would form the cycle.
func (st *buildState) rejectCycle(ctx context.Context, current, target cellid.Address) error {
	path := st.ts.PathBetween(ctx, current, target)
	if len(path) == 0 {
		path = []cellid.Address{current}
	}
	names := make([]string, len(path))
	for i := range path {
		names[i] = path[i].String()
	}
	cycle := strings.Join(append(names, names[0]), " -> ")

	ctxlog.FromContext(ctx).Debug("Build: Rejected reference that would create a cycle.",
		"cell", current.String(), "ref", target.String(), "cycle", cycle)

	for _, addr := range path {
		if err := st.flag(ctx, addr, cellerr.New(cellerr.Ref, "circular reference %s", cycle)); err != nil {
			return err
		}
	}
	return nil
}
