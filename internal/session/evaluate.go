package session

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/sheet"
)

// Evaluate runs one table through a fresh session: build, execute, flatten.
func Evaluate(ctx context.Context, f SessionFactory, tbl *sheet.Table) (*sheet.Table, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	s, err := f.NewSession(ctx, tbl)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := s.Close(ctx); cerr != nil {
			logger.Warn("Failed to close session.", "error", cerr)
		}
	}()

	exec, err := s.GetExecutor()
	if err != nil {
		return nil, fmt.Errorf("getting executor: %w", err)
	}
	if err := exec.Execute(ctx); err != nil {
		return nil, fmt.Errorf("evaluating table: %w", err)
	}

	out, err := s.Result(ctx)
	if err != nil {
		return nil, err
	}

	formulas, errored := 0, 0
	for _, c := range out.Data {
		if c.IsFormula() {
			formulas++
			if c.Error != "" {
				errored++
			}
		}
	}
	logger.Info("Table evaluated.",
		"cells", len(out.Data),
		"formulas", formulas,
		"errors", errored,
		"duration", time.Since(start),
	)
	return out, nil
}
