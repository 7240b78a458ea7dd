// Package localexecutor provides a concrete, in-process implementation of the
// executor.Executor interface.
package localexecutor

import (
	"context"
	"fmt"

	"github.com/vk/gridcalc/internal/cellerr"
	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/executor"
	"github.com/vk/gridcalc/internal/graph"
	"github.com/vk/gridcalc/internal/node"
	"github.com/vk/gridcalc/internal/scheduler"
	"github.com/vk/gridcalc/internal/value"
)

// Executor implements the executor.Executor interface for local execution.
// It evaluates nodes one at a time, in the order the scheduler returns.
type Executor struct {
	scheduler scheduler.Scheduler
	graph     graph.Graph
}

// New creates a new local executor.
func New(sch scheduler.Scheduler, g graph.Graph) executor.Executor {
	return &Executor{scheduler: sch, graph: g}
}

// Execute implements the executor.Executor interface.
func (e *Executor) Execute(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	order, err := e.scheduler.Order(ctx)
	if err != nil {
		return err
	}

	interp := executor.NewInterpreter(executor.ResolverFunc(e.resolve))
	var evaluated, failed, skipped int

	for _, n := range order {
		if err := ctx.Err(); err != nil {
			return err
		}
		id := *n.Address()

		if n.Type != node.FormulaNode {
			if err := e.graph.MarkCompleted(ctx, id, n.Literal); err != nil {
				return fmt.Errorf("recording %s: %w", n.ID(), err)
			}
			continue
		}

		status, _ := e.graph.NodeStatus(ctx, id)
		if status == node.StatusFailed {
			logger.Debug("Executor: Skipping cell flagged by the builder.", "cell", n.Key)
			skipped++
			continue
		}

		if err := e.graph.MarkRunning(ctx, id); err != nil {
			return fmt.Errorf("recording %s: %w", n.ID(), err)
		}
		v, err := interp.Eval(ctx, n.Program)
		if err != nil {
			return fmt.Errorf("evaluating %s (%s): %w", n.Key, n.Cell.Formula, err)
		}

		if v.IsError() {
			failed++
			logger.Debug("Executor: Cell evaluated to an error.", "cell", n.Key, "code", v.Code())
			cellErr := cellerr.New(v.Code(), "evaluating %s", n.Cell.Formula)
			if err := e.graph.MarkFailed(ctx, id, cellErr); err != nil {
				return fmt.Errorf("recording %s: %w", n.ID(), err)
			}
			continue
		}

		evaluated++
		logger.Debug("Executor: Cell evaluated.", "cell", n.Key, "value", v.String())
		if err := e.graph.MarkCompleted(ctx, id, v); err != nil {
			return fmt.Errorf("recording %s: %w", n.ID(), err)
		}
	}

	logger.Debug("Executor: Evaluation complete.", "evaluated", evaluated, "failed", failed, "skipped", skipped)
	return nil
}

// resolve reads an already evaluated cell. Absent, blank and errored cells
// all read as zero; a cell outside the graph is a bad reference.
func (e *Executor) resolve(ctx context.Context, addr cellid.Address) (value.Value, error) {
	if _, ok := e.graph.Node(ctx, addr); !ok {
		return value.Error(cellerr.Ref), nil
	}
	status, _ := e.graph.NodeStatus(ctx, addr)
	switch status {
	case node.StatusFailed:
		return value.Number(0), nil
	case node.StatusCompleted:
		v, err := e.graph.Output(ctx, addr)
		if err != nil {
			return value.Value{}, err
		}
		if isEmpty(v) {
			return value.Number(0), nil
		}
		return v, nil
	}
	return value.Value{}, fmt.Errorf("cell %s read before it was evaluated (status %s)", addr.String(), status)
}

func isEmpty(v value.Value) bool {
	return v.Kind() == value.KindBlank || (v.Kind() == value.KindText && v.String() == "")
}
