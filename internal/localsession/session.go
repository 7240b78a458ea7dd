// Package localsession provides a concrete implementation of the session.Session
// and session.SessionFactory interfaces for local, in-process evaluation.
package localsession

import (
	"context"
	"fmt"

	"github.com/vk/gridcalc/internal/builder"
	"github.com/vk/gridcalc/internal/cellerr"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/executor"
	"github.com/vk/gridcalc/internal/graph"
	"github.com/vk/gridcalc/internal/inmemorystore"
	"github.com/vk/gridcalc/internal/inmemorytopology"
	"github.com/vk/gridcalc/internal/localexecutor"
	"github.com/vk/gridcalc/internal/node"
	"github.com/vk/gridcalc/internal/scheduler"
	"github.com/vk/gridcalc/internal/session"
	"github.com/vk/gridcalc/internal/sheet"
)

// SessionFactory implements session.SessionFactory for local runs.
type SessionFactory struct{}

// NewSession validates the table, wires fresh in-memory stores and builds
// the graph.
func (f *SessionFactory) NewSession(ctx context.Context, tbl *sheet.Table) (session.Session, error) {
	logger := ctxlog.FromContext(ctx)

	if err := tbl.Validate(); err != nil {
		return nil, err
	}
	input := tbl.Clone()

	topoStore := inmemorytopology.New()
	nodeStore := inmemorystore.New()
	g := graph.New(topoStore, nodeStore)

	result, err := builder.New().Build(ctx, input, topoStore, g)
	if err != nil {
		return nil, fmt.Errorf("building graph: %w", err)
	}
	logger.Debug("localsession: Graph built.", "nodes", result.Nodes, "edges", result.Edges, "flagged", len(result.Flagged))

	sched := scheduler.New(g)
	exec := localexecutor.New(sched, g)

	return &Session{
		input:    input,
		graph:    g,
		executor: exec,
	}, nil
}

// Session implements session.Session for local runs.
type Session struct {
	input    *sheet.Table
	graph    graph.Graph
	executor executor.Executor
}

// GetExecutor returns the executor that was created and wired up by the factory.
func (s *Session) GetExecutor() (executor.Executor, error) {
	return s.executor, nil
}

// Result copies the input table and overwrites every formula cell with its
// computed value or error code. Literal cells and synthesized nodes are
// left out of the rewrite.
func (s *Session) Result(ctx context.Context) (*sheet.Table, error) {
	out := s.input.Clone()

	for _, n := range s.graph.AllNodes(ctx) {
		if n.Type != node.FormulaNode {
			continue
		}
		cell, ok := out.Data[n.Key]
		if !ok {
			return nil, fmt.Errorf("internal inconsistency: formula node %s has no table entry", n.Key)
		}

		status, _ := s.graph.NodeStatus(ctx, *n.Address())
		switch status {
		case node.StatusCompleted:
			v, err := s.graph.Output(ctx, *n.Address())
			if err != nil {
				return nil, err
			}
			cell.Value = sheet.StringPtr(v.String())
			cell.Error = ""
		case node.StatusFailed:
			nodeErr, err := s.graph.NodeError(ctx, *n.Address())
			if err != nil {
				return nil, err
			}
			code := cellerr.CodeOf(nodeErr)
			if code == "" {
				return nil, fmt.Errorf("cell %s failed without a cell error: %v", n.Key, nodeErr)
			}
			cell.Value = nil
			cell.Error = string(code)
		default:
			return nil, fmt.Errorf("cell %s was not evaluated (status %s)", n.Key, status)
		}
	}
	return out, nil
}

// Close releases the session's graph.
func (s *Session) Close(ctx context.Context) error {
	ctxlog.FromContext(ctx).Debug("localsession: Session closed.")
	s.graph = nil
	return nil
}
