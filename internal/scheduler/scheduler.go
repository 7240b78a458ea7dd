package scheduler

import (
	"container/heap"
	"context"
	"fmt"
	"strings"

	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/graph"
	"github.com/vk/gridcalc/internal/node"
)

// DefaultScheduler is the reference implementation of the Scheduler interface.
type DefaultScheduler struct {
	graph graph.Graph
}

// New creates a new default scheduler. It requires the graph it will be analyzing.
func New(g graph.Graph) Scheduler {
	return &DefaultScheduler{graph: g}
}

// Order implements the Scheduler interface.
func (s *DefaultScheduler) Order(ctx context.Context) ([]*node.Node, error) {
	logger := ctxlog.FromContext(ctx)

	all := s.graph.AllNodes(ctx)
	index := make(map[string]int, len(all))
	waiting := make([]int, len(all))
	for i, n := range all {
		index[n.ID()] = i
	}

	ready := &readyQueue{}
	for i, n := range all {
		deps, err := s.graph.DependenciesOf(ctx, *n.Address())
		if err != nil {
			return nil, fmt.Errorf("scheduling %s: %w", n.ID(), err)
		}
		waiting[i] = len(deps)
		if waiting[i] == 0 {
			heap.Push(ready, i)
		}
	}

	order := make([]*node.Node, 0, len(all))
	for ready.Len() > 0 {
		i := heap.Pop(ready).(int)
		n := all[i]
		order = append(order, n)

		dependents, err := s.graph.DependentsOf(ctx, *n.Address())
		if err != nil {
			return nil, fmt.Errorf("scheduling %s: %w", n.ID(), err)
		}
		for _, d := range dependents {
			j, ok := index[d.ID()]
			if !ok {
				return nil, fmt.Errorf("internal inconsistency: dependent %s of %s is not in the graph", d.ID(), n.ID())
			}
			waiting[j]--
			if waiting[j] == 0 {
				heap.Push(ready, j)
			}
		}
	}

	if len(order) != len(all) {
		var stuck []string
		for i, n := range all {
			if waiting[i] > 0 {
				stuck = append(stuck, n.ID())
			}
		}
		return nil, fmt.Errorf("%w: unresolved nodes %s", ErrDeadlock, strings.Join(stuck, ", "))
	}

	logger.Debug("Scheduler: Evaluation order computed.", "nodes", len(order))
	return order, nil
}

// readyQueue is a min-heap of insertion indices.
type readyQueue []int

func (q readyQueue) Len() int           { return len(q) }
func (q readyQueue) Less(i, j int) bool { return q[i] < q[j] }
func (q readyQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *readyQueue) Push(x any)        { *q = append(*q, x.(int)) }
func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
