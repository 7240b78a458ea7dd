package graph

import (
	"context"
	"fmt"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/node"
	"github.com/vk/gridcalc/internal/nodestore"
	"github.com/vk/gridcalc/internal/topologystore"
	"github.com/vk/gridcalc/internal/value"
)

// Manager provides a high-level, thread-safe interface to the evaluation graph
// by composing the two lower-level stores.
type Manager struct {
	topology  topologystore.Store
	nodeState nodestore.Store
}

// New creates a new graph manager.
func New(ts topologystore.Store, ns nodestore.Store) Graph {
	return &Manager{topology: ts, nodeState: ns}
}

func (m *Manager) Node(ctx context.Context, id cellid.Address) (*node.Node, bool) {
	return m.topology.GetNode(ctx, id)
}

func (m *Manager) DependenciesOf(ctx context.Context, id cellid.Address) ([]*node.Node, error) {
	addrs, err := m.topology.DependenciesOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.resolve(ctx, addrs)
}

func (m *Manager) DependentsOf(ctx context.Context, id cellid.Address) ([]*node.Node, error) {
	addrs, err := m.topology.DependentsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.resolve(ctx, addrs)
}

func (m *Manager) resolve(ctx context.Context, addrs []cellid.Address) ([]*node.Node, error) {
	nodes := make([]*node.Node, 0, len(addrs))
	for _, addr := range addrs {
		n, ok := m.topology.GetNode(ctx, addr)
		if !ok {
			return nil, fmt.Errorf("internal inconsistency: edge to unknown node '%s'", addr.String())
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (m *Manager) NodeStatus(ctx context.Context, id cellid.Address) (node.Status, bool) {
	if _, ok := m.topology.GetNode(ctx, id); !ok {
		return node.StatusPending, false
	}
	status, err := m.nodeState.GetStatus(ctx, id)
	if err != nil {
		return node.StatusPending, false
	}
	return status, true
}

func (m *Manager) AllNodes(ctx context.Context) []*node.Node {
	return m.topology.AllNodes(ctx)
}

func (m *Manager) Output(ctx context.Context, id cellid.Address) (value.Value, error) {
	return m.nodeState.GetOutput(ctx, id)
}

func (m *Manager) NodeError(ctx context.Context, id cellid.Address) (error, error) {
	return m.nodeState.GetError(ctx, id)
}

func (m *Manager) MarkRunning(ctx context.Context, id cellid.Address) error {
	return m.nodeState.SetStatus(ctx, id, node.StatusRunning)
}

func (m *Manager) MarkCompleted(ctx context.Context, id cellid.Address, output value.Value) error {
	if err := m.nodeState.SetOutput(ctx, id, output); err != nil {
		return err
	}
	return m.nodeState.SetStatus(ctx, id, node.StatusCompleted)
}

func (m *Manager) MarkFailed(ctx context.Context, id cellid.Address, nodeErr error) error {
	if err := m.nodeState.SetError(ctx, id, nodeErr); err != nil {
		return err
	}
	return m.nodeState.SetStatus(ctx, id, node.StatusFailed)
}
