// Package inmemorytopology provides a simple, thread-safe, in-memory
// implementation of the topologystore.Store interface backed by dag.Graph.
package inmemorytopology

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/dag"
	"github.com/vk/gridcalc/internal/node"
	"github.com/vk/gridcalc/internal/topologystore"
)

// Store implements the topologystore.Store interface. Edges and insertion
// order live in the dag; node payloads live in a map guarded by mu.
type Store struct {
	mu    sync.RWMutex
	nodes map[string]*node.Node
	dag   *dag.Graph
}

// New creates a new, empty in-memory topology store.
func New() topologystore.Store {
	return &Store{
		nodes: make(map[string]*node.Node),
		dag:   dag.New(),
	}
}

// AddNode adds a node, or replaces a synthesized placeholder for the same cell.
func (s *Store) AddNode(ctx context.Context, n *node.Node) error {
	if n == nil || n.Address() == nil {
		return fmt.Errorf("cannot add a node without an address")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := n.ID()
	if existing, exists := s.nodes[key]; exists {
		if existing.IsPlaceholder() && !n.IsPlaceholder() {
			s.nodes[key] = n
		}
		return nil
	}
	s.nodes[key] = n
	s.dag.AddNode(key)
	return nil
}

// AddDependency creates a dependency link from one node to another.
func (s *Store) AddDependency(ctx context.Context, from, to cellid.Address) error {
	fromKey, toKey := from.String(), to.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[fromKey]; !exists {
		return fmt.Errorf("dependency source node '%s' not found in topology", fromKey)
	}
	if _, exists := s.nodes[toKey]; !exists {
		return fmt.Errorf("dependency target node '%s' not found in topology", toKey)
	}
	if s.dag.WillCreateCycle(fromKey, toKey) {
		return fmt.Errorf("%s -> %s: %w", fromKey, toKey, topologystore.ErrCycle)
	}
	return s.dag.AddEdge(fromKey, toKey)
}

// WillCreateCycle reports whether the edge from -> to would close a cycle.
func (s *Store) WillCreateCycle(ctx context.Context, from, to cellid.Address) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dag.WillCreateCycle(from.String(), to.String())
}

// PathBetween returns the dependency chain from 'from' to 'to'.
func (s *Store) PathBetween(ctx context.Context, from, to cellid.Address) []cellid.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.dag.Path(from.String(), to.String())
	if ids == nil {
		return nil
	}
	return s.addresses(ids)
}

// GetNode retrieves a single node by its address.
func (s *Store) GetNode(ctx context.Context, id cellid.Address) (*node.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id.String()]
	return n, ok
}

// AllNodes returns a slice of all nodes in insertion order.
func (s *Store) AllNodes(ctx context.Context) []*node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.dag.Nodes()
	nodes := make([]*node.Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, s.nodes[id])
	}
	return nodes
}

// DependenciesOf returns the addresses of all nodes that the given node depends on.
func (s *Store) DependenciesOf(ctx context.Context, id cellid.Address) ([]cellid.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, err := s.dag.Dependencies(id.String())
	if err != nil {
		return nil, fmt.Errorf("node '%s' not found in topology", id.String())
	}
	return s.addresses(ids), nil
}

// DependentsOf returns the addresses of all nodes that depend on the given node.
func (s *Store) DependentsOf(ctx context.Context, id cellid.Address) ([]cellid.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, err := s.dag.Dependents(id.String())
	if err != nil {
		return nil, fmt.Errorf("node '%s' not found in topology", id.String())
	}
	return s.addresses(ids), nil
}

// Validate implements topologystore.Store.
func (s *Store) Validate(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.dag.DetectCycles(); err != nil {
		return fmt.Errorf("%w: %v", topologystore.ErrCycle, err)
	}
	return nil
}

// addresses maps stored IDs back to addresses. Callers hold mu.
func (s *Store) addresses(ids []string) []cellid.Address {
	out := make([]cellid.Address, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.nodes[id].Address())
	}
	return out
}
