// Package inmemorystore provides an ephemeral, thread-safe, in-memory
// implementation of the nodestore.Store interface.
//
// # Characteristics
//
//   - **Ephemeral:** Created fresh for each evaluation request, never persisted
//   - **Thread-Safe:** Uses sync.Map, one map per kind of state
//   - **Fast Lookups:** O(1) average case for status/value/error retrieval
//
// sync.Map suits the access pattern: the key space (the cells of one table)
// is fixed up front and each key is written a handful of times.
package inmemorystore

import (
	"context"
	"sync"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/node"
	"github.com/vk/gridcalc/internal/nodestore"
	"github.com/vk/gridcalc/internal/value"
)

// Store is an in-memory implementation of nodestore.Store.
//
// The store maintains three independent sync.Maps keyed by normalized cell key:
//   - states: node.Status
//   - outputs: value.Value
//   - errors: error
type Store struct {
	states  sync.Map
	outputs sync.Map
	errors  sync.Map
}

// New creates a new, empty in-memory node state store.
func New() nodestore.Store {
	return &Store{}
}

// SetStatus updates the evaluation status of a specific node.
func (s *Store) SetStatus(ctx context.Context, id cellid.Address, status node.Status) error {
	s.states.Store(id.String(), status)
	return nil
}

// GetStatus retrieves the evaluation status of a specific node.
// If a status has not been set, it returns StatusPending.
func (s *Store) GetStatus(ctx context.Context, id cellid.Address) (node.Status, error) {
	status, ok := s.states.Load(id.String())
	if !ok {
		return node.StatusPending, nil
	}
	return status.(node.Status), nil
}

// SetOutput records the computed value of a node.
func (s *Store) SetOutput(ctx context.Context, id cellid.Address, output value.Value) error {
	s.outputs.Store(id.String(), output)
	return nil
}

// GetOutput retrieves the recorded value of a node.
func (s *Store) GetOutput(ctx context.Context, id cellid.Address) (value.Value, error) {
	output, ok := s.outputs.Load(id.String())
	if !ok {
		return value.Blank(), nil
	}
	return output.(value.Value), nil
}

// SetError records the cell error of a node.
func (s *Store) SetError(ctx context.Context, id cellid.Address, nodeErr error) error {
	s.errors.Store(id.String(), nodeErr)
	return nil
}

// GetError retrieves the recorded cell error of a node.
func (s *Store) GetError(ctx context.Context, id cellid.Address) (error, error) {
	err, ok := s.errors.Load(id.String())
	if !ok {
		return nil, nil
	}
	return err.(error), nil
}
