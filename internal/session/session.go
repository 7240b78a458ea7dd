// Package session defines the core interfaces for creating and managing one
// evaluation run. Every table snapshot gets its own session, with its own
// graph; nothing is shared between sessions.
package session

import (
	"context"

	"github.com/vk/gridcalc/internal/executor"
	"github.com/vk/gridcalc/internal/sheet"
)

// SessionFactory creates an evaluation Session for one table snapshot.
// NewSession validates the table and builds the graph; user formula
// problems do not make it fail.
type SessionFactory interface {
	NewSession(ctx context.Context, tbl *sheet.Table) (Session, error)
}

// Session represents a single evaluation run and manages its lifecycle.
type Session interface {
	GetExecutor() (executor.Executor, error)
	// Result flattens the evaluated graph into a copy of the input table in
	// which every formula cell carries either a value or an error.
	Result(ctx context.Context) (*sheet.Table, error)
	// Close releases any resources held by the session.
	Close(ctx context.Context) error
}
