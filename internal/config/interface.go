package config

import (
	"context"
	"io"

	"github.com/vk/gridcalc/internal/sheet"
)

// Loader is the interface for a format-specific sheet loader.
type Loader interface {
	// Load reads a sheet from r and translates it into the format-agnostic
	// table. The returned table is not yet validated.
	Load(ctx context.Context, r io.Reader) (*sheet.Table, error)
}

// Writer is the interface for a format-specific sheet writer.
type Writer interface {
	// Write serializes tbl to w.
	Write(ctx context.Context, w io.Writer, tbl *sheet.Table) error
}
