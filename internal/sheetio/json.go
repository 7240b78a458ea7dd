package sheetio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/gridcalc/internal/config"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/sheet"
)

// JSON reads and writes the `{rows, columns, data}` wire form.
type JSON struct{}

var (
	_ config.Loader = JSON{}
	_ config.Writer = JSON{}
)

func (JSON) Load(ctx context.Context, r io.Reader) (*sheet.Table, error) {
	var tbl sheet.Table
	if err := json.NewDecoder(r).Decode(&tbl); err != nil {
		return nil, fmt.Errorf("failed to decode JSON sheet: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("JSON sheet decoded.", "cells", len(tbl.Data))
	return &tbl, nil
}

func (JSON) Write(ctx context.Context, w io.Writer, tbl *sheet.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tbl); err != nil {
		return fmt.Errorf("failed to encode JSON sheet: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("JSON sheet written.", "cells", len(tbl.Data))
	return nil
}
