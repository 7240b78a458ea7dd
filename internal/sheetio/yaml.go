package sheetio

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/gridcalc/internal/config"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/sheet"
	"gopkg.in/yaml.v3"
)

// YAML reads and writes the same structure as JSON, in YAML syntax.
type YAML struct{}

var (
	_ config.Loader = YAML{}
	_ config.Writer = YAML{}
)

func (YAML) Load(ctx context.Context, r io.Reader) (*sheet.Table, error) {
	var tbl sheet.Table
	if err := yaml.NewDecoder(r).Decode(&tbl); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("failed to decode YAML sheet: document is empty")
		}
		return nil, fmt.Errorf("failed to decode YAML sheet: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("YAML sheet decoded.", "cells", len(tbl.Data))
	return &tbl, nil
}

func (YAML) Write(ctx context.Context, w io.Writer, tbl *sheet.Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tbl); err != nil {
		return fmt.Errorf("failed to encode YAML sheet: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML sheet: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("YAML sheet written.", "cells", len(tbl.Data))
	return nil
}
