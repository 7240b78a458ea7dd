package hcl

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/gridcalc/internal/config"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/sheet"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	filename string
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL sheet loader. The filename is only used in
// diagnostics.
func NewLoader(filename string) *Loader {
	if filename == "" {
		filename = "sheet.hcl"
	}
	return &Loader{filename: filename}
}

// Load parses an HCL sheet and translates it into a table.
func (l *Loader) Load(ctx context.Context, r io.Reader) (*sheet.Table, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file", l.filename)

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read HCL sheet %s: %w", l.filename, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, l.filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL sheet %s: %w", l.filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL sheet %s: %w", l.filename, diags)
	}

	tbl := &sheet.Table{
		Rows:    root.Rows,
		Columns: make(map[string]sheet.Column, len(root.Columns)),
		Data:    make(map[string]*sheet.Cell, len(root.Cells)),
	}
	for _, c := range root.Columns {
		if _, dup := tbl.Columns[c.ID]; dup {
			return nil, fmt.Errorf("HCL sheet %s: duplicate column %q", l.filename, c.ID)
		}
		tbl.Columns[c.ID] = sheet.Column{Title: c.Title}
	}
	for _, c := range root.Cells {
		if _, dup := tbl.Data[c.Key]; dup {
			return nil, fmt.Errorf("HCL sheet %s: duplicate cell %q", l.filename, c.Key)
		}
		cell := &sheet.Cell{Formula: c.Formula, Error: c.Error}
		if c.Value != nil {
			text, err := literalText(*c.Value)
			if err != nil {
				return nil, fmt.Errorf("HCL sheet %s: cell %q: %w", l.filename, c.Key, err)
			}
			cell.Value = text
		}
		tbl.Data[c.Key] = cell
	}

	logger.Debug("HCL loading complete.", "rows", tbl.Rows, "columns", len(tbl.Columns), "cells", len(tbl.Data))
	return tbl, nil
}
