package hcl

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/gridcalc/internal/config"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/sheet"
	"github.com/zclconf/go-cty/cty"
)

// Writer is the HCL-specific implementation of the config.Writer interface.
type Writer struct{}

var _ config.Writer = (*Writer)(nil)

// NewWriter creates a new HCL sheet writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders tbl as an HCL sheet. Columns are written in column order and
// cells in row-major order, so output is stable.
func (w *Writer) Write(ctx context.Context, out io.Writer, tbl *sheet.Table) error {
	logger := ctxlog.FromContext(ctx)

	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("rows", cty.NumberIntVal(int64(tbl.Rows)))

	for _, id := range tbl.ColumnKeys() {
		body.AppendNewline()
		block := body.AppendNewBlock("column", []string{id})
		block.Body().SetAttributeValue("title", cty.StringVal(tbl.Columns[id].Title))
	}

	for _, key := range tbl.SortedKeys() {
		c := tbl.Data[key]
		body.AppendNewline()
		block := body.AppendNewBlock("cell", []string{key})
		if c == nil {
			continue
		}
		cb := block.Body()
		if c.Formula != "" {
			cb.SetAttributeValue("formula", cty.StringVal(c.Formula))
		}
		if c.Value != nil {
			cb.SetAttributeValue("value", cty.StringVal(*c.Value))
		}
		if c.Error != "" {
			cb.SetAttributeValue("error", cty.StringVal(c.Error))
		}
	}

	n, err := out.Write(f.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write HCL sheet: %w", err)
	}
	logger.Debug("HCL sheet written.", "bytes", n, "cells", len(tbl.Data))
	return nil
}
