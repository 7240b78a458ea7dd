package sheetio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/config"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/sheet"
	"github.com/xuri/excelize/v2"
)

// XLSX maps the first worksheet of a workbook onto a table, cell for cell.
// Workbooks carry no column titles, so columns are titled by identifier.
// Cached results of formula cells are written for readers of the file but
// ignored on load, since they are recomputed.
type XLSX struct {
	// Sheet is the worksheet name used when writing. Defaults to "Sheet1".
	Sheet string
}

var (
	_ config.Loader = XLSX{}
	_ config.Writer = XLSX{}
)

func (x XLSX) Load(ctx context.Context, r io.Reader) (*sheet.Table, error) {
	logger := ctxlog.FromContext(ctx)

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no worksheets")
	}
	name := sheets[0]

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", name, err)
	}

	tbl := &sheet.Table{
		Rows:    len(rows),
		Columns: make(map[string]sheet.Column),
		Data:    make(map[string]*sheet.Cell),
	}
	maxCol := 0
	for r, row := range rows {
		for c, text := range row {
			id, err := cellid.FromCoordinates(c+1, r+1)
			if err != nil {
				return nil, err
			}
			addr := id.String()
			formula, err := f.GetCellFormula(name, addr)
			if err != nil {
				return nil, fmt.Errorf("failed to read formula of %s: %w", addr, err)
			}
			switch {
			case formula != "":
				if !strings.HasPrefix(formula, "=") {
					formula = "=" + formula
				}
				tbl.Data[addr] = &sheet.Cell{Formula: formula}
			case text != "":
				tbl.Data[addr] = &sheet.Cell{Value: sheet.StringPtr(text)}
			default:
				continue
			}
			maxCol = max(maxCol, c+1)
		}
	}
	for c := 1; c <= maxCol; c++ {
		col, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return nil, err
		}
		tbl.Columns[col] = sheet.Column{Title: col}
	}

	logger.Debug("Workbook loaded.", "worksheet", name, "rows", tbl.Rows, "columns", maxCol, "cells", len(tbl.Data))
	return tbl, nil
}

func (x XLSX) Write(ctx context.Context, w io.Writer, tbl *sheet.Table) error {
	logger := ctxlog.FromContext(ctx)

	f := excelize.NewFile()
	defer f.Close()

	name := x.Sheet
	if name == "" {
		name = "Sheet1"
	}
	if name != "Sheet1" {
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("failed to name worksheet: %w", err)
		}
	}

	for _, key := range tbl.SortedKeys() {
		c := tbl.Data[key]
		addr, err := cellid.Parse(key)
		if err != nil {
			return fmt.Errorf("cannot place cell %q: %w", key, err)
		}
		ref := addr.String()

		// Setting a value clears any formula, so the cached text goes first.
		display := c.Text()
		if c.IsFormula() && c.Error != "" {
			display = c.Error
		}
		if display != "" {
			if err := f.SetCellValue(name, ref, display); err != nil {
				return fmt.Errorf("failed to set %s: %w", ref, err)
			}
		}
		if c.IsFormula() {
			if err := f.SetCellFormula(name, ref, strings.TrimPrefix(c.Formula, "=")); err != nil {
				return fmt.Errorf("failed to set formula of %s: %w", ref, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	logger.Debug("Workbook written.", "worksheet", name, "cells", len(tbl.Data))
	return nil
}
