package sheet

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidTable is wrapped by every error returned from Validate.
var ErrInvalidTable = errors.New("invalid table")

var columnRegex = regexp.MustCompile(`^[A-Za-z]+$`)

// Table is one snapshot of the grid.
type Table struct {
	Rows    int               `json:"rows" yaml:"rows"`
	Columns map[string]Column `json:"columns" yaml:"columns"`
	Data    map[string]*Cell  `json:"data" yaml:"data"`
}

// Column holds display metadata for one column.
type Column struct {
	Title string `json:"title" yaml:"title"`
}

// Cell is one grid entry. A cell with a non-empty Formula is computed: its
// Value and Error are outputs. Any other cell is a literal whose Value is
// authoritative.
type Cell struct {
	Value   *string `json:"value,omitempty" yaml:"value,omitempty"`
	Formula string  `json:"formula,omitempty" yaml:"formula,omitempty"`
	Error   string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// StringPtr returns a pointer to s, for building cells in code.
func StringPtr(s string) *string { return &s }

// IsFormula reports whether c is a computed cell.
func (c *Cell) IsFormula() bool {
	return c != nil && c.Formula != ""
}

// Text returns the literal value, or "" when absent.
func (c *Cell) Text() string {
	if c == nil || c.Value == nil {
		return ""
	}
	return *c.Value
}

// Clone returns a deep copy of c.
func (c *Cell) Clone() *Cell {
	if c == nil {
		return nil
	}
	out := &Cell{Formula: c.Formula, Error: c.Error}
	if c.Value != nil {
		out.Value = StringPtr(*c.Value)
	}
	return out
}

// Validate checks the structural rules the engine relies on: a non-negative
// row count, column identifiers made of letters, and cell keys that parse
// and are unique once normalized to upper case.
func (t *Table) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: table is nil", ErrInvalidTable)
	}
	if t.Rows < 0 {
		return fmt.Errorf("%w: rows must not be negative, got %d", ErrInvalidTable, t.Rows)
	}
	for col := range t.Columns {
		if !columnRegex.MatchString(col) {
			return fmt.Errorf("%w: invalid column identifier %q", ErrInvalidTable, col)
		}
	}
	seen := make(map[string]string, len(t.Data))
	for key := range t.Data {
		addr, err := cellid.Parse(key)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTable, err)
		}
		norm := addr.String()
		if other, dup := seen[norm]; dup {
			return fmt.Errorf("%w: cell keys %q and %q name the same cell", ErrInvalidTable, other, key)
		}
		seen[norm] = key
	}
	return nil
}

// SortedKeys returns the keys of Data in row-major order. Keys that do not
// parse sort last, lexically.
func (t *Table) SortedKeys() []string {
	type entry struct {
		key  string
		addr *cellid.Address
	}
	entries := make([]entry, 0, len(t.Data))
	for key := range t.Data {
		addr, _ := cellid.Parse(key)
		entries = append(entries, entry{key: key, addr: addr})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.addr == nil && b.addr == nil:
			return a.key < b.key
		case a.addr == nil:
			return false
		case b.addr == nil:
			return true
		}
		if c := cellid.Compare(a.addr, b.addr); c != 0 {
			return c < 0
		}
		return a.key < b.key
	})
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	return keys
}

// ColumnKeys returns the column identifiers ordered by column number.
func (t *Table) ColumnKeys() []string {
	keys := make([]string, 0, len(t.Columns))
	for k := range t.Columns {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := excelize.ColumnNameToNumber(strings.ToUpper(keys[i]))
		b, errB := excelize.ColumnNameToNumber(strings.ToUpper(keys[j]))
		if errA != nil || errB != nil || a == b {
			return keys[i] < keys[j]
		}
		return a < b
	})
	return keys
}

// Bounds returns the grid rectangle references are checked against.
func (t *Table) Bounds() cellid.Bounds {
	return cellid.NewBounds(t.ColumnKeys(), t.Rows)
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{Rows: t.Rows}
	if t.Columns != nil {
		out.Columns = make(map[string]Column, len(t.Columns))
		for k, v := range t.Columns {
			out.Columns[k] = v
		}
	}
	if t.Data != nil {
		out.Data = make(map[string]*Cell, len(t.Data))
		for k, v := range t.Data {
			out.Data[k] = v.Clone()
		}
	}
	return out
}
