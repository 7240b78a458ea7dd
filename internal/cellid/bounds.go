package cellid

import "strings"

// NewBounds creates grid bounds from column identifiers and a row count.
func NewBounds(columns []string, rows int) Bounds {
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[strings.ToUpper(c)] = struct{}{}
	}
	return Bounds{columns: set, rows: rows}
}

// Rows returns the number of rows in the grid.
func (b Bounds) Rows() int {
	return b.rows
}

// HasColumn reports whether the column identifier is known to the grid.
func (b Bounds) HasColumn(column string) bool {
	_, ok := b.columns[strings.ToUpper(column)]
	return ok
}

// Contains reports whether addr names a position inside the grid: its column
// must be known and its row must be within [1, rows].
func (b Bounds) Contains(addr *Address) bool {
	if addr == nil {
		return false
	}
	return b.HasColumn(addr.Column) && addr.Row >= 1 && addr.Row <= b.rows
}
