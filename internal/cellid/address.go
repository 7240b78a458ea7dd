package cellid

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// String serializes the Address into its canonical key, e.g. "AB12".
func (a *Address) String() string {
	if a == nil {
		return ""
	}
	return a.Column + strconv.Itoa(a.Row)
}

// Equal checks for equality between two Address pointers.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Column == other.Column && a.Row == other.Row
}

// ColumnNumber returns the 1-based column number ("A" is 1, "AA" is 27).
func (a *Address) ColumnNumber() int {
	n, err := excelize.ColumnNameToNumber(a.Column)
	if err != nil {
		// Unreachable for addresses produced by Parse.
		return 0
	}
	return n
}

// Compare orders addresses row-major: by row first, then by column number.
func Compare(a, b *Address) int {
	if a.Row != b.Row {
		if a.Row < b.Row {
			return -1
		}
		return 1
	}
	ac, bc := a.ColumnNumber(), b.ColumnNumber()
	switch {
	case ac < bc:
		return -1
	case ac > bc:
		return 1
	}
	return 0
}
