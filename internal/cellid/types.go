package cellid

// Address is the structured representation of a single cell position.
type Address struct {
	// Column is the upper-case column identifier, e.g. "AB".
	Column string
	// Row is the 1-based row number as written in the key.
	Row int
}

// Bounds is the rectangle of valid positions for a grid: a set of known
// column identifiers and a row count.
type Bounds struct {
	columns map[string]struct{}
	rows    int
}
