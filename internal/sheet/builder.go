package sheet

// New returns an empty table with the given columns (titled by their
// identifiers) and row count.
func New(rows int, columns ...string) *Table {
	t := &Table{
		Rows:    rows,
		Columns: make(map[string]Column, len(columns)),
		Data:    make(map[string]*Cell),
	}
	for _, c := range columns {
		t.Columns[c] = Column{Title: c}
	}
	return t
}

// Set stores a literal value at key and returns t for chaining.
func (t *Table) Set(key, value string) *Table {
	t.ensureData()
	t.Data[key] = &Cell{Value: StringPtr(value)}
	return t
}

// SetFormula stores a formula at key and returns t for chaining.
func (t *Table) SetFormula(key, formula string) *Table {
	t.ensureData()
	t.Data[key] = &Cell{Formula: formula}
	return t
}

func (t *Table) ensureData() {
	if t.Data == nil {
		t.Data = make(map[string]*Cell)
	}
}
