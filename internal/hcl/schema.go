package hcl

import (
	"github.com/zclconf/go-cty/cty"
)

// fileRoot is the top-level structure of a sheet file.
type fileRoot struct {
	Rows    int            `hcl:"rows,optional"`
	Columns []*columnBlock `hcl:"column,block"`
	Cells   []*cellBlock   `hcl:"cell,block"`
}

// columnBlock represents a `column` block.
type columnBlock struct {
	ID    string `hcl:"id,label"`
	Title string `hcl:"title,optional"`
}

// cellBlock represents a `cell` block. Value stays a raw cty.Value so that
// `value = 10`, `value = true` and `value = "text"` are all accepted.
type cellBlock struct {
	Key     string     `hcl:"key,label"`
	Value   *cty.Value `hcl:"value,optional"`
	Formula string     `hcl:"formula,optional"`
	Error   string     `hcl:"error,optional"`
}
