package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// literalText converts a cell literal into the text form the table stores.
// A null value yields nil. Booleans are spelled TRUE/FALSE so they read back
// as booleans.
func literalText(v cty.Value) (*string, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	switch v.Type() {
	case cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return nil, err
		}
		s := "FALSE"
		if b {
			s = "TRUE"
		}
		return &s, nil
	case cty.Number, cty.String:
		sv, err := convert.Convert(v, cty.String)
		if err != nil {
			return nil, err
		}
		s := sv.AsString()
		return &s, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", v.Type().FriendlyName())
	}
}
