package value

import (
	"github.com/vk/gridcalc/internal/cellerr"
)

// ToNumber coerces v for arithmetic. Blank is 0, booleans are 1 or 0, and
// text must hold a decimal number. An error value yields its own code.
func ToNumber(v Value) (float64, *cellerr.Error) {
	switch v.kind {
	case KindBlank:
		return 0, nil
	case KindNumber:
		return v.num, nil
	case KindBool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case KindText:
		if f, ok := parseNumber(v.str); ok {
			return f, nil
		}
		return 0, cellerr.New(cellerr.Value, "cannot use text %q as a number", v.str)
	case KindError:
		return 0, cellerr.New(v.code, "")
	}
	return 0, cellerr.New(cellerr.Value, "unknown value kind %s", v.kind)
}

// ToText coerces v for concatenation.
func ToText(v Value) (string, *cellerr.Error) {
	if v.kind == KindError {
		return "", cellerr.New(v.code, "")
	}
	return v.String(), nil
}

// fromErr converts a coercion failure into an error Value.
func fromErr(err *cellerr.Error) Value {
	return Error(err.Code)
}
