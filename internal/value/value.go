package value

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vk/gridcalc/internal/cellerr"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindBlank Kind = iota
	KindNumber
	KindText
	KindBool
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "boolean"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is an immutable tagged value. The zero Value is blank.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	code cellerr.Code
}

// Blank returns the absent value.
func Blank() Value { return Value{} }

// Number returns a numeric value. NaN and infinities become #VALUE!.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Error(cellerr.Value)
	}
	return Value{kind: KindNumber, num: f}
}

func Text(s string) Value { return Value{kind: KindText, str: s} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Error returns an error value carrying code.
func Error(code cellerr.Code) Value { return Value{kind: KindError, code: code} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsError() bool { return v.kind == KindError }

// Code returns the error code of an error value, or "".
func (v Value) Code() cellerr.Code {
	if v.kind != KindError {
		return ""
	}
	return v.code
}

// Float returns the number held by a numeric value and whether v is numeric.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// String returns the textual form stored in a cell's value.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return FormatNumber(v.num)
	case KindText:
		return v.str
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case KindError:
		return string(v.code)
	}
	return ""
}

// Equal reports whether a and b hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindText:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindError:
		return v.code == o.code
	}
	return true
}

// FormatNumber renders f in its shortest round-trip decimal form, switching
// to exponent form for magnitudes below 1e-6 or from 1e21.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs < 1e-6 || abs >= 1e21 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
