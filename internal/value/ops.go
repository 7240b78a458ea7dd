package value

import (
	"math"
	"strings"

	"github.com/vk/gridcalc/internal/cellerr"
)

func firstError(vs ...Value) (Value, bool) {
	for _, v := range vs {
		if v.kind == KindError {
			return v, true
		}
	}
	return Value{}, false
}

func arith(a, b Value, fn func(x, y float64) float64) Value {
	if e, ok := firstError(a, b); ok {
		return e
	}
	x, err := ToNumber(a)
	if err != nil {
		return fromErr(err)
	}
	y, err := ToNumber(b)
	if err != nil {
		return fromErr(err)
	}
	return Number(fn(x, y))
}

func Add(a, b Value) Value { return arith(a, b, func(x, y float64) float64 { return x + y }) }

func Sub(a, b Value) Value { return arith(a, b, func(x, y float64) float64 { return x - y }) }

func Mul(a, b Value) Value { return arith(a, b, func(x, y float64) float64 { return x * y }) }

func Pow(a, b Value) Value { return arith(a, b, math.Pow) }

// Div divides a by b. The left operand is coerced first; a right operand
// that coerces to zero yields #DIV/0!.
func Div(a, b Value) Value {
	if e, ok := firstError(a, b); ok {
		return e
	}
	x, err := ToNumber(a)
	if err != nil {
		return fromErr(err)
	}
	y, err := ToNumber(b)
	if err != nil {
		return fromErr(err)
	}
	if y == 0 {
		return Error(cellerr.Div0)
	}
	return Number(x / y)
}

// Percent applies the postfix % operator.
func Percent(a Value) Value {
	return unary(a, func(x float64) float64 { return x * 0.01 })
}

// Negate applies prefix minus.
func Negate(a Value) Value {
	return unary(a, func(x float64) float64 { return -x })
}

// Plus applies prefix plus, which coerces its operand to a number.
func Plus(a Value) Value {
	return unary(a, func(x float64) float64 { return x })
}

func unary(a Value, fn func(float64) float64) Value {
	if a.kind == KindError {
		return a
	}
	x, err := ToNumber(a)
	if err != nil {
		return fromErr(err)
	}
	return Number(fn(x))
}

// Concat joins the textual forms of a and b.
func Concat(a, b Value) Value {
	left, err := ToText(a)
	if err != nil {
		return fromErr(err)
	}
	right, err := ToText(b)
	if err != nil {
		return fromErr(err)
	}
	return Text(left + right)
}

// Equal implements the "=" comparison.
func Equal(a, b Value) Value {
	if e, ok := firstError(a, b); ok {
		return e
	}
	return Bool(equal(a, b))
}

// NotEqual implements the "<>" comparison.
func NotEqual(a, b Value) Value {
	if e, ok := firstError(a, b); ok {
		return e
	}
	return Bool(!equal(a, b))
}

func equal(a, b Value) bool {
	if a.kind == b.kind {
		return a.Equal(b)
	}
	x, errA := ToNumber(a)
	y, errB := ToNumber(b)
	if errA != nil || errB != nil {
		return false
	}
	return x == y
}

func Less(a, b Value) Value      { return ordered(a, b, func(c int) bool { return c < 0 }) }
func Greater(a, b Value) Value   { return ordered(a, b, func(c int) bool { return c > 0 }) }
func LessEq(a, b Value) Value    { return ordered(a, b, func(c int) bool { return c <= 0 }) }
func GreaterEq(a, b Value) Value { return ordered(a, b, func(c int) bool { return c >= 0 }) }

func ordered(a, b Value, test func(int) bool) Value {
	if e, ok := firstError(a, b); ok {
		return e
	}
	c, err := Compare(a, b)
	if err != nil {
		return fromErr(err)
	}
	return Bool(test(c))
}

// Compare orders a and b: numerically when both coerce to numbers,
// lexicographically when both are text, otherwise it fails with #VALUE!.
func Compare(a, b Value) (int, *cellerr.Error) {
	x, errA := ToNumber(a)
	y, errB := ToNumber(b)
	if errA == nil && errB == nil {
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
		return 0, nil
	}
	if a.kind == KindText && b.kind == KindText {
		return strings.Compare(a.str, b.str), nil
	}
	return 0, cellerr.New(cellerr.Value, "cannot compare %s with %s", a.kind, b.kind)
}
