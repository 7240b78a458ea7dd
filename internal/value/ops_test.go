package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/gridcalc/internal/cellerr"
)

func TestArithmetic(t *testing.T) {
	testCases := []struct {
		name string
		got  Value
		want Value
	}{
		{"add", Add(Number(10), Number(20)), Number(30)},
		{"add numeric text", Add(Text("2"), Number(3)), Number(5)},
		{"add blank", Add(Blank(), Number(5)), Number(5)},
		{"add bool", Add(Bool(true), Number(1)), Number(2)},
		{"sub", Sub(Number(1), Number(3)), Number(-2)},
		{"mul", Mul(Number(4), Number(2.5)), Number(10)},
		{"mul text", Mul(Text("hello"), Number(10)), Error(cellerr.Value)},
		{"div", Div(Number(100), Number(4)), Number(25)},
		{"div zero", Div(Number(10), Number(0)), Error(cellerr.Div0)},
		{"div blank", Div(Number(10), Blank()), Error(cellerr.Div0)},
		{"div text zero", Div(Number(10), Text("0")), Error(cellerr.Div0)},
		{"div left text first", Div(Text("x"), Number(0)), Error(cellerr.Value)},
		{"pow", Pow(Number(2), Number(10)), Number(1024)},
		{"pow nan", Pow(Number(-8), Number(0.5)), Error(cellerr.Value)},
		{"pow overflow", Pow(Number(10), Number(400)), Error(cellerr.Value)},
		{"percent", Percent(Number(50)), Number(0.5)},
		{"negate", Negate(Number(3)), Number(-3)},
		{"negate text", Negate(Text("a")), Error(cellerr.Value)},
		{"plus text number", Plus(Text("4")), Number(4)},
		{"error left first", Add(Error(cellerr.Name), Error(cellerr.Div0)), Error(cellerr.Name)},
		{"error right", Mul(Number(1), Error(cellerr.Ref)), Error(cellerr.Ref)},
		{"error unary", Percent(Error(cellerr.Div0)), Error(cellerr.Div0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.want.Equal(tc.got), "want %q, got %q", tc.want, tc.got)
		})
	}
}

func TestConcat(t *testing.T) {
	assert.Equal(t, "ab", Concat(Text("a"), Text("b")).String())
	assert.Equal(t, "x1.5", Concat(Text("x"), Number(1.5)).String())
	assert.Equal(t, "TRUE!", Concat(Bool(true), Text("!")).String())
	assert.Equal(t, "a", Concat(Text("a"), Blank()).String())
	assert.Equal(t, KindText, Concat(Number(1), Number(2)).Kind())
	assert.Equal(t, cellerr.Value, Concat(Text("a"), Error(cellerr.Value)).Code())
	assert.Equal(t, cellerr.Ref, Concat(Error(cellerr.Ref), Error(cellerr.Value)).Code(), "leftmost error wins")
}

func TestComparisons(t *testing.T) {
	testCases := []struct {
		name string
		got  Value
		want Value
	}{
		{"eq numbers", Equal(Number(2), Number(2)), Bool(true)},
		{"eq text case sensitive", Equal(Text("a"), Text("A")), Bool(false)},
		{"eq mixed numeric", Equal(Text("2"), Number(2)), Bool(true)},
		{"eq bool number", Equal(Bool(true), Number(1)), Bool(true)},
		{"eq mixed non numeric", Equal(Text("a"), Number(0)), Bool(false)},
		{"neq", NotEqual(Number(1), Number(2)), Bool(true)},
		{"lt", Less(Number(1), Number(2)), Bool(true)},
		{"gt", Greater(Number(1), Number(2)), Bool(false)},
		{"le equal", LessEq(Number(2), Number(2)), Bool(true)},
		{"ge", GreaterEq(Text("10"), Number(9)), Bool(true)},
		{"lt text", Less(Text("apple"), Text("banana")), Bool(true)},
		{"lt text vs number", Less(Text("apple"), Number(1)), Error(cellerr.Value)},
		{"eq error", Equal(Error(cellerr.Ref), Number(1)), Error(cellerr.Ref)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.want.Equal(tc.got), "want %q, got %q", tc.want, tc.got)
		})
	}
}
