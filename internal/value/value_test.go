package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/gridcalc/internal/cellerr"
)

func TestParseLiteral(t *testing.T) {
	testCases := []struct {
		in   string
		want Value
	}{
		{"", Blank()},
		{"   ", Blank()},
		{"10", Number(10)},
		{" 2.5 ", Number(2.5)},
		{"-3", Number(-3)},
		{".5", Number(0.5)},
		{"1e3", Number(1000)},
		{"true", Bool(true)},
		{"FALSE", Bool(false)},
		{`"hello"`, Text("hello")},
		{`"say ""hi"""`, Text(`say "hi"`)},
		{`"42"`, Text("42")},
		{"hello", Text("hello")},
		{"Inf", Text("Inf")},
		{"0x10", Text("0x10")},
		{"1_000", Text("1_000")},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got := ParseLiteral(tc.in)
			assert.True(t, tc.want.Equal(got), "want %s %q, got %s %q", tc.want.Kind(), tc.want, got.Kind(), got)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{30, "30"},
		{5525, "5525"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e-7, "1e-07"},
		{1e21, "1e+21"},
		{123456789012, "123456789012"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatNumber(tc.in))
		})
	}
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "", Blank().String())
	assert.Equal(t, "TRUE", Bool(true).String())
	assert.Equal(t, "FALSE", Bool(false).String())
	assert.Equal(t, "abc", Text("abc").String())
	assert.Equal(t, "#DIV/0!", Error(cellerr.Div0).String())
	assert.Equal(t, cellerr.Code(""), Number(1).Code())
}

func TestNumber_NonFinite(t *testing.T) {
	assert.Equal(t, cellerr.Value, Number(math.NaN()).Code())
	assert.Equal(t, cellerr.Value, Number(math.Inf(1)).Code())
	assert.Equal(t, cellerr.Value, Number(math.Inf(-1)).Code())
}

func TestToNumber(t *testing.T) {
	f, err := ToNumber(Blank())
	assert.Nil(t, err)
	assert.Equal(t, 0.0, f)

	f, err = ToNumber(Bool(true))
	assert.Nil(t, err)
	assert.Equal(t, 1.0, f)

	f, err = ToNumber(Text(" 7 "))
	assert.Nil(t, err)
	assert.Equal(t, 7.0, f)

	_, err = ToNumber(Text("hello"))
	if assert.NotNil(t, err) {
		assert.Equal(t, cellerr.Value, err.Code)
	}

	_, err = ToNumber(Error(cellerr.Ref))
	if assert.NotNil(t, err) {
		assert.Equal(t, cellerr.Ref, err.Code)
	}
}
