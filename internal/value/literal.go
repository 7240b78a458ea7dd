package value

import (
	"regexp"
	"strconv"
	"strings"
)

var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber accepts plain decimal notation only; Go-specific forms such
// as "Inf", "0x1p3" or "1_000" are text.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !numericPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseLiteral reads the text of a literal cell.
//
//	""        -> blank
//	"12.5"    -> number
//	"true"    -> boolean
//	`"hello"` -> text hello
//	"hello"   -> text hello
func ParseLiteral(s string) Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Blank()
	}
	if f, ok := parseNumber(trimmed); ok {
		return Number(f)
	}
	switch strings.ToUpper(trimmed) {
	case "TRUE":
		return Bool(true)
	case "FALSE":
		return Bool(false)
	}
	if len(trimmed) >= 2 && trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"' {
		return Text(strings.ReplaceAll(trimmed[1:len(trimmed)-1], `""`, `"`))
	}
	return Text(s)
}
