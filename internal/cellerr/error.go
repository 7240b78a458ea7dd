package cellerr

import (
	"errors"
	"fmt"
)

// Code is the wire representation of a cell error, e.g. "#REF!".
type Code string

const (
	// Ref marks a reference that would create a cycle or points outside the grid.
	Ref Code = "#REF!"
	// Div0 marks a division whose right operand evaluates to zero.
	Div0 Code = "#DIV/0!"
	// Value marks an operator applied to an operand of the wrong type.
	Value Code = "#VALUE!"
	// Name marks a bare identifier that is not a cell reference or known function.
	Name Code = "#NAME!"
	// Formula marks formula text that does not match the grammar.
	Formula Code = "#ERROR!"
)

// Codes lists every code in a stable order.
var Codes = []Code{Ref, Div0, Value, Name, Formula}

// Valid reports whether c is one of the fixed codes.
func (c Code) Valid() bool {
	for _, known := range Codes {
		if c == known {
			return true
		}
	}
	return false
}

// Error is a typed evaluation error carried alongside a cell.
type Error struct {
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// New creates an error with the given code and a formatted diagnostic message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// As extracts a *Error from err's chain.
func As(err error) (*Error, bool) {
	var cellErr *Error
	if errors.As(err, &cellErr) {
		return cellErr, true
	}
	return nil, false
}

// CodeOf returns the code of err if it is a cell error, or "" otherwise.
func CodeOf(err error) Code {
	if cellErr, ok := As(err); ok {
		return cellErr.Code
	}
	return ""
}
