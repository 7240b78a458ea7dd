// Package value is the typed value model formulas evaluate to: blank,
// number, text, boolean, or an error code. It defines how literals are read
// from cell text, how values coerce, and what each operator does.
//
// Operators never panic and never return Go errors. A failed coercion or a
// non-finite result becomes an error Value, and an error operand is returned
// unchanged (left operand first).
package value
