/*
Package cellid provides a structured, type-safe representation for cell
identifiers within a grid, based on the canonical format `<column><row>`.

The column is one or more letters and the row is a decimal number, e.g.
`A1`, `AB12`. Keys are normalized: letters to upper case and leading zeros
dropped from the row, so `ab012` and `AB12` name the same cell.

This package centralizes all formatting, parsing, ordering and bounds logic
for cell keys.
*/
package cellid
