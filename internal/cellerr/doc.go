// Package cellerr defines the fixed set of per-cell formula errors.
//
// A cell error is a terminal annotation on a single cell. It is produced by
// the builder (structural problems such as reference cycles) or by the
// executor (type mismatches, division by zero) and is never raised past the
// boundary of the cell that owns it.
package cellerr
