// Package sheet defines the table snapshot exchanged with callers: a row
// count, column metadata, and a map of cell keys to cells. The same shape is
// used on the HTTP wire and in sheet files.
package sheet
