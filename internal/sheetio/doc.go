// Package sheetio implements the sheet Loader and Writer interfaces for
// JSON, YAML and XLSX files, and dispatches file paths to the right
// implementation (including the `hcl` package) by format.
package sheetio
