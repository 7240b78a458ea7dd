// Package config defines the format-agnostic contracts for reading and
// writing sheet files, along with format detection by file extension.
//
// The `sheet.Table` is the single model every format converts to and from.
// Concrete implementations live in separate packages: `hcl` for HCL sheets
// and `sheetio` for JSON, YAML and XLSX.
package config
