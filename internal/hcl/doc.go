// Package hcl provides the concrete HCL implementation of the sheet Loader
// and Writer interfaces defined in the `config` package. It is responsible
// for HCL parsing, HCL-to-table translation, and CTY-to-text binding of
// cell literals.
//
// A sheet file looks like:
//
//	rows = 2
//
//	column "A" {
//	  title = "Price"
//	}
//
//	cell "A1" {
//	  value = 10
//	}
//
//	cell "B1" {
//	  formula = "=A1*2"
//	}
package hcl
