package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a sheet file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
	FormatXLSX Format = "xlsx"
)

// ErrUnknownFormat is returned when a path or name does not map to a
// supported sheet format.
var ErrUnknownFormat = errors.New("unknown sheet format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatHCL, FormatXLSX}
}

// DetectFormat chooses a format from the file extension of path.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "yml" {
		return FormatYAML, nil
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", fmt.Errorf("%w: cannot infer format of %q", ErrUnknownFormat, path)
	}
	return f, nil
}

// ParseFormat resolves a user-provided format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "yml" {
		return FormatYAML, nil
	}
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
