package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	testCases := []struct {
		path string
		want Format
	}{
		{path: "sheet.json", want: FormatJSON},
		{path: "dir/sheet.YAML", want: FormatYAML},
		{path: "sheet.yml", want: FormatYAML},
		{path: "/abs/path/grid.hcl", want: FormatHCL},
		{path: "book.xlsx", want: FormatXLSX},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := DetectFormat(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetectFormat_Unknown(t *testing.T) {
	for _, path := range []string{"sheet.csv", "sheet", ""} {
		t.Run(path, func(t *testing.T) {
			_, err := DetectFormat(path)
			require.ErrorIs(t, err, ErrUnknownFormat)
		})
	}
}

func TestParseFormat(t *testing.T) {
	got, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, got)

	got, err = ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, got)

	_, err = ParseFormat("toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
