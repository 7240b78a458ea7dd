package cellid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// keyRegex splits a key into its column letters and row digits.
var keyRegex = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// Parse creates a new Address by parsing its canonical string representation.
func Parse(rawKey string) (*Address, error) {
	if rawKey == "" {
		return nil, fmt.Errorf("cell key cannot be empty")
	}

	matches := keyRegex.FindStringSubmatch(rawKey)
	if matches == nil {
		return nil, fmt.Errorf("invalid cell key format: %q", rawKey)
	}

	column := strings.ToUpper(matches[1])
	if _, err := excelize.ColumnNameToNumber(column); err != nil {
		return nil, fmt.Errorf("invalid column in cell key %q: %w", rawKey, err)
	}

	row, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, fmt.Errorf("invalid row in cell key %q: %w", rawKey, err)
	}

	return &Address{Column: column, Row: row}, nil
}

// MustParse is like Parse but panics on malformed keys. It is meant for
// keys produced by this program, not for user input.
func MustParse(rawKey string) *Address {
	addr, err := Parse(rawKey)
	if err != nil {
		panic(fmt.Sprintf("cellid: %v", err))
	}
	return addr
}

// FromCoordinates builds an Address from a 1-based column number and row.
func FromCoordinates(col, row int) (*Address, error) {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return nil, err
	}
	if row < 1 {
		return nil, fmt.Errorf("row must be positive, got %d", row)
	}
	return &Address{Column: name, Row: row}, nil
}
