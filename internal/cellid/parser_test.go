package cellid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		rawKey       string
		expectErr    bool
		expectedAddr *Address
	}{
		{
			name:         "single letter column",
			rawKey:       "A1",
			expectedAddr: &Address{Column: "A", Row: 1},
		},
		{
			name:         "multi letter column",
			rawKey:       "AB12",
			expectedAddr: &Address{Column: "AB", Row: 12},
		},
		{
			name:         "lower case is normalized",
			rawKey:       "ab12",
			expectedAddr: &Address{Column: "AB", Row: 12},
		},
		{
			name:         "row zero parses, bounds reject it later",
			rawKey:       "C0",
			expectedAddr: &Address{Column: "C", Row: 0},
		},
		{
			name:      "error - empty string",
			rawKey:    "",
			expectErr: true,
		},
		{
			name:      "error - digits only",
			rawKey:    "12",
			expectErr: true,
		},
		{
			name:      "error - letters only",
			rawKey:    "AB",
			expectErr: true,
		},
		{
			name:      "error - range syntax",
			rawKey:    "A1:B2",
			expectErr: true,
		},
		{
			name:      "error - absolute marker",
			rawKey:    "$A$1",
			expectErr: true,
		},
		{
			name:         "leading zeros in row are dropped",
			rawKey:       "a007",
			expectedAddr: &Address{Column: "A", Row: 7},
		},
		{
			name:         "row of zeros stays zero",
			rawKey:       "B00",
			expectedAddr: &Address{Column: "B", Row: 0},
		},
		{
			name:      "error - column past XFD",
			rawKey:    "ZZZZ1",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, err := Parse(tc.rawKey)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, addr)
			assert.True(t, tc.expectedAddr.Equal(addr), "parsed address %v does not match %v", addr, tc.expectedAddr)
		})
	}
}

func TestFromCoordinates(t *testing.T) {
	addr, err := FromCoordinates(28, 3)
	require.NoError(t, err)
	assert.Equal(t, "AB3", addr.String())

	_, err = FromCoordinates(0, 3)
	assert.Error(t, err)

	_, err = FromCoordinates(1, 0)
	assert.Error(t, err)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not a key") })
	assert.Equal(t, "B2", MustParse("b2").String())
}
