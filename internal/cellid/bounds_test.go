package cellid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds_Contains(t *testing.T) {
	b := NewBounds([]string{"A", "b", "C"}, 10)

	testCases := []struct {
		key      string
		expected bool
	}{
		{"A1", true},
		{"B10", true},
		{"c5", true},
		{"A0", false},
		{"A11", false},
		{"D1", false},
		{"Z99", false},
	}
	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.expected, b.Contains(MustParse(tc.key)))
		})
	}

	assert.False(t, b.Contains(nil))
	assert.Equal(t, 10, b.Rows())
	assert.True(t, b.HasColumn("B"))
}
