package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSeparator(t *testing.T) {
	// Every alphanumeric and the space character is forbidden.
	for c := byte('A'); c <= 'Z'; c++ {
		assert.False(t, IsSeparator(c), "uppercase %q", c)
	}
	for c := byte('a'); c <= 'z'; c++ {
		assert.False(t, IsSeparator(c), "lowercase %q", c)
	}
	for c := byte('0'); c <= '9'; c++ {
		assert.False(t, IsSeparator(c), "digit %q", c)
	}
	assert.False(t, IsSeparator(' '))

	// The separators seen in real payloads are fine.
	for _, c := range []byte{'\n', '\r', 0x1E, ',', '^', '~', 0x00} {
		assert.True(t, IsSeparator(c), "0x%02X", c)
	}
}

func TestIsElementID(t *testing.T) {
	tests := []struct {
		id string
		ok bool
	}{
		{"DAQ", true},
		{"DCS", true},
		{"ZVA", true},
		{"DA", false},
		{"DAQX", false},
		{"DaQ", false},
		{"DA1", false},
		{"DA ", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, IsElementID(tt.id), "id %q", tt.id)
	}
}

func TestParseDecimal(t *testing.T) {
	n, err := ParseDecimal("02")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = ParseDecimal("0041")
	require.NoError(t, err)
	require.Equal(t, 41, n)

	n, err = ParseDecimal("9999")
	require.NoError(t, err)
	require.Equal(t, 9999, n)

	for _, bad := range []string{"", " 1", "+1", "-1", "1a", "a1", "1 "} {
		_, err := ParseDecimal(bad)
		require.Error(t, err, "input %q", bad)
	}
}
