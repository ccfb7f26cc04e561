package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignment(t *testing.T) {
	t.Run("single value", func(t *testing.T) {
		tests := []struct {
			in   string
			want uint64
		}{
			{"0", 0},
			{"1", 1},
			{"true", 1},
			{"false", 0},
			{"TRUE", 1},
			{"101", 0b101},
			{"0011", 0b0011},
			{"42", 42},
			{"255", 255},
		}
		for _, tt := range tests {
			got, err := parseAssignment([]string{tt.in})
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		}
	})

	t.Run("binary wins over decimal", func(t *testing.T) {
		// "10" is a valid binary string, so it is bit pattern 0b10, not ten.
		got, err := parseAssignment([]string{"10"})
		require.NoError(t, err)
		assert.Equal(t, uint64(0b10), got)
	})

	t.Run("one value per bit", func(t *testing.T) {
		got, err := parseAssignment([]string{"true", "0", "1"})
		require.NoError(t, err)
		assert.Equal(t, uint64(0b101), got)

		got, err = parseAssignment([]string{"false", "false"})
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("invalid single value", func(t *testing.T) {
		_, err := parseAssignment([]string{"yes"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"yes"`)
	})

	t.Run("invalid multi value names the index", func(t *testing.T) {
		_, err := parseAssignment([]string{"true", "2", "false"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("empty value", func(t *testing.T) {
		_, err := parseAssignment([]string{""})
		assert.Error(t, err)
	})
}
