package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormat(t *testing.T) {
	t.Run("caret marker lines up with the position", func(t *testing.T) {
		err := New(StageLex, "a|?", 2)
		assert.Equal(t, "Invalid character '?' at pos 2\n\na|?\n  ^^^\n", err.Error())
	})

	t.Run("position at start", func(t *testing.T) {
		err := New(StageLex, "?ab", 0)
		assert.Equal(t, "Invalid character '?' at pos 0\n\n?ab\n^^^\n", err.Error())
	})

	t.Run("position past the end reports a blank", func(t *testing.T) {
		err := New(StageParse, "a &", 3)
		assert.Equal(t, ' ', err.Char)
		assert.Equal(t, "Invalid character ' ' at pos 3\n\na &\n   ^^^\n", err.Error())
	})
}

func TestStage(t *testing.T) {
	assert.Equal(t, "lex", StageLex.String())
	assert.Equal(t, "parse", StageParse.String())
	assert.Equal(t, StageLex, New(StageLex, "x", 0).Stage)
}
