package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booltab/booltab/internal/ast"
	"github.com/booltab/booltab/internal/diag"
)

func TestEvaluateConst(t *testing.T) {
	t.Run("constant expressions", func(t *testing.T) {
		tests := []struct {
			src  string
			want bool
		}{
			{"1", true},
			{"0", false},
			{"1&0", false},
			{"true|false", true},
			{"!(1^1)", true},
			{"(1=0)^true", true},
		}
		for _, tt := range tests {
			got, err := EvaluateConst(tt.src)
			require.NoError(t, err, tt.src)
			assert.Equal(t, tt.want, got, tt.src)
		}
	})

	t.Run("identifiers rejected", func(t *testing.T) {
		_, err := EvaluateConst("a&1")
		require.Error(t, err)

		var d *diag.Error
		require.ErrorAs(t, err, &d)
		assert.Equal(t, diag.StageLex, d.Stage)
	})
}

func TestEvaluatePass(t *testing.T) {
	res, err := EvaluatePass("a&b", 0b11)
	require.NoError(t, err)
	assert.True(t, res.Result)
	assert.Equal(t, map[rune]bool{'a': true, 'b': true}, res.States)

	res, err = EvaluatePass("a&b", 0b01)
	require.NoError(t, err)
	assert.False(t, res.Result)
	assert.Equal(t, map[rune]bool{'a': true, 'b': false}, res.States)
}

func TestParse(t *testing.T) {
	t.Run("returns the tree", func(t *testing.T) {
		root, err := Parse("!a")
		require.NoError(t, err)
		_, ok := root.(*ast.SingleOp)
		assert.True(t, ok)
	})

	t.Run("propagates parse errors", func(t *testing.T) {
		_, err := Parse("a &")
		require.Error(t, err)

		var d *diag.Error
		require.ErrorAs(t, err, &d)
		assert.Equal(t, diag.StageParse, d.Stage)
	})
}

func TestCompileDeterministic(t *testing.T) {
	first, err := Compile("a^b|c", true)
	require.NoError(t, err)
	second, err := Compile("a^b|c", true)
	require.NoError(t, err)

	for pass := uint64(0); pass < 8; pass++ {
		assert.Equal(t, first.Evaluate(pass), second.Evaluate(pass))
	}
}
