package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booltab/booltab/internal/diag"
)

func TestTokenize(t *testing.T) {
	t.Run("spaces ignored", func(t *testing.T) {
		tokens, err := New("a & b | c", true).Tokenize()
		require.NoError(t, err)
		require.Len(t, tokens, 5)
		assert.Equal(t, Token{Kind: Identifier, Ident: 'a'}, tokens[0])
		assert.Equal(t, Token{Kind: And}, tokens[1])
		assert.Equal(t, Token{Kind: Identifier, Ident: 'b'}, tokens[2])
		assert.Equal(t, Token{Kind: Or}, tokens[3])
		assert.Equal(t, Token{Kind: Identifier, Ident: 'c'}, tokens[4])
	})

	t.Run("single character operators", func(t *testing.T) {
		tokens, err := New("(!1^0)=", true).Tokenize()
		require.NoError(t, err)
		kinds := make([]Kind, len(tokens))
		for i, tok := range tokens {
			kinds[i] = tok.Kind
		}
		assert.Equal(t, []Kind{GroupOpen, Not, ConstTrue, Xor, ConstFalse, GroupClose, Equal}, kinds)
	})

	t.Run("keywords", func(t *testing.T) {
		tokens, err := New("true & false", false).Tokenize()
		require.NoError(t, err)
		require.Len(t, tokens, 3)
		assert.Equal(t, ConstTrue, tokens[0].Kind)
		assert.Equal(t, And, tokens[1].Kind)
		assert.Equal(t, ConstFalse, tokens[2].Kind)
	})

	t.Run("keyword needs a word boundary", func(t *testing.T) {
		tokens, err := New("truex", true).Tokenize()
		require.NoError(t, err)
		require.Len(t, tokens, 5)
		for i, want := range []rune("truex") {
			assert.Equal(t, Identifier, tokens[i].Kind)
			assert.Equal(t, want, tokens[i].Ident)
		}
	})

	t.Run("keyword suffix is not a keyword", func(t *testing.T) {
		tokens, err := New("xfalse", true).Tokenize()
		require.NoError(t, err)
		require.Len(t, tokens, 6)
		assert.Equal(t, Identifier, tokens[0].Kind)
	})

	t.Run("keyword at end of input", func(t *testing.T) {
		tokens, err := New("a|true", true).Tokenize()
		require.NoError(t, err)
		require.Len(t, tokens, 3)
		assert.Equal(t, ConstTrue, tokens[2].Kind)
	})

	t.Run("identifiers not allowed", func(t *testing.T) {
		_, err := New("a & b | c", false).Tokenize()
		require.Error(t, err)

		var d *diag.Error
		require.ErrorAs(t, err, &d)
		assert.Equal(t, diag.StageLex, d.Stage)
		assert.Equal(t, 'a', d.Char)
		assert.Equal(t, 0, d.Pos)
	})

	t.Run("invalid character", func(t *testing.T) {
		_, err := New("a|?", true).Tokenize()
		require.Error(t, err)
		assert.Equal(t, "Invalid character '?' at pos 2\n\na|?\n  ^^^\n", err.Error())
	})

	t.Run("uppercase letter rejected", func(t *testing.T) {
		_, err := New("A", true).Tokenize()
		require.Error(t, err)
	})

	t.Run("empty source", func(t *testing.T) {
		tokens, err := New("", true).Tokenize()
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})
}

func TestKindLabels(t *testing.T) {
	tests := []struct {
		kind  Kind
		word  string
		glyph string
	}{
		{And, "AND", "&"},
		{Or, "OR", "|"},
		{Xor, "XOR", "^"},
		{Not, "NOT", "!"},
		{Equal, "EQ", "="},
		{GroupOpen, "GROUP_OPEN", "("},
		{GroupClose, "GROUP_CLOSE", ")"},
		{ConstTrue, "TRUE", "1"},
		{ConstFalse, "FALSE", "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.word, tt.kind.String())
		assert.Equal(t, tt.glyph, tt.kind.Glyph())
	}

	assert.Equal(t, "q", Token{Kind: Identifier, Ident: 'q'}.String())
}
