package token

import "github.com/booltab/booltab/internal/diag"

// Tokenizer scans a source string into tokens. When allowIdents is false any
// letter that does not start a boolean keyword is a lexical error; plain
// constant evaluation uses that mode to reject free variables up front.
type Tokenizer struct {
	src         []rune
	raw         string
	pos         int
	allowIdents bool
}

func New(src string, allowIdents bool) *Tokenizer {
	return &Tokenizer{src: []rune(src), raw: src, allowIdents: allowIdents}
}

// Tokenize scans the whole source in a single forward pass. It either returns
// the complete token sequence or the positioned diagnostic for the first
// unrecognized character.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0, len(t.src))

	for t.pos < len(t.src) {
		c := t.src[t.pos]
		switch c {
		case ' ':
			t.pos++
		case '(':
			tokens = append(tokens, Token{Kind: GroupOpen})
			t.pos++
		case ')':
			tokens = append(tokens, Token{Kind: GroupClose})
			t.pos++
		case '&':
			tokens = append(tokens, Token{Kind: And})
			t.pos++
		case '|':
			tokens = append(tokens, Token{Kind: Or})
			t.pos++
		case '^':
			tokens = append(tokens, Token{Kind: Xor})
			t.pos++
		case '!':
			tokens = append(tokens, Token{Kind: Not})
			t.pos++
		case '=':
			tokens = append(tokens, Token{Kind: Equal})
			t.pos++
		case '1':
			tokens = append(tokens, Token{Kind: ConstTrue})
			t.pos++
		case '0':
			tokens = append(tokens, Token{Kind: ConstFalse})
			t.pos++
		default:
			switch {
			case t.matchKeyword("true"):
				tokens = append(tokens, Token{Kind: ConstTrue})
			case t.matchKeyword("false"):
				tokens = append(tokens, Token{Kind: ConstFalse})
			case t.allowIdents && isIdent(c):
				tokens = append(tokens, Token{Kind: Identifier, Ident: c})
				t.pos++
			default:
				return nil, diag.New(diag.StageLex, t.raw, t.pos)
			}
		}
	}

	return tokens, nil
}

// matchKeyword consumes kw at the cursor if it is present and ends on a word
// boundary. The boundary check keeps an adjacent identifier run like "truex"
// from being split into a constant plus leftovers.
func (t *Tokenizer) matchKeyword(kw string) bool {
	end := t.pos + len(kw)
	if end > len(t.src) || string(t.src[t.pos:end]) != kw {
		return false
	}
	if end < len(t.src) && isIdent(t.src[end]) {
		return false
	}
	t.pos = end
	return true
}

func isIdent(c rune) bool {
	return c >= 'a' && c <= 'z'
}
