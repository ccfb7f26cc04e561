package token

// Kind enumerates the lexical token kinds of the expression grammar.
type Kind int

const (
	And Kind = iota
	Or
	Xor
	Not
	Equal
	GroupOpen
	GroupClose
	ConstTrue
	ConstFalse
	Identifier
)

func (k Kind) String() string {
	switch k {
	case And:
		return "AND"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	case Not:
		return "NOT"
	case Equal:
		return "EQ"
	case GroupOpen:
		return "GROUP_OPEN"
	case GroupClose:
		return "GROUP_CLOSE"
	case ConstTrue:
		return "TRUE"
	case ConstFalse:
		return "FALSE"
	case Identifier:
		return "IDENT"
	default:
		return "UNKNOWN"
	}
}

// Glyph returns the single-character source spelling of an operator kind.
func (k Kind) Glyph() string {
	switch k {
	case And:
		return "&"
	case Or:
		return "|"
	case Xor:
		return "^"
	case Not:
		return "!"
	case Equal:
		return "="
	case GroupOpen:
		return "("
	case GroupClose:
		return ")"
	case ConstTrue:
		return "1"
	case ConstFalse:
		return "0"
	default:
		return "?"
	}
}

// Token is one lexical unit. Identifier tokens carry the variable name in
// Ident; all other kinds leave it zero. Tokens carry no source position.
type Token struct {
	Kind  Kind
	Ident rune
}

func (t Token) String() string {
	if t.Kind == Identifier {
		return string(t.Ident)
	}
	return t.Kind.Glyph()
}
