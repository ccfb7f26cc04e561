// Package diag holds the positioned diagnostic shared by the tokenizer and
// the parser. Both stages report failures in the same caret-marker format, so
// the formatting lives in one place instead of being repeated per stage.
package diag

import (
	"fmt"
	"strings"
)

// Stage identifies which pipeline stage produced a diagnostic.
type Stage int

const (
	StageLex Stage = iota
	StageParse
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error is a terminal, positioned diagnostic. Pos is a zero-based character
// index into Source; for parse errors it is the index of the current token.
type Error struct {
	Stage  Stage
	Char   rune
	Pos    int
	Source string
}

// New builds a diagnostic for the given position. The offending character is
// taken from Source; positions past the end report a blank.
func New(stage Stage, source string, pos int) *Error {
	char := ' '
	for i, c := range []rune(source) {
		if i == pos {
			char = c
			break
		}
	}
	return &Error{Stage: stage, Char: char, Pos: pos, Source: source}
}

// Error renders the diagnostic. The layout is a compatibility contract:
//
//	Invalid character '<c>' at pos <n>\n\n<source>\n<n spaces>^^^\n
func (e *Error) Error() string {
	return fmt.Sprintf("Invalid character '%c' at pos %d\n\n%s\n%s^^^\n",
		e.Char, e.Pos, e.Source, strings.Repeat(" ", e.Pos))
}
