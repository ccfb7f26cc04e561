// Package expr chains the pipeline stages (tokenize, parse, evaluator
// construction) into the entry points the CLI and the HTTP API share.
package expr

import (
	"github.com/booltab/booltab/internal/ast"
	"github.com/booltab/booltab/internal/eval"
	"github.com/booltab/booltab/internal/parser"
	"github.com/booltab/booltab/internal/token"
)

// Parse tokenizes and parses a source expression with identifiers allowed.
func Parse(source string) (ast.Node, error) {
	tokens, err := token.New(source, true).Tokenize()
	if err != nil {
		return nil, err
	}
	return parser.New(tokens, source).Parse()
}

// Compile runs the full pipeline and returns a ready evaluator.
func Compile(source string, allowIdentifiers bool) (*eval.Evaluator, error) {
	tokens, err := token.New(source, allowIdentifiers).Tokenize()
	if err != nil {
		return nil, err
	}
	root, err := parser.New(tokens, source).Parse()
	if err != nil {
		return nil, err
	}
	return eval.New(root), nil
}

// EvaluateConst evaluates an expression that must not contain free
// variables; any letter that is not a boolean keyword is rejected by the
// tokenizer.
func EvaluateConst(source string) (bool, error) {
	ev, err := Compile(source, false)
	if err != nil {
		return false, err
	}
	return ev.Evaluate(0), nil
}

// EvaluatePass evaluates an expression under an explicit assignment mask and
// reports the decoded per-identifier states alongside the result.
func EvaluatePass(source string, pass uint64) (eval.PassResult, error) {
	ev, err := Compile(source, true)
	if err != nil {
		return eval.PassResult{}, err
	}
	states := make(map[rune]bool)
	for _, c := range ev.Identifiers() {
		states[c] = ev.IdentifierBit(c, pass)
	}
	return eval.PassResult{Result: ev.Evaluate(pass), States: states}, nil
}
