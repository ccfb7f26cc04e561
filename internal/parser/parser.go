// Package parser turns a token sequence into an AST by recursive descent.
// Precedence from lowest to highest: equality, xor, or, and, not, factor.
// Binary operators at the same level fold left-associatively.
package parser

import (
	"github.com/booltab/booltab/internal/ast"
	"github.com/booltab/booltab/internal/diag"
	"github.com/booltab/booltab/internal/token"
)

// Parser consumes tokens in a single forward pass with one token of
// lookahead. The source string is kept only for diagnostics.
type Parser struct {
	tokens []token.Token
	pos    int
	src    string
}

func New(tokens []token.Token, src string) *Parser {
	return &Parser{tokens: tokens, src: src}
}

// Parse produces the AST for the whole token sequence. Tokens left over
// after the lowest precedence level are a parse error: a well-formed
// expression consumes all of its input.
func (p *Parser) Parse() (ast.Node, error) {
	node, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, p.errHere()
	}
	return node, nil
}

func (p *Parser) parseEquality() (ast.Node, error) {
	return p.parseBinary(token.Equal, p.parseXor)
}

func (p *Parser) parseXor() (ast.Node, error) {
	return p.parseBinary(token.Xor, p.parseOr)
}

func (p *Parser) parseOr() (ast.Node, error) {
	return p.parseBinary(token.Or, p.parseAnd)
}

func (p *Parser) parseAnd() (ast.Node, error) {
	return p.parseBinary(token.And, p.parseNot)
}

// parseBinary folds a run of one binary operator into a left-leaning chain:
// a&b&c parses as (a&b)&c.
func (p *Parser) parseBinary(op token.Kind, next func() (ast.Node, error)) (ast.Node, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != op {
			break
		}
		p.pos++
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.DoubleOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseNot consumes a leading '!' and re-enters itself for the operand, so
// !!a builds a nested SingleOp chain.
func (p *Parser) parseNot() (ast.Node, error) {
	if tok, ok := p.peek(); ok && tok.Kind == token.Not {
		p.pos++
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.SingleOp{Op: token.Not, Operand: operand}, nil
	}
	return p.parseFactor()
}

func (p *Parser) parseFactor() (ast.Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errHere()
	}
	switch tok.Kind {
	case token.Identifier:
		p.pos++
		return &ast.Identifier{Name: tok.Ident}, nil
	case token.ConstTrue:
		p.pos++
		return &ast.Const{Value: true}, nil
	case token.ConstFalse:
		p.pos++
		return &ast.Const{Value: false}, nil
	case token.GroupOpen:
		p.pos++
		inner, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		if closing, ok := p.peek(); !ok || closing.Kind != token.GroupClose {
			return nil, p.errHere()
		}
		p.pos++
		return &ast.Group{Inner: inner}, nil
	default:
		return nil, p.errHere()
	}
}

func (p *Parser) peek() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

// errHere reports a parse error at the current cursor. Tokens carry no
// source offsets, so the token index stands in for the position.
func (p *Parser) errHere() error {
	return diag.New(diag.StageParse, p.src, p.pos)
}
