// Package eval evaluates parsed expressions under bitmask-encoded variable
// assignments and enumerates full truth tables.
package eval

import (
	"fmt"
	"iter"
	"slices"

	"github.com/booltab/booltab/internal/ast"
	"github.com/booltab/booltab/internal/token"
)

// Evaluator binds an immutable AST to its canonical identifier index. The
// index is computed once at construction; every query after that is a pure
// function of the AST and the assignment mask, so one Evaluator can serve
// concurrent Evaluate calls.
type Evaluator struct {
	root     ast.Node
	bitIndex map[rune]int
	idents   []rune
}

// New traverses the AST once, collects its distinct identifiers and assigns
// each a bit position in ascending character order. That ordering is
// canonical: it fixes truth-table column order and the mask bit layout
// regardless of where identifiers first appear in the source.
func New(root ast.Node) *Evaluator {
	e := &Evaluator{root: root, bitIndex: make(map[rune]int)}

	queue := []ast.Node{root}
	seen := make(map[rune]bool)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		switch n := n.(type) {
		case *ast.Identifier:
			if !seen[n.Name] {
				seen[n.Name] = true
				e.idents = append(e.idents, n.Name)
			}
		case *ast.SingleOp:
			queue = append(queue, n.Operand)
		case *ast.DoubleOp:
			queue = append(queue, n.Left, n.Right)
		case *ast.Group:
			queue = append(queue, n.Inner)
		}
	}

	slices.Sort(e.idents)
	for i, c := range e.idents {
		e.bitIndex[c] = i
	}
	return e
}

// Identifiers returns the distinct variables in canonical ascending order.
func (e *Evaluator) Identifiers() []rune {
	return slices.Clone(e.idents)
}

// IdentifierBit reports the value the mask assigns to identifier c.
func (e *Evaluator) IdentifierBit(c rune, pass uint64) bool {
	return pass&(1<<e.bitIndex[c]) != 0
}

// Evaluate computes the expression under one assignment mask: bit i of pass
// is the value of the i-th identifier in canonical order.
func (e *Evaluator) Evaluate(pass uint64) bool {
	return e.eval(e.root, pass)
}

func (e *Evaluator) eval(n ast.Node, pass uint64) bool {
	switch n := n.(type) {
	case *ast.Const:
		return n.Value
	case *ast.Identifier:
		return e.IdentifierBit(n.Name, pass)
	case *ast.SingleOp:
		if n.Op != token.Not {
			panic(fmt.Sprintf("eval: unary node carries operator %v; AST was not produced by the parser", n.Op))
		}
		return !e.eval(n.Operand, pass)
	case *ast.DoubleOp:
		switch n.Op {
		case token.And:
			return e.eval(n.Left, pass) && e.eval(n.Right, pass)
		case token.Or:
			return e.eval(n.Left, pass) || e.eval(n.Right, pass)
		case token.Xor:
			return e.eval(n.Left, pass) != e.eval(n.Right, pass)
		case token.Equal:
			return e.eval(n.Left, pass) == e.eval(n.Right, pass)
		default:
			panic(fmt.Sprintf("eval: binary node carries operator %v; AST was not produced by the parser", n.Op))
		}
	case *ast.Group:
		return e.eval(n.Inner, pass)
	default:
		panic(fmt.Sprintf("eval: unknown node type %T", n))
	}
}

// PassResult is one truth-table row: the evaluation result plus the decoded
// per-identifier assignment that produced it.
type PassResult struct {
	Result bool
	States map[rune]bool
}

// Rows enumerates every assignment mask from 0 to 2^n-1 in ascending order,
// one row per mask. The sequence is lazy and restartable; with zero
// identifiers it yields exactly one row. The evaluator imposes no size limit
// here, callers decide whether 2^n rows is worth enumerating.
func (e *Evaluator) Rows() iter.Seq[PassResult] {
	return func(yield func(PassResult) bool) {
		total := uint64(1) << len(e.idents)
		for pass := uint64(0); pass < total; pass++ {
			states := make(map[rune]bool, len(e.idents))
			for _, c := range e.idents {
				states[c] = e.IdentifierBit(c, pass)
			}
			if !yield(PassResult{Result: e.Evaluate(pass), States: states}) {
				return
			}
		}
	}
}
