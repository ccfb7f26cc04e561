// Package ast defines the expression tree produced by the parser. Nodes are
// immutable once built and ownership is strictly tree-shaped: every child
// belongs to exactly one parent, so traversals never have to detect sharing
// or cycles.
package ast

import "github.com/booltab/booltab/internal/token"

// Node is the closed set of expression shapes. Only the types in this
// package implement it.
type Node interface {
	node()
}

// Const is a literal true/false.
type Const struct {
	Value bool
}

// Identifier is a free variable, a single lowercase ASCII letter.
type Identifier struct {
	Name rune
}

// SingleOp applies a unary operator to one owned operand. The parser only
// ever emits NOT here.
type SingleOp struct {
	Op      token.Kind
	Operand Node
}

// DoubleOp applies a binary operator to two owned operands.
type DoubleOp struct {
	Op    token.Kind
	Left  Node
	Right Node
}

// Group marks explicit parenthesization. It evaluates identically to its
// inner node but is kept distinct so structural consumers see the source
// shape.
type Group struct {
	Inner Node
}

func (*Const) node()      {}
func (*Identifier) node() {}
func (*SingleOp) node()   {}
func (*DoubleOp) node()   {}
func (*Group) node()      {}

// NodeCount reports the number of leaf and operator nodes in the tree.
// Groups are transparent wrappers and do not count themselves.
func NodeCount(n Node) int {
	switch n := n.(type) {
	case *SingleOp:
		return 1 + NodeCount(n.Operand)
	case *DoubleOp:
		return 1 + NodeCount(n.Left) + NodeCount(n.Right)
	case *Group:
		return NodeCount(n.Inner)
	default:
		return 1
	}
}

// Label returns the display label for a node: the operator glyph in short
// form, the operator word when extended.
func Label(n Node, extended bool) string {
	switch n := n.(type) {
	case *Const:
		if n.Value {
			return "true"
		}
		return "false"
	case *Identifier:
		return string(n.Name)
	case *SingleOp:
		return opLabel(n.Op, extended)
	case *DoubleOp:
		return opLabel(n.Op, extended)
	case *Group:
		if extended {
			return "GRP"
		}
		return "()"
	default:
		return "?"
	}
}

func opLabel(op token.Kind, extended bool) string {
	if extended {
		return op.String()
	}
	return op.Glyph()
}
