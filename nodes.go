package infix

import (
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. It is one of
// *Value, *UnaryOp, or *BinaryOp. Nodes own their children exclusively and
// are never mutated after construction.
type Node interface {
	// Token returns the token the node was built from: the literal for a
	// value, the operator symbol otherwise.
	Token() Token

	infix(b *strings.Builder)
	sexpr(b *strings.Builder)
}

// Value is a leaf node holding a value token.
type Value struct {
	Tok Token
}

// UnaryOp applies an operator to a single operand.
type UnaryOp struct {
	Op    Token
	Child Node
}

// BinaryOp applies an operator to a left and a right operand.
type BinaryOp struct {
	Op    Token
	Left  Node
	Right Node
}

func (n *Value) Token() Token    { return n.Tok }
func (n *UnaryOp) Token() Token  { return n.Op }
func (n *BinaryOp) Token() Token { return n.Op }

func (n *Value) String() string    { return Infix(n) }
func (n *UnaryOp) String() string  { return Infix(n) }
func (n *BinaryOp) String() string { return Infix(n) }

// Infix renders a tree as fully parenthesized infix text. Parsing the result
// yields a tree structurally equal to n.
func Infix(n Node) string {
	var b strings.Builder
	n.infix(&b)
	return b.String()
}

func (n *Value) infix(b *strings.Builder) {
	b.WriteString(n.Tok.Text)
}

func (n *UnaryOp) infix(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Op.Text)
	n.Child.infix(b)
	b.WriteByte(')')
}

func (n *BinaryOp) infix(b *strings.Builder) {
	b.WriteByte('(')
	n.Left.infix(b)
	b.WriteString(n.Op.Text)
	n.Right.infix(b)
	b.WriteByte(')')
}

// Sexpr renders a tree in prefix form, e.g. "(+ 1 (* 2 3))".
func Sexpr(n Node) string {
	var b strings.Builder
	n.sexpr(&b)
	return b.String()
}

func (n *Value) sexpr(b *strings.Builder) {
	b.WriteString(n.Tok.Text)
}

func (n *UnaryOp) sexpr(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Op.Text)
	b.WriteByte(' ')
	n.Child.sexpr(b)
	b.WriteByte(')')
}

func (n *BinaryOp) sexpr(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Op.Text)
	b.WriteByte(' ')
	n.Left.sexpr(b)
	b.WriteByte(' ')
	n.Right.sexpr(b)
	b.WriteByte(')')
}

// Equal reports whether two trees have the same shape with the same token
// kinds and text throughout.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case *Value:
		b, ok := b.(*Value)
		return ok && a.Tok == b.Tok
	case *UnaryOp:
		b, ok := b.(*UnaryOp)
		return ok && a.Op == b.Op && Equal(a.Child, b.Child)
	case *BinaryOp:
		b, ok := b.(*BinaryOp)
		return ok && a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	default:
		return false
	}
}
