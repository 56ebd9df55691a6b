package infix

// assoc is the associativity of an operator table entry.
type assoc int8

const (
	assocNone assoc = iota
	assocLeft
	assocRight
)

// operator is a precedence table entry. Higher prec is more binding.
type operator struct {
	prec int8
	assoc
}

// unaryOp looks up the unary operator table. Unary minus outranks every
// binary operator, including exponentiation; the master regression test pins
// this ordering, so don't "fix" it.
func unaryOp(k TokenKind) (operator, bool) {
	switch k {
	case TokenMinus:
		return operator{4, assocNone}, true
	}
	return operator{}, false
}

// binaryOp looks up the binary operator table. Every entry must be left- or
// right-associative; the parser has no way to climb past an entry without
// one.
func binaryOp(k TokenKind) (operator, bool) {
	switch k {
	case TokenEquals:
		return operator{0, assocLeft}, true
	case TokenPlus, TokenMinus:
		return operator{1, assocLeft}, true
	case TokenTimes, TokenDivide:
		return operator{2, assocLeft}, true
	case TokenExponent:
		return operator{3, assocRight}, true
	}
	return operator{}, false
}
