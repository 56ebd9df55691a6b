package infix

import "strconv"

// Expr = E(0)
// E(p) = P { binary-op E(q) }   while prec(op) >= p;
//                               q = prec+1 if left-assoc, prec if right-assoc
// P    = unary-op E(prec(op)) | "(" E(0) ")" | value

// Parse parses an infix arithmetic expression into its syntax tree. On
// malformed input the result is nil and a *SyntaxError; Parse never returns a
// partial tree.
func Parse(src string) (Node, error) {
	c := newCursor(Lex(src))
	n, err := c.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := c.expect(TokenEOF); err != nil {
		return nil, err
	}
	return n, nil
}

// parseExpr parses a primary and then climbs: it consumes binary operators
// whose precedence is at least min, parsing each right operand with a
// threshold that makes equal-precedence operators group left or right
// according to the table.
func (c *cursor) parseExpr(min int8) (Node, error) {
	left, err := c.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok := c.peek()
		op, ok := binaryOp(tok.Kind)
		if !ok || op.prec < min {
			return left, nil
		}
		next := op.prec
		switch op.assoc {
		case assocLeft:
			next++
		case assocRight:
			// Climb at the same precedence so the operator binds right.
		default:
			return nil, &SyntaxError{Pos: c.pos, Tok: tok, Msg: "binary operator " + strconv.Quote(tok.Text) + " has no associativity"}
		}
		c.advance()
		right, err := c.parseExpr(next)
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: tok, Left: left, Right: right}
	}
}

// parsePrimary parses the first component of a term: a unary operator applied
// to a subexpression, a parenthesized expression, or a bare value.
func (c *cursor) parsePrimary() (Node, error) {
	tok := c.peek()
	if op, ok := unaryOp(tok.Kind); ok {
		c.advance()
		child, err := c.parseExpr(op.prec)
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: tok, Child: child}, nil
	}
	switch tok.Kind {
	case TokenParenOpen:
		c.advance()
		n, err := c.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if err := c.expect(TokenParenClose); err != nil {
			return nil, err
		}
		return n, nil
	case TokenValue:
		c.advance()
		return &Value{Tok: tok}, nil
	default:
		if _, ok := binaryOp(tok.Kind); ok {
			return nil, &SyntaxError{Pos: c.pos, Tok: tok, Msg: "unknown unary operator " + strconv.Quote(tok.Text)}
		}
		return nil, &SyntaxError{Pos: c.pos, Tok: tok}
	}
}
