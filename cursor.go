package infix

// cursor is a position over a lexed token sequence. Each parse owns its own
// cursor, so independent parses never share state.
type cursor struct {
	toks []Token
	// pos is a valid index into toks, or len(toks) meaning end of input.
	pos int
}

func newCursor(toks []Token) *cursor {
	return &cursor{toks: toks}
}

// peek returns the current token without consuming it. Once the cursor
// reaches the end, peek returns a synthetic end-of-input token; calling it
// again is safe and returns the same thing.
func (c *cursor) peek() Token {
	if c.pos < len(c.toks) {
		return c.toks[c.pos]
	}
	return Token{Kind: TokenEOF}
}

// advance consumes the current token. At the end of the input it is a no-op.
func (c *cursor) advance() {
	if c.pos < len(c.toks) {
		c.pos++
	}
}

// expect consumes the current token if it has the given kind and otherwise
// returns a *SyntaxError reporting the expected and actual kinds.
func (c *cursor) expect(kind TokenKind) error {
	tok := c.peek()
	if tok.Kind != kind {
		return &SyntaxError{Pos: c.pos, Tok: tok, Expect: kind}
	}
	c.advance()
	return nil
}
