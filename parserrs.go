package infix

import "strconv"

// SyntaxError is an error indicating input that does not fit the expression
// grammar. It carries the offending token and, when the parser required a
// particular kind, the kind it required.
type SyntaxError struct {
	// Pos is the index of the offending token in the token sequence. It is a
	// token index rather than a character offset.
	Pos int
	// Tok is the offending token.
	Tok Token
	// Expect is the token kind the parser required, or TokenNone when the
	// token was simply not valid where it appeared.
	Expect TokenKind
	// Msg, if non-empty, overrides the default message.
	Msg string
}

func (err *SyntaxError) Error() string {
	if err.Msg != "" {
		return errpos(err.Pos, err.Msg)
	}
	if err.Expect != TokenNone {
		return errpos(err.Pos, "expected "+err.Expect.String()+", got "+err.Tok.describe())
	}
	return errpos(err.Pos, "unexpected "+err.Tok.describe())
}

// errpos is a shortcut to create an error message with a token position.
func errpos(pos int, msg string) string {
	return "token " + strconv.Itoa(pos) + ": " + msg
}
