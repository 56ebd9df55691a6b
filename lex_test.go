package infix

import (
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// values
		{"0", []Token{{TokenValue, "0"}}},
		{"9876543210", []Token{{TokenValue, "9876543210"}}},
		{"1 0", []Token{{TokenValue, "1"}, {TokenValue, "0"}}},
		{"1.5", []Token{{TokenValue, "1.5"}}},
		{"abc", []Token{{TokenValue, "abc"}}},
		{"π", []Token{{TokenValue, "π"}}},
		{"a$b", []Token{{TokenValue, "a$b"}}},
		// operators
		{"=", []Token{{TokenEquals, "="}}},
		{"+", []Token{{TokenPlus, "+"}}},
		{"-", []Token{{TokenMinus, "-"}}},
		{"*", []Token{{TokenTimes, "*"}}},
		{"/", []Token{{TokenDivide, "/"}}},
		{"^", []Token{{TokenExponent, "^"}}},
		{"()", []Token{{TokenParenOpen, "("}, {TokenParenClose, ")"}}},
		{"++", []Token{{TokenPlus, "+"}, {TokenPlus, "+"}}},
		// mixed
		{"1+2", []Token{{TokenValue, "1"}, {TokenPlus, "+"}, {TokenValue, "2"}}},
		{"1 + 2", []Token{{TokenValue, "1"}, {TokenPlus, "+"}, {TokenValue, "2"}}},
		{"(x)", []Token{{TokenParenOpen, "("}, {TokenValue, "x"}, {TokenParenClose, ")"}}},
		{"a--b", []Token{{TokenValue, "a"}, {TokenMinus, "-"}, {TokenMinus, "-"}, {TokenValue, "b"}}},
		// the lexer does not validate numbers; '-' is always an operator
		{"1e-3", []Token{{TokenValue, "1e"}, {TokenMinus, "-"}, {TokenValue, "3"}}},
		{"x=y^2", []Token{{TokenValue, "x"}, {TokenEquals, "="}, {TokenValue, "y"}, {TokenExponent, "^"}, {TokenValue, "2"}}},
	}
	for _, c := range cases {
		got := Lex(c.src)
		if !reflect.DeepEqual(got, c.tokens) {
			t.Errorf("lexing %q: want %v, got %v", c.src, c.tokens, got)
		}
	}
}

func TestOpKinds(t *testing.T) {
	for i := 0; i < len(Operators); i++ {
		c := Operators[i]
		k := opKind(c)
		if k == TokenNone {
			t.Errorf("no token kind for operator %q", string(c))
			continue
		}
		toks := Lex(string(c))
		if len(toks) != 1 || toks[0].Kind != k {
			t.Errorf("lexing %q: want one %v token, got %v", string(c), k, toks)
		}
	}
	if k := opKind('a'); k != TokenNone {
		t.Errorf("non-operator byte lexed as %v", k)
	}
}
