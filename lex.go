package infix

import (
	"strconv"
	"strings"
)

// Token is a classified lexical unit: a single operator symbol or an opaque
// value literal. Tokens are immutable once produced.
type Token struct {
	Kind TokenKind
	// Text is the exact lexeme. For operators it is the single symbol; for
	// values it is the literal run of characters.
	Text string
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text
}

// describe renders a token for error messages.
func (t Token) describe() string {
	switch t.Kind {
	case TokenValue:
		return "value " + strconv.Quote(t.Text)
	case TokenEOF:
		return "end of input"
	default:
		return strconv.Quote(t.Text)
	}
}

// TokenKind identifies the category of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenValue is any maximal run of non-whitespace, non-operator
	// characters. The lexer does not validate numeric syntax.
	TokenValue
	TokenEquals
	TokenPlus
	TokenMinus
	TokenTimes
	TokenDivide
	TokenExponent
	TokenParenOpen
	TokenParenClose
	// TokenEOF marks the end of the input.
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "none"
	case TokenValue:
		return "value"
	case TokenEquals:
		return `"="`
	case TokenPlus:
		return `"+"`
	case TokenMinus:
		return `"-"`
	case TokenTimes:
		return `"*"`
	case TokenDivide:
		return `"/"`
	case TokenExponent:
		return `"^"`
	case TokenParenOpen:
		return `"("`
	case TokenParenClose:
		return `")"`
	case TokenEOF:
		return "end of input"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the characters which are considered to be operators.
const Operators = "=+-*/^()"

func opKind(c byte) TokenKind {
	switch c {
	case '=':
		return TokenEquals
	case '+':
		return TokenPlus
	case '-':
		return TokenMinus
	case '*':
		return TokenTimes
	case '/':
		return TokenDivide
	case '^':
		return TokenExponent
	case '(':
		return TokenParenOpen
	case ')':
		return TokenParenClose
	default:
		return TokenNone
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Lex splits src into tokens. Whitespace separates tokens and is otherwise
// ignored; each character in Operators becomes its own token; any other
// maximal run of characters becomes one value token verbatim. Lexing cannot
// fail, and empty input yields no tokens. Operator matching is byte-wise, so
// multibyte runes pass through inside value tokens untouched.
func Lex(src string) []Token {
	var toks []Token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case isSpace(c):
			i++
		case strings.IndexByte(Operators, c) >= 0:
			toks = append(toks, Token{Kind: opKind(c), Text: src[i : i+1]})
			i++
		default:
			j := i + 1
			for j < len(src) && !isSpace(src[j]) && strings.IndexByte(Operators, src[j]) < 0 {
				j++
			}
			toks = append(toks, Token{Kind: TokenValue, Text: src[i:j]})
			i = j
		}
	}
	return toks
}
