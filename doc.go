// Package infix parses infix arithmetic expressions into abstract syntax
// trees using precedence climbing.
//
// The grammar has one kind of value token and a fixed set of single-character
// operators. Anything that isn't whitespace or an operator is a value, so
// "x + 2.5" and "apple + π" are equally valid inputs; the parser assigns no
// meaning to value text. Operator precedence and associativity live in two
// small tables, with exponentiation binding right and everything else binding
// left.
//
// Parse is a pure function of its input: every call lexes into its own token
// sequence and cursor, so concurrent parses need no synchronization.
//
// Evaluation of parsed trees over big.Float values, with variables and
// assignment, is provided separately by Env.
package infix
