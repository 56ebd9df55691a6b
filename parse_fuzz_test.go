//go:build go1.18
// +build go1.18

package infix_test

import (
	"testing"

	"github.com/treeshape/infix"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("1^-2^3*4 + -5*6*-7")
	f.Add("(1+2)*3")
	f.Add("x = y ^ 2")
	f.Fuzz(func(t *testing.T, s string) {
		n, err := infix.Parse(s)
		if err != nil {
			if n != nil {
				t.Errorf("%q gave both a tree and an error: %v, %v", s, n, err)
			}
			return
		}
		// Anything that parses must survive a render/reparse round trip.
		r := infix.Infix(n)
		m, err := infix.Parse(r)
		if err != nil {
			t.Fatalf("%q rendered to %q which fails to parse: %v", s, r, err)
		}
		if !infix.Equal(n, m) {
			t.Errorf("%q -> %q round trip changed the tree:\n\t%v\n\t%v", s, r, infix.Sexpr(n), infix.Sexpr(m))
		}
	})
}
