package infix_test

import (
	"fmt"

	"github.com/treeshape/infix"
)

func ExampleParse() {
	n, err := infix.Parse("1 + 2*3 ^ -x")
	if err != nil {
		panic(err)
	}
	fmt.Println(infix.Sexpr(n))
	fmt.Println(infix.Infix(n))
	// Output:
	// (+ 1 (* 2 (^ 3 (- x))))
	// (1+(2*(3^(-x))))
}

func ExampleEvalString() {
	env := infix.NewEnv(0)
	if _, err := infix.EvalString("x = 2^10", env); err != nil {
		panic(err)
	}
	r, err := infix.EvalString("x/4 + 1", env)
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output:
	// 257
}
