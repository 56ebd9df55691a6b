package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/treeshape/infix"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		tree  bool
		prec  int
		given []string
	)
	cmd := &cobra.Command{
		Use:   "infix [expression ...]",
		Short: "Parse and evaluate infix arithmetic expressions",
		Long: `Parse and evaluate infix arithmetic expressions.

Expressions are read from the arguments, or from stdin one per line when no
arguments are given. Assignments ("x = 2^10") bind variables for later
expressions in the same run.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if prec < 0 {
				return fmt.Errorf("precision (%d) must be positive", prec)
			}
			env := infix.NewEnv(uint(prec))
			for _, d := range given {
				name, val, ok := strings.Cut(d, "=")
				if !ok {
					return fmt.Errorf(`variable definitions must be "name=value", not %q`, d)
				}
				name = strings.TrimSpace(name)
				r, err := infix.EvalString(val, env)
				if err != nil {
					return fmt.Errorf("setting %s: %w", name, err)
				}
				env.Set(name, r)
			}
			run := func(src string) error {
				ast, err := infix.Parse(src)
				if err != nil {
					return err
				}
				if tree {
					fmt.Fprintf(cmd.OutOrStdout(), "%s : ", infix.Sexpr(ast))
				}
				r, err := env.Eval(ast)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			}
			if len(args) > 0 {
				for _, a := range args {
					if err := run(a); err != nil {
						return err
					}
				}
				return nil
			}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				if err := run(line); err != nil {
					// Report and keep reading; a bad line shouldn't end the
					// session.
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			}
			return sc.Err()
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "print the parse tree of each expression")
	cmd.Flags().IntVarP(&prec, "prec", "p", 64, "precision of calculations in bits")
	cmd.Flags().StringArrayVar(&given, "given", nil, `name=value variable definition (repeatable)`)
	return cmd
}
