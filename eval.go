package infix

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Env holds variable bindings and the working precision for evaluating
// expression trees. It is not safe to use an Env concurrently.
type Env struct {
	vars map[string]*big.Float
	// nums caches parsed value literals. A present nil entry records that the
	// text is not a number and should be treated as a variable name.
	nums map[string]*big.Float
	prec uint
}

// NewEnv creates an evaluation environment computing to prec bits. If prec is
// zero, the default is 64.
func NewEnv(prec uint) *Env {
	if prec == 0 {
		prec = 64
	}
	return &Env{
		vars: make(map[string]*big.Float),
		nums: make(map[string]*big.Float),
		prec: prec,
	}
}

// Set sets the value of a variable. The value is copied at the Env's
// precision. Returns e for chaining.
func (e *Env) Set(name string, value *big.Float) *Env {
	e.vars[name] = new(big.Float).SetPrec(e.prec).Set(value)
	return e
}

// Lookup returns a copy of the value of a variable, or nil if the variable is
// unbound.
func (e *Env) Lookup(name string) *big.Float {
	v := e.vars[name]
	if v == nil {
		return nil
	}
	return new(big.Float).Copy(v)
}

// Prec returns the precision to which values are computed in the environment.
func (e *Env) Prec() uint {
	return e.prec
}

// num parses a possibly cached number from a value token's text. The result
// is nil if the text is not a number.
func (e *Env) num(s string) *big.Float {
	if r, ok := e.nums[s]; ok {
		return r
	}
	r, _, err := new(big.Float).SetPrec(e.prec).Parse(s, 0)
	if err != nil {
		r = nil
	}
	e.nums[s] = r
	return r
}

// Eval evaluates an expression tree and returns the result. Every evaluation
// returns a fresh value; the tree and the Env's bindings are not modified
// except by assignment nodes.
func (e *Env) Eval(n Node) (r *big.Float, err error) {
	// big.Float arithmetic panics with ErrNaN on operations like Inf-Inf.
	// Surface those as ordinary errors.
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		nan, ok := p.(big.ErrNaN)
		if !ok {
			panic(p)
		}
		r, err = nil, nan
	}()
	return e.eval(n)
}

func (e *Env) eval(n Node) (*big.Float, error) {
	switch n := n.(type) {
	case *Value:
		if v := e.num(n.Tok.Text); v != nil {
			return new(big.Float).SetPrec(e.prec).Set(v), nil
		}
		if v := e.Lookup(n.Tok.Text); v != nil {
			return v, nil
		}
		return nil, &NameError{Name: n.Tok.Text}
	case *UnaryOp:
		v, err := e.eval(n.Child)
		if err != nil {
			return nil, err
		}
		return v.Neg(v), nil
	case *BinaryOp:
		if n.Op.Kind == TokenEquals {
			return e.assign(n)
		}
		l, err := e.eval(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := e.eval(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Op.Kind {
		case TokenPlus:
			return l.Add(l, r), nil
		case TokenMinus:
			return l.Sub(l, r), nil
		case TokenTimes:
			return l.Mul(l, r), nil
		case TokenDivide:
			// Guard against invalid divisions, 0/0 or inf/inf.
			if l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf() {
				return nil, &DomainError{X: r, Op: "/"}
			}
			return l.Quo(l, r), nil
		case TokenExponent:
			// Guard against invalid exponentiations, i.e. negative base.
			if l.Signbit() {
				return nil, &DomainError{X: l, Op: "^"}
			}
			return bigfloat.Pow(l, l, r), nil
		default:
			panic("infix: invalid binary operator " + n.Op.String())
		}
	default:
		panic("infix: invalid AST node")
	}
}

// assign evaluates an "=" node: the left side must be a bare non-numeric
// value, whose binding is set to the right side's result.
func (e *Env) assign(n *BinaryOp) (*big.Float, error) {
	name, ok := n.Left.(*Value)
	if !ok || e.num(name.Tok.Text) != nil {
		return nil, &AssignError{Target: Infix(n.Left)}
	}
	v, err := e.eval(n.Right)
	if err != nil {
		return nil, err
	}
	e.Set(name.Tok.Text, v)
	return v, nil
}

// EvalString is a shortcut to parse and evaluate a string expression. A nil
// env evaluates in a fresh environment at the default precision.
func EvalString(src string, env *Env) (*big.Float, error) {
	n, err := Parse(src)
	if err != nil {
		return nil, err
	}
	if env == nil {
		env = NewEnv(0)
	}
	return env.Eval(n)
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// DomainError is an error returned when an operator is applied to arguments
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Op is the operator symbol.
	Op string
}

func (err *DomainError) Error() string {
	return err.X.String() + " outside domain of " + err.Op
}

// AssignError is an error from an assignment whose left side is not a bare
// variable name.
type AssignError struct {
	// Target is the rendering of the left side.
	Target string
}

func (err *AssignError) Error() string {
	return "cannot assign to " + err.Target
}
