package symbolic

import (
	"fmt"

	"github.com/deeklead/scribe/internal/algebra"
)

// Kernel adapts this package to the algebra.Kernel contract. The zero
// value is ready to use. It only operates on expressions it built
// itself; handing it a foreign algebra.Expr panics.
type Kernel struct{}

// NewKernel returns a ready-to-use kernel.
func NewKernel() Kernel {
	return Kernel{}
}

func conv(e algebra.Expr) Expr {
	s, ok := e.(Expr)
	if !ok {
		panic(fmt.Sprintf("symbolic: foreign expression %T", e))
	}
	return s
}

func convAll(es []algebra.Expr) []Expr {
	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = conv(e)
	}
	return out
}

func wrapAll(es []Expr) []algebra.Expr {
	out := make([]algebra.Expr, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// Shape exposes the top-level structure of e.
func (Kernel) Shape(e algebra.Expr) algebra.Shape {
	switch t := conv(e).(type) {
	case *Num:
		return algebra.Shape{Kind: algebra.KindNumber, Value: t.Rat()}
	case *Sym:
		return algebra.Shape{Kind: algebra.KindSymbol, Name: t.name}
	case *Sum:
		return algebra.Shape{Kind: algebra.KindSum, Args: wrapAll(t.terms)}
	case *Product:
		return algebra.Shape{Kind: algebra.KindProduct, Args: wrapAll(t.factors)}
	case *Power:
		return algebra.Shape{Kind: algebra.KindPower, Args: []algebra.Expr{t.base, t.exp}}
	case *Call:
		return algebra.Shape{Kind: algebra.KindCall, Name: t.name, Args: []algebra.Expr{t.arg}}
	default:
		return algebra.Shape{Kind: algebra.KindOther}
	}
}

// IsConstant reports whether e does not depend on variable.
func (Kernel) IsConstant(e algebra.Expr, variable string) bool {
	return !DependsOn(conv(e), variable)
}

// Diff differentiates e with respect to variable.
func (Kernel) Diff(e algebra.Expr, variable string) algebra.Expr {
	return Diff(conv(e), variable)
}

// Simplify rewrites e to a fixed point of the simplifying constructors.
func (Kernel) Simplify(e algebra.Expr) algebra.Expr {
	return Simplify(conv(e))
}

// TrigSimplify applies Pythagorean collapses on top of Simplify.
func (Kernel) TrigSimplify(e algebra.Expr) algebra.Expr {
	return TrigSimplify(conv(e))
}

// Equal reports structural equality.
func (Kernel) Equal(a, b algebra.Expr) bool {
	return Equal(conv(a), conv(b))
}

// Int returns the integer constant n.
func (Kernel) Int(n int64) algebra.Expr { return N(n) }

// Sym returns the named variable.
func (Kernel) Sym(name string) algebra.Expr { return S(name) }

// Add builds the sum of terms.
func (Kernel) Add(terms ...algebra.Expr) algebra.Expr {
	return Add(convAll(terms)...)
}

// Mul builds the product of factors.
func (Kernel) Mul(factors ...algebra.Expr) algebra.Expr {
	return Mul(convAll(factors)...)
}

// Pow builds base^exp.
func (Kernel) Pow(base, exp algebra.Expr) algebra.Expr {
	return Pow(conv(base), conv(exp))
}

// Div builds num/den. An exact zero denominator panics.
func (Kernel) Div(num, den algebra.Expr) algebra.Expr {
	return Mul(conv(num), Pow(conv(den), N(-1)))
}

// Call builds the function application name(arg).
func (Kernel) Call(name string, arg algebra.Expr) algebra.Expr {
	return Fn(name, conv(arg))
}

// Subst replaces the named variable in e with value.
func (Kernel) Subst(e algebra.Expr, variable string, value algebra.Expr) algebra.Expr {
	return Subst(conv(e), variable, conv(value))
}

// Replace substitutes new for every subexpression equal to old.
func (Kernel) Replace(e algebra.Expr, old, repl algebra.Expr) algebra.Expr {
	return Replace(conv(e), conv(old), conv(repl))
}

// FreeSymbols lists the variable names occurring in e, sorted.
func (Kernel) FreeSymbols(e algebra.Expr) []string {
	return FreeSymbols(conv(e))
}

// Integral builds the unevaluated integral display form.
func (Kernel) Integral(integrand algebra.Expr, variable string) algebra.Expr {
	return IntegralOf(conv(integrand), variable)
}

// Eq builds the equation display form lhs = rhs.
func (Kernel) Eq(lhs, rhs algebra.Expr) algebra.Expr {
	return EquationOf(conv(lhs), conv(rhs))
}
