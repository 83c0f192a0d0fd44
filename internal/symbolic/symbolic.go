// Package symbolic implements the exact symbolic kernel behind the
// derivation engine: rational numbers, symbols, sums, products, powers
// and elementary function calls, with differentiation, simplification,
// trigonometric simplification and plain/LaTeX rendering.
//
// The kernel favors exact display over numeric folding: log(2) stays
// log(2) rather than becoming a float. Construction functions simplify
// locally and preserve the declared order of sum terms and product
// factors, folding numeric constants into a single coefficient at the
// position of the first numeric argument. Domain errors, such as
// dividing by an exact zero, panic with a "symbolic:" prefixed message.
package symbolic

import (
	"math/big"
	"sort"
)

// Expr is a symbolic expression. The concrete forms are Num, Sym, Sum,
// Product, Power, Call, and the display-only Integral and Equation.
type Expr interface {
	String() string
	LaTeX() string
	isExpr()
}

// Operator precedence levels used for parenthesization.
const (
	precSum = iota + 1
	precProduct
	precPower
	precAtom
)

var (
	ratOne  = big.NewRat(1, 1)
	ratTwo  = big.NewRat(2, 1)
	ratHalf = big.NewRat(1, 2)
	bigOne  = big.NewInt(1)
)

// prec returns the display precedence of e. Negative and non-integer
// numbers get sum precedence so they are parenthesized inside products
// and exponents.
func prec(e Expr) int {
	switch t := e.(type) {
	case *Num:
		if t.val.Sign() < 0 || !t.val.IsInt() {
			return precSum
		}
		return precAtom
	case *Sym, *Call:
		return precAtom
	case *Sum:
		return precSum
	case *Product:
		return precProduct
	case *Power:
		return precPower
	default:
		return precSum
	}
}

func maybeParen(e Expr, min int) string {
	if prec(e) < min {
		return "(" + e.String() + ")"
	}
	return e.String()
}

func maybeParenLaTeX(e Expr, min int) string {
	if prec(e) < min {
		return `\left(` + e.LaTeX() + `\right)`
	}
	return e.LaTeX()
}

const maxSimplifyPasses = 8

// Simplify rewrites e through the simplifying constructors until a fixed
// point is reached.
func Simplify(e Expr) Expr {
	prev := e
	for i := 0; i < maxSimplifyPasses; i++ {
		next := simplifyNode(prev)
		if Equal(next, prev) {
			return next
		}
		prev = next
	}
	return prev
}

func simplifyNode(e Expr) Expr {
	switch t := e.(type) {
	case *Sum:
		terms := make([]Expr, len(t.terms))
		for i, x := range t.terms {
			terms[i] = simplifyNode(x)
		}
		return Add(terms...)
	case *Product:
		factors := make([]Expr, len(t.factors))
		for i, x := range t.factors {
			factors[i] = simplifyNode(x)
		}
		return Mul(factors...)
	case *Power:
		return Pow(simplifyNode(t.base), simplifyNode(t.exp))
	case *Call:
		return Fn(t.name, simplifyNode(t.arg))
	case *Integral:
		return IntegralOf(simplifyNode(t.integrand), t.variable)
	case *Equation:
		return EquationOf(simplifyNode(t.lhs), simplifyNode(t.rhs))
	default:
		return e
	}
}

// Equal reports structural equality. Two expressions built through the
// constructors from the same parts compare equal; no reordering of sum
// terms or product factors is attempted.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Num:
		y, ok := b.(*Num)
		return ok && x.val.Cmp(y.val) == 0
	case *Sym:
		y, ok := b.(*Sym)
		return ok && x.name == y.name
	case *Sum:
		y, ok := b.(*Sum)
		if !ok || len(x.terms) != len(y.terms) {
			return false
		}
		for i := range x.terms {
			if !Equal(x.terms[i], y.terms[i]) {
				return false
			}
		}
		return true
	case *Product:
		y, ok := b.(*Product)
		if !ok || len(x.factors) != len(y.factors) {
			return false
		}
		for i := range x.factors {
			if !Equal(x.factors[i], y.factors[i]) {
				return false
			}
		}
		return true
	case *Power:
		y, ok := b.(*Power)
		return ok && Equal(x.base, y.base) && Equal(x.exp, y.exp)
	case *Call:
		y, ok := b.(*Call)
		return ok && x.name == y.name && Equal(x.arg, y.arg)
	case *Integral:
		y, ok := b.(*Integral)
		return ok && x.variable == y.variable && Equal(x.integrand, y.integrand)
	case *Equation:
		y, ok := b.(*Equation)
		return ok && Equal(x.lhs, y.lhs) && Equal(x.rhs, y.rhs)
	default:
		return false
	}
}

// DependsOn reports whether e mentions the named variable.
func DependsOn(e Expr, variable string) bool {
	switch t := e.(type) {
	case *Num:
		return false
	case *Sym:
		return t.name == variable
	case *Sum:
		for _, x := range t.terms {
			if DependsOn(x, variable) {
				return true
			}
		}
		return false
	case *Product:
		for _, x := range t.factors {
			if DependsOn(x, variable) {
				return true
			}
		}
		return false
	case *Power:
		return DependsOn(t.base, variable) || DependsOn(t.exp, variable)
	case *Call:
		return DependsOn(t.arg, variable)
	case *Integral:
		return t.variable == variable || DependsOn(t.integrand, variable)
	case *Equation:
		return DependsOn(t.lhs, variable) || DependsOn(t.rhs, variable)
	default:
		return false
	}
}

// FreeSymbols lists the variable names occurring in e, sorted.
func FreeSymbols(e Expr) []string {
	set := map[string]struct{}{}
	collectSymbols(e, set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectSymbols(e Expr, set map[string]struct{}) {
	switch t := e.(type) {
	case *Sym:
		set[t.name] = struct{}{}
	case *Sum:
		for _, x := range t.terms {
			collectSymbols(x, set)
		}
	case *Product:
		for _, x := range t.factors {
			collectSymbols(x, set)
		}
	case *Power:
		collectSymbols(t.base, set)
		collectSymbols(t.exp, set)
	case *Call:
		collectSymbols(t.arg, set)
	case *Integral:
		set[t.variable] = struct{}{}
		collectSymbols(t.integrand, set)
	case *Equation:
		collectSymbols(t.lhs, set)
		collectSymbols(t.rhs, set)
	}
}

// Replace substitutes repl for every subexpression of e structurally
// equal to old.
func Replace(e, old, repl Expr) Expr {
	if Equal(e, old) {
		return repl
	}
	switch t := e.(type) {
	case *Sum:
		terms := make([]Expr, len(t.terms))
		for i, x := range t.terms {
			terms[i] = Replace(x, old, repl)
		}
		return Add(terms...)
	case *Product:
		factors := make([]Expr, len(t.factors))
		for i, x := range t.factors {
			factors[i] = Replace(x, old, repl)
		}
		return Mul(factors...)
	case *Power:
		return Pow(Replace(t.base, old, repl), Replace(t.exp, old, repl))
	case *Call:
		return Fn(t.name, Replace(t.arg, old, repl))
	case *Integral:
		return IntegralOf(Replace(t.integrand, old, repl), t.variable)
	case *Equation:
		return EquationOf(Replace(t.lhs, old, repl), Replace(t.rhs, old, repl))
	default:
		return e
	}
}

// Subst replaces every occurrence of the named variable in e with value.
func Subst(e Expr, variable string, value Expr) Expr {
	return Replace(e, S(variable), value)
}
