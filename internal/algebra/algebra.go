// Package algebra defines the capability surface the derivation engine
// requires from a symbolic kernel. The engine, evaluator, printer and
// substitution finder are written against these interfaces only; any
// kernel that satisfies them can drive the system.
package algebra

import "math/big"

// Expr is an opaque symbolic expression. The engine never inspects an
// expression directly; it goes through Kernel.Shape.
type Expr interface {
	// String renders the expression in plain infix notation.
	String() string
	// LaTeX renders the expression as LaTeX markup.
	LaTeX() string
}

// Kind classifies the top-level form of an expression.
type Kind int

const (
	// KindNumber is an exact numeric constant.
	KindNumber Kind = iota
	// KindSymbol is a bare variable.
	KindSymbol
	// KindSum is an n-ary sum.
	KindSum
	// KindProduct is an n-ary product.
	KindProduct
	// KindPower is base^exponent.
	KindPower
	// KindCall is a unary function application such as sin(x).
	KindCall
	// KindOther is any form the kernel does not expose structurally.
	KindOther
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindSum:
		return "sum"
	case KindProduct:
		return "product"
	case KindPower:
		return "power"
	case KindCall:
		return "call"
	default:
		return "other"
	}
}

// Shape is the one-level structural view of an expression.
//
// Args holds immediate children in source order: the terms of a sum, the
// factors of a product, base then exponent for a power, the single
// argument of a call. Name is the symbol name for KindSymbol and the
// function name for KindCall. Value is the exact value for KindNumber.
type Shape struct {
	Kind  Kind
	Args  []Expr
	Name  string
	Value *big.Rat
}

// Kernel is the narrow contract a symbolic kernel fulfills.
//
// Construction methods simplify locally, so Add(x, 0) may return x
// rather than a two-term sum. Div with an exact zero denominator is a
// programming error and may panic; callers that cannot rule it out are
// expected to exclude the case upstream or recover.
type Kernel interface {
	// Shape exposes the top-level structure of e.
	Shape(e Expr) Shape
	// IsConstant reports whether e does not depend on variable.
	IsConstant(e Expr, variable string) bool
	// Diff differentiates e with respect to variable.
	Diff(e Expr, variable string) Expr
	// Simplify rewrites e to a simpler structurally canonical form.
	Simplify(e Expr) Expr
	// TrigSimplify applies trigonometric identities such as
	// sin^2 + cos^2 = 1 on top of Simplify.
	TrigSimplify(e Expr) Expr
	// Equal reports structural equality of two simplified expressions.
	Equal(a, b Expr) bool

	Int(n int64) Expr
	Sym(name string) Expr
	Add(terms ...Expr) Expr
	Mul(factors ...Expr) Expr
	Pow(base, exp Expr) Expr
	Div(num, den Expr) Expr
	Call(name string, arg Expr) Expr

	// Subst replaces every occurrence of the named variable in e.
	Subst(e Expr, variable string, value Expr) Expr
	// Replace substitutes repl for every subexpression of e that is
	// structurally equal to old.
	Replace(e Expr, old, repl Expr) Expr
	// FreeSymbols lists the variable names occurring in e, sorted.
	FreeSymbols(e Expr) []string

	// Integral builds the unevaluated integral display form
	// of integrand with respect to variable.
	Integral(integrand Expr, variable string) Expr
	// Eq builds the equation display form lhs = rhs.
	Eq(lhs, rhs Expr) Expr
}
