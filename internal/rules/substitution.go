package rules

import "github.com/deeklead/scribe/internal/algebra"

// subtermFuncs are the function applications whose argument counts as
// a possible substitution site.
var subtermFuncs = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"asin": true, "acos": true, "atan": true,
	"exp": true, "log": true,
}

// FindSubstitutions scans the integrand for change-of-variable
// candidates: sub-terms whose derivative is a constant multiple of
// some top-level factor of the integrand. The scan goes two levels
// deep, testing each direct sub-term before its own sub-terms, and
// reports candidates in discovery order. Duplicates are allowed.
//
// This is a heuristic filter, not a search: it misses valid
// substitutions and its hits still need validation by the caller.
func FindSubstitutions(k algebra.Kernel, expr algebra.Expr, variable string) []algebra.Expr {
	factors := topFactors(k, expr)
	var out []algebra.Expr
	for _, sub := range possibleSubterms(k, expr, variable) {
		if isCandidate(k, sub, factors, variable) {
			out = append(out, sub)
		}
		for _, inner := range possibleSubterms(k, sub, variable) {
			if isCandidate(k, inner, factors, variable) {
				out = append(out, inner)
			}
		}
	}
	return out
}

// topFactors returns the integrand's top-level factors: the factor
// list of a product, otherwise the expression itself.
func topFactors(k algebra.Kernel, expr algebra.Expr) []algebra.Expr {
	shape := k.Shape(expr)
	if shape.Kind == algebra.KindProduct {
		return shape.Args
	}
	return []algebra.Expr{expr}
}

// possibleSubterms enumerates the one-level substitution sites of an
// expression: the factors of a product, the argument of a standard
// transcendental call, the base of a power with constant exponent or
// the exponent of a power with constant base. Other shapes have none.
func possibleSubterms(k algebra.Kernel, expr algebra.Expr, variable string) []algebra.Expr {
	shape := k.Shape(expr)
	switch shape.Kind {
	case algebra.KindCall:
		if subtermFuncs[shape.Name] {
			return shape.Args
		}
	case algebra.KindProduct:
		return shape.Args
	case algebra.KindPower:
		base, exp := shape.Args[0], shape.Args[1]
		if k.IsConstant(exp, variable) {
			return []algebra.Expr{base}
		}
		if k.IsConstant(base, variable) {
			return []algebra.Expr{exp}
		}
	}
	return nil
}

// isCandidate applies the sub-term test: the term is neither the bare
// variable nor constant, and dividing its derivative by some top-level
// factor leaves a quotient free of the variable after simplification
// and trigonometric normalization.
func isCandidate(k algebra.Kernel, term algebra.Expr, factors []algebra.Expr, variable string) bool {
	shape := k.Shape(term)
	if shape.Kind == algebra.KindSymbol && shape.Name == variable {
		return false
	}
	if k.IsConstant(term, variable) {
		return false
	}
	dt := k.Diff(term, variable)
	for _, f := range factors {
		ratio := k.TrigSimplify(k.Div(dt, f))
		if k.IsConstant(ratio, variable) {
			return true
		}
	}
	return false
}
