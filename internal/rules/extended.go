package rules

import (
	"fmt"
	"math/big"

	"github.com/deeklead/scribe/internal/algebra"
)

// freshNames is the preference order for the substitution variable.
var freshNames = []string{"u", "w", "v", "t"}

// deriveExtended tries the technique matchers beyond the core cascade,
// in a fixed order. Each matcher either claims the shape or passes.
func (e *Engine) deriveExtended(expr algebra.Expr, variable string, depth int) (Rule, bool) {
	if r, ok := e.matchTrig(expr, variable); ok {
		return r, true
	}
	if r, ok := e.matchExp(expr, variable); ok {
		return r, true
	}
	if r, ok := e.matchSubstitution(expr, variable, depth); ok {
		return r, true
	}
	if r, ok := e.matchTrigRewrite(expr, variable, depth); ok {
		return r, true
	}
	return nil, false
}

// matchTrig claims sin and cos applied to the bare variable. Other
// trig functions have no elementary rule here and stay unmatched.
func (e *Engine) matchTrig(expr algebra.Expr, variable string) (Rule, bool) {
	shape := e.kernel.Shape(expr)
	if shape.Kind != algebra.KindCall {
		return nil, false
	}
	if shape.Name != "sin" && shape.Name != "cos" {
		return nil, false
	}
	if !e.isBareVariable(shape.Args[0], variable) {
		return nil, false
	}
	return Trig{
		Problem:  Problem{Integrand: expr, Variable: variable},
		Func:     shape.Name,
		Argument: shape.Args[0],
	}, true
}

// matchExp claims exp(x) and a^x for a positive numeric constant a.
func (e *Engine) matchExp(expr algebra.Expr, variable string) (Rule, bool) {
	k := e.kernel
	p := Problem{Integrand: expr, Variable: variable}
	shape := k.Shape(expr)
	switch shape.Kind {
	case algebra.KindCall:
		if shape.Name == "exp" && e.isBareVariable(shape.Args[0], variable) {
			return Exp{Problem: p, Exponent: shape.Args[0]}, true
		}
	case algebra.KindPower:
		base, exp := shape.Args[0], shape.Args[1]
		if !e.isBareVariable(exp, variable) {
			break
		}
		bs := k.Shape(base)
		if bs.Kind != algebra.KindNumber || bs.Value == nil || bs.Value.Sign() <= 0 {
			break
		}
		return Exp{Problem: p, Base: base, Exponent: exp}, true
	}
	return nil, false
}

// matchSubstitution runs the candidate finder and keeps every distinct
// candidate whose substituted problem derives to a complete tree. One
// survivor is a substitution rule; several become an Alternative in
// discovery order.
func (e *Engine) matchSubstitution(expr algebra.Expr, variable string, depth int) (Rule, bool) {
	k := e.kernel
	candidates := FindSubstitutions(k, expr, variable)
	if len(candidates) == 0 {
		return nil, false
	}
	p := Problem{Integrand: expr, Variable: variable}
	subVar := freshVariable(k, expr, variable)
	seen := make(map[string]bool, len(candidates))
	var methods []Rule
	for _, inner := range candidates {
		key := inner.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		r, ok := e.substitutionRule(p, inner, subVar, depth)
		if !ok {
			continue
		}
		methods = append(methods, r)
	}
	switch len(methods) {
	case 0:
		return nil, false
	case 1:
		return methods[0], true
	}
	return Alternative{Problem: p, Methods: methods}, true
}

// substitutionRule attempts the change of variable subVar = inner.
// The integrand is divided by the candidate's derivative and the
// candidate is replaced by the new variable; the attempt succeeds only
// if the variable of integration cancels entirely, the residual
// problem derives to a complete tree, and that tree holds no power
// with exponent -1 (which the evaluator cannot integrate).
func (e *Engine) substitutionRule(p Problem, inner algebra.Expr, subVar string, depth int) (Rule, bool) {
	k := e.kernel
	quotient := k.Simplify(k.Div(p.Integrand, k.Diff(inner, p.Variable)))
	rewritten := k.Simplify(k.Replace(quotient, inner, k.Sym(subVar)))
	if !k.IsConstant(rewritten, p.Variable) {
		return nil, false
	}
	substep := e.derive(rewritten, subVar, depth+1)
	if !Complete(substep) {
		return nil, false
	}
	if e.hasDegeneratePower(substep) {
		return nil, false
	}
	return Substitution{
		Problem:   p,
		Inner:     inner,
		SubVar:    subVar,
		Rewritten: rewritten,
		Substep:   substep,
	}, true
}

// matchTrigRewrite claims integrands that trigonometric normalization
// changes into a shape some technique handles completely.
func (e *Engine) matchTrigRewrite(expr algebra.Expr, variable string, depth int) (Rule, bool) {
	k := e.kernel
	rewritten := k.TrigSimplify(expr)
	if k.Equal(rewritten, expr) {
		return nil, false
	}
	substep := e.derive(rewritten, variable, depth+1)
	if !Complete(substep) {
		return nil, false
	}
	return Rewrite{
		Problem:   Problem{Integrand: expr, Variable: variable},
		Rewritten: rewritten,
		Substep:   substep,
	}, true
}

var minusOne = big.NewRat(-1, 1)

// hasDegeneratePower reports whether any power rule in the tree has
// exponent -1. Its evaluation would divide by an exact zero.
func (e *Engine) hasDegeneratePower(r Rule) bool {
	switch t := r.(type) {
	case Power:
		s := e.kernel.Shape(t.Exponent)
		return s.Kind == algebra.KindNumber && s.Value != nil && s.Value.Cmp(minusOne) == 0
	case Add:
		for _, sub := range t.Substeps {
			if e.hasDegeneratePower(sub) {
				return true
			}
		}
	case ConstantTimes:
		return e.hasDegeneratePower(t.Substep)
	case Substitution:
		return e.hasDegeneratePower(t.Substep)
	case Rewrite:
		return e.hasDegeneratePower(t.Substep)
	case Alternative:
		for _, m := range t.Methods {
			if e.hasDegeneratePower(m) {
				return true
			}
		}
	}
	return false
}

// freshVariable picks the first preferred name not already used by the
// problem, falling back to numbered names.
func freshVariable(k algebra.Kernel, expr algebra.Expr, variable string) string {
	used := map[string]bool{variable: true}
	for _, s := range k.FreeSymbols(expr) {
		used[s] = true
	}
	for _, name := range freshNames {
		if !used[name] {
			return name
		}
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("u%d", i)
		if !used[name] {
			return name
		}
	}
}
