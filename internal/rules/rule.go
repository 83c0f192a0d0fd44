// Package rules derives step-by-step integration rule trees. The Engine
// classifies an integrand into a closed set of tagged rule variants and
// reconstructs the antiderivative by interpreting that tree; every
// consumer dispatches over the variants with a single type switch.
package rules

import "github.com/deeklead/scribe/internal/algebra"

// Rule is a node in a derivation tree. Every variant embeds Problem, so
// the integrand and variable it was derived for are always available.
type Rule interface {
	// Context returns the integrand this rule integrates.
	Context() algebra.Expr
	// Symbol returns the variable of integration.
	Symbol() string
	isRule()
}

// Problem identifies what a rule integrates: the (sub-)integrand and
// the variable of integration.
type Problem struct {
	Integrand algebra.Expr
	Variable  string
}

// Context returns the integrand.
func (p Problem) Context() algebra.Expr { return p.Integrand }

// Symbol returns the variable of integration.
func (p Problem) Symbol() string { return p.Variable }

func (Problem) isRule() {}

// Constant integrates an expression that does not depend on the
// variable of integration.
type Constant struct {
	Problem
	Value algebra.Expr
}

// ConstantTimes integrates a two-factor product with exactly one
// constant factor by pulling the constant out.
type ConstantTimes struct {
	Problem
	Constant algebra.Expr
	Rest     algebra.Expr
	Substep  Rule
}

// Power integrates base^exponent where the base is the bare variable
// and the exponent is constant.
type Power struct {
	Problem
	Base     algebra.Expr
	Exponent algebra.Expr
}

// Add integrates a sum term by term, in declared order.
type Add struct {
	Problem
	Substeps []Rule
}

// Substitution integrates by a change of variable: SubVar stands for
// Inner, Rewritten is the integrand expressed in SubVar, and Substep
// derives Rewritten with respect to SubVar.
type Substitution struct {
	Problem
	Inner     algebra.Expr
	SubVar    string
	Rewritten algebra.Expr
	Substep   Rule
}

// Trig integrates an elementary trigonometric form such as sin(x).
type Trig struct {
	Problem
	Func     string
	Argument algebra.Expr
}

// Exp integrates an exponential form. A nil Base means the natural
// base, i.e. the integrand is exp(x); otherwise the integrand is
// Base^Exponent with a constant positive Base.
type Exp struct {
	Problem
	Base     algebra.Expr
	Exponent algebra.Expr
}

// Alternative collects several complete derivations of the same
// integrand, in discovery order. All methods are equivalent up to a
// constant.
type Alternative struct {
	Problem
	Methods []Rule
}

// Rewrite integrates by first rewriting the integrand algebraically.
type Rewrite struct {
	Problem
	Rewritten algebra.Expr
	Substep   Rule
}

// Unknown marks an integrand no technique matched.
type Unknown struct {
	Problem
}

// Tag returns a short stable name for the rule variant, used for
// history records and display.
func Tag(r Rule) string {
	switch r.(type) {
	case Constant:
		return "constant"
	case ConstantTimes:
		return "constant times"
	case Power:
		return "power"
	case Add:
		return "add"
	case Substitution:
		return "u-substitution"
	case Trig:
		return "trig"
	case Exp:
		return "exponential"
	case Alternative:
		return "alternative"
	case Rewrite:
		return "rewrite"
	case Unknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Complete reports whether the tree contains no Unknown node.
func Complete(r Rule) bool {
	switch t := r.(type) {
	case Unknown:
		return false
	case Add:
		for _, sub := range t.Substeps {
			if !Complete(sub) {
				return false
			}
		}
		return true
	case ConstantTimes:
		return Complete(t.Substep)
	case Substitution:
		return Complete(t.Substep)
	case Rewrite:
		return Complete(t.Substep)
	case Alternative:
		for _, m := range t.Methods {
			if !Complete(m) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
