package rules

import "github.com/deeklead/scribe/internal/algebra"

// DefaultMaxDepth bounds rule-tree recursion. Integrands nested deeper
// than this become Unknown instead of overflowing the stack.
const DefaultMaxDepth = 64

// Engine derives integration rule trees over a symbolic kernel.
type Engine struct {
	kernel algebra.Kernel

	// MaxDepth bounds recursion depth; beyond it everything is Unknown.
	MaxDepth int
	// Extended enables the technique matchers beyond the core cascade:
	// trig, exponential, u-substitution and trig rewriting. They are
	// consulted only for shapes the core cascade cannot finish.
	Extended bool
}

// NewEngine returns an engine with the core technique set and the
// default depth bound.
func NewEngine(kernel algebra.Kernel) *Engine {
	return &Engine{kernel: kernel, MaxDepth: DefaultMaxDepth}
}

// Kernel returns the kernel the engine derives over.
func (e *Engine) Kernel() algebra.Kernel { return e.kernel }

// Derive classifies the integrand into a rule tree. It is total: it
// never fails, and shapes no technique matches come back as Unknown.
func (e *Engine) Derive(integrand algebra.Expr, variable string) Rule {
	return e.derive(integrand, variable, 0)
}

func (e *Engine) derive(expr algebra.Expr, variable string, depth int) Rule {
	if depth > e.MaxDepth {
		return Unknown{Problem: Problem{Integrand: expr, Variable: variable}}
	}
	r := e.deriveCore(expr, variable, depth)
	if e.Extended && !Complete(r) {
		if ext, ok := e.deriveExtended(expr, variable, depth); ok {
			return ext
		}
	}
	return r
}

// deriveCore is the fixed-priority cascade: constant, bare variable,
// constant-exponent power of the bare variable, sum, two-factor product
// with exactly one constant factor. The first match wins; products
// wider than two factors deliberately fall through.
func (e *Engine) deriveCore(expr algebra.Expr, variable string, depth int) Rule {
	k := e.kernel
	p := Problem{Integrand: expr, Variable: variable}

	if k.IsConstant(expr, variable) {
		return Constant{Problem: p, Value: expr}
	}

	shape := k.Shape(expr)
	switch shape.Kind {
	case algebra.KindSymbol:
		if shape.Name == variable {
			return Power{Problem: p, Base: expr, Exponent: k.Int(1)}
		}
	case algebra.KindPower:
		base, exp := shape.Args[0], shape.Args[1]
		if k.IsConstant(exp, variable) && e.isBareVariable(base, variable) {
			return Power{Problem: p, Base: base, Exponent: exp}
		}
	case algebra.KindSum:
		subs := make([]Rule, len(shape.Args))
		for i, term := range shape.Args {
			subs[i] = e.derive(term, variable, depth+1)
		}
		return Add{Problem: p, Substeps: subs}
	case algebra.KindProduct:
		if len(shape.Args) != 2 {
			break
		}
		first, second := shape.Args[0], shape.Args[1]
		if k.IsConstant(first, variable) {
			return ConstantTimes{
				Problem:  p,
				Constant: first,
				Rest:     second,
				Substep:  e.derive(second, variable, depth+1),
			}
		}
		if k.IsConstant(second, variable) {
			return ConstantTimes{
				Problem:  p,
				Constant: second,
				Rest:     first,
				Substep:  e.derive(first, variable, depth+1),
			}
		}
	}
	return Unknown{Problem: p}
}

func (e *Engine) isBareVariable(expr algebra.Expr, variable string) bool {
	s := e.kernel.Shape(expr)
	return s.Kind == algebra.KindSymbol && s.Name == variable
}

// Evaluate reconstructs the antiderivative described by the rule tree,
// bottom-up. The second result is false when the tree has no closed
// form, which includes every Unknown node.
//
// The power rule applies its formula unconditionally: an exponent of
// -1 divides by an exact zero and panics in the kernel. Callers that
// cannot exclude that case recover it into a no-closed-form outcome.
func (e *Engine) Evaluate(r Rule) (algebra.Expr, bool) {
	k := e.kernel
	switch t := r.(type) {
	case Constant:
		return k.Mul(t.Value, k.Sym(t.Variable)), true
	case Power:
		up := k.Add(t.Exponent, k.Int(1))
		return k.Div(k.Pow(t.Base, up), up), true
	case Add:
		terms := make([]algebra.Expr, len(t.Substeps))
		for i, sub := range t.Substeps {
			v, ok := e.Evaluate(sub)
			if !ok {
				return nil, false
			}
			terms[i] = v
		}
		return k.Add(terms...), true
	case ConstantTimes:
		v, ok := e.Evaluate(t.Substep)
		if !ok {
			return nil, false
		}
		return k.Mul(t.Constant, v), true
	case Trig:
		switch t.Func {
		case "sin":
			return k.Mul(k.Int(-1), k.Call("cos", t.Argument)), true
		case "cos":
			return k.Call("sin", t.Argument), true
		}
		return nil, false
	case Exp:
		if t.Base == nil {
			return t.Integrand, true
		}
		return k.Div(t.Integrand, k.Call("log", t.Base)), true
	case Substitution:
		v, ok := e.Evaluate(t.Substep)
		if !ok {
			return nil, false
		}
		return k.Subst(v, t.SubVar, t.Inner), true
	case Rewrite:
		return e.Evaluate(t.Substep)
	case Alternative:
		if len(t.Methods) == 0 {
			return nil, false
		}
		return e.Evaluate(t.Methods[0])
	default:
		return nil, false
	}
}
