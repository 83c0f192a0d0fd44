package steps

import (
	"fmt"

	"github.com/deeklead/scribe/internal/algebra"
	"github.com/deeklead/scribe/internal/document"
	"github.com/deeklead/scribe/internal/rules"
)

// Printer walks a rule tree in the order the engine built it and
// renders one prose-plus-math explanation per node into a Document.
// The nesting level is threaded through the walk as a parameter; no
// walk state survives between nodes.
type Printer struct {
	engine *rules.Engine
	kernel algebra.Kernel
}

// NewPrinter returns a printer rendering through the engine's kernel.
func NewPrinter(engine *rules.Engine) *Printer {
	return &Printer{engine: engine, kernel: engine.Kernel()}
}

// Print renders the whole tree and the closing steps: an optional
// simplification and the constant of integration.
func (p *Printer) Print(r rules.Rule) document.Document {
	b := document.NewBuilder()
	p.printRule(b, r, 0)
	p.finalize(b, r)
	return b.Document()
}

func (p *Printer) printRule(b *document.Builder, r rules.Rule, level int) {
	k := p.kernel
	switch t := r.(type) {
	case rules.Constant:
		b.Text(level, "The integral of a constant is the constant times the variable of integration:")
		b.Math(level, p.ruleEquation(t))

	case rules.ConstantTimes:
		b.Text(level, "The integral of a constant times a function is the constant times the integral of that function:")
		pulled := k.Mul(t.Constant, k.Integral(t.Rest, t.Variable))
		b.Math(level, k.Eq(k.Integral(t.Integrand, t.Variable), pulled))
		p.printRule(b, t.Substep, level+1)
		b.Text(level, "So, the result is:")
		b.Math(level, p.answer(t))

	case rules.Power:
		b.Textf(level, "The integral of %s^n is %s^(n+1)/(n+1):", t.Variable, t.Variable)
		b.Math(level, p.ruleEquation(t))

	case rules.Add:
		b.Text(level, "Integrate term-by-term:")
		for _, sub := range t.Substeps {
			p.printRule(b, sub, level+1)
		}
		b.Text(level, "The result is:")
		b.Math(level, p.answer(t))

	case rules.Trig:
		switch t.Func {
		case "sin":
			b.Textf(level, "The integral of sin(%s) is -cos(%s):", t.Variable, t.Variable)
		case "cos":
			b.Textf(level, "The integral of cos(%s) is sin(%s):", t.Variable, t.Variable)
		}
		b.Math(level, p.ruleEquation(t))

	case rules.Exp:
		if t.Base == nil {
			b.Text(level, "The integral of the exponential function is itself:")
		} else {
			b.Text(level, "The integral of an exponential function is itself divided by the log of its base:")
		}
		b.Math(level, p.ruleEquation(t))

	case rules.Substitution:
		du := k.Simplify(k.Diff(t.Inner, t.Variable))
		b.Textf(level, "Let %s = %s. Then d%s = (%s) d%s, so the integrand becomes:",
			t.SubVar, t.Inner, t.SubVar, du, t.Variable)
		b.Math(level, k.Integral(t.Rewritten, t.SubVar))
		p.printRule(b, t.Substep, level+1)
		b.Textf(level, "Now substitute %s back in:", t.SubVar)
		b.Math(level, p.answer(t))

	case rules.Rewrite:
		b.Text(level, "Rewrite the integrand:")
		b.Math(level, t.Rewritten)
		p.printRule(b, t.Substep, level+1)

	case rules.Alternative:
		b.Text(level, "There are multiple ways to do this integral.")
		for i, method := range t.Methods {
			b.Group(level, fmt.Sprintf("Method #%d", i+1), func(g *document.Builder) {
				p.printRule(g, method, level+1)
			})
		}

	case rules.Unknown:
		b.Text(level, "Don't know the steps in finding this integral.")
		b.Text(level, "But the integral is:")
		b.Math(level, k.Integral(t.Integrand, t.Variable))
	}
}

// ruleEquation builds the display equality for a leaf rule: the
// unevaluated integral on the left, its antiderivative on the right.
func (p *Printer) ruleEquation(r rules.Rule) algebra.Expr {
	k := p.kernel
	return k.Eq(k.Integral(r.Context(), r.Symbol()), p.answer(r))
}

// answer evaluates a subtree for display. Subtrees with no closed form
// fall back to their unevaluated integral notation.
func (p *Printer) answer(r rules.Rule) algebra.Expr {
	if v, ok := p.engine.Evaluate(r); ok {
		return v
	}
	return p.kernel.Integral(r.Context(), r.Symbol())
}

func (p *Printer) finalize(b *document.Builder, root rules.Rule) {
	k := p.kernel
	answer, ok := p.engine.Evaluate(root)
	if ok {
		simplified := k.TrigSimplify(k.Simplify(answer))
		if !k.Equal(simplified, answer) {
			b.Text(0, "Now simplify:")
			b.Math(0, simplified)
			answer = simplified
		}
	} else {
		answer = k.Integral(root.Context(), root.Symbol())
	}
	b.Text(0, "Add the constant of integration:")
	b.Math(0, k.Add(answer, k.Sym(constantSymbol(k, root))))
}

// constantSymbol picks a name for the constant of integration that is
// not already used by the problem.
func constantSymbol(k algebra.Kernel, r rules.Rule) string {
	used := map[string]bool{r.Symbol(): true}
	for _, s := range k.FreeSymbols(r.Context()) {
		used[s] = true
	}
	for _, name := range []string{"C", "K"} {
		if !used[name] {
			return name
		}
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("C%d", i)
		if !used[name] {
			return name
		}
	}
}
