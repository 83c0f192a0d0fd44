// Package steps ties the rule engine, the evaluator and the printer
// together: derive an integrand, explain it as a step document and
// report the final antiderivative.
package steps

import (
	"errors"
	"fmt"

	"github.com/deeklead/scribe/internal/algebra"
	"github.com/deeklead/scribe/internal/document"
	"github.com/deeklead/scribe/internal/rules"
)

// ErrNoClosedForm reports that no technique produced an
// antiderivative for the integrand.
var ErrNoClosedForm = errors.New("no closed form found")

// Options configures one derivation.
type Options struct {
	// Extended enables the technique matchers beyond the core
	// cascade: trig, exponential, u-substitution, trig rewriting.
	Extended bool
	// MaxDepth overrides the engine's recursion bound when positive.
	MaxDepth int
}

// Result is the full outcome of one derivation.
type Result struct {
	// Document is the rendered step explanation. Present even when
	// the integrand could not be solved.
	Document document.Document
	// Technique is the tag of the root rule.
	Technique string
	// Answer is the antiderivative with its constant of integration,
	// nil when Solved is false.
	Answer algebra.Expr
	// Solved reports whether a closed form was found.
	Solved bool
}

// Solve derives the integrand and renders its explanation. Unsolvable
// integrands are not an error: the result document explains as far as
// the techniques go and Solved is false. Kernel arithmetic faults
// (the power rule at exponent -1) are recovered and reported as
// ErrNoClosedForm.
func Solve(k algebra.Kernel, expr algebra.Expr, variable string, opts Options) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = fmt.Errorf("%w: %v", ErrNoClosedForm, r)
		}
	}()

	eng := newEngine(k, opts)
	rule := eng.Derive(expr, variable)
	res.Document = NewPrinter(eng).Print(rule)
	res.Technique = rules.Tag(rule)
	if v, ok := eng.Evaluate(rule); ok {
		simplified := k.TrigSimplify(k.Simplify(v))
		res.Answer = k.Add(simplified, k.Sym(constantSymbol(k, rule)))
		res.Solved = true
	}
	return res, nil
}

// Explain returns just the step document for the integrand.
func Explain(k algebra.Kernel, expr algebra.Expr, variable string, opts Options) (document.Document, error) {
	res, err := Solve(k, expr, variable, opts)
	if err != nil {
		return document.Document{}, err
	}
	return res.Document, nil
}

// Answer returns just the final antiderivative, constant of
// integration included. Integrands with no closed form return
// ErrNoClosedForm.
func Answer(k algebra.Kernel, expr algebra.Expr, variable string, opts Options) (algebra.Expr, error) {
	res, err := Solve(k, expr, variable, opts)
	if err != nil {
		return nil, err
	}
	if !res.Solved {
		return nil, ErrNoClosedForm
	}
	return res.Answer, nil
}

func newEngine(k algebra.Kernel, opts Options) *rules.Engine {
	eng := rules.NewEngine(k)
	eng.Extended = opts.Extended
	if opts.MaxDepth > 0 {
		eng.MaxDepth = opts.MaxDepth
	}
	return eng
}
