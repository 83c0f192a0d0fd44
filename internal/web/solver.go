package web

import (
	"github.com/deeklead/scribe/internal/algebra"
	"github.com/deeklead/scribe/internal/constants"
	"github.com/deeklead/scribe/internal/document"
	"github.com/deeklead/scribe/internal/steps"
	"github.com/deeklead/scribe/internal/symbolic"
)

// StepsView carries everything the steps page and the JSON API need
// for one solved (or attempted) integrand.
type StepsView struct {
	Expression   string
	Variable     string
	ProblemLaTeX string
	Technique    string
	Solved       bool
	Answer       string
	Document     document.Document
}

// Solver defines the interface the handler fetches step documents
// through. Parse failures must wrap symbolic.ErrParse so the handler
// can answer 400; kernel faults wrap steps.ErrNoClosedForm.
type Solver interface {
	Solve(expression, variable string, basic bool) (StepsView, error)
}

// LiveSolver runs the real derivation engine.
type LiveSolver struct {
	kernel   algebra.Kernel
	maxDepth int
}

// NewLiveSolver creates a solver backed by a fresh kernel. maxDepth
// zero means the engine default.
func NewLiveSolver(maxDepth int) *LiveSolver {
	return &LiveSolver{kernel: symbolic.NewKernel(), maxDepth: maxDepth}
}

// Solve parses and derives an integrand. The variable defaults to the
// built-in one when empty.
func (s *LiveSolver) Solve(expression, variable string, basic bool) (StepsView, error) {
	if variable == "" {
		variable = constants.DefaultVariable
	}

	expr, err := symbolic.Parse(expression)
	if err != nil {
		return StepsView{}, err
	}

	res, err := steps.Solve(s.kernel, expr, variable, steps.Options{
		Extended: !basic,
		MaxDepth: s.maxDepth,
	})
	if err != nil {
		return StepsView{}, err
	}

	view := StepsView{
		Expression:   expression,
		Variable:     variable,
		ProblemLaTeX: problemLaTeX(expr, variable),
		Technique:    res.Technique,
		Solved:       res.Solved,
		Document:     res.Document,
	}
	if res.Answer != nil {
		view.Answer = res.Answer.String()
	}
	return view, nil
}

// problemLaTeX renders the integral heading for a page.
func problemLaTeX(expr algebra.Expr, variable string) string {
	return `\int ` + expr.LaTeX() + ` \, d` + variable
}
