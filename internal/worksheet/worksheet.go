// Package worksheet parses and runs batches of integration problems.
//
// A worksheet is a TOML file naming a list of integrands. Running it
// solves each in order and collects the step documents, so a whole
// problem set renders as one report.
package worksheet

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/deeklead/scribe/internal/algebra"
	"github.com/deeklead/scribe/internal/constants"
	"github.com/deeklead/scribe/internal/document"
	"github.com/deeklead/scribe/internal/steps"
	"github.com/deeklead/scribe/internal/symbolic"
)

// Worksheet represents a parsed worksheet.toml file.
type Worksheet struct {
	Name        string    `toml:"name"`
	Description string    `toml:"description"`
	Variable    string    `toml:"variable"`
	Basic       bool      `toml:"basic"`
	Problems    []Problem `toml:"problems"`
}

// Problem is one integrand in a worksheet.
type Problem struct {
	Title      string `toml:"title"`
	Expression string `toml:"expression"`
	Variable   string `toml:"variable"`
	Basic      bool   `toml:"basic"`
}

// ParseFile reads and parses a worksheet.toml file.
func ParseFile(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied worksheet
	if err != nil {
		return nil, fmt.Errorf("reading worksheet: %w", err)
	}
	return Parse(data)
}

// Parse parses worksheet.toml content from bytes.
func Parse(data []byte) (*Worksheet, error) {
	var w Worksheet
	if _, err := toml.Decode(string(data), &w); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}

	return &w, nil
}

// Validate checks that the worksheet has all required fields and that
// every expression parses.
func (w *Worksheet) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("worksheet name is required")
	}
	if len(w.Problems) == 0 {
		return fmt.Errorf("worksheet requires at least one problem")
	}
	for i, p := range w.Problems {
		if p.Expression == "" {
			return fmt.Errorf("problem %d missing required expression field", i+1)
		}
		if _, err := symbolic.Parse(p.Expression); err != nil {
			return fmt.Errorf("problem %d expression %q: %w", i+1, p.Expression, err)
		}
	}
	return nil
}

// VariableFor returns the integration variable for a problem, falling
// back to the worksheet default and then the built-in default.
func (w *Worksheet) VariableFor(p Problem) string {
	if p.Variable != "" {
		return p.Variable
	}
	if w.Variable != "" {
		return w.Variable
	}
	return constants.DefaultVariable
}

// Result is the outcome of one worksheet problem.
type Result struct {
	Problem  Problem
	Variable string
	Steps    steps.Result
	Err      error
	Duration time.Duration
}

// Run solves every problem in order. Individual failures are recorded
// in the result rather than aborting the batch. A worksheet marked
// basic disables the extended rules for all of its problems; a single
// problem can be marked the same way.
func Run(k algebra.Kernel, w *Worksheet, opts steps.Options) []Result {
	results := make([]Result, 0, len(w.Problems))
	for _, p := range w.Problems {
		po := opts
		if w.Basic || p.Basic {
			po.Extended = false
		}
		results = append(results, runProblem(k, w, p, po))
	}
	return results
}

func runProblem(k algebra.Kernel, w *Worksheet, p Problem, opts steps.Options) Result {
	variable := w.VariableFor(p)
	start := time.Now()

	expr, err := symbolic.Parse(p.Expression)
	if err != nil {
		return Result{
			Problem:  p,
			Variable: variable,
			Err:      fmt.Errorf("parsing %q: %w", p.Expression, err),
			Duration: time.Since(start),
		}
	}

	res, err := steps.Solve(k, expr, variable, opts)
	return Result{
		Problem:  p,
		Variable: variable,
		Steps:    res,
		Err:      err,
		Duration: time.Since(start),
	}
}

// TitleFor returns the display title for the i-th result, falling back
// to a numbered form of the expression.
func TitleFor(r Result, i int) string {
	if r.Problem.Title != "" {
		return r.Problem.Title
	}
	return fmt.Sprintf("Problem %d: %s", i+1, r.Problem.Expression)
}

// Combined merges a run into one document with a titled group per
// problem, so a whole sheet renders as a single report.
func Combined(results []Result) document.Document {
	b := document.NewBuilder()
	for i, r := range results {
		b.Group(0, TitleFor(r, i), func(gb *document.Builder) {
			if r.Err != nil {
				gb.Textf(1, "Skipped: %v.", r.Err)
				return
			}
			appendShifted(gb, r.Steps.Document.Blocks, 1)
		})
	}
	return b.Document()
}

// appendShifted copies blocks into gb with their levels raised by delta.
func appendShifted(gb *document.Builder, blocks []document.Block, delta int) {
	for _, blk := range blocks {
		switch blk.Kind {
		case document.KindText:
			gb.Text(blk.Level+delta, blk.Text)
		case document.KindMath:
			gb.Math(blk.Level+delta, blk.Math)
		case document.KindGroup:
			children := blk.Children
			gb.Group(blk.Level+delta, blk.Title, func(inner *document.Builder) {
				appendShifted(inner, children, delta)
			})
		}
	}
}

// Summary tallies outcomes across a worksheet run.
type Summary struct {
	Total    int
	Solved   int
	Unsolved int
	Failed   int
}

// Summarize counts solved, unsolved, and failed results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Steps.Solved:
			s.Solved++
		default:
			s.Unsolved++
		}
	}
	return s
}

// String renders a one-line summary like "5 problems: 4 solved, 1 unsolved".
func (s Summary) String() string {
	out := fmt.Sprintf("%d problems: %d solved", s.Total, s.Solved)
	if s.Unsolved > 0 {
		out += fmt.Sprintf(", %d unsolved", s.Unsolved)
	}
	if s.Failed > 0 {
		out += fmt.Sprintf(", %d failed", s.Failed)
	}
	return out
}
