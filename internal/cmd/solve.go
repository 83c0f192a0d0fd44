package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/deeklead/scribe/internal/algebra"
	"github.com/deeklead/scribe/internal/config"
	"github.com/deeklead/scribe/internal/constants"
	"github.com/deeklead/scribe/internal/document"
	"github.com/deeklead/scribe/internal/history"
	"github.com/deeklead/scribe/internal/render"
	"github.com/deeklead/scribe/internal/steps"
	"github.com/deeklead/scribe/internal/symbolic"
)

// loadConfig reads the user config, falling back to defaults when the
// file does not exist.
func loadConfig() (*config.Config, error) {
	path, err := constants.ConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("loading config (run 'scribe doctor'): %w", err)
	}
	return cfg, nil
}

// pick returns flag when set, otherwise fallback.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

// pickInt returns flag when positive, otherwise fallback.
func pickInt(flag, fallback int) int {
	if flag > 0 {
		return flag
	}
	return fallback
}

// solveInput is one CLI derivation request.
type solveInput struct {
	expression string
	variable   string
	basic      bool
	maxDepth   int
}

// solveExpression parses and derives the integrand, recording the
// outcome in the history file. Parse failures are not recorded; no
// derivation happened.
func solveExpression(in solveInput) (algebra.Expr, steps.Result, error) {
	k := symbolic.NewKernel()
	expr, err := symbolic.Parse(in.expression)
	if err != nil {
		return nil, steps.Result{}, fmt.Errorf("parsing %q: %w", in.expression, err)
	}

	start := time.Now()
	res, err := steps.Solve(k, expr, in.variable, steps.Options{
		Extended: !in.basic,
		MaxDepth: in.maxDepth,
	})
	recordHistory(in, res, time.Since(start), err)
	if err != nil {
		return nil, steps.Result{}, err
	}
	return expr, res, nil
}

// recordHistory appends the solve outcome. History is bookkeeping; a
// failure here warns on stderr and never fails the command.
func recordHistory(in solveInput, res steps.Result, took time.Duration, solveErr error) {
	path, err := constants.HistoryPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: not recording history: %v\n", err)
		return
	}

	entry := history.Entry{
		Expression: in.expression,
		Variable:   in.variable,
		Technique:  res.Technique,
		Outcome:    history.OutcomeUnsolved,
		DurationMS: took.Milliseconds(),
	}
	switch {
	case solveErr != nil:
		entry.Outcome = history.OutcomeError
	case res.Solved:
		entry.Outcome = history.OutcomeSolved
		entry.Answer = res.Answer.String()
	}

	if err := history.Append(path, entry); err != nil {
		fmt.Fprintf(os.Stderr, "warning: not recording history: %v\n", err)
	}
}

// integralLaTeX formats the problem statement for HTML page headers.
func integralLaTeX(expr algebra.Expr, variable string) string {
	return `\int ` + expr.LaTeX() + ` \, d` + variable
}

// renderDocument serializes a document in the named format. The page
// carries the title and problem statement the HTML format needs.
func renderDocument(format render.Format, doc document.Document, page render.Page) (string, error) {
	switch format {
	case render.FormatTerminal:
		return render.Terminal(doc, render.TerminalWidth()), nil
	case render.FormatHTML:
		return render.HTMLPage(page)
	case render.FormatMarkdown:
		return render.Markdown(doc), nil
	case render.FormatJSON:
		out, err := render.JSON(doc)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	return "", fmt.Errorf("%w: %q", render.ErrUnknownFormat, string(format))
}

// writeOutput writes rendered output to path, or stdout when path is
// empty.
func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), constants.OutFileMode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
