package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deeklead/scribe/internal/render"
)

var (
	explainVar    string
	explainFormat string
	explainBasic  bool
	explainOut    string
	explainDepth  int
)

var explainCmd = &cobra.Command{
	Use:     "explain <expression>",
	GroupID: GroupSolve,
	Short:   "Derive an integral and print every step",
	Long: `Derive the indefinite integral of an expression and print the full
step-by-step explanation.

Expressions use ordinary infix notation with + - * / ^, function calls
like sin(x) and parentheses. The integration variable defaults to the
configured one (x out of the box).

Example:
  scribe explain "x^2"
  scribe explain "2*x*exp(x^2)"
  scribe explain "sin(t)" --var t
  scribe explain "x^2" --format html --out steps.html`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().StringVar(&explainVar, "var", "", "Integration variable (default from config)")
	explainCmd.Flags().StringVar(&explainFormat, "format", "", "Output format: terminal, html, markdown, json")
	explainCmd.Flags().BoolVar(&explainBasic, "basic", false, "Core rules only, no extended techniques")
	explainCmd.Flags().StringVar(&explainOut, "out", "", "Write output to a file instead of stdout")
	explainCmd.Flags().IntVar(&explainDepth, "max-depth", 0, "Derivation recursion bound (default from config)")
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(pick(explainFormat, cfg.Format))
	if err != nil {
		return err
	}

	in := solveInput{
		expression: args[0],
		variable:   pick(explainVar, cfg.Variable),
		basic:      explainBasic || cfg.Basic,
		maxDepth:   pickInt(explainDepth, cfg.MaxDepth),
	}

	expr, res, err := solveExpression(in)
	if err != nil {
		return err
	}

	out, err := renderDocument(format, res.Document, render.Page{
		Title:        "Integral of " + in.expression,
		ProblemLaTeX: integralLaTeX(expr, in.variable),
		Document:     res.Document,
	})
	if err != nil {
		return err
	}
	return writeOutput(explainOut, out)
}
