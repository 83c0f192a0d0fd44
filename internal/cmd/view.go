package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/deeklead/scribe/internal/steps"
	"github.com/deeklead/scribe/internal/tui"
)

var (
	viewVar   string
	viewBasic bool
)

var viewCmd = &cobra.Command{
	Use:     "view <expression>",
	GroupID: GroupSolve,
	Short:   "Browse the derivation in an interactive viewer",
	Long: `Derive the indefinite integral and browse the steps interactively.

Arrow keys or j/k move the cursor, enter or space folds and unfolds
alternative methods, number keys jump to a method, ? shows the full
key map, q quits.

Example:
  scribe view "2*x*exp(x^2)"
  scribe view "sin(t)" --var t`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVar(&viewVar, "var", "", "Integration variable (default from config)")
	viewCmd.Flags().BoolVar(&viewBasic, "basic", false, "Core rules only, no extended techniques")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in := solveInput{
		expression: args[0],
		variable:   pick(viewVar, cfg.Variable),
		basic:      viewBasic || cfg.Basic,
		maxDepth:   cfg.MaxDepth,
	}

	// Solve once up front so typos fail before the alternate screen
	// and the attempt lands in the history.
	if _, _, err := solveExpression(in); err != nil {
		return err
	}

	m := tui.New(in.expression, in.variable, steps.Options{
		Extended: !in.basic,
		MaxDepth: in.maxDepth,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
