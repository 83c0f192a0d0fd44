package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deeklead/scribe/internal/steps"
)

var (
	answerVar   string
	answerBasic bool
)

var answerCmd = &cobra.Command{
	Use:     "answer <expression>",
	GroupID: GroupSolve,
	Short:   "Print just the antiderivative",
	Long: `Derive the indefinite integral and print only the final answer with
its constant of integration, no steps.

Exits 1 with "no closed form found" on stderr when the known
techniques cannot solve the integrand; scripts can branch on the exit
code.

Example:
  scribe answer "x^2"
  scribe answer "cos(t)" --var t`,
	Args: cobra.ExactArgs(1),
	RunE: runAnswer,
}

func init() {
	answerCmd.Flags().StringVar(&answerVar, "var", "", "Integration variable (default from config)")
	answerCmd.Flags().BoolVar(&answerBasic, "basic", false, "Core rules only, no extended techniques")
	rootCmd.AddCommand(answerCmd)
}

func runAnswer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in := solveInput{
		expression: args[0],
		variable:   pick(answerVar, cfg.Variable),
		basic:      answerBasic || cfg.Basic,
		maxDepth:   cfg.MaxDepth,
	}

	_, res, err := solveExpression(in)
	if err != nil && !errors.Is(err, steps.ErrNoClosedForm) {
		return err
	}
	if err != nil || !res.Solved {
		fmt.Fprintln(os.Stderr, "no closed form found")
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return NewSilentExit(1)
	}

	fmt.Println(res.Answer.String())
	return nil
}
