package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deeklead/scribe/internal/constants"
	"github.com/deeklead/scribe/internal/history"
	"github.com/deeklead/scribe/internal/render"
	"github.com/deeklead/scribe/internal/steps"
	"github.com/deeklead/scribe/internal/style"
	"github.com/deeklead/scribe/internal/symbolic"
	"github.com/deeklead/scribe/internal/worksheet"
)

var (
	runFormat string
	runOut    string
	runBasic  bool
)

var runCmd = &cobra.Command{
	Use:     "run <sheet.toml>",
	GroupID: GroupBatch,
	Short:   "Solve every problem in a worksheet",
	Long: `Solve every problem in a TOML worksheet and render the combined
report.

A worksheet names its problems like this:

  name = "U-substitution drill"

  [[problems]]
  expression = "2*x*exp(x^2)"

  [[problems]]
  expression = "sin(x)"
  basic = true

Each problem may override the integration variable or restrict itself
to the core rules. The per-problem outcomes print as a table; the full
step report goes to stdout or --out.

Example:
  scribe run sheet.toml
  scribe run sheet.toml --format html --out report.html`,
	Args: cobra.ExactArgs(1),
	RunE: runWorksheet,
}

func init() {
	runCmd.Flags().StringVar(&runFormat, "format", "", "Output format: terminal, html, markdown, json")
	runCmd.Flags().StringVar(&runOut, "out", "", "Write the report to a file instead of stdout")
	runCmd.Flags().BoolVar(&runBasic, "basic", false, "Core rules only, no extended techniques")
	rootCmd.AddCommand(runCmd)
}

func runWorksheet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(pick(runFormat, cfg.Format))
	if err != nil {
		return err
	}

	sheet, err := worksheet.ParseFile(args[0])
	if err != nil {
		return err
	}

	k := symbolic.NewKernel()
	results := worksheet.Run(k, sheet, steps.Options{
		Extended: !(runBasic || cfg.Basic),
		MaxDepth: cfg.MaxDepth,
	})
	recordWorksheet(results)

	doc := worksheet.Combined(results)
	out, err := renderDocument(format, doc, render.Page{
		Title:    sheet.Name,
		Document: doc,
	})
	if err != nil {
		return err
	}
	if err := writeOutput(runOut, out); err != nil {
		return err
	}

	for i, r := range results {
		fmt.Printf("%s %s\n", resultMarker(r), worksheet.TitleFor(r, i))
	}
	fmt.Println(worksheet.Summarize(results).String())
	return nil
}

// recordWorksheet appends one history entry per problem.
func recordWorksheet(results []worksheet.Result) {
	path, err := constants.HistoryPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: not recording history: %v\n", err)
		return
	}

	for _, r := range results {
		entry := history.Entry{
			Expression: r.Problem.Expression,
			Variable:   r.Variable,
			Technique:  r.Steps.Technique,
			Outcome:    history.OutcomeUnsolved,
			DurationMS: r.Duration.Milliseconds(),
		}
		switch {
		case r.Err != nil:
			entry.Outcome = history.OutcomeError
		case r.Steps.Solved:
			entry.Outcome = history.OutcomeSolved
			entry.Answer = r.Steps.Answer.String()
		}
		if err := history.Append(path, entry); err != nil {
			fmt.Fprintf(os.Stderr, "warning: not recording history: %v\n", err)
			return
		}
	}
}

// resultMarker renders the outcome column of the summary table.
func resultMarker(r worksheet.Result) string {
	switch {
	case r.Err != nil:
		return style.ErrorStyle.Render("✗")
	case r.Steps.Solved:
		return style.SuccessStyle.Render("✓")
	default:
		return style.WarnStyle.Render("⚠")
	}
}
