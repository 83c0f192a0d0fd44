package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deeklead/scribe/internal/export"
	"github.com/deeklead/scribe/internal/render"
)

var (
	exportVar   string
	exportBasic bool
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:     "export <expression>",
	GroupID: GroupShare,
	Short:   "Export the derivation as a PNG image",
	Long: `Derive the indefinite integral and export the rendered page as a PNG.

Export drives a locally installed Chromium-based browser headlessly to
typeset the math. Run 'scribe doctor' if no browser is found.

Example:
  scribe export "x^2"
  scribe export "2*x*exp(x^2)" --out substitution.png`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportVar, "var", "", "Integration variable (default from config)")
	exportCmd.Flags().BoolVar(&exportBasic, "basic", false, "Core rules only, no extended techniques")
	exportCmd.Flags().StringVar(&exportOut, "out", "steps.png", "Output PNG path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in := solveInput{
		expression: args[0],
		variable:   pick(exportVar, cfg.Variable),
		basic:      exportBasic || cfg.Basic,
		maxDepth:   cfg.MaxDepth,
	}

	expr, res, err := solveExpression(in)
	if err != nil {
		return err
	}

	page := render.Page{
		Title:        "Integral of " + in.expression,
		ProblemLaTeX: integralLaTeX(expr, in.variable),
		Document:     res.Document,
	}
	if err := export.PNG(page, exportOut); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", exportOut)
	return nil
}
