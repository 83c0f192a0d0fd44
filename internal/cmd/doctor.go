package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deeklead/scribe/internal/constants"
	"github.com/deeklead/scribe/internal/doctor"
)

var (
	doctorFix     bool
	doctorVerbose bool
)

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	GroupID: GroupDiag,
	Short:   "Run health checks on the installation",
	Long: `Run diagnostic checks on the scribe installation.

Checks:
  config-file       Config file parses and validates (fixable)
  history-store     Data directory is writable, history parses (fixable)
  engine-selftest   Integrate x^3 and differentiate the answer back
  export-browser    A browser is available for PNG export

Use --fix to attempt automatic fixes for issues that support it.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt to automatically fix issues")
	doctorCmd.Flags().BoolVarP(&doctorVerbose, "verbose", "v", false, "Show detailed output")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	configPath, err := constants.ConfigPath()
	if err != nil {
		return err
	}
	historyPath, err := constants.HistoryPath()
	if err != nil {
		return err
	}

	ctx := &doctor.CheckContext{
		ConfigPath:  configPath,
		HistoryPath: historyPath,
		Verbose:     doctorVerbose,
	}

	d := doctor.NewDoctor()
	d.RegisterAll(doctor.DefaultChecks()...)

	var report *doctor.Report
	if doctorFix {
		report = d.Fix(ctx)
	} else {
		report = d.Run(ctx)
	}

	report.Print(os.Stdout, doctorVerbose)

	if report.HasErrors() {
		return fmt.Errorf("doctor found %d error(s)", report.Summary.Errors)
	}
	return nil
}
