// Package cmd provides CLI commands for the scribe tool.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deeklead/scribe/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "scribe",
	Short:   "Scribe - step-by-step symbolic integration",
	Version: version.Version,
	Long: `Scribe derives indefinite integrals and explains every step.

It applies the standard techniques (power rule, linearity, trig,
exponentials, u-substitution) the way a calculus student would and
prints the derivation as prose and display math, in the terminal, as
HTML, Markdown or JSON.`,
}

// Execute runs the root command and returns an exit code.
// The caller (main) should call os.Exit with this code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := IsSilentExit(err); ok {
			return code
		}
		// Other errors already printed by cobra
		return 1
	}
	return 0
}

// Command group IDs - used by subcommands to organize help output
const (
	GroupSolve = "solve"
	GroupBatch = "batch"
	GroupShare = "share"
	GroupDiag  = "diag"
)

func init() {
	// Enable prefix matching for subcommands (e.g., "scribe exp x^2" -> "scribe explain x^2")
	cobra.EnablePrefixMatching = true

	// Define command groups (order determines help output order)
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupSolve, Title: "Solving:"},
		&cobra.Group{ID: GroupBatch, Title: "Practice & History:"},
		&cobra.Group{ID: GroupShare, Title: "Serving & Export:"},
		&cobra.Group{ID: GroupDiag, Title: "Diagnostics:"},
	)

	// Put help and completion in a sensible group
	rootCmd.SetHelpCommandGroupID(GroupDiag)
	rootCmd.SetCompletionCommandGroupID(GroupDiag)
}

// buildCommandPath walks the command hierarchy to build the full
// command path, e.g. "scribe history list".
func buildCommandPath(cmd *cobra.Command) string {
	var parts []string
	for c := cmd; c != nil; c = c.Parent() {
		parts = append([]string{c.Name()}, parts...)
	}
	return strings.Join(parts, " ")
}

// requireSubcommand returns a RunE error for parent commands invoked
// without a subcommand. Without this, cobra silently shows help and
// exits 0 for unknown subcommands, masking errors.
func requireSubcommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("requires a subcommand\n\nRun '%s --help' for usage", buildCommandPath(cmd))
	}
	return fmt.Errorf("unknown command %q for %q\n\nRun '%s --help' for available commands",
		args[0], buildCommandPath(cmd), buildCommandPath(cmd))
}
