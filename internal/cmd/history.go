package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/deeklead/scribe/internal/constants"
	"github.com/deeklead/scribe/internal/history"
	"github.com/deeklead/scribe/internal/style"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	GroupID: GroupBatch,
	Short:   "Inspect past solves",
	Long: `Inspect the solve log.

Every explain, answer, view, run and web solve is recorded in
~/.scribe/history.jsonl with its outcome and technique.`,
	RunE: requireSubcommand,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	RunE:  runHistoryList,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Tally outcomes and techniques",
	RunE:  runHistoryStats,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Show the most recent n entries")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatsCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	path, err := constants.HistoryPath()
	if err != nil {
		return err
	}
	entries, err := history.Tail(path, historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No history yet")
		return nil
	}

	for _, e := range entries {
		fmt.Println(historyLine(e))
	}
	return nil
}

// historyLine formats one entry for the list view.
func historyLine(e history.Entry) string {
	marker := style.WarnStyle.Render("⚠")
	switch e.Outcome {
	case history.OutcomeSolved:
		marker = style.SuccessStyle.Render("✓")
	case history.OutcomeError:
		marker = style.ErrorStyle.Render("✗")
	}

	when := e.SolvedAt
	if t, err := time.Parse(time.RFC3339, e.SolvedAt); err == nil {
		when = t.Local().Format("2006-01-02 15:04")
	}

	line := fmt.Sprintf("%s %s  ∫ %s d%s", marker, style.MutedStyle.Render(when), e.Expression, e.Variable)
	if e.Answer != "" {
		line += "  =  " + e.Answer
	}
	return line
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	path, err := constants.HistoryPath()
	if err != nil {
		return err
	}
	entries, err := history.List(path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No history yet")
		return nil
	}

	stats := history.Summarize(entries)
	fmt.Printf("%d solves, %d solved\n", stats.Total, stats.Solved)
	for _, tag := range stats.Techniques() {
		fmt.Printf("  %-20s %d\n", history.DisplayTechnique(tag), stats.ByTechnique[tag])
	}
	return nil
}
