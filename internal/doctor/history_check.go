package doctor

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deeklead/scribe/internal/constants"
	"github.com/deeklead/scribe/internal/history"
)

// HistoryCheck verifies the data directory is writable and every
// history line still parses.
type HistoryCheck struct {
	FixableCheck
}

// NewHistoryCheck creates a new history store check.
func NewHistoryCheck() *HistoryCheck {
	return &HistoryCheck{
		FixableCheck: FixableCheck{
			BaseCheck: BaseCheck{
				CheckName:        "history-store",
				CheckDescription: "Check the data directory is writable and the history parses",
				CheckCategory:    CategoryData,
			},
		},
	}
}

// Run inspects the data directory and scans the history file.
func (c *HistoryCheck) Run(ctx *CheckContext) *CheckResult {
	dir := filepath.Dir(ctx.HistoryPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusWarning,
			Message: fmt.Sprintf("Data directory %s does not exist", dir),
			FixHint: "Run 'scribe doctor --fix' to create it",
		}
	}

	if err := probeWritable(dir); err != nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusError,
			Message: fmt.Sprintf("Data directory %s is not writable", dir),
			Details: []string{err.Error()},
		}
	}

	entries, corrupt, err := scanHistory(ctx.HistoryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &CheckResult{
				Name:    c.Name(),
				Status:  StatusOK,
				Message: "No history yet",
			}
		}
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusError,
			Message: fmt.Sprintf("Cannot read history file %s", ctx.HistoryPath),
			Details: []string{err.Error()},
		}
	}

	if len(corrupt) > 0 {
		details := make([]string, 0, len(corrupt)+1)
		for _, line := range corrupt {
			details = append(details, fmt.Sprintf("line %d does not parse", line))
		}
		details = append(details, "Corrupt lines are skipped when the history is read.")
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusWarning,
			Message: fmt.Sprintf("History has %d corrupt line(s) out of %d", len(corrupt), entries+len(corrupt)),
			Details: details,
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  StatusOK,
		Message: fmt.Sprintf("History OK (%d entries)", entries),
	}
}

// Fix creates the data directory.
func (c *HistoryCheck) Fix(ctx *CheckContext) error {
	dir := filepath.Dir(ctx.HistoryPath)
	if err := os.MkdirAll(dir, constants.DirMode); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

// probeWritable creates and removes a throwaway file in dir.
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".scribe-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return err
	}
	return os.Remove(name)
}

// scanHistory counts parseable entries and records the 1-based line
// numbers that fail to parse. Blank lines are ignored.
func scanHistory(path string) (entries int, corrupt []int, err error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from our own config dir
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e history.Entry
		if json.Unmarshal(line, &e) != nil {
			corrupt = append(corrupt, lineNo)
			continue
		}
		entries++
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, err
	}
	return entries, corrupt, nil
}
