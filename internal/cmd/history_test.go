package cmd

import (
	"strings"
	"testing"

	"github.com/deeklead/scribe/internal/history"
)

func TestHistoryLine(t *testing.T) {
	e := history.Entry{
		SolvedAt:   "2026-08-23T10:00:00Z",
		Expression: "x^2",
		Variable:   "x",
		Outcome:    history.OutcomeSolved,
		Answer:     "x^3/3 + C",
	}

	line := historyLine(e)
	if !strings.Contains(line, "∫ x^2 dx") {
		t.Errorf("line = %q, want the integral shown", line)
	}
	if !strings.Contains(line, "x^3/3 + C") {
		t.Errorf("line = %q, want the answer shown", line)
	}
}

func TestHistoryLineUnparseableTimestamp(t *testing.T) {
	e := history.Entry{
		SolvedAt:   "not-a-time",
		Expression: "sin(x)",
		Variable:   "x",
		Outcome:    history.OutcomeError,
	}

	line := historyLine(e)
	if !strings.Contains(line, "not-a-time") {
		t.Errorf("line = %q, want the raw timestamp passed through", line)
	}
	if strings.Contains(line, "=") {
		t.Errorf("line = %q, no answer should be shown", line)
	}
}
