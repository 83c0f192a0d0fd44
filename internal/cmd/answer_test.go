package cmd

import (
	"testing"

	"github.com/deeklead/scribe/internal/constants"
)

func TestRunAnswerSolved(t *testing.T) {
	t.Setenv(constants.EnvConfigDir, t.TempDir())

	if err := runAnswer(answerCmd, []string{"x^2"}); err != nil {
		t.Fatalf("runAnswer() error = %v", err)
	}
}

func TestRunAnswerNoClosedForm(t *testing.T) {
	t.Setenv(constants.EnvConfigDir, t.TempDir())

	err := runAnswer(answerCmd, []string{"sin(sin(x))"})
	code, ok := IsSilentExit(err)
	if !ok || code != 1 {
		t.Fatalf("err = %v, want silent exit with code 1", err)
	}
}

func TestRunAnswerParseError(t *testing.T) {
	t.Setenv(constants.EnvConfigDir, t.TempDir())

	err := runAnswer(answerCmd, []string{"2*(x"})
	if err == nil {
		t.Fatal("runAnswer() error = nil, want parse error")
	}
	if _, ok := IsSilentExit(err); ok {
		t.Error("parse errors should surface through cobra, not a silent exit")
	}
}
