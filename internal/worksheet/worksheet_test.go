package worksheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deeklead/scribe/internal/document"
	"github.com/deeklead/scribe/internal/steps"
	"github.com/deeklead/scribe/internal/symbolic"
)

const sampleSheet = `
name = "Practice set 5"
description = "Powers and substitution"
variable = "x"

[[problems]]
title = "Warm-up"
expression = "x^2"

[[problems]]
expression = "sin(t)"
variable = "t"

[[problems]]
expression = "2*x*exp(x^2)"
`

func TestParse(t *testing.T) {
	t.Parallel()
	w, err := Parse([]byte(sampleSheet))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if w.Name != "Practice set 5" {
		t.Errorf("Name = %q", w.Name)
	}
	if len(w.Problems) != 3 {
		t.Fatalf("got %d problems, want 3", len(w.Problems))
	}
	if w.Problems[0].Title != "Warm-up" {
		t.Errorf("Problems[0].Title = %q", w.Problems[0].Title)
	}
	if w.Problems[1].Variable != "t" {
		t.Errorf("Problems[1].Variable = %q, want t", w.Problems[1].Variable)
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sheet.toml")
	if err := os.WriteFile(path, []byte(sampleSheet), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if w.Name == "" {
		t.Error("ParseFile() dropped the name")
	}
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		toml string
		want string
	}{
		{
			"missing name",
			`[[problems]]
expression = "x"`,
			"name is required",
		},
		{
			"no problems",
			`name = "empty"`,
			"at least one problem",
		},
		{
			"missing expression",
			`name = "bad"
[[problems]]
title = "no integrand"`,
			"missing required expression",
		},
		{
			"malformed expression",
			`name = "bad"
[[problems]]
expression = "2*(x"`,
			"problem 1 expression",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			if err == nil {
				t.Fatal("Parse() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestVariableFor(t *testing.T) {
	t.Parallel()
	w := &Worksheet{Variable: "y"}
	if got := w.VariableFor(Problem{Variable: "t"}); got != "t" {
		t.Errorf("problem override = %q, want t", got)
	}
	if got := w.VariableFor(Problem{}); got != "y" {
		t.Errorf("sheet default = %q, want y", got)
	}
	empty := &Worksheet{}
	if got := empty.VariableFor(Problem{}); got != "x" {
		t.Errorf("built-in default = %q, want x", got)
	}
}

func TestRun(t *testing.T) {
	t.Parallel()
	k := symbolic.NewKernel()
	w, err := Parse([]byte(sampleSheet))
	if err != nil {
		t.Fatal(err)
	}

	results := Run(k, w, steps.Options{Extended: true})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("result %d error = %v", i, r.Err)
		}
		if !r.Steps.Solved {
			t.Errorf("result %d not solved", i)
		}
	}
	if results[1].Variable != "t" {
		t.Errorf("results[1].Variable = %q, want t", results[1].Variable)
	}
	if got := results[0].Steps.Answer.String(); got != "x^3/3 + C" {
		t.Errorf("results[0] answer = %q, want x^3/3 + C", got)
	}
}

func TestRunBasicSheetSkipsExtendedRules(t *testing.T) {
	t.Parallel()
	k := symbolic.NewKernel()
	w := &Worksheet{
		Name:     "basic",
		Basic:    true,
		Problems: []Problem{{Expression: "sin(x)"}},
	}

	results := Run(k, w, steps.Options{Extended: true})
	if results[0].Err != nil {
		t.Fatalf("unexpected error: %v", results[0].Err)
	}
	if results[0].Steps.Solved {
		t.Error("basic sheet solved a trig integrand, extended rules leaked in")
	}
}

func TestRunBasicProblemSkipsExtendedRules(t *testing.T) {
	t.Parallel()
	k := symbolic.NewKernel()
	w := &Worksheet{
		Name: "mixed modes",
		Problems: []Problem{
			{Expression: "sin(x)", Basic: true},
			{Expression: "sin(x)"},
		},
	}

	results := Run(k, w, steps.Options{Extended: true})
	if results[0].Steps.Solved {
		t.Error("basic problem solved a trig integrand, extended rules leaked in")
	}
	if !results[1].Steps.Solved {
		t.Error("unrestricted problem should solve sin(x)")
	}
}

func TestRunRecordsFailures(t *testing.T) {
	t.Parallel()
	k := symbolic.NewKernel()
	w := &Worksheet{
		Name:     "broken",
		Problems: []Problem{{Expression: "2*(x"}, {Expression: "x"}},
	}

	results := Run(k, w, steps.Options{})
	if results[0].Err == nil {
		t.Error("malformed expression should record an error")
	}
	if results[1].Err != nil {
		t.Errorf("good problem should still run, got %v", results[1].Err)
	}
}

func TestCombined(t *testing.T) {
	t.Parallel()
	k := symbolic.NewKernel()
	w := &Worksheet{
		Name: "report",
		Problems: []Problem{
			{Title: "Warm-up", Expression: "x^2"},
			{Expression: "3*("},
		},
	}

	doc := Combined(Run(k, w, steps.Options{Extended: true}))
	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d top-level blocks, want 2", len(doc.Blocks))
	}

	first := doc.Blocks[0]
	if first.Kind != document.KindGroup || first.Title != "Warm-up" {
		t.Errorf("Blocks[0] = %v %q, want group titled Warm-up", first.Kind, first.Title)
	}
	if len(first.Children) == 0 {
		t.Fatal("Blocks[0] has no children")
	}
	for _, c := range first.Children {
		if c.Level < 1 {
			t.Errorf("child level = %d, want >= 1", c.Level)
		}
	}

	second := doc.Blocks[1]
	if second.Title != "Problem 2: 3*(" {
		t.Errorf("Blocks[1].Title = %q", second.Title)
	}
	if len(second.Children) != 1 || second.Children[0].Kind != document.KindText ||
		!strings.Contains(second.Children[0].Text, "Skipped") {
		t.Errorf("failed problem children = %+v, want one Skipped note", second.Children)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	k := symbolic.NewKernel()
	w := &Worksheet{
		Name: "mixed",
		Problems: []Problem{
			{Expression: "x^2"},
			{Expression: "sin(sin(x))"},
			{Expression: "3*("},
		},
	}

	s := Summarize(Run(k, w, steps.Options{Extended: true}))
	if s.Total != 3 || s.Solved != 1 || s.Unsolved != 1 || s.Failed != 1 {
		t.Fatalf("Summarize() = %+v, want 3/1/1/1", s)
	}
	if got := s.String(); got != "3 problems: 1 solved, 1 unsolved, 1 failed" {
		t.Errorf("String() = %q", got)
	}
}
