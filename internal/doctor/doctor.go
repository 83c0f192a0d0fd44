// Package doctor runs health checks over a scribe installation: the
// config file, the history store, the derivation engine and the
// export browser. Checks that know how to repair their findings
// implement Fixable and are invoked by doctor --fix.
package doctor

import (
	"fmt"
	"io"

	"github.com/deeklead/scribe/internal/style"
)

// Status classifies a check outcome.
type Status string

const (
	// StatusOK means the check passed.
	StatusOK Status = "ok"
	// StatusWarning means something is off but scribe still works.
	StatusWarning Status = "warning"
	// StatusError means a subcommand will fail until this is resolved.
	StatusError Status = "error"
	// StatusInfo is informational and never counts against the run.
	StatusInfo Status = "info"
)

// Symbol returns the one-character marker printed before the check name.
func (s Status) Symbol() string {
	switch s {
	case StatusOK:
		return style.SuccessStyle.Render("✓")
	case StatusWarning:
		return style.WarnStyle.Render("⚠")
	case StatusError:
		return style.ErrorStyle.Render("✗")
	default:
		return style.MutedStyle.Render("ℹ")
	}
}

// Category groups related checks in the report.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryData   Category = "data"
	CategoryEngine Category = "engine"
	CategoryExport Category = "export"
)

// CheckContext carries the paths a check inspects. Tests point these
// at temp directories.
type CheckContext struct {
	ConfigPath  string
	HistoryPath string
	Verbose     bool
}

// CheckResult is the outcome of one check run.
type CheckResult struct {
	Name    string
	Status  Status
	Message string
	Details []string
	FixHint string
}

// Check is a single health check.
type Check interface {
	Name() string
	Description() string
	Category() Category
	Run(ctx *CheckContext) *CheckResult
}

// Fixable is a check that can repair the problems it reports.
type Fixable interface {
	Check
	Fix(ctx *CheckContext) error
}

// BaseCheck carries the identifying metadata shared by all checks.
type BaseCheck struct {
	CheckName        string
	CheckDescription string
	CheckCategory    Category
}

func (b *BaseCheck) Name() string        { return b.CheckName }
func (b *BaseCheck) Description() string { return b.CheckDescription }
func (b *BaseCheck) Category() Category  { return b.CheckCategory }

// FixableCheck marks a check whose findings doctor --fix can repair.
type FixableCheck struct {
	BaseCheck
}

// Doctor runs a set of registered checks in registration order.
type Doctor struct {
	checks []Check
}

// NewDoctor creates an empty doctor.
func NewDoctor() *Doctor {
	return &Doctor{}
}

// Register adds a check to the run list.
func (d *Doctor) Register(c Check) {
	d.checks = append(d.checks, c)
}

// RegisterAll adds several checks at once.
func (d *Doctor) RegisterAll(cs ...Check) {
	d.checks = append(d.checks, cs...)
}

// Run executes every check and collects the results.
func (d *Doctor) Run(ctx *CheckContext) *Report {
	report := &Report{}
	for _, c := range d.checks {
		report.add(c.Run(ctx))
	}
	return report
}

// Fix executes every check, attempts Fix on failing fixable checks and
// re-runs them so the report shows the post-fix state. A failed fix is
// appended to the original result's details.
func (d *Doctor) Fix(ctx *CheckContext) *Report {
	report := &Report{}
	for _, c := range d.checks {
		result := c.Run(ctx)
		if result.Status == StatusWarning || result.Status == StatusError {
			if f, ok := c.(Fixable); ok {
				if err := f.Fix(ctx); err != nil {
					result.Details = append(result.Details, fmt.Sprintf("fix failed: %v", err))
				} else {
					result = c.Run(ctx)
				}
			}
		}
		report.add(result)
	}
	return report
}

// DefaultChecks returns every built-in check in report order.
func DefaultChecks() []Check {
	return []Check{
		NewConfigCheck(),
		NewHistoryCheck(),
		NewEngineCheck(),
		NewBrowserCheck(),
	}
}

// Summary aggregates result counts by status.
type Summary struct {
	OK       int
	Warnings int
	Errors   int
	Info     int
}

// Report is the outcome of one doctor run.
type Report struct {
	Results []*CheckResult
	Summary Summary
}

func (r *Report) add(res *CheckResult) {
	r.Results = append(r.Results, res)
	switch res.Status {
	case StatusOK:
		r.Summary.OK++
	case StatusWarning:
		r.Summary.Warnings++
	case StatusError:
		r.Summary.Errors++
	case StatusInfo:
		r.Summary.Info++
	}
}

// HasErrors reports whether any check ended in StatusError.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// Print writes the report. Details print for failing checks always and
// for passing ones only when verbose.
func (r *Report) Print(w io.Writer, verbose bool) {
	for _, res := range r.Results {
		fmt.Fprintf(w, "%s %s: %s\n", res.Status.Symbol(), res.Name, res.Message)
		if verbose || res.Status == StatusWarning || res.Status == StatusError {
			for _, d := range res.Details {
				fmt.Fprintf(w, "    %s\n", d)
			}
			if res.FixHint != "" {
				fmt.Fprintf(w, "    hint: %s\n", res.FixHint)
			}
		}
	}
	fmt.Fprintf(w, "\n%d ok, %d warning(s), %d error(s)\n",
		r.Summary.OK, r.Summary.Warnings, r.Summary.Errors)
}
