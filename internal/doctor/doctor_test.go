package doctor

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// stubCheck returns a canned result and counts its runs.
type stubCheck struct {
	BaseCheck
	status Status
	runs   int
}

func newStubCheck(name string, status Status) *stubCheck {
	return &stubCheck{
		BaseCheck: BaseCheck{
			CheckName:        name,
			CheckDescription: "stub",
			CheckCategory:    CategoryConfig,
		},
		status: status,
	}
}

func (c *stubCheck) Run(ctx *CheckContext) *CheckResult {
	c.runs++
	return &CheckResult{Name: c.Name(), Status: c.status, Message: "stub message"}
}

// stubFixable fails until Fix is called.
type stubFixable struct {
	FixableCheck
	fixed  bool
	fixErr error
}

func newStubFixable(name string) *stubFixable {
	return &stubFixable{
		FixableCheck: FixableCheck{
			BaseCheck: BaseCheck{
				CheckName:        name,
				CheckDescription: "stub",
				CheckCategory:    CategoryData,
			},
		},
	}
}

func (c *stubFixable) Run(ctx *CheckContext) *CheckResult {
	if c.fixed {
		return &CheckResult{Name: c.Name(), Status: StatusOK, Message: "repaired"}
	}
	return &CheckResult{Name: c.Name(), Status: StatusError, Message: "broken"}
}

func (c *stubFixable) Fix(ctx *CheckContext) error {
	if c.fixErr != nil {
		return c.fixErr
	}
	c.fixed = true
	return nil
}

func TestDoctorRunCollectsResults(t *testing.T) {
	d := NewDoctor()
	d.Register(newStubCheck("one", StatusOK))
	d.Register(newStubCheck("two", StatusWarning))
	d.Register(newStubCheck("three", StatusError))
	d.Register(newStubCheck("four", StatusInfo))

	report := d.Run(&CheckContext{})

	if len(report.Results) != 4 {
		t.Fatalf("len(Results) = %d, want 4", len(report.Results))
	}
	want := Summary{OK: 1, Warnings: 1, Errors: 1, Info: 1}
	if report.Summary != want {
		t.Errorf("Summary = %+v, want %+v", report.Summary, want)
	}
	if !report.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestDoctorRunDoesNotFix(t *testing.T) {
	c := newStubFixable("repairable")
	d := NewDoctor()
	d.Register(c)

	report := d.Run(&CheckContext{})

	if c.fixed {
		t.Error("Run() invoked Fix")
	}
	if !report.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestDoctorFixRepairsAndReruns(t *testing.T) {
	c := newStubFixable("repairable")
	d := NewDoctor()
	d.Register(c)

	report := d.Fix(&CheckContext{})

	if !c.fixed {
		t.Fatal("Fix was not invoked")
	}
	if report.HasErrors() {
		t.Error("HasErrors() = true after a successful fix")
	}
	if got := report.Results[0].Message; got != "repaired" {
		t.Errorf("Message = %q, want %q", got, "repaired")
	}
}

func TestDoctorFixKeepsFailureWhenFixFails(t *testing.T) {
	c := newStubFixable("stuck")
	c.fixErr = errors.New("disk full")
	d := NewDoctor()
	d.Register(c)

	report := d.Fix(&CheckContext{})

	if !report.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
	res := report.Results[0]
	if len(res.Details) == 0 || !strings.Contains(res.Details[len(res.Details)-1], "disk full") {
		t.Errorf("Details = %v, want fix failure appended", res.Details)
	}
}

func TestDoctorFixSkipsPassingChecks(t *testing.T) {
	c := newStubFixable("repairable")
	c.fixed = true
	d := NewDoctor()
	d.Register(c)

	d.Fix(&CheckContext{})

	// A passing fixable check runs once; Fix must not re-run it.
	if got := c.Run(&CheckContext{}); got.Status != StatusOK {
		t.Errorf("Status = %v, want StatusOK", got.Status)
	}
}

func TestReportPrint(t *testing.T) {
	d := NewDoctor()
	d.Register(newStubCheck("alpha", StatusOK))
	bad := newStubCheck("beta", StatusError)
	d.Register(bad)

	report := d.Run(&CheckContext{})
	report.Results[1].Details = []string{"something broke"}
	report.Results[1].FixHint = "try --fix"

	var buf bytes.Buffer
	report.Print(&buf, false)
	out := buf.String()

	for _, want := range []string{"alpha", "beta", "something broke", "hint: try --fix", "1 ok, 0 warning(s), 1 error(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Print output missing %q:\n%s", want, out)
		}
	}
}

func TestReportPrintHidesPassingDetailsUnlessVerbose(t *testing.T) {
	d := NewDoctor()
	d.Register(newStubCheck("alpha", StatusOK))

	report := d.Run(&CheckContext{})
	report.Results[0].Details = []string{"extra context"}

	var quiet bytes.Buffer
	report.Print(&quiet, false)
	if strings.Contains(quiet.String(), "extra context") {
		t.Error("non-verbose Print shows details of passing checks")
	}

	var loud bytes.Buffer
	report.Print(&loud, true)
	if !strings.Contains(loud.String(), "extra context") {
		t.Error("verbose Print hides details of passing checks")
	}
}

func TestDefaultChecks(t *testing.T) {
	checks := DefaultChecks()
	if len(checks) != 4 {
		t.Fatalf("len(DefaultChecks()) = %d, want 4", len(checks))
	}
	seen := map[Category]bool{}
	for _, c := range checks {
		if c.Name() == "" || c.Description() == "" {
			t.Errorf("check %T has empty metadata", c)
		}
		seen[c.Category()] = true
	}
	for _, cat := range []Category{CategoryConfig, CategoryData, CategoryEngine, CategoryExport} {
		if !seen[cat] {
			t.Errorf("no check registered for category %s", cat)
		}
	}
}
