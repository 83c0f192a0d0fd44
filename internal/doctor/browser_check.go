package doctor

import (
	"fmt"

	"github.com/go-rod/rod/lib/launcher"
)

// BrowserCheck reports whether a Chromium-based browser is available
// for PNG export. A missing browser is informational; every other
// subcommand works without one.
type BrowserCheck struct {
	BaseCheck
	lookPath func() (string, bool) // nil means use the real launcher
}

// NewBrowserCheck creates a new export browser check.
func NewBrowserCheck() *BrowserCheck {
	return &BrowserCheck{
		BaseCheck: BaseCheck{
			CheckName:        "export-browser",
			CheckDescription: "Check a Chromium-based browser is available for PNG export",
			CheckCategory:    CategoryExport,
		},
	}
}

// NewBrowserCheckWithLookPath creates a check with a custom browser
// locator (for testing).
func NewBrowserCheckWithLookPath(lookPath func() (string, bool)) *BrowserCheck {
	c := NewBrowserCheck()
	c.lookPath = lookPath
	return c
}

// Run looks for a usable browser binary.
func (c *BrowserCheck) Run(ctx *CheckContext) *CheckResult {
	lookPath := c.lookPath
	if lookPath == nil {
		lookPath = launcher.LookPath
	}

	bin, ok := lookPath()
	if !ok {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusInfo,
			Message: "No Chromium-based browser found",
			Details: []string{"'scribe export' needs one; everything else works without it."},
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  StatusOK,
		Message: fmt.Sprintf("Browser found: %s", bin),
	}
}
