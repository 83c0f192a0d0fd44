package doctor

import (
	"errors"
	"fmt"
	"os"

	"github.com/deeklead/scribe/internal/config"
)

// ConfigCheck verifies the config file parses and validates. A missing
// file passes; scribe runs on defaults without one.
type ConfigCheck struct {
	FixableCheck
}

// NewConfigCheck creates a new config file check.
func NewConfigCheck() *ConfigCheck {
	return &ConfigCheck{
		FixableCheck: FixableCheck{
			BaseCheck: BaseCheck{
				CheckName:        "config-file",
				CheckDescription: "Check the config file parses and validates",
				CheckCategory:    CategoryConfig,
			},
		},
	}
}

// Run loads the config file and reports what it found.
func (c *ConfigCheck) Run(ctx *CheckContext) *CheckResult {
	cfg, err := config.Load(ctx.ConfigPath)
	if errors.Is(err, config.ErrNotFound) {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusOK,
			Message: "No config file, defaults in use",
		}
	}
	if err != nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusError,
			Message: fmt.Sprintf("Config file %s is invalid", ctx.ConfigPath),
			Details: []string{err.Error()},
			FixHint: "Run 'scribe doctor --fix' to move it aside and write defaults",
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  StatusOK,
		Message: fmt.Sprintf("Config valid (variable %s, format %s)", cfg.Variable, cfg.Format),
	}
}

// Fix moves the broken file to <path>.bad and writes defaults in its
// place.
func (c *ConfigCheck) Fix(ctx *CheckContext) error {
	if err := os.Rename(ctx.ConfigPath, ctx.ConfigPath+".bad"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("moving broken config aside: %w", err)
	}
	return config.Save(ctx.ConfigPath, config.Default())
}
