package doctor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deeklead/scribe/internal/config"
)

func TestConfigCheck_MissingFile(t *testing.T) {
	t.Parallel()

	ctx := &CheckContext{ConfigPath: filepath.Join(t.TempDir(), "config.json")}
	result := NewConfigCheck().Run(ctx)

	if result.Status != StatusOK {
		t.Errorf("Status = %v, want StatusOK", result.Status)
	}
	if result.Message != "No config file, defaults in use" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestConfigCheck_ValidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := config.Save(path, config.Default()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	result := NewConfigCheck().Run(&CheckContext{ConfigPath: path})

	if result.Status != StatusOK {
		t.Errorf("Status = %v, want StatusOK", result.Status)
	}
	if !strings.Contains(result.Message, "Config valid") {
		t.Errorf("Message = %q, want config summary", result.Message)
	}
}

func TestConfigCheck_InvalidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	check := NewConfigCheck()
	result := check.Run(&CheckContext{ConfigPath: path})

	if result.Status != StatusError {
		t.Fatalf("Status = %v, want StatusError", result.Status)
	}
	if result.FixHint == "" {
		t.Error("FixHint is empty for a fixable failure")
	}
}

func TestConfigCheck_FixReplacesBrokenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	check := NewConfigCheck()
	ctx := &CheckContext{ConfigPath: path}
	if err := check.Fix(ctx); err != nil {
		t.Fatalf("Fix() error = %v", err)
	}

	if _, err := os.Stat(path + ".bad"); err != nil {
		t.Errorf("broken config was not moved aside: %v", err)
	}

	result := check.Run(ctx)
	if result.Status != StatusOK {
		t.Errorf("Status after fix = %v, want StatusOK", result.Status)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() after fix error = %v", err)
	}
	if *cfg != *config.Default() {
		t.Errorf("config after fix = %+v, want defaults", cfg)
	}
}

func TestConfigCheck_FutureVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"version": 99}`), 0o600); err != nil {
		t.Fatal(err)
	}

	result := NewConfigCheck().Run(&CheckContext{ConfigPath: path})

	if result.Status != StatusError {
		t.Errorf("Status = %v, want StatusError", result.Status)
	}
}
