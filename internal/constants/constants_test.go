package constants

import (
	"path/filepath"
	"testing"
)

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if got != dir {
		t.Fatalf("ConfigDir = %q, want %q", got, dir)
	}

	cfg, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath: %v", err)
	}
	if want := filepath.Join(dir, FileConfig); cfg != want {
		t.Fatalf("ConfigPath = %q, want %q", cfg, want)
	}

	hist, err := HistoryPath()
	if err != nil {
		t.Fatalf("HistoryPath: %v", err)
	}
	if want := filepath.Join(dir, FileHistory); hist != want {
		t.Fatalf("HistoryPath = %q, want %q", hist, want)
	}
}

func TestConfigDirDefaultsToHome(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if filepath.Base(got) != DirConfig {
		t.Fatalf("ConfigDir = %q, want a %s directory", got, DirConfig)
	}
}
