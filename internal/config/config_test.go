package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/deeklead/scribe/internal/constants"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")

	_, err := Load(path)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load(missing) error = %v, want ErrNotFound", err)
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault(missing) error = %v", err)
	}
	if cfg.Variable != constants.DefaultVariable {
		t.Errorf("Variable = %q, want %q", cfg.Variable, constants.DefaultVariable)
	}
	if cfg.Format != constants.DefaultFormat {
		t.Errorf("Format = %q, want %q", cfg.Format, constants.DefaultFormat)
	}
	if cfg.MaxDepth != constants.DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", cfg.MaxDepth, constants.DefaultMaxDepth)
	}
	if cfg.Basic {
		t.Error("Basic = true, want false by default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	want := &Config{
		Version:  CurrentVersion,
		Variable: "t",
		Basic:    true,
		Format:   "html",
		Addr:     ":9000",
		MaxDepth: 16,
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSaveFileMode(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")

	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if got := info.Mode().Perm(); got != constants.FileMode {
		t.Errorf("file mode = %o, want %o", got, constants.FileMode)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")

	if err := os.WriteFile(path, []byte(`{"version": 1, "variable": "y"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Variable != "y" {
		t.Errorf("Variable = %q, want %q", cfg.Variable, "y")
	}
	if cfg.Format != constants.DefaultFormat {
		t.Errorf("Format = %q, want default %q", cfg.Format, constants.DefaultFormat)
	}
	if cfg.Addr != constants.DefaultAddr {
		t.Errorf("Addr = %q, want default %q", cfg.Addr, constants.DefaultAddr)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")

	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load(garbage) error = nil, want parse error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"defaults", *Default(), nil},
		{"future version", Config{Version: CurrentVersion + 1}, ErrInvalidVersion},
		{"negative depth", Config{MaxDepth: -1}, ErrInvalidField},
		{"unknown format", Config{Format: "pdf"}, ErrInvalidField},
		{"known format", Config{Format: "markdown"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
