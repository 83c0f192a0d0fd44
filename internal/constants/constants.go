// Package constants defines shared constant values used throughout scribe.
// Centralizing these magic strings improves maintainability and consistency.
package constants

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Application identity.
const (
	// AppName is the program name used in logs and page titles.
	AppName = "scribe"
)

// File and directory names for configuration and state.
const (
	// DirConfig is the per-user state directory under the home dir.
	DirConfig = ".scribe"

	// FileConfig is the JSON configuration file inside DirConfig.
	FileConfig = "config.json"

	// FileHistory is the JSONL solve log inside DirConfig.
	// A sidecar ".lock" flock file guards appends.
	FileHistory = "history.jsonl"

	// EnvConfigDir overrides DirConfig's location when set.
	EnvConfigDir = "SCRIBE_CONFIG_DIR"
)

// Defaults applied when the configuration does not say otherwise.
const (
	// DefaultVariable is the variable of integration.
	DefaultVariable = "x"

	// DefaultAddr is the listen address of the web interface.
	DefaultAddr = ":8351"

	// DefaultMaxDepth bounds rule derivation recursion.
	DefaultMaxDepth = 64

	// DefaultFormat is the render format for documents.
	DefaultFormat = "terminal"
)

// File modes for created state.
const (
	// DirMode is used for created state directories.
	DirMode = 0o755

	// FileMode is used for the config file (may hold user paths).
	FileMode = 0o600

	// OutFileMode is used for exported artifacts.
	OutFileMode = 0o644
)

// Web rendering.
const (
	// KaTeXCDN is the pinned KaTeX distribution used by HTML output.
	KaTeXCDN = "https://cdn.jsdelivr.net/npm/katex@0.16.9/dist"
)

// Timing constants for the export pipeline and the server.
const (
	// ExportSettleTimeout is how long to wait for KaTeX to finish
	// typesetting before the screenshot.
	ExportSettleTimeout = 15 * time.Second

	// ExportPollInterval is the poll cadence while waiting.
	ExportPollInterval = 100 * time.Millisecond

	// ServerShutdownTimeout bounds graceful shutdown of the web server.
	ServerShutdownTimeout = 5 * time.Second
)

// Path helpers construct common paths.

// ConfigDir returns the directory holding scribe's config and history.
// EnvConfigDir overrides the default ~/.scribe.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, DirConfig), nil
}

// ConfigPath returns the path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileConfig), nil
}

// HistoryPath returns the path to history.jsonl.
func HistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileHistory), nil
}
