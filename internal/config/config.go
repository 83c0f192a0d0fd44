// Package config loads and saves persistent CLI preferences.
//
// The config file is plain JSON under the scribe config directory
// (~/.scribe/config.json unless SCRIBE_CONFIG_DIR overrides it). A
// missing file is not an error for callers that use LoadOrDefault;
// every field has a usable default.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deeklead/scribe/internal/constants"
	"github.com/deeklead/scribe/internal/render"
)

// CurrentVersion is the highest config schema version this build understands.
const CurrentVersion = 1

var (
	// ErrNotFound indicates the config file does not exist.
	ErrNotFound = errors.New("config file not found")

	// ErrInvalidVersion indicates an unsupported schema version.
	ErrInvalidVersion = errors.New("unsupported config version")

	// ErrInvalidField indicates a field holds a value scribe cannot use.
	ErrInvalidField = errors.New("invalid config field")
)

// Config holds the persistent preferences of the scribe CLI.
// Zero values mean "use the built-in default"; Load fills them in.
type Config struct {
	Version  int    `json:"version"`
	Variable string `json:"variable,omitempty"`
	Basic    bool   `json:"basic,omitempty"`
	Format   string `json:"format,omitempty"`
	Addr     string `json:"addr,omitempty"`
	MaxDepth int    `json:"max_depth,omitempty"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Version:  CurrentVersion,
		Variable: constants.DefaultVariable,
		Basic:    false,
		Format:   constants.DefaultFormat,
		Addr:     constants.DefaultAddr,
		MaxDepth: constants.DefaultMaxDepth,
	}
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from trusted config location
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return fillDefaults(&config), nil
}

// LoadOrDefault loads the config at path, returning defaults when the
// file does not exist. Other errors are still reported.
func LoadOrDefault(path string) (*Config, error) {
	config, err := Load(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Default(), nil
		}
		return nil, err
	}
	return config, nil
}

// Save validates and writes the config to path, creating the
// directory if needed.
func Save(path string, config *Config) error {
	if err := validate(config); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.DirMode); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.FileMode); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// validate checks a Config for values scribe cannot run with.
func validate(c *Config) error {
	if c.Version > CurrentVersion {
		return fmt.Errorf("%w: got %d, max supported %d", ErrInvalidVersion, c.Version, CurrentVersion)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must be non-negative", ErrInvalidField)
	}
	if c.Format != "" {
		if _, err := render.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("%w: format: %v", ErrInvalidField, err)
		}
	}
	return nil
}

// fillDefaults fills empty fields with the built-in defaults.
// The original is not modified.
func fillDefaults(c *Config) *Config {
	if c == nil {
		return Default()
	}
	result := *c
	if result.Variable == "" {
		result.Variable = constants.DefaultVariable
	}
	if result.Format == "" {
		result.Format = constants.DefaultFormat
	}
	if result.Addr == "" {
		result.Addr = constants.DefaultAddr
	}
	if result.MaxDepth == 0 {
		result.MaxDepth = constants.DefaultMaxDepth
	}
	return &result
}
