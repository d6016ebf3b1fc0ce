// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/blockdoc/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger   logger.Config  `toml:"logger"`
	History  HistoryConfig  `toml:"history"`
	Ordering OrderingConfig `toml:"ordering"`
	Editor   EditorConfig   `toml:"editor"`
}

// HistoryConfig bounds the undo and redo stacks.
type HistoryConfig struct {
	Capacity int `toml:"capacity"`
}

// OrderingConfig controls fractional index assignment.
type OrderingConfig struct {
	// InitialIndex is the key given to the first block of an empty document.
	InitialIndex float64 `toml:"initial_index"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	SystemClipboard bool `toml:"system_clipboard"`
}

// NewDefaultConfig creates a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger:   logger.NewConfig(),
		History:  HistoryConfig{Capacity: DefaultHistoryCapacity},
		Ordering: OrderingConfig{InitialIndex: DefaultInitialIndex},
		Editor:   EditorConfig{SystemClipboard: SystemClipboard},
	}
}

// DefaultPath returns the per-user config file location, or "" if unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// Load builds the effective configuration: defaults, then the TOML file at
// path (a missing file is not an error), then flag overrides, then validation.
// An empty path means DefaultPath. Unrecognized keys are returned so the
// caller can warn once logging is up.
func Load(path string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		path = DefaultPath()
	}

	var undecoded []string
	if path != "" {
		var err error
		undecoded, err = decodeFile(path, cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, undecoded, nil
}

// decodeFile decodes path over cfg, so keys absent from the file keep their current value.
func decodeFile(path string, cfg *Config) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error checking config file '%s': %w", path, err)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.History.Capacity <= 0 {
		c.History.Capacity = defaults.History.Capacity
	}
	if c.Ordering.InitialIndex <= 0 {
		c.Ordering.InitialIndex = defaults.Ordering.InitialIndex
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}
