// Package config loads and validates the TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/xolan/suds/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "suds"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Refresh interval bounds in milliseconds. The stopwatch display is
// refreshed on this period; 100ms is the reference cadence.
const (
	DefaultRefreshIntervalMS = 100
	MinRefreshIntervalMS     = 50
	MaxRefreshIntervalMS     = 1000
)

// Config represents the application configuration
type Config struct {
	// Theme is the bubbletint theme name used by the TUI
	Theme string `toml:"theme"`
	// ExportDir is the directory prefilled in the CSV export prompt
	ExportDir string `toml:"export_dir"`
	// RefreshIntervalMS is the stopwatch display refresh period in milliseconds
	RefreshIntervalMS int `toml:"refresh_interval_ms"`
}

// DefaultConfig returns a Config with sensible defaults.
// - theme: "" (TUI falls back to its default theme)
// - export_dir: the user's home directory, or "" if undeterminable
// - refresh_interval_ms: 100 (10 updates per second)
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return Config{
		Theme:             "",
		ExportDir:         home,
		RefreshIntervalMS: DefaultRefreshIntervalMS,
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file at the given path, merging it
// over the defaults. A missing file is not an error: the defaults are
// returned as-is. Invalid TOML or invalid settings are errors.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Normalize clamps out-of-range values to their nearest valid value.
// A zero refresh interval means "unset" and takes the default.
func (c *Config) Normalize() {
	if c.RefreshIntervalMS == 0 {
		c.RefreshIntervalMS = DefaultRefreshIntervalMS
	}
	if c.RefreshIntervalMS < MinRefreshIntervalMS {
		c.RefreshIntervalMS = MinRefreshIntervalMS
	}
	if c.RefreshIntervalMS > MaxRefreshIntervalMS {
		c.RefreshIntervalMS = MaxRefreshIntervalMS
	}
}

// Validate checks the configuration for values Normalize cannot fix.
func (c *Config) Validate() error {
	if c.RefreshIntervalMS < MinRefreshIntervalMS || c.RefreshIntervalMS > MaxRefreshIntervalMS {
		return fmt.Errorf("refresh_interval_ms must be between %d and %d, got %d",
			MinRefreshIntervalMS, MaxRefreshIntervalMS, c.RefreshIntervalMS)
	}
	if c.ExportDir != "" {
		if info, err := os.Stat(c.ExportDir); err == nil && !info.IsDir() {
			return fmt.Errorf("export_dir is not a directory: %s", c.ExportDir)
		}
	}
	return nil
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# suds configuration file

# Theme: bubbletint theme name (e.g., "dracula", "gruvbox_dark")
theme = "dracula"

# Export directory: prefilled in the CSV export prompt
# Defaults to your home directory when unset
# export_dir = "/home/user/exposure-data"

# Stopwatch refresh period in milliseconds (50-1000)
refresh_interval_ms = 100
`
}
