// Package config handles the XDG configuration directory and config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "mintodo"

	// ConfigFile is the optional settings filename inside the config dir.
	ConfigFile = "config.yaml"

	// DefaultDateFormat is the Go layout used to display due dates.
	DefaultDateFormat = "2006-01-02"

	// DefaultPrompt is printed before each line in an interactive session.
	DefaultPrompt = "mintodo> "

	// DefaultWelcome is printed once above the list when a session starts.
	DefaultWelcome = "Welcome to mintodo. Here are your tasks for now."
)

// Settings are the values read from config.yaml.
type Settings struct {
	// Seed starts a new store with the sample tasks.
	Seed bool `yaml:"seed"`

	// Color renders status colors when the output supports it.
	Color bool `yaml:"color"`

	DateFormat string `yaml:"date_format"`
	Prompt     string `yaml:"prompt"`

	// Welcome is the session greeting; empty disables it.
	Welcome string `yaml:"welcome"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Seed:       true,
		Color:      true,
		DateFormat: DefaultDateFormat,
		Prompt:     DefaultPrompt,
		Welcome:    DefaultWelcome,
	}
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	Settings
}

// New creates a Config for the default or specified config directory and
// loads config.yaml from it when present.
// If configDir is empty, uses XDG_CONFIG_HOME/mintodo or $HOME/.config/mintodo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir, Settings: DefaultSettings()}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the path to config.yaml.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// load overlays config.yaml onto the current settings. Keys missing from the
// file keep their defaults.
func (c *Config) load() error {
	data, err := os.ReadFile(c.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	if err := yaml.Unmarshal(data, &c.Settings); err != nil {
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}
	if c.DateFormat == "" {
		c.DateFormat = DefaultDateFormat
	}
	return nil
}
