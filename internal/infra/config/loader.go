// Package config resolves where the todo file lives.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvFile is the environment variable overriding the todo file path.
const EnvFile = "TODOSTER_FILE"

// fileName is the default todo file name inside the config directory.
const fileName = "todos.toml"

// configFileName is the optional app config file inside the config directory.
const configFileName = "config.toml"

// appConfig is the shape of config.toml. Only the store path is
// configurable today.
type appConfig struct {
	File string `toml:"file"`
}

// Loader resolves the todo file path from flag, environment, config
// file and default, in that order of precedence.
type Loader struct {
	configDir string // Per-user config directory, e.g. ~/.config/todoster
}

// NewLoader creates a Loader rooted at the given config directory.
func NewLoader(configDir string) *Loader {
	return &Loader{configDir: configDir}
}

// DefaultConfigDir returns the per-user config directory for todoster:
// $XDG_CONFIG_HOME/todoster, falling back to ~/.config/todoster, and
// finally the current directory when no home is known.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "todoster"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "todoster")
}

// StorePath resolves the todo file path. flagPath is the value of the
// global --file flag and wins outright when set.
func (l *Loader) StorePath(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}

	if envPath := os.Getenv(EnvFile); envPath != "" {
		return envPath, nil
	}

	cfg, err := l.loadConfigFile()
	if err != nil {
		return "", err
	}
	if cfg != nil && cfg.File != "" {
		return cfg.File, nil
	}

	return filepath.Join(l.configDir, fileName), nil
}

// loadConfigFile reads config.toml if present. A missing file is fine;
// a malformed one is an error so a typo cannot silently redirect the
// store to the default path.
func (l *Loader) loadConfigFile() (*appConfig, error) {
	path := filepath.Join(l.configDir, configFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg appConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}
