// Package config provides configuration loading for the osversion CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultDir is the directory under the base dir holding the config file.
const DefaultDir = ".osversion"

// ConfigFile is the config file name.
const ConfigFile = "config.yaml"

// Config holds the CLI configuration.
type Config struct {
	// LogLevel sets the logging level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// PrettyLogs enables human-readable console log output.
	PrettyLogs bool `yaml:"pretty_logs"`
	// AppendVersionTag controls whether the root command appends the
	// build-time version tag as the trailing quoted field.
	AppendVersionTag bool `yaml:"append_version_tag"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogLevel:         "warn",
		PrettyLogs:       true,
		AppendVersionTag: true,
	}
}

// Loader handles loading the configuration file.
type Loader struct {
	baseDir string
}

// NewLoader creates a new config loader. The base directory is resolved in
// this order:
//  1. OSVERSION_CONFIG environment variable.
//  2. User home directory.
//  3. The OS temp dir (containerized environments without a home dir).
//
// The loader never fails to construct: in environments without a home
// directory, Load simply returns defaults.
func NewLoader() *Loader {
	if baseDir := os.Getenv("OSVERSION_CONFIG"); baseDir != "" {
		return &Loader{baseDir: baseDir}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &Loader{baseDir: os.TempDir()}
	}
	return &Loader{baseDir: homeDir}
}

// Path returns the path to the config file.
func (l *Loader) Path() string {
	return filepath.Join(l.baseDir, DefaultDir, ConfigFile)
}

// Load reads the config file, returning defaults when it does not exist.
// A file that exists but fails to parse is an error.
func (l *Loader) Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(l.Path())
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", l.Path(), err)
	}
	return cfg, nil
}
