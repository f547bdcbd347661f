// Package config loads codecat configuration from an optional YAML
// file at the scan root. Flags override config values; config values
// override the built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the scan root.
const FileName = ".codecat.yaml"

// Config is the complete codecat configuration.
type Config struct {
	Version int          `yaml:"version"`
	Output  OutputConfig `yaml:"output"`
	Scan    ScanConfig   `yaml:"scan"`
	Watch   WatchConfig  `yaml:"watch"`
	Log     LogConfig    `yaml:"log"`
}

// OutputConfig configures the combined artifact.
type OutputConfig struct {
	// Path is where the artifact is written, relative to the working
	// directory unless absolute.
	Path string `yaml:"path"`
}

// ScanConfig configures traversal and filtering.
type ScanConfig struct {
	// IgnoreFile is the per-directory ignore file name.
	IgnoreFile string `yaml:"ignore_file"`

	// MaxFileSize skips files larger than this many bytes. 0 disables
	// the guard.
	MaxFileSize int64 `yaml:"max_file_size"`

	// FollowSymlinks includes symlinked files instead of skipping them.
	FollowSymlinks bool `yaml:"follow_symlinks"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	// Debounce is how long to coalesce filesystem events before
	// rebuilding, as a Go duration string (e.g. "200ms").
	Debounce string `yaml:"debounce"`
}

// LogConfig configures diagnostics.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// File, when set, also appends JSON log lines to this file.
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: 1,
		Output:  OutputConfig{Path: "combined.txt"},
		Scan:    ScanConfig{IgnoreFile: ".gitignore"},
		Watch:   WatchConfig{Debounce: "200ms"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads the config file at path, layered over the defaults. A
// missing file yields the defaults; a malformed or invalid file is an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks invariants that YAML decoding cannot.
func (c *Config) Validate() error {
	if c.Output.Path == "" {
		return fmt.Errorf("output.path must not be empty")
	}
	if c.Scan.IgnoreFile == "" {
		return fmt.Errorf("scan.ignore_file must not be empty")
	}
	if c.Scan.MaxFileSize < 0 {
		return fmt.Errorf("scan.max_file_size must not be negative")
	}
	if _, err := c.DebounceDuration(); err != nil {
		return err
	}
	return nil
}

// DebounceDuration parses Watch.Debounce. An empty value yields zero,
// which callers treat as "use the default window".
func (c *Config) DebounceDuration() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch.debounce %q: %w", c.Watch.Debounce, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("watch.debounce must not be negative")
	}
	return d, nil
}
