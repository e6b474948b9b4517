// Package config loads editor configuration from TOML or YAML files and
// reloads it while the editor runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the full editor configuration.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Keymap KeymapConfig `toml:"keymap" yaml:"keymap"`
}

// EditorConfig controls run-loop pacing.
type EditorConfig struct {
	// TickMillis is the per-cycle sleep before rendering.
	TickMillis int `toml:"tick_ms" yaml:"tick_ms"`

	// InputPollMillis bounds the per-cycle wait for an input event.
	InputPollMillis int `toml:"input_poll_ms" yaml:"input_poll_ms"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// File is an optional log destination; stderr when empty.
	File string `toml:"file" yaml:"file"`
}

// KeymapConfig points at an optional Lua keymap script.
type KeymapConfig struct {
	Path string `toml:"path" yaml:"path"`
}

// Default returns the built-in configuration: a 5ms frame tick and a
// 1ms input poll.
func Default() Config {
	return Config{
		Editor: EditorConfig{TickMillis: 5, InputPollMillis: 1},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the file at path on top of the defaults. A missing file or
// an empty path is not an error; the defaults are returned. The codec is
// chosen by extension: .yaml and .yml parse as YAML, everything else as
// TOML.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), &ParseError{Path: path, Err: err}
		}
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Default(), &ParseError{Path: path, Err: err}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate rejects values the run loop cannot work with.
func (c Config) Validate() error {
	if c.Editor.TickMillis <= 0 {
		return fmt.Errorf("%w: editor.tick_ms must be positive, got %d", ErrInvalidConfig, c.Editor.TickMillis)
	}
	if c.Editor.InputPollMillis < 0 {
		return fmt.Errorf("%w: editor.input_poll_ms must not be negative, got %d", ErrInvalidConfig, c.Editor.InputPollMillis)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// TickInterval returns the per-cycle sleep as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Editor.TickMillis) * time.Millisecond
}

// PollTimeout returns the input poll bound as a duration.
func (c Config) PollTimeout() time.Duration {
	return time.Duration(c.Editor.InputPollMillis) * time.Millisecond
}
