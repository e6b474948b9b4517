package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Editor.TickMillis != 5 {
		t.Errorf("expected tick_ms 5, got %d", cfg.Editor.TickMillis)
	}
	if cfg.Editor.InputPollMillis != 1 {
		t.Errorf("expected input_poll_ms 1, got %d", cfg.Editor.InputPollMillis)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %q", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[editor]
tick_ms = 10
input_poll_ms = 2

[log]
level = "debug"

[keymap]
path = "keys.lua"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Editor.TickMillis != 10 {
		t.Errorf("expected tick_ms 10, got %d", cfg.Editor.TickMillis)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Log.Level)
	}
	if cfg.Keymap.Path != "keys.lua" {
		t.Errorf("expected keymap path keys.lua, got %q", cfg.Keymap.Path)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
editor:
  tick_ms: 8
  input_poll_ms: 3
log:
  level: warn
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Editor.TickMillis != 8 {
		t.Errorf("expected tick_ms 8, got %d", cfg.Editor.TickMillis)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected level warn, got %q", cfg.Log.Level)
	}
}

func TestLoadKeepsDefaultsForOmittedKeys(t *testing.T) {
	path := writeFile(t, "config.toml", `
[log]
level = "error"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Editor.TickMillis != 5 {
		t.Errorf("omitted tick_ms should keep default 5, got %d", cfg.Editor.TickMillis)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("empty path should not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeFile(t, "config.toml", "[editor\ntick_ms = ")

	_, err := Load(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Path != path {
		t.Errorf("ParseError path = %q, want %q", parseErr.Path, path)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "editor: [unclosed")

	_, err := Load(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick", func(c *Config) { c.Editor.TickMillis = 0 }},
		{"negative poll", func(c *Config) { c.Editor.InputPollMillis = -1 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestDurations(t *testing.T) {
	cfg := Default()
	if cfg.TickInterval() != 5*time.Millisecond {
		t.Errorf("TickInterval = %v, want 5ms", cfg.TickInterval())
	}
	if cfg.PollTimeout() != time.Millisecond {
		t.Errorf("PollTimeout = %v, want 1ms", cfg.PollTimeout())
	}
}
