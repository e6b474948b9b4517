package app

import (
	"strings"
	"sync"
	"testing"
)

// syncBuffer is a goroutine-safe string sink for logger tests.
type syncBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestLoggerLevels(t *testing.T) {
	buf := &syncBuffer{}
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: buf})

	logger.Debug("ignored debug")
	logger.Info("ignored info")
	logger.Warn("kept warn")
	logger.Error("kept error")

	out := buf.String()
	if strings.Contains(out, "ignored") {
		t.Errorf("below-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "kept warn") || !strings.Contains(out, "kept error") {
		t.Errorf("expected warn and error lines, got %q", out)
	}
}

func TestLoggerPrefixAndFields(t *testing.T) {
	buf := &syncBuffer{}
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: buf, Prefix: "quill"})

	logger.WithComponent("config").WithField("path", "a.toml").Info("loaded")

	out := buf.String()
	if !strings.Contains(out, "quill:") {
		t.Errorf("missing prefix in %q", out)
	}
	if !strings.Contains(out, "component=config") || !strings.Contains(out, "path=a.toml") {
		t.Errorf("missing fields in %q", out)
	}
}

func TestLoggerFormatsArgs(t *testing.T) {
	buf := &syncBuffer{}
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: buf})

	logger.Info("resized to %dx%d", 80, 24)

	if !strings.Contains(buf.String(), "resized to 80x24") {
		t.Errorf("args not formatted: %q", buf.String())
	}
}

func TestSetLevelPropagatesToDerivedLoggers(t *testing.T) {
	buf := &syncBuffer{}
	root := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: buf})
	derived := root.WithComponent("loop")

	root.SetLevel(LogLevelError)
	derived.Info("should be filtered")

	if strings.Contains(buf.String(), "filtered") {
		t.Errorf("derived logger ignored the root level change: %q", buf.String())
	}
	if derived.Level() != LogLevelError {
		t.Errorf("derived level = %v, want error", derived.Level())
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	// Must not panic and must not write anywhere.
	NullLogger.Error("dropped")
	NullLogger.WithField("k", "v").Info("dropped")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	if LogLevelDebug.String() != "DEBUG" || LogLevelError.String() != "ERROR" {
		t.Error("unexpected level names")
	}
	if LogLevel(42).String() != "UNKNOWN" {
		t.Error("out-of-range level should be UNKNOWN")
	}
}
