package logging

import (
	"log/slog"
	"testing"
)

func TestNewLoggerDefaults(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatalf("expected logger")
	}
	if !logger.Enabled(nil, slog.LevelInfo) {
		t.Fatalf("expected info enabled by default")
	}
	if logger.Enabled(nil, slog.LevelDebug) {
		t.Fatalf("expected debug disabled by default")
	}
}

func TestNewLoggerLevelParsing(t *testing.T) {
	logger := NewLogger(Config{Level: "debug"})
	if !logger.Enabled(nil, slog.LevelDebug) {
		t.Fatalf("expected debug enabled")
	}

	logger = NewLogger(Config{Level: "error"})
	if logger.Enabled(nil, slog.LevelWarn) {
		t.Fatalf("expected warn disabled at error level")
	}
}

func TestHelpersNilSafe(t *testing.T) {
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", nil)
}
