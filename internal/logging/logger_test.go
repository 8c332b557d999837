package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"crmquest/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{" WARN ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q)=%s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cq.log")
	logger, err := New(config.LogConfig{Level: "info", File: path}, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("hidden at info")
	logger.Info("mission completed", zap.String("mission_id", "1"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "mission completed") || !strings.Contains(out, "mission_id") {
		t.Fatalf("log missing entry: %q", out)
	}
	if strings.Contains(out, "hidden at info") {
		t.Fatalf("debug entry written at info level: %q", out)
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cq.log")
	logger, err := New(config.LogConfig{Level: "error", File: path}, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug enabled with verbose")
	}
}
