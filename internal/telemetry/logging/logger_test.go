package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"go.uber.org/zap/zapcore"
)

// bufSyncer adapts a *bytes.Buffer to zapcore.WriteSyncer for tests.
type bufSyncer struct{ *bytes.Buffer }

func (bufSyncer) Sync() error { return nil }

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		format string
		level  string
	}{
		{"JSON Info", "json", "info"},
		{"JSON Debug", "json", "debug"},
		{"JSON Error", "json", "error"},
		{"Console Info", "console", "info"},
		{"Console Debug", "console", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(Config{Format: tt.format, Level: tt.level})
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			logger.Info("heartbeat")
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(Config{Format: "json", Level: "invalid"})
	if err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "info", Output: bufSyncer{&buf}})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Info("json test", zapcore.Field{Key: "foo", Type: zapcore.StringType, String: "bar"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON output: %v, output: %s", err, buf.String())
	}
	if entry["msg"] != "json test" {
		t.Errorf("expected msg='json test', got %v", entry["msg"])
	}
	if entry["foo"] != "bar" {
		t.Errorf("expected foo='bar', got %v", entry["foo"])
	}
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "warn", Output: bufSyncer{&buf}})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	output := buf.String()
	if bytes.Contains([]byte(output), []byte("debug message")) {
		t.Error("debug message should be filtered at warn level")
	}
	if bytes.Contains([]byte(output), []byte("info message")) {
		t.Error("info message should be filtered at warn level")
	}
	if !bytes.Contains([]byte(output), []byte("warn message")) {
		t.Error("warn message should be present")
	}
}

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger()
	logger.Info("this should be discarded")
	logger.Error("this too")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Format != "json" {
		t.Errorf("expected default format='json', got %s", cfg.Format)
	}
	if cfg.Level != "info" {
		t.Errorf("expected default level='info', got %s", cfg.Level)
	}
}
