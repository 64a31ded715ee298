package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultWriter(t *testing.T) {
	logger := New(Config{Level: slog.LevelInfo, Format: "json"})

	assert.NotNil(t, logger)
	assert.NotNil(t, logger.Logger)
}

func TestNew_CustomWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "json", Writer: &buf})

	logger.Info("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), `"level":"INFO"`)
}

func TestNew_FormatAutoDetection(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		want        string
	}{
		{name: "production uses json", environment: "production", want: `"msg":"test"`},
		{name: "development off a terminal uses logfmt", environment: "development", want: "msg=test"},
		{name: "staging off a terminal uses logfmt", environment: "staging", want: "msg=test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: slog.LevelInfo, Environment: tt.environment, Writer: &buf})

			logger.Info("test")

			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNew_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "pretty", Writer: &buf})

	logger.Info("preferences loaded", "font_size", 18)

	output := buf.String()
	assert.Contains(t, output, "INFO")
	assert.Contains(t, output, "preferences loaded")
	assert.Contains(t, output, "font_size=18")
	assert.NotContains(t, output, "{")
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, formatJSON, detectFormat("production", os.Stdout))
	assert.Equal(t, formatLogfmt, detectFormat("development", &bytes.Buffer{}))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "json", Writer: &buf})

	logger.WithError(errors.New("disk full")).Error("write failed")

	assert.Contains(t, buf.String(), `"error":"disk full"`)
}

func TestLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "json", Writer: &buf})

	logger.WithField("key", "reading:font_size").Info("persisted")

	assert.Contains(t, buf.String(), `"key":"reading:font_size"`)
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "json", Writer: &buf})

	logger.WithFields(map[string]any{"mode": "dark", "index": 2}).Info("theme changed")

	output := buf.String()
	assert.Contains(t, output, `"mode":"dark"`)
	assert.Contains(t, output, `"index":2`)
}

func TestLogger_LevelFiltering(t *testing.T) {
	for _, format := range []string{"json", "pretty", "logfmt"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: slog.LevelWarn, Format: format, Writer: &buf})

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")

			output := buf.String()
			assert.NotContains(t, output, "debug message")
			assert.NotContains(t, output, "info message")
			assert.Contains(t, output, "warn message")
		})
	}
}

func TestLogger_ChainedWithMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "logfmt", Writer: &buf})

	logger.WithField("component", "store").WithError(errors.New("boom")).Warn("fallback")

	output := buf.String()
	assert.Contains(t, output, "component=store")
	assert.Contains(t, output, "error=boom")
}
