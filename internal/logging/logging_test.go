package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level, env string
		want       slog.Level
	}{
		{"", "", slog.LevelDebug},
		{"", "development", slog.LevelDebug},
		{"", "production", slog.LevelInfo},
		{"WARN", "production", slog.LevelWarn},
		{"error", "development", slog.LevelError},
		{"debug", "production", slog.LevelDebug},
		{"verbose", "staging", slog.LevelInfo},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, parseLevel(tc.level, tc.env), "level=%q env=%q", tc.level, tc.env)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "json", "info", "production")

	logger.Debug("hidden")
	logger.Info("lead relayed", "widget_id", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "lead relayed", entry["msg"])
	assert.Equal(t, "abc", entry["widget_id"])
}

func TestNewWithWriter_TextIncludesSource(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "", "", "development")

	logger.Debug("content reloaded")

	assert.Contains(t, buf.String(), "content reloaded")
	assert.Contains(t, buf.String(), "source=")
}
