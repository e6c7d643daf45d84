package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaptureLogger(level Level, formatter Formatter) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithLevel(level),
		WithFormatter(formatter),
		WithOutput(&WriterOutput{W: &buf}),
	)
	return logger, &buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newCaptureLogger(WarnLevel, &TextFormatter{DisableColors: true})

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg")

	out := buf.String()
	assert.NotContains(t, out, "debug msg")
	assert.NotContains(t, out, "info msg")
	assert.Contains(t, out, "warn msg")
	assert.Contains(t, out, "error msg")
}

func TestTextFormatterFields(t *testing.T) {
	logger, buf := newCaptureLogger(DebugLevel, &TextFormatter{DisableColors: true})

	logger.Info("graph built", Int("nodes", 42), Str("origin", "core"))

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "graph built")
	assert.Contains(t, out, "nodes=42")
	assert.Contains(t, out, "origin=core")
	// Fields render in sorted key order.
	assert.Less(t, strings.Index(out, "nodes="), strings.Index(out, "origin="))
}

func TestJSONFormatter(t *testing.T) {
	logger, buf := newCaptureLogger(DebugLevel, &JSONFormatter{})

	logger.Error("store open failed", Err(errors.New("boom")), Str("path", "/tmp/db"), Any("attempt", 3))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "store open failed", entry["message"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "/tmp/db", entry["path"])
	assert.Equal(t, float64(3), entry["attempt"])
}

func TestWithFields(t *testing.T) {
	logger, buf := newCaptureLogger(DebugLevel, &TextFormatter{DisableColors: true})

	child := logger.With(Str("run_id", "abc123")).WithComponent("check")
	child.Info("walk finished")

	out := buf.String()
	assert.Contains(t, out, "run_id=abc123")
	assert.Contains(t, out, "component=check")

	// The parent logger is unaffected.
	buf.Reset()
	logger.Info("plain")
	assert.NotContains(t, buf.String(), "run_id")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel("anything-else"))
}
