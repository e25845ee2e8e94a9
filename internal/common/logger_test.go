package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs redirects the default logger to a buffer for the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	return &buf
}

func decodeLog(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogError(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	LogError(errors.New("disk gone"), "load failed", Fields{"path": "groceries.csv"})

	entry := decodeLog(t, buf)
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "load failed", entry["msg"])
	assert.Equal(t, "disk gone", entry["error"])
	assert.Equal(t, "groceries.csv", entry["path"])
}

func TestLogInfo(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	LogInfo("snapshot ready", Fields{"rules": 42})

	entry := decodeLog(t, buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "snapshot ready", entry["msg"])
	assert.EqualValues(t, 42, entry["rules"])
}

func TestLogDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	LogDebug("parsed rules", Fields{"count": 3})

	entry := decodeLog(t, buf)
	assert.Equal(t, "DEBUG", entry["level"])
	assert.EqualValues(t, 3, entry["count"])
}

func TestLogDebug_SuppressedAtInfo(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	LogDebug("parsed rules", nil)

	assert.Empty(t, buf.String())
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	for _, format := range []string{"console", "json"} {
		assert.NoError(t, SetupLogger(slog.LevelInfo, format))
	}
}
