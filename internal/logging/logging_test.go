package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{in: "debug", expected: slog.LevelDebug},
		{in: "info", expected: slog.LevelInfo},
		{in: "warn", expected: slog.LevelWarn},
		{in: "warning", expected: slog.LevelWarn},
		{in: "error", expected: slog.LevelError},
		{in: "ERROR", expected: slog.LevelError},
		{in: "bogus", expected: slog.LevelInfo},
		{in: "", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.in))
		})
	}
}

func TestSetup_FileLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codecat.log")
	logger, cleanup, err := Setup(Config{Level: "debug", FilePath: path})
	require.NoError(t, err)

	logger.Debug("probe", slog.String("key", "value"))
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	line := strings.TrimSpace(string(data))
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "probe", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestSetup_LevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codecat.log")
	logger, cleanup, err := Setup(Config{Level: "warn", FilePath: path})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestSetup_BadLogFile(t *testing.T) {
	_, _, err := Setup(Config{FilePath: filepath.Join(t.TempDir(), "missing", "codecat.log")})
	assert.Error(t, err)
}

func TestDefaultConfigs(t *testing.T) {
	assert.Equal(t, "info", DefaultConfig().Level)
	assert.True(t, DefaultConfig().WriteToStderr)
	assert.Equal(t, "debug", DebugConfig().Level)
}
