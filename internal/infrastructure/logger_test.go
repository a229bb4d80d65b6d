package infrastructure

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pellcli/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLogLevel(tt.input), "level %q", tt.input)
	}
}

func TestInitializeLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pell-report.log")

	logger, err := InitializeLogger(config.LoggingConfig{
		Level:    "debug",
		Format:   "json",
		Output:   "file",
		FilePath: path,
	})
	require.NoError(t, err)

	logger.Info("report started", slog.String("term", "202580"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"term":"202580"`)
	assert.Contains(t, string(data), "report started")
}

func TestInitializeLoggerStdout(t *testing.T) {
	logger, err := InitializeLogger(config.LoggingConfig{Level: "info", Format: "text", Output: "stdout"})
	require.NoError(t, err)
	require.NotNil(t, logger)
}
