package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/imgresize/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("runner", "test message")

	content, err := os.ReadFile(domain.LogPath(stateDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[runner]")
	assert.Contains(t, string(content), "test message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("runner", "debug message")
	logger.Info("runner", "info message")
	logger.Warn("runner", "warn message")
	logger.Error("runner", "error message")

	content, err := os.ReadFile(domain.LogPath(stateDir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_DisabledWhenEmptyStateDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	defer func() { _ = logger.Close() }()

	// Should not panic or create anything
	logger.Info("runner", "test message")
	logger.Error("runner", "error message")
}

func TestLogger_LogFormat(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("resolver", `rejected path: "bin/tool"`)

	content, err := os.ReadFile(domain.LogPath(stateDir))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)

	line := lines[0]
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] `, line)
	assert.Contains(t, line, "[INFO] [resolver] ")
	assert.Contains(t, line, `rejected path: "bin/tool"`)
}

func TestLogger_CreatesLogsDir(t *testing.T) {
	stateDir := filepath.Join(t.TempDir(), "nested")
	logger := New(stateDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("runner", "hello")

	stat, err := os.Stat(filepath.Join(stateDir, "logs"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestLogger_Close(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)

	logger.Info("runner", "message")
	assert.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())
	assert.FileExists(t, domain.LogPath(stateDir))
}

func TestDefaultStateDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	assert.Equal(t, "/tmp/state/imgresize", DefaultStateDir())
}
