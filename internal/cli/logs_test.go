package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/imgresize/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsCommand(t *testing.T) {
	c, _ := newTestContainer(t)
	c.Config.StateDir = t.TempDir()
	path := domain.LogPath(c.Config.StateDir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\n"), 0o600))

	stdout, _, err := execute(newLogsCommand(c), "-n", "1")

	require.NoError(t, err)
	assert.Equal(t, "c\n", stdout)
}

func TestLogsCommand_NoFile(t *testing.T) {
	c, _ := newTestContainer(t)
	c.Config.StateDir = t.TempDir()

	_, _, err := execute(newLogsCommand(c))

	assert.ErrorIs(t, err, domain.ErrNoLogFile)
}
