package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.jpg")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	fs := New()
	assert.True(t, fs.Exists(file))
	assert.True(t, fs.Exists(dir))
	assert.False(t, fs.Exists(filepath.Join(dir, "missing.jpg")))
}

func TestFS_MkdirAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	fs := New()

	require.NoError(t, fs.MkdirAll(dir))
	stat, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())

	// Idempotent
	assert.NoError(t, fs.MkdirAll(dir))
}

func TestFS_MkdirAll_FileInTheWay(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	err := New().MkdirAll(filepath.Join(file, "sub"))
	assert.Error(t, err)
}
