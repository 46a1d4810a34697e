package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_Help(t *testing.T) {
	root := NewRootCommand(nil, "test-version")

	stdout, _, err := execute(root, "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Resize Commands:")
	assert.Contains(t, stdout, "Setup Commands:")
	for _, name := range []string{"resize", "resize-with-options", "presets", "check", "config", "logs"} {
		assert.Contains(t, stdout, name)
	}
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")

	stdout, _, err := execute(root, "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "1.2.3")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	c, d := newTestContainer(t)
	d.loader.Config.Warnings = []string{"unknown key: colour"}

	_, stderr, err := execute(NewRootCommand(c, "dev"), "presets")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown key: colour")
}

func TestNewRootCommand_TemplateSkipsConfig(t *testing.T) {
	c, d := newTestContainer(t)
	d.loader.Config.Warnings = []string{"unknown key: colour"}

	_, stderr, err := execute(NewRootCommand(c, "dev"), "config", "template")

	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Zero(t, d.loader.Calls)
}

func TestExitError(t *testing.T) {
	assert.Equal(t, "exit status 2", (&ExitError{Code: 2}).Error())
}
