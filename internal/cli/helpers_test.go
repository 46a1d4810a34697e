package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/imgresize/internal/app"
	"github.com/runoshun/imgresize/internal/testutil"
	"github.com/spf13/cobra"
)

// testDeps holds the mocks behind a test container.
type testDeps struct {
	loader  *testutil.MockConfigLoader
	manager *testutil.MockConfigManager
	exec    *testutil.MockExecutor
	fs      *testutil.MockFileSystem
	active  *testutil.MockActiveFile
	ui      *testutil.MockUI
	logger  *testutil.MockLogger
}

func newTestContainer(t *testing.T, paths ...string) (*app.Container, *testDeps) {
	t.Helper()

	d := &testDeps{
		loader:  testutil.NewMockConfigLoader(),
		manager: testutil.NewMockConfigManager(),
		exec:    testutil.NewMockExecutor(),
		fs:      testutil.NewMockFileSystem(paths...),
		active:  &testutil.MockActiveFile{},
		ui:      testutil.NewMockUI(),
		logger:  &testutil.MockLogger{},
	}
	c := app.NewWithDeps(
		app.Config{WorkDir: "/work"},
		d.loader, d.manager, d.exec, d.fs, d.active, d.ui, d.logger,
	)
	return c, d
}

// execute runs cmd with args and returns stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	// Subcommands run here without the root, so mirror its settings
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
