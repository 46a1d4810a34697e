// Package cli provides the command-line interface for imgresize.
package cli

import (
	"fmt"

	"github.com/runoshun/imgresize/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupResize = "resize"
	groupSetup  = "setup"
)

// ExitError reports a failure that was already shown to the user.
// main exits with Code without printing anything else.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewRootCommand creates the root command for imgresize.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "imgresize",
		Short: "Resize images to a target file size with imgbytesizer",
		Long: `imgresize prompts for a target file size and output options,
then runs imgbytesizer to produce the resized image.

Without an image argument, the most recently modified changed or
untracked image in the current git worktree is used.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Template output must work even with broken config files
			if cmd.Name() == "template" || c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Reported again by the command that needs the config
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupResize, Title: "Resize Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	resizeCmd := newResizeCommand(c)
	resizeCmd.GroupID = groupResize

	resizeWithOptionsCmd := newResizeWithOptionsCommand(c)
	resizeWithOptionsCmd.GroupID = groupResize

	presetsCmd := newPresetsCommand(c)
	presetsCmd.GroupID = groupResize

	checkCmd := newCheckCommand(c)
	checkCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupSetup

	root.AddCommand(
		resizeCmd,
		resizeWithOptionsCmd,
		presetsCmd,
		checkCmd,
		configCmd,
		logsCmd,
	)

	return root
}
