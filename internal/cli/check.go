package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/imgresize/internal/app"
	"github.com/runoshun/imgresize/internal/domain"
	"github.com/runoshun/imgresize/internal/usecase"
	"github.com/spf13/cobra"
)

// newCheckCommand creates the check command.
func newCheckCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that imgbytesizer can be run",
		Long: `Run "imgbytesizer -v" with the configured executable and print its version.

The executable is taken from imgbytesizerPath in the configuration.
Values other than a bare command name, an absolute path or a path
starting with "./" are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.CheckToolUseCase().Execute(cmd.Context())
			if errors.Is(err, domain.ErrToolNotInstalled) {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), usecase.InstallHint)
				return &ExitError{Code: 1}
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "executable: %s\n", out.Executable)
			_, _ = fmt.Fprintf(w, "version:    %s\n", out.Version)
			return nil
		},
	}
}
