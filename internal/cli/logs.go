package cli

import (
	"fmt"

	"github.com/runoshun/imgresize/internal/app"
	"github.com/runoshun/imgresize/internal/usecase"
	"github.com/spf13/cobra"
)

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the imgresize log",
		Long: `Show the imgresize log file.

Every imgbytesizer invocation and its outcome is logged to
$XDG_STATE_HOME/imgresize/logs/imgresize.log. The verbosity is set by
[log] level in the configuration.`,
		Example: `  imgresize logs
  imgresize logs -n 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), usecase.ShowLogsInput{Lines: lines})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of lines to show from the end (0 = all)")

	return cmd
}
