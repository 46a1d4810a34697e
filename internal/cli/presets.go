package cli

import (
	"fmt"
	"slices"

	"github.com/runoshun/imgresize/internal/app"
	"github.com/runoshun/imgresize/internal/domain"
	"github.com/spf13/cobra"
)

// newPresetsCommand creates the presets command.
func newPresetsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List target size presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, p := range domain.SizePresets() {
				if p == cfg.DefaultTargetSize {
					_, _ = fmt.Fprintf(w, "%s (default)\n", p)
					continue
				}
				_, _ = fmt.Fprintln(w, p)
			}
			_, _ = fmt.Fprintf(w, "%s  any number followed by B, KB or MB, e.g. 1.5MB\n", domain.CustomSizeLabel)
			if !slices.Contains(domain.SizePresets(), cfg.DefaultTargetSize) {
				_, _ = fmt.Fprintf(w, "\ndefault: %s\n", cfg.DefaultTargetSize)
			}
			return nil
		},
	}
}
