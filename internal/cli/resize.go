package cli

import (
	"github.com/runoshun/imgresize/internal/app"
	"github.com/runoshun/imgresize/internal/usecase"
	"github.com/spf13/cobra"
)

// newResizeCommand creates the resize command.
func newResizeCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "resize [image]",
		Aliases: []string{"resizeImage"},
		Short:   "Resize an image to a preset or custom file size",
		Long: `Resize an image to a target file size.

Only the size is asked for; format, minimum dimension and exact-size
padding come from the configuration defaults. The output is written
next to the input as <name>_resized.<ext>.`,
		Example: `  imgresize resize photo.jpg
  imgresize resize`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResize(cmd, c, args, usecase.ResizeModeSimple)
		},
	}
}

// newResizeWithOptionsCommand creates the resize-with-options command.
func newResizeWithOptionsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "resize-with-options [image]",
		Aliases: []string{"resizeImageWithOptions"},
		Short:   "Resize an image, choosing every option",
		Long: `Resize an image, prompting in order for the target size, output
format, output path, minimum dimension and exact-size padding.

Press esc at any prompt to cancel without changing anything.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResize(cmd, c, args, usecase.ResizeModeAdvanced)
		},
	}
}

// runResize runs the resize handler. The handler reports every outcome
// itself, so only the exit status is returned.
func runResize(cmd *cobra.Command, c *app.Container, args []string, mode usecase.ResizeMode) error {
	in := usecase.ResizeImageInput{Mode: mode}
	if len(args) > 0 {
		in.ImagePath = args[0]
	}

	out := c.ResizeImageUseCase().Execute(cmd.Context(), in)
	switch out.Status {
	case usecase.ResizeStatusFailed, usecase.ResizeStatusAborted:
		return &ExitError{Code: 1}
	default:
		return nil
	}
}
