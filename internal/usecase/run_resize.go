// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/runoshun/imgresize/internal/domain"
	"github.com/runoshun/imgresize/internal/usecase/shared"
)

// RunResizeInput contains the parameters for one imgbytesizer run.
type RunResizeInput struct {
	ImagePath string               // Input image (required)
	Options   domain.ResizeOptions // Normalized options
}

// RunResize invokes imgbytesizer and classifies the outcome.
//
// Exit status 0 alone is not success: the output file must exist afterwards.
type RunResize struct {
	fs       domain.FileSystem
	exec     domain.CommandExecutor
	resolver *shared.ExecutableResolver
	logger   domain.Logger
}

// NewRunResize creates a new RunResize use case.
func NewRunResize(
	fs domain.FileSystem,
	exec domain.CommandExecutor,
	resolver *shared.ExecutableResolver,
	logger domain.Logger,
) *RunResize {
	return &RunResize{
		fs:       fs,
		exec:     exec,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute runs imgbytesizer once. Every failure is reported in the result; no step is retried.
func (uc *RunResize) Execute(ctx context.Context, in RunResizeInput) domain.ExecutionResult {
	if !uc.fs.Exists(in.ImagePath) {
		return uc.fail(fmt.Sprintf("Image file not found: %s", in.ImagePath))
	}

	outputPath := in.Options.OutputPath
	if outputPath == "" {
		outputPath = domain.DefaultOutputPath(in.ImagePath, in.Options.Format)
	}

	outputDir := filepath.Dir(outputPath)
	if !uc.fs.Exists(outputDir) {
		if err := uc.fs.MkdirAll(outputDir); err != nil {
			return uc.fail(fmt.Sprintf("Error: %v", err))
		}
	}

	cmd := domain.ResizeCommand(uc.resolver.Resolve(), in.ImagePath, in.Options)
	uc.logger.Info("runner", fmt.Sprintf("exec %s %q", cmd.Program, cmd.Args))

	res, err := uc.exec.Run(ctx, cmd)
	if err != nil {
		return uc.fail(fmt.Sprintf("Error: %v", err))
	}
	if res.ExitCode != 0 {
		return uc.fail(fmt.Sprintf("Command failed with status %d. Error: %s", res.ExitCode, res.Stderr))
	}
	if !uc.fs.Exists(outputPath) {
		return uc.fail(fmt.Sprintf("Failed to create output file: %s. Command output: %s", outputPath, res.Stdout))
	}

	uc.logger.Info("runner", fmt.Sprintf("created %s", outputPath))
	return domain.Succeeded(fmt.Sprintf("Image resized successfully to %s", in.Options.TargetSize), outputPath)
}

func (uc *RunResize) fail(message string) domain.ExecutionResult {
	uc.logger.Error("runner", message)
	return domain.Failed(message)
}
