package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/runoshun/imgresize/internal/domain"
)

// ResizeMode selects the option collection flow.
type ResizeMode int

// Resize modes.
const (
	ResizeModeSimple   ResizeMode = iota // target size only
	ResizeModeAdvanced                   // every option
)

// ResizeStatus describes how a resize command ended.
type ResizeStatus string

// Resize statuses.
const (
	ResizeStatusCompleted ResizeStatus = "completed" // output file created
	ResizeStatusFailed    ResizeStatus = "failed"    // imgbytesizer run failed
	ResizeStatusCancelled ResizeStatus = "cancelled" // a prompt was dismissed
	ResizeStatusAborted   ResizeStatus = "aborted"   // a precondition or unexpected error stopped the command
)

// InstallHint is shown when the version probe fails.
const InstallHint = "imgbytesizer is not installed or could not be run. Install it with: pip install imgbytesizer"

// Notification texts.
const (
	msgNoImageSelected = "No image selected. Pass an image path or modify an image in the current git worktree."
	actionOpen         = "Open"
	progressTitle      = "Resizing image..."
)

// ResizeImageInput contains the parameters for a resize command.
type ResizeImageInput struct {
	ImagePath string     // Explicit image; empty uses the active file
	Mode      ResizeMode // Simple or advanced prompts
}

// ResizeImageOutput contains the result of a resize command.
type ResizeImageOutput struct {
	Status  ResizeStatus
	Message string                  // Last notification shown, empty when cancelled
	Result  *domain.ExecutionResult // Set when imgbytesizer ran
}

// ResizeImage is the command handler behind "resize" and "resize-with-options".
// Every outcome is reported through the UI; Execute never returns an error.
type ResizeImage struct {
	ui        domain.UI
	active    domain.ActiveFileResolver
	checkTool *CheckTool
	collector *OptionCollector
	runner    *RunResize
	logger    domain.Logger
}

// NewResizeImage creates a new ResizeImage use case.
func NewResizeImage(
	ui domain.UI,
	active domain.ActiveFileResolver,
	checkTool *CheckTool,
	collector *OptionCollector,
	runner *RunResize,
	logger domain.Logger,
) *ResizeImage {
	return &ResizeImage{
		ui:        ui,
		active:    active,
		checkTool: checkTool,
		collector: collector,
		runner:    runner,
		logger:    logger,
	}
}

// Execute resolves the image, checks the tool, collects options and runs the resize.
func (uc *ResizeImage) Execute(ctx context.Context, in ResizeImageInput) (out *ResizeImageOutput) {
	defer func() {
		if r := recover(); r != nil {
			out = uc.unexpected(ctx, fmt.Errorf("%v", r))
		}
	}()

	out, err := uc.execute(ctx, in)
	if err != nil {
		return uc.unexpected(ctx, err)
	}
	return out
}

func (uc *ResizeImage) execute(ctx context.Context, in ResizeImageInput) (*ResizeImageOutput, error) {
	imagePath, err := uc.resolveImage(in.ImagePath)
	if err != nil {
		return nil, err
	}
	if imagePath == "" {
		return uc.abort(ctx, msgNoImageSelected)
	}
	if !domain.IsSupportedImage(imagePath) {
		return uc.abort(ctx, fmt.Sprintf("Unsupported file type: %s. Supported types: .jpg, .jpeg, .png, .webp", filepath.Base(imagePath)))
	}

	if _, err := uc.checkTool.Execute(ctx); err != nil {
		if !errors.Is(err, domain.ErrToolNotInstalled) {
			return nil, err
		}
		uc.logger.Warn("resize", err.Error())
		return uc.abort(ctx, InstallHint)
	}

	var (
		opts domain.ResizeOptions
		ok   bool
	)
	if in.Mode == ResizeModeAdvanced {
		opts, ok, err = uc.collector.Advanced(ctx, imagePath)
	} else {
		opts, ok, err = uc.collector.Simple(ctx, imagePath)
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		uc.logger.Debug("resize", "cancelled")
		return &ResizeImageOutput{Status: ResizeStatusCancelled}, nil
	}

	var result domain.ExecutionResult
	err = uc.ui.WithProgress(ctx, progressTitle, func(ctx context.Context) error {
		result = uc.runner.Execute(ctx, RunResizeInput{ImagePath: imagePath, Options: opts})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Success {
		if _, err := uc.ui.Notify(ctx, domain.Notification{Level: domain.NotifyError, Message: result.Message}); err != nil {
			return nil, err
		}
		return &ResizeImageOutput{Status: ResizeStatusFailed, Message: result.Message, Result: &result}, nil
	}

	action, err := uc.ui.Notify(ctx, domain.Notification{
		Level:   domain.NotifyInfo,
		Message: result.Message,
		Actions: []string{actionOpen},
	})
	if err != nil {
		return nil, err
	}
	if action == actionOpen {
		if err := uc.ui.OpenFile(ctx, result.OutputPath); err != nil {
			return nil, err
		}
	}
	return &ResizeImageOutput{Status: ResizeStatusCompleted, Message: result.Message, Result: &result}, nil
}

// resolveImage returns the explicit path made absolute, else the active file.
func (uc *ResizeImage) resolveImage(explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", explicit, err)
		}
		return abs, nil
	}

	path, err := uc.active.ActiveFile()
	if err != nil {
		if errors.Is(err, domain.ErrNotGitRepository) {
			return "", nil
		}
		return "", fmt.Errorf("find active file: %w", err)
	}
	return path, nil
}

func (uc *ResizeImage) abort(ctx context.Context, message string) (*ResizeImageOutput, error) {
	if _, err := uc.ui.Notify(ctx, domain.Notification{Level: domain.NotifyError, Message: message}); err != nil {
		return nil, err
	}
	return &ResizeImageOutput{Status: ResizeStatusAborted, Message: message}, nil
}

// unexpected reports err as the final outcome. A failing Notify is only logged.
func (uc *ResizeImage) unexpected(ctx context.Context, err error) *ResizeImageOutput {
	message := fmt.Sprintf("Error resizing image: %v", err)
	uc.logger.Error("resize", message)
	_, _ = uc.ui.Notify(ctx, domain.Notification{Level: domain.NotifyError, Message: message})
	return &ResizeImageOutput{Status: ResizeStatusAborted, Message: message}
}
