package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/imgresize/internal/domain"
)

// ShowLogsInput contains the parameters for showing the log.
type ShowLogsInput struct {
	Lines int // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing the log.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Log file content
}

// ShowLogs is the use case for viewing the imgresize log.
type ShowLogs struct {
	stateDir string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(stateDir string) *ShowLogs {
	return &ShowLogs{stateDir: stateDir}
}

// Execute reads and returns the log content.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	if uc.stateDir == "" {
		return nil, fmt.Errorf("logging is disabled: %w", domain.ErrNoLogFile)
	}
	logPath := domain.LogPath(uc.stateDir)

	content, err := os.ReadFile(logPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", logPath, domain.ErrNoLogFile)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	result := strings.TrimSuffix(string(content), "\n")
	if in.Lines > 0 {
		lines := strings.Split(result, "\n")
		if len(lines) > in.Lines {
			lines = lines[len(lines)-in.Lines:]
		}
		result = strings.Join(lines, "\n")
	}

	return &ShowLogsOutput{
		LogPath: logPath,
		Content: result,
	}, nil
}
