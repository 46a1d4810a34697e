// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/runoshun/imgresize/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Run executes the command with an explicit argument vector and waits for it.
// Stdout and stderr are captured separately. A process that ran and exited
// non-zero yields a result with its exit code and a nil error. A process killed
// by a signal reports ExitCode -1, unless ctx was cancelled, which returns ctx.Err().
func (c *Client) Run(ctx context.Context, cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	// #nosec G204 - Program is sanitized by the executable resolver and no shell is involved
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	err := execCmd.Run()
	result := &domain.ExecResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, err
	}
	return result, nil
}

// Start launches the command and returns once it has started.
// The child is reaped in the background.
func (c *Client) Start(cmd *domain.ExecCommand) error {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.Command(cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	if err := execCmd.Start(); err != nil {
		return err
	}
	go func() { _ = execCmd.Wait() }()
	return nil
}
