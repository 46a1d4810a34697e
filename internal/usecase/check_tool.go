package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/imgresize/internal/domain"
	"github.com/runoshun/imgresize/internal/usecase/shared"
)

// CheckToolOutput contains the result of a successful version probe.
type CheckToolOutput struct {
	Executable string // Resolved executable that was probed
	Version    string // Trimmed output of "<exe> -v"
}

// CheckTool verifies that imgbytesizer can be invoked.
type CheckTool struct {
	exec     domain.CommandExecutor
	resolver *shared.ExecutableResolver
}

// NewCheckTool creates a new CheckTool use case.
func NewCheckTool(exec domain.CommandExecutor, resolver *shared.ExecutableResolver) *CheckTool {
	return &CheckTool{exec: exec, resolver: resolver}
}

// Execute runs "<exe> -v". Any failure to start or a non-zero exit yields
// an error wrapping domain.ErrToolNotInstalled.
func (uc *CheckTool) Execute(ctx context.Context) (*CheckToolOutput, error) {
	exe := uc.resolver.Resolve()

	res, err := uc.exec.Run(ctx, domain.VersionCommand(exe))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrToolNotInstalled, exe, err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("%w: %s -v exited with status %d", domain.ErrToolNotInstalled, exe, res.ExitCode)
	}

	version := strings.TrimSpace(res.Stdout)
	if version == "" {
		version = strings.TrimSpace(res.Stderr)
	}
	return &CheckToolOutput{Executable: exe, Version: version}, nil
}
