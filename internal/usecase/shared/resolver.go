// Package shared holds helpers used by several use cases.
package shared

import (
	"fmt"
	"strings"

	"github.com/runoshun/imgresize/internal/domain"
)

// ExecutableResolver determines which imgbytesizer binary to run.
// Configuration is read on every call so edits take effect immediately.
type ExecutableResolver struct {
	config domain.ConfigLoader
	logger domain.Logger
}

// NewExecutableResolver creates a new ExecutableResolver.
func NewExecutableResolver(config domain.ConfigLoader, logger domain.Logger) *ExecutableResolver {
	return &ExecutableResolver{config: config, logger: logger}
}

// Resolve returns a sanitized executable path. It never fails: unreadable
// configuration and unsafe values fall back to domain.DefaultExecutable.
func (r *ExecutableResolver) Resolve() string {
	cfg, err := r.config.Load()
	if err != nil {
		r.logger.Warn("resolver", fmt.Sprintf("load config: %v; using %s", err, domain.DefaultExecutable))
		return domain.DefaultExecutable
	}

	raw := strings.TrimSpace(cfg.ImgbytesizerPath)
	path, rejected := domain.SanitizeExecutablePath(raw)
	switch {
	case rejected:
		r.logger.Warn("resolver", fmt.Sprintf("rejected imgbytesizerPath %q; using %s", raw, domain.DefaultExecutable))
	case raw != "" && path != raw:
		r.logger.Warn("resolver", fmt.Sprintf("removed shell metacharacters from imgbytesizerPath %q", raw))
	}
	return path
}
