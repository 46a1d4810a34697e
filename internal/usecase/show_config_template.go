package usecase

import (
	"context"

	"github.com/runoshun/imgresize/internal/domain"
)

// ShowConfigTemplateOutput contains the output of the ShowConfigTemplate use case.
type ShowConfigTemplateOutput struct {
	Template string // Commented config.toml with built-in defaults
}

// ShowConfigTemplate renders the configuration template.
type ShowConfigTemplate struct{}

// NewShowConfigTemplate creates a new ShowConfigTemplate use case.
func NewShowConfigTemplate() *ShowConfigTemplate {
	return &ShowConfigTemplate{}
}

// Execute renders the template from the built-in defaults.
func (uc *ShowConfigTemplate) Execute(_ context.Context) (*ShowConfigTemplateOutput, error) {
	return &ShowConfigTemplateOutput{Template: domain.RenderConfigTemplate(domain.NewDefaultConfig())}, nil
}
