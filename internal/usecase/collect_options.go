package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/runoshun/imgresize/internal/domain"
)

// Prompt titles shown by the option collector.
const (
	titleTargetSize   = "Select target file size"
	titleCustomSize   = "Enter target size (e.g. 500KB, 1.5MB)"
	titleFormat       = "Select output format"
	titleOutputPath   = "Output path"
	titleMinDimension = "Minimum dimension in pixels (0 to disable)"
	titleExact        = "Pad output to the exact target size?"
)

// Validation messages for free-text prompts.
const (
	msgInvalidSize         = "Invalid size format. Use a number followed by B, KB or MB (e.g. 500KB, 1.5MB)"
	msgInvalidMinDimension = "Enter a non-negative whole number"
)

const (
	exactYes = "yes"
	exactNo  = "no"
)

// OptionCollector walks the user through the resize prompts.
//
// Every prompt can be dismissed; the first dismissal ends the flow with
// ok == false and no error.
type OptionCollector struct {
	ui     domain.UI
	config domain.ConfigLoader
}

// NewOptionCollector creates a new OptionCollector.
func NewOptionCollector(ui domain.UI, config domain.ConfigLoader) *OptionCollector {
	return &OptionCollector{ui: ui, config: config}
}

// Simple asks only for the target size and fills the rest from config defaults.
func (c *OptionCollector) Simple(ctx context.Context, _ string) (domain.ResizeOptions, bool, error) {
	cfg, err := c.config.Load()
	if err != nil {
		return domain.ResizeOptions{}, false, fmt.Errorf("load config: %w", err)
	}

	size, ok, err := c.targetSize(ctx, cfg)
	if err != nil || !ok {
		return domain.ResizeOptions{}, false, err
	}
	return cfg.DefaultResizeOptions(size), true, nil
}

// Advanced asks for every option in order: size, format, output path,
// minimum dimension and exact-size padding.
func (c *OptionCollector) Advanced(ctx context.Context, imagePath string) (domain.ResizeOptions, bool, error) {
	cfg, err := c.config.Load()
	if err != nil {
		return domain.ResizeOptions{}, false, fmt.Errorf("load config: %w", err)
	}

	size, ok, err := c.targetSize(ctx, cfg)
	if err != nil || !ok {
		return domain.ResizeOptions{}, false, err
	}

	format, ok, err := c.format(ctx, imagePath)
	if err != nil || !ok {
		return domain.ResizeOptions{}, false, err
	}

	output, ok, err := c.outputPath(ctx, imagePath, format)
	if err != nil || !ok {
		return domain.ResizeOptions{}, false, err
	}

	minDim, ok, err := c.minDimension(ctx, cfg.DefaultMinDimension)
	if err != nil || !ok {
		return domain.ResizeOptions{}, false, err
	}

	exact, ok, err := c.exact(ctx, cfg.DefaultExact)
	if err != nil || !ok {
		return domain.ResizeOptions{}, false, err
	}

	return domain.NewResizeOptions(size, output, format, minDim, exact), true, nil
}

func (c *OptionCollector) targetSize(ctx context.Context, cfg *domain.Config) (string, bool, error) {
	presets := domain.SizePresets()
	items := make([]domain.PickItem, 0, len(presets)+1)
	for _, p := range presets {
		item := domain.PickItem{Label: p, Value: p}
		if p == cfg.DefaultTargetSize {
			item.Description = "default"
		}
		items = append(items, item)
	}
	items = append(items, domain.PickItem{
		Label:       domain.CustomSizeLabel,
		Description: "enter a size such as 750KB or 1.5MB",
		Value:       domain.CustomSizeLabel,
	})

	choice, ok, err := c.ui.PickOne(ctx, titleTargetSize, items)
	if err != nil || !ok {
		return "", false, err
	}
	if choice != domain.CustomSizeLabel {
		return choice, true, nil
	}

	return c.ui.PromptText(ctx, domain.TextPrompt{
		Title:       titleCustomSize,
		Placeholder: cfg.DefaultTargetSize,
		Validate: func(s string) string {
			if domain.IsValidTargetSize(s) {
				return ""
			}
			return msgInvalidSize
		},
	})
}

func (c *OptionCollector) format(ctx context.Context, imagePath string) (domain.Format, bool, error) {
	items := []domain.PickItem{
		{Label: fmt.Sprintf("same (%s)", strings.ToLower(filepath.Ext(imagePath))), Value: string(domain.FormatSame)},
		{Label: string(domain.FormatJPG), Value: string(domain.FormatJPG)},
		{Label: string(domain.FormatPNG), Value: string(domain.FormatPNG)},
		{Label: string(domain.FormatWebP), Value: string(domain.FormatWebP)},
	}

	choice, ok, err := c.ui.PickOne(ctx, titleFormat, items)
	if err != nil || !ok {
		return "", false, err
	}
	return domain.Format(choice), true, nil
}

func (c *OptionCollector) outputPath(ctx context.Context, imagePath string, format domain.Format) (string, bool, error) {
	def := domain.DefaultOutputPath(imagePath, format)

	out, ok, err := c.ui.PromptText(ctx, domain.TextPrompt{
		Title:       titleOutputPath,
		Value:       def,
		Placeholder: def,
	})
	if err != nil || !ok {
		return "", false, err
	}
	if out = strings.TrimSpace(out); out == "" {
		return def, true, nil
	}
	return out, true, nil
}

func (c *OptionCollector) minDimension(ctx context.Context, def int) (int, bool, error) {
	raw, ok, err := c.ui.PromptText(ctx, domain.TextPrompt{
		Title:    titleMinDimension,
		Value:    strconv.Itoa(def),
		Validate: validateMinDimension,
	})
	if err != nil || !ok {
		return 0, false, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false, fmt.Errorf("%w: %q", domain.ErrInvalidMinDimension, raw)
	}
	return n, true, nil
}

func validateMinDimension(s string) string {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return msgInvalidMinDimension
	}
	return ""
}

func (c *OptionCollector) exact(ctx context.Context, def bool) (bool, bool, error) {
	yes := domain.PickItem{Label: "Yes", Description: "pad to the exact target size", Value: exactYes}
	no := domain.PickItem{Label: "No", Description: "keep the natural encoded size", Value: exactNo}

	items := []domain.PickItem{yes, no}
	if !def {
		items = []domain.PickItem{no, yes}
	}

	choice, ok, err := c.ui.PickOne(ctx, titleExact, items)
	if err != nil || !ok {
		return false, false, err
	}
	return choice == exactYes, true, nil
}
