// Package tui renders prompts, progress and notifications in the terminal.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/imgresize/internal/domain"
)

// dismissAction is offered next to notification actions.
const dismissAction = "Close"

// OpenFunc opens a file with an external application.
type OpenFunc func(path string) error

// Host implements domain.UI with one bubbletea program per prompt.
type Host struct {
	in     io.Reader
	out    io.Writer
	open   OpenFunc
	styles Styles
}

// NewHost creates a Host reading keys from in and drawing to out.
func NewHost(in io.Reader, out io.Writer, open OpenFunc) *Host {
	return &Host{
		in:     in,
		out:    out,
		open:   open,
		styles: DefaultStyles(),
	}
}

var _ domain.UI = (*Host)(nil)

func (h *Host) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(h.in),
		tea.WithOutput(h.out),
	)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

// PickOne shows a single-choice list.
func (h *Host) PickOne(ctx context.Context, title string, items []domain.PickItem) (string, bool, error) {
	final, err := h.run(ctx, newPickerModel(title, items, h.styles))
	if err != nil {
		return "", false, err
	}
	value, ok := final.(pickerModel).Selected()
	return value, ok, nil
}

// PromptText shows a free-text prompt.
func (h *Host) PromptText(ctx context.Context, prompt domain.TextPrompt) (string, bool, error) {
	final, err := h.run(ctx, newTextModel(prompt, h.styles))
	if err != nil {
		return "", false, err
	}
	value, ok := final.(textModel).Value()
	return value, ok, nil
}

// WithProgress shows a spinner until task returns and then returns its error.
func (h *Host) WithProgress(ctx context.Context, title string, task func(ctx context.Context) error) error {
	final, err := h.run(ctx, newProgressModel(ctx, title, task, h.styles))
	if err != nil {
		return err
	}
	return final.(progressModel).err
}

// Notify prints the message. When actions are given the user picks one;
// dismissing the choice returns an empty action.
func (h *Host) Notify(ctx context.Context, n domain.Notification) (string, error) {
	style := h.styles.NotificationStyle(n.Level)
	if _, err := fmt.Fprintln(h.out, style.Render(NotificationIcon(n.Level)+" "+n.Message)); err != nil {
		return "", fmt.Errorf("write notification: %w", err)
	}
	if len(n.Actions) == 0 {
		return "", nil
	}

	items := make([]domain.PickItem, 0, len(n.Actions)+1)
	for _, a := range n.Actions {
		items = append(items, domain.PickItem{Label: a, Value: a})
	}
	items = append(items, domain.PickItem{Label: dismissAction, Value: dismissAction})

	action, ok, err := h.PickOne(ctx, "", items)
	if err != nil || !ok || action == dismissAction {
		return "", err
	}
	return action, nil
}

// OpenFile opens path with the configured opener.
func (h *Host) OpenFile(_ context.Context, path string) error {
	if h.open == nil {
		return fmt.Errorf("open %s: no opener configured", path)
	}
	return h.open(path)
}
