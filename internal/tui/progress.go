package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// taskDoneMsg is sent when the wrapped task returns.
type taskDoneMsg struct {
	err error
}

// progressModel shows a spinner while a task runs.
// Keys are ignored, so the task cannot be interrupted from the prompt.
type progressModel struct {
	ctx     context.Context
	task    func(ctx context.Context) error
	err     error
	styles  Styles
	title   string
	spinner spinner.Model
	done    bool
}

func newProgressModel(ctx context.Context, title string, task func(ctx context.Context) error, styles Styles) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return progressModel{
		ctx:     ctx,
		task:    task,
		styles:  styles,
		title:   title,
		spinner: s,
	}
}

// Init starts the spinner and the task.
func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m progressModel) run() tea.Msg {
	return taskDoneMsg{err: m.task(m.ctx)}
}

// Update implements tea.Model.
func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.styles.Progress.Render(m.title) + "\n"
}
