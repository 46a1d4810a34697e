package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/imgresize/internal/domain"
)

// textModel is a free-text prompt with optional inline validation.
// Enter is refused while the validator reports an error.
type textModel struct {
	validate func(string) string
	keys     KeyMap
	styles   Styles
	help     help.Model
	title    string
	errMsg   string
	input    textinput.Model
	done     bool
	accepted bool
}

func newTextModel(p domain.TextPrompt, styles Styles) textModel {
	ti := textinput.New()
	ti.Placeholder = p.Placeholder
	ti.SetValue(p.Value)
	ti.CharLimit = 1024
	ti.Prompt = "> "
	ti.PromptStyle = styles.InputPrompt
	ti.Focus()

	return textModel{
		validate: p.Validate,
		keys:     DefaultKeyMap(),
		styles:   styles,
		help:     help.New(),
		title:    p.Title,
		input:    ti,
	}
}

// Init implements tea.Model.
func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.done = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Select):
			if m.errMsg = m.check(m.input.Value()); m.errMsg != "" {
				return m, nil
			}
			m.done = true
			m.accepted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.errMsg = m.check(m.input.Value())
	}
	return m, cmd
}

func (m textModel) check(value string) string {
	if m.validate == nil {
		return ""
	}
	return m.validate(value)
}

// Value returns the submitted text; ok is false when the prompt was dismissed.
func (m textModel) Value() (string, bool) {
	return m.input.Value(), m.accepted
}

// View implements tea.Model.
func (m textModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.styles.ValidationError.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(textKeys{m.keys}))
	b.WriteString("\n")
	return b.String()
}
