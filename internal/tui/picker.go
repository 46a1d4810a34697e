package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/imgresize/internal/domain"
)

// pickerModel is a single-choice list prompt.
type pickerModel struct {
	items  []domain.PickItem
	keys   KeyMap
	styles Styles
	help   help.Model
	title  string
	choice string
	cursor int
	done   bool
	picked bool
}

func newPickerModel(title string, items []domain.PickItem, styles Styles) pickerModel {
	return pickerModel{
		items:  items,
		keys:   DefaultKeyMap(),
		styles: styles,
		help:   help.New(),
		title:  title,
	}
}

// Init implements tea.Model.
func (m pickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Select):
		if len(m.items) == 0 {
			return m, nil
		}
		m.choice = m.items[m.cursor].Value
		m.done = true
		m.picked = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	}
	return m, nil
}

// Selected returns the chosen value; ok is false when the prompt was dismissed.
func (m pickerModel) Selected() (string, bool) {
	return m.choice, m.picked
}

// View implements tea.Model.
func (m pickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n")
	}
	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("> "))
			b.WriteString(m.styles.ItemSelected.Render(item.Label))
			if item.Description != "" {
				b.WriteString(" " + m.styles.ItemDescSelected.Render(item.Description))
			}
		} else {
			b.WriteString(m.styles.Item.Render(item.Label))
			if item.Description != "" {
				b.WriteString(" " + m.styles.ItemDesc.Render(item.Description))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
