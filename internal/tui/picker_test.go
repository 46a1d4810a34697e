package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/imgresize/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []domain.PickItem {
	return []domain.PickItem{
		{Label: "100KB", Value: "100KB"},
		{Label: "500KB", Value: "500KB", Description: "default"},
		{Label: "Custom...", Value: "Custom..."},
	}
}

func updatePicker(t *testing.T, m pickerModel, msgs ...tea.KeyMsg) (pickerModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(pickerModel)
		require.True(t, ok)
	}
	return m, cmd
}

func TestPickerModel_Select(t *testing.T) {
	m := newPickerModel("Select target file size", testItems(), DefaultStyles())

	m, cmd := updatePicker(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	value, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, "500KB", value)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPickerModel_CursorClamped(t *testing.T) {
	m := newPickerModel("", testItems(), DefaultStyles())

	m, _ = updatePicker(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m, _ = updatePicker(t, m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
	)
	assert.Equal(t, 2, m.cursor)
}

func TestPickerModel_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newPickerModel("", testItems(), DefaultStyles())

			m, cmd := updatePicker(t, m, msg)

			_, ok := m.Selected()
			assert.False(t, ok)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestPickerModel_EmptyListIgnoresEnter(t *testing.T) {
	m := newPickerModel("", nil, DefaultStyles())

	m, cmd := updatePicker(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.done)
}

func TestPickerModel_View(t *testing.T) {
	m := newPickerModel("Select target file size", testItems(), DefaultStyles())

	view := m.View()

	assert.Contains(t, view, "Select target file size")
	assert.Contains(t, view, "> ")
	assert.Contains(t, view, "100KB")
	assert.Contains(t, view, "default")

	m, _ = updatePicker(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.View(), "view is cleared once answered")
}
