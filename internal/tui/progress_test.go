package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressModel_RunsTask(t *testing.T) {
	called := false
	m := newProgressModel(context.Background(), "Resizing image...", func(context.Context) error {
		called = true
		return assert.AnError
	}, DefaultStyles())

	msg := m.run()

	assert.True(t, called)
	assert.Equal(t, taskDoneMsg{err: assert.AnError}, msg)
}

func TestProgressModel_IgnoresKeys(t *testing.T) {
	m := newProgressModel(context.Background(), "Resizing image...", func(context.Context) error { return nil }, DefaultStyles())

	for _, k := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}, {Type: tea.KeyEnter}} {
		next, cmd := m.Update(k)
		assert.Nil(t, cmd, "key %s must not stop the task", k)
		m = next.(progressModel)
	}
	assert.False(t, m.done)
	assert.Contains(t, m.View(), "Resizing image...")
}

func TestProgressModel_QuitsWhenTaskDone(t *testing.T) {
	m := newProgressModel(context.Background(), "Resizing image...", func(context.Context) error { return nil }, DefaultStyles())

	next, cmd := m.Update(taskDoneMsg{err: assert.AnError})

	m = next.(progressModel)
	assert.True(t, m.done)
	assert.Equal(t, assert.AnError, m.err)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
