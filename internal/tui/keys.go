package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings shared by the prompts.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding // Accept the highlighted item or the typed text
	Cancel key.Binding // Dismiss the prompt
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "ctrl+p"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "ctrl+n"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns the bindings shown under a picker.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
}

// FullHelp returns all bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// textKeys limits help to the keys meaningful in a text prompt.
type textKeys struct{ KeyMap }

func (k textKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Cancel}
}

func (k textKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
