package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/imgresize/internal/domain"
)

// Colors defines the color palette for the prompts.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray
	DescSelected:  lipgloss.Color("#B2BEC3"), // Light gray
}

// Styles contains the lipgloss styles for prompts and notifications.
type Styles struct {
	// Prompt header
	Title lipgloss.Style

	// Picker
	Item             lipgloss.Style
	ItemSelected     lipgloss.Style
	ItemDesc         lipgloss.Style
	ItemDescSelected lipgloss.Style
	Cursor           lipgloss.Style

	// Text prompt
	InputPrompt     lipgloss.Style
	ValidationError lipgloss.Style

	// Progress
	Spinner  lipgloss.Style
	Progress lipgloss.Style

	// Notifications
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	Help lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Item: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			PaddingLeft(2),
		ItemSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),
		ItemDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),
		ItemDescSelected: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),
		Cursor: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Secondary),
		ValidationError: lipgloss.NewStyle().
			Foreground(Colors.Error),

		Spinner: lipgloss.NewStyle().
			Foreground(Colors.Primary),
		Progress: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		Info: lipgloss.NewStyle().
			Foreground(Colors.Success),
		Warning: lipgloss.NewStyle().
			Foreground(Colors.Warning),
		Error: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}

// NotificationStyle returns the style for a notification level.
func (s Styles) NotificationStyle(level domain.NotifyLevel) lipgloss.Style {
	switch level {
	case domain.NotifyWarning:
		return s.Warning
	case domain.NotifyError:
		return s.Error
	default:
		return s.Info
	}
}

// NotificationIcon returns the icon for a notification level.
func NotificationIcon(level domain.NotifyLevel) string {
	switch level {
	case domain.NotifyWarning:
		return "!"
	case domain.NotifyError:
		return "✗"
	default:
		return "✓"
	}
}
