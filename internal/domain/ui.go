package domain

import "context"

// UI is the set of host services the resize flows talk to.
//
// Prompts return ok=false when the user dismissed them. The error return is
// reserved for failures of the host itself.
type UI interface {
	// PickOne shows a single-choice list and returns the chosen item's value.
	PickOne(ctx context.Context, title string, items []PickItem) (value string, ok bool, err error)

	// PromptText asks for free text. If Validate is set, input it rejects
	// cannot be submitted.
	PromptText(ctx context.Context, prompt TextPrompt) (value string, ok bool, err error)

	// WithProgress runs task while showing a progress indicator that cannot be cancelled.
	WithProgress(ctx context.Context, title string, task func(ctx context.Context) error) error

	// Notify shows a message and returns the chosen action, or "" if none was chosen.
	Notify(ctx context.Context, n Notification) (action string, err error)

	// OpenFile opens path with the user's viewer.
	OpenFile(ctx context.Context, path string) error
}

// PickItem is one entry of a PickOne list.
type PickItem struct {
	Label       string
	Description string
	Value       string
}

// TextPrompt configures a free-text prompt.
type TextPrompt struct {
	// Validate returns an error message for invalid input, or "" when valid.
	Validate    func(string) string
	Title       string
	Placeholder string
	Value       string // prefilled value
}

// NotifyLevel is the severity of a notification.
type NotifyLevel int

// Notification levels.
const (
	NotifyInfo NotifyLevel = iota
	NotifyWarning
	NotifyError
)

// Notification is a message shown to the user, optionally with action buttons.
type Notification struct {
	Message string
	Actions []string
	Level   NotifyLevel
}
