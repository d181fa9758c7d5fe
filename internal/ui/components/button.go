package components

import (
	"github.com/psychtest/psyquiz/internal/ui/theme"
)

// Button is a keyboard-triggered control. A disabled button is rendered
// dimmed and its key is ignored by the owning screen.
type Button struct {
	Key     string
	Label   string
	Enabled bool
}

// NewButton creates a new button.
func NewButton(key, label string, enabled bool) Button {
	return Button{Key: key, Label: label, Enabled: enabled}
}

// View renders the button.
func (b Button) View() string {
	label := "[" + b.Key + "] " + b.Label
	if b.Enabled {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
