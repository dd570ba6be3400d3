package components

import (
	"github.com/abhisek/repograde/internal/ui/theme"
)

// Button is a styled submit button. A disabled button shows its busy label.
type Button struct {
	Label     string
	BusyLabel string
	Disabled  bool
}

// NewButton creates an enabled button.
func NewButton(label, busyLabel string) Button {
	return Button{Label: label, BusyLabel: busyLabel}
}

// View renders the button.
func (b Button) View() string {
	if b.Disabled {
		label := b.BusyLabel
		if label == "" {
			label = b.Label
		}
		return theme.ButtonInactive.Render(label)
	}
	return theme.ButtonActive.Render("▸ " + b.Label)
}
