package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/repograde/internal/ui/layout"
)

// Screen is one page of the terminal front-end.
type Screen interface {
	Init() tea.Cmd

	// Update handles messages and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body (excluding header and footer).
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
