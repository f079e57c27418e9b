package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lovequest/internal/ui/layout"
)

// Screen is one scene of the adventure.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the scene name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// SyncMsg asks the app to show the screen matching the engine's current
// state. Screens send it once they are done presenting a transition.
type SyncMsg struct{}

// Sync is a command that emits SyncMsg.
func Sync() tea.Msg { return SyncMsg{} }
