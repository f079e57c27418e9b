package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequest/internal/ui/theme"
)

// Card wraps content in a rounded, centered card of content width cw.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Align(lipgloss.Center).
		Render(content)
}

// GlowCard is a Card with the accent border, used for reveals.
func GlowCard(content string, cw int) string {
	return theme.Card.
		BorderForeground(theme.Primary).
		Width(cw).
		Align(lipgloss.Center).
		Render(content)
}

// Centered places each block on its own line, centered within width.
func Centered(width int, blocks ...string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, blocks...))
}
