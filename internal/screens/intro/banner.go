package intro

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequest/internal/ui/theme"
)

const bannerArt = `
██╗      ██████╗ ██╗   ██╗███████╗
██║     ██╔═══██╗██║   ██║██╔════╝
██║     ██║   ██║██║   ██║█████╗
██║     ██║   ██║╚██╗ ██╔╝██╔══╝
███████╗╚██████╔╝ ╚████╔╝ ███████╗
╚══════╝ ╚═════╝   ╚═══╝  ╚══════╝`

const bannerSub = "Q · U · E · S · T"

const bannerCompact = "L O V E   Q U E S T"

// RenderBanner returns the banner styled in the primary color.
// Narrow terminals get a one-line fallback.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	sub := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(bannerSub)
	return lipgloss.JoinVertical(lipgloss.Center, style.Render(bannerArt), "", sub)
}
