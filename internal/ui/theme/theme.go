package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: candlelight on a night sky.
var (
	Primary   = lipgloss.Color("#F472B6") // Pink
	Secondary = lipgloss.Color("#C084FC") // Lavender
	Accent    = lipgloss.Color("#FBBF24") // Candle amber
	Rose      = lipgloss.Color("#E11D48") // Deep rose
	Success   = lipgloss.Color("#34D399") // Mint
	Error     = lipgloss.Color("#F87171") // Soft red
	Text      = lipgloss.Color("#FDF2F8") // Blush white
	TextDim   = lipgloss.Color("#A5B4CB") // Mist
	BgDark    = lipgloss.Color("#1E1B3A") // Night
	BgCard    = lipgloss.Color("#2D2A4A") // Dusk
	Border    = lipgloss.Color("#4C4777") // Twilight
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Script = lipgloss.NewStyle().
		Foreground(Primary).
		Italic(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Badge = lipgloss.NewStyle().
		Foreground(TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Locked = lipgloss.NewStyle().
		Foreground(Border)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	DotFilled = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	DotEmpty = lipgloss.NewStyle().
			Foreground(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
