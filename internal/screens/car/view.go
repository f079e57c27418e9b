package car

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequest/internal/adventure"
	"github.com/abhisek/lovequest/internal/surprise"
	"github.com/abhisek/lovequest/internal/ui/components"
	"github.com/abhisek/lovequest/internal/ui/layout"
	"github.com/abhisek/lovequest/internal/ui/theme"
)

const carArt = `      ______________________
     /  |                |  \
 ___/___|________________|___\____
|                                 |
'---(@)---------------------(@)---'`

func (s *CarScreen) View(width, height int) string {
	v := s.engine.Surprise()
	if !v.Active {
		return ""
	}
	if v.Phase == surprise.PhaseCelebration {
		return renderCelebration(width, height)
	}

	cw := layout.ContentWidth(width)
	blocks := []string{
		theme.Title.Render(v.Current.Title),
		"",
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(carArt),
		"",
		renderHotspots(v.Hotspots),
		"",
	}

	if v.IsAnimating {
		blocks = append(blocks, renderAnimation(v.Animation, s.frame, cw))
	} else {
		blocks = append(blocks, theme.Hint.Render(v.Current.Hint))
	}

	if v.Announcement != "" {
		blocks = append(blocks, "", theme.Subtitle.Render(v.Announcement))
	}

	blocks = append(blocks, "", renderSteps(v))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Centered(width, blocks...))
}

func hotspotLabel(h surprise.Hotspot) string {
	switch h.ID {
	case "sunvisor":
		return "☀ Sun Visor"
	case "dashboard":
		return "▤ Dashboard"
	case "boot":
		return "▣ Boot"
	default:
		return h.ID
	}
}

func renderHotspots(hs []adventure.HotspotView) string {
	boxes := make([]string, 0, len(hs))
	for _, h := range hs {
		label := hotspotLabel(h.Hotspot)
		style := theme.ButtonInactive
		switch h.Status {
		case surprise.StatusActive:
			style = theme.ButtonActive
		case surprise.StatusCompleted:
			label += " ✓"
			style = style.Foreground(theme.Success)
		default:
			label = "🔒 " + label
			style = style.Foreground(theme.Border)
		}
		boxes = append(boxes, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, intersperse(boxes, "  ")...)
}

func intersperse(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}

// renderAnimation draws three rows of the animation glyphs, shifted by
// frame so they appear to drift.
func renderAnimation(a surprise.Animation, frame, cw int) string {
	frames := a.Frames()
	if len(frames) == 0 {
		return ""
	}
	cols := max(cw/6, 3)

	rows := make([]string, 3)
	for r := range rows {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			if (c+r+frame)%3 == 0 {
				b.WriteString(frames[(c+frame)%len(frames)])
			} else {
				b.WriteString("  ")
			}
			b.WriteString("    ")
		}
		rows[r] = b.String()
	}
	if a == surprise.AnimationBalloons {
		// Balloons rise: draw the rows bottom-up.
		rows[0], rows[2] = rows[2], rows[0]
	}
	return strings.Join(rows, "\n")
}

func renderSteps(v adventure.SurpriseView) string {
	dots := make([]string, len(v.Hotspots))
	for i, h := range v.Hotspots {
		if h.Status == surprise.StatusCompleted {
			dots[i] = theme.DotFilled.Render("●")
		} else {
			dots[i] = theme.DotEmpty.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func renderCelebration(width, height int) string {
	blocks := []string{
		"💕",
		"",
		theme.Title.Render("The real surprise awaits in the car..."),
		"",
		theme.Body.Render("Can't wait to see you! 🚗💕"),
		"",
		components.NewButton("Continue to Next Adventure", true, nil).View(),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Centered(width, blocks...))
}
