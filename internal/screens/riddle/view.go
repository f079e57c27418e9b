package riddle

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequest/internal/quest"
	"github.com/abhisek/lovequest/internal/ui/components"
	"github.com/abhisek/lovequest/internal/ui/layout"
	"github.com/abhisek/lovequest/internal/ui/theme"
)

func (s *RiddleScreen) View(width, height int) string {
	if s.accepted != nil {
		return s.renderSuccess(width, height)
	}
	return s.renderQuest(width, height)
}

func characterEmoji(c quest.Character) string {
	if c == quest.CharacterBoth {
		return "🎮👩"
	}
	return "🎮"
}

func (s *RiddleScreen) renderQuest(width, height int) string {
	q := s.quest
	cw := layout.ContentWidth(width)

	var blocks []string

	if badge := locationBadge(q); badge != "" {
		blocks = append(blocks, theme.Badge.Render(badge), "")
	}

	blocks = append(blocks,
		theme.Title.Render(q.Title),
		"",
		characterEmoji(q.Character),
		"",
		components.Card(theme.Script.Render(q.Riddle), cw),
		"",
	)

	if q.HasChoices() {
		blocks = append(blocks, lipgloss.NewStyle().Width(cw).Render(s.choices.View()))
	} else {
		blocks = append(blocks, lipgloss.NewStyle().
			Width(cw).
			Render("Answer: "+s.input.View()))
	}

	if s.engine.HintCount() > 0 {
		blocks = append(blocks, "", theme.Hint.Render("💡 "+s.engine.Hint()))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Centered(width, blocks...))
}

func locationBadge(q quest.Quest) string {
	switch {
	case q.Location != "" && q.Time != "":
		return "📍 " + q.Location + " • " + q.Time
	case q.Location != "":
		return "📍 " + q.Location
	default:
		return q.Time
	}
}

func (s *RiddleScreen) renderSuccess(width, height int) string {
	q := s.accepted.Quest
	cw := layout.ContentWidth(width)

	blocks := []string{theme.Correct.Render("✓ Correct!"), ""}

	if q.SuccessMessage != "" {
		blocks = append(blocks, theme.Body.Render(q.SuccessMessage), "")
	}

	if q.HasMemory() {
		blocks = append(blocks, components.GlowCard("💭\n\n"+theme.Script.Render(q.Memory), cw), "")
	}

	next := "Continue to Next Quest"
	switch {
	case s.accepted.SurpriseStarted:
		next = "Continue to the Car 🚗"
	case s.accepted.Stage == quest.StageComplete:
		next = "Open Your Letter 💌"
	}
	blocks = append(blocks, components.NewButton(next, true, nil).View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Centered(width, blocks...))
}
