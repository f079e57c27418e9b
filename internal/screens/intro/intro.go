// Package intro is the opening scene: a short heart animation, the
// adventure banner and a button to begin.
package intro

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequest/internal/adventure"
	"github.com/abhisek/lovequest/internal/screen"
	"github.com/abhisek/lovequest/internal/ui/components"
	"github.com/abhisek/lovequest/internal/ui/layout"
	"github.com/abhisek/lovequest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// heart frames pulse beside the banner
var heartFrames = []string{"♥", "♡", "💕", "♡"}

type tickMsg time.Time

// IntroScreen greets the player and starts the adventure.
type IntroScreen struct {
	ctx     context.Context
	engine  *adventure.Engine
	player  string
	button  components.Button
	elapsed time.Duration
	ticks   int
	started bool
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates the intro screen for player.
func New(ctx context.Context, engine *adventure.Engine, player string) *IntroScreen {
	s := &IntroScreen{
		ctx:    ctx,
		engine: engine,
		player: player,
	}
	label := "Begin Our Adventure"
	if engine.HasStarted(ctx) {
		label = "Begin Again"
	}
	s.button = components.NewButton(label, true, s.start)
	return s
}

func (s *IntroScreen) Title() string {
	return ""
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	if s.elapsed < totalDur {
		return []layout.KeyHint{{Key: "any key", Description: "Skip"}}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Begin"}}
}

func (s *IntroScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.elapsed < totalDur {
			s.elapsed += tickInterval
		}
		s.ticks++
		return s, tick()

	case tea.KeyPressMsg:
		// The first key during the animation only skips it.
		if s.elapsed < totalDur {
			s.elapsed = totalDur
			return s, nil
		}
		var cmd tea.Cmd
		s.button, cmd = s.button.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *IntroScreen) start() tea.Cmd {
	if s.started || !s.engine.Start(s.ctx) {
		return nil
	}
	s.started = true
	return screen.Sync
}

func (s *IntroScreen) View(width, height int) string {
	var sections []string

	hearts := lipgloss.NewStyle().Foreground(theme.Rose).Render("💕")
	if s.elapsed >= phase1End {
		frame := heartFrames[s.ticks%len(heartFrames)]
		a := lipgloss.NewStyle().Foreground(theme.Primary).Render(frame)
		b := lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame)
		hearts = a + "   " + hearts + "   " + b
	}
	sections = append(sections, hearts, "")

	if s.elapsed >= phase1End {
		sections = append(sections, RenderBanner(width), "")
	}

	if s.elapsed >= phase2End {
		reg := s.engine.Registry()
		sections = append(sections,
			theme.Title.Render(reg.Title()),
			theme.Subtitle.Render(reg.Tagline()),
			"",
		)
		if s.player != "" {
			sections = append(sections, theme.Script.Render("Hey "+s.player+" 💕"))
		}
		if intro := reg.Intro(); intro != "" {
			cw := layout.ContentWidth(width)
			sections = append(sections, lipgloss.NewStyle().
				Width(cw).
				Align(lipgloss.Center).
				Foreground(theme.Text).
				Render(intro))
		}
		sections = append(sections, "")
	}

	if s.elapsed >= totalDur {
		sections = append(sections, s.button.View())
	} else {
		sections = append(sections, theme.Hint.Render("press any key"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}
