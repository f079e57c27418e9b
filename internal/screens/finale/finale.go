// Package finale shows the closing letter once every quest is complete.
package finale

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequest/internal/adventure"
	"github.com/abhisek/lovequest/internal/screen"
	"github.com/abhisek/lovequest/internal/ui/layout"
	"github.com/abhisek/lovequest/internal/ui/theme"
)

const (
	tickInterval = 250 * time.Millisecond
	letterDelay  = 500 * time.Millisecond
	heartsDelay  = 1500 * time.Millisecond
)

var rainGlyphs = []string{"♥", "💕", "♡", "💖"}

type tickMsg time.Time

// FinaleScreen renders the letter in a scrollable viewport under a rain of
// hearts. "r" starts the adventure over.
type FinaleScreen struct {
	ctx     context.Context
	engine  *adventure.Engine
	player  string
	vp      viewport.Model
	vpWidth int
	elapsed time.Duration
	ticks   int
}

var _ screen.Screen = (*FinaleScreen)(nil)
var _ screen.KeyHintProvider = (*FinaleScreen)(nil)

// New creates the finale screen addressed to player.
func New(ctx context.Context, engine *adventure.Engine, player string) *FinaleScreen {
	return &FinaleScreen{
		ctx:    ctx,
		engine: engine,
		player: player,
		vp:     viewport.New(viewport.WithWidth(40), viewport.WithHeight(10)),
	}
}

func (s *FinaleScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *FinaleScreen) Title() string {
	return "Forever Yours"
}

func (s *FinaleScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Play again"},
	}
}

func (s *FinaleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		s.elapsed += tickInterval
		s.ticks++
		return s, tick()

	case tea.KeyPressMsg:
		if msg.String() == "r" || msg.String() == "R" {
			s.engine.Reset(s.ctx)
			return s, screen.Sync
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

// Greeting is the salutation line, e.g. "My Dearest Kullu,".
func (s *FinaleScreen) Greeting() string {
	g := s.engine.Registry().Finale().Greeting
	if g == "" {
		g = "My Dearest"
	}
	if s.player != "" {
		g += " " + s.player
	}
	return g + ","
}

func (s *FinaleScreen) letter(width int) string {
	f := s.engine.Registry().Finale()
	body := lipgloss.NewStyle().Width(width).Foreground(theme.Text)
	sig := lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Foreground(theme.Primary).Italic(true)

	parts := []string{body.Render(f.Letter)}
	if f.Signature != "" {
		parts = append(parts, "", sig.Render(f.Signature))
	}
	return strings.Join(parts, "\n")
}

func (s *FinaleScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)

	blocks := []string{s.renderRain(width), "", "👩🎮", ""}

	if s.elapsed >= letterDelay {
		blocks = append(blocks, theme.Title.Render(s.Greeting()), "")

		vpHeight := max(height-len(blocks)-4, 3)
		if s.vpWidth != cw {
			s.vpWidth = cw
			s.vp.SetWidth(cw)
			s.vp.SetContent(s.letter(cw))
		}
		s.vp.SetHeight(vpHeight)
		blocks = append(blocks, s.vp.View())
	}

	blocks = append(blocks, "", s.renderRain(width))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Center, blocks...))
}

// renderRain draws a drifting row of hearts once the letter is up.
func (s *FinaleScreen) renderRain(width int) string {
	if s.elapsed < heartsDelay {
		return ""
	}
	n := max(width/8, 1)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if (i+s.ticks)%2 == 0 {
			b.WriteString(rainGlyphs[(i+s.ticks)%len(rainGlyphs)])
		} else {
			b.WriteString("  ")
		}
		b.WriteString("      ")
	}
	return lipgloss.NewStyle().Foreground(theme.Primary).Render(b.String())
}

// LetterVisible reports whether the letter has faded in.
func (s *FinaleScreen) LetterVisible() bool {
	return s.elapsed >= letterDelay
}
