// Package car runs the post-quest car surprise: three hotspots revealed in
// order, each with a short animation, then a celebration.
package car

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lovequest/internal/adventure"
	"github.com/abhisek/lovequest/internal/screen"
	"github.com/abhisek/lovequest/internal/surprise"
	"github.com/abhisek/lovequest/internal/ui/layout"
)

const frameInterval = 150 * time.Millisecond

// frameMsg advances the running hotspot animation.
type frameMsg struct {
	owner *CarScreen
	step  int
}

// CarScreen implements screen.Screen for the car surprise.
type CarScreen struct {
	ctx     context.Context
	engine  *adventure.Engine
	elapsed time.Duration
	frame   int
}

var _ screen.Screen = (*CarScreen)(nil)
var _ screen.KeyHintProvider = (*CarScreen)(nil)

// New creates the car screen over the engine's active surprise.
func New(ctx context.Context, engine *adventure.Engine) *CarScreen {
	return &CarScreen{ctx: ctx, engine: engine}
}

func (s *CarScreen) Init() tea.Cmd {
	return nil
}

func (s *CarScreen) Title() string {
	return "The Car Surprise"
}

func (s *CarScreen) KeyHints() []layout.KeyHint {
	v := s.engine.Surprise()
	switch {
	case v.IsAnimating:
		return nil
	case v.Phase == surprise.PhaseCelebration:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Open " + v.Current.ID}}
	}
}

func (s *CarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !s.engine.SurpriseActive() {
		return s, screen.Sync
	}

	switch msg := msg.(type) {
	case frameMsg:
		return s.handleFrame(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *CarScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter", "space", " ":
	default:
		return s, nil
	}

	v := s.engine.Surprise()
	if v.Phase == surprise.PhaseCelebration {
		if s.engine.AcknowledgeSurprise(s.ctx) {
			return s, screen.Sync
		}
		return s, nil
	}

	if !s.engine.ActivateHotspot() {
		return s, nil
	}
	s.elapsed = 0
	s.frame = 0
	return s, s.nextFrame(v.StepIndex)
}

func (s *CarScreen) handleFrame(msg frameMsg) (screen.Screen, tea.Cmd) {
	v := s.engine.Surprise()
	if msg.owner != s || !v.IsAnimating || msg.step != v.StepIndex {
		return s, nil
	}

	s.elapsed += frameInterval
	s.frame++
	if s.elapsed >= v.Animation.Duration() {
		s.engine.AnimationComplete()
		return s, nil
	}
	return s, s.nextFrame(msg.step)
}

func (s *CarScreen) nextFrame(step int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{owner: s, step: step}
	})
}
