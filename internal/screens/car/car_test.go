package car

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lovequest/internal/adventure"
	"github.com/abhisek/lovequest/internal/logging"
	"github.com/abhisek/lovequest/internal/quest"
	"github.com/abhisek/lovequest/internal/screen"
	"github.com/abhisek/lovequest/internal/store"
	"github.com/abhisek/lovequest/internal/surprise"
)

func newSurpriseEngine(t *testing.T) *adventure.Engine {
	t.Helper()
	ctx := context.Background()
	ps := store.NewProgressStore(store.NewMemoryKV(), nil)
	e := adventure.New(ctx, quest.Default(), ps, logging.Discard())
	e.Start(ctx)
	if res := e.SubmitAnswer(ctx, "quest-1", "it takes two"); !res.SurpriseStarted {
		t.Fatal("expected the car surprise to start")
	}
	return e
}

func enter(s *CarScreen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

// playAnimation feeds frames until the current hotspot finishes.
func playAnimation(t *testing.T, s *CarScreen) {
	t.Helper()
	step := s.engine.Surprise().StepIndex
	for i := 0; i < 100 && s.engine.Surprise().IsAnimating; i++ {
		s.Update(frameMsg{owner: s, step: step})
	}
	if s.engine.Surprise().IsAnimating {
		t.Fatal("animation never finished")
	}
}

func TestRevealSequence(t *testing.T) {
	e := newSurpriseEngine(t)
	s := New(context.Background(), e)

	for i := 0; i < surprise.StepCount(); i++ {
		if cmd := enter(s); cmd == nil {
			t.Fatalf("step %d: expected animation frames", i)
		}
		if !e.Surprise().IsAnimating {
			t.Fatalf("step %d: expected animating", i)
		}

		// Pressing again mid-animation is ignored.
		if cmd := enter(s); cmd != nil {
			t.Errorf("step %d: expected no command while animating", i)
		}

		playAnimation(t, s)
	}

	if e.Surprise().Phase != surprise.PhaseCelebration {
		t.Fatalf("expected celebration, got %s", e.Surprise().Phase)
	}
	if !strings.Contains(s.View(100, 40), "The real surprise awaits") {
		t.Error("expected celebration copy")
	}

	cmd := enter(s)
	if cmd == nil {
		t.Fatal("expected sync after acknowledging")
	}
	if _, ok := cmd().(screen.SyncMsg); !ok {
		t.Fatalf("expected SyncMsg, got %T", cmd())
	}
	if e.Stage() != quest.StageQuest2 {
		t.Errorf("expected quest-2, got %s", e.Stage())
	}
}

func TestStaleFramesIgnored(t *testing.T) {
	e := newSurpriseEngine(t)
	s := New(context.Background(), e)
	other := New(context.Background(), e)

	enter(s)
	for i := 0; i < 100; i++ {
		s.Update(frameMsg{owner: other, step: 0})
		s.Update(frameMsg{owner: s, step: 2})
	}
	if !e.Surprise().IsAnimating {
		t.Error("frames from another screen or step should not finish the reveal")
	}
}

func TestViewShowsHotspots(t *testing.T) {
	e := newSurpriseEngine(t)
	s := New(context.Background(), e)

	view := s.View(100, 40)
	for _, want := range []string{"Sun Visor", "Dashboard", "Boot", "Open the sun visor"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSyncsWhenSurpriseGone(t *testing.T) {
	e := newSurpriseEngine(t)
	s := New(context.Background(), e)
	e.Reset(context.Background())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected sync")
	}
	if _, ok := cmd().(screen.SyncMsg); !ok {
		t.Fatalf("expected SyncMsg, got %T", cmd())
	}
}
