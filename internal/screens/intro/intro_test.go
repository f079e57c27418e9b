package intro

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lovequest/internal/adventure"
	"github.com/abhisek/lovequest/internal/logging"
	"github.com/abhisek/lovequest/internal/quest"
	"github.com/abhisek/lovequest/internal/screen"
	"github.com/abhisek/lovequest/internal/store"
)

func newTestIntro() (*IntroScreen, *adventure.Engine) {
	ps := store.NewProgressStore(store.NewMemoryKV(), nil)
	e := adventure.New(context.Background(), quest.Default(), ps, logging.Discard())
	return New(context.Background(), e, "Kullu"), e
}

func sendTicks(s *IntroScreen, n int) {
	for i := 0; i < n; i++ {
		s.Update(tickMsg(time.Now()))
	}
}

func TestPhases(t *testing.T) {
	s, _ := newTestIntro()

	if strings.Contains(s.View(100, 40), "Love Adventure Quest") {
		t.Error("title should not be visible at start")
	}

	sendTicks(s, 15)
	if s.elapsed != phase2End {
		t.Errorf("expected elapsed %v, got %v", phase2End, s.elapsed)
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "Love Adventure Quest") {
		t.Error("expected title after phase 2")
	}
	if !strings.Contains(view, "Hey Kullu") {
		t.Error("expected greeting with the player name")
	}

	sendTicks(s, 100)
	if s.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, s.elapsed)
	}
	if !strings.Contains(s.View(100, 40), "Begin Our Adventure") {
		t.Error("expected begin button")
	}
}

func TestKeypressSkipsAnimation(t *testing.T) {
	s, e := newTestIntro()

	_, cmd := s.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("skip should not start the adventure")
	}
	if s.elapsed != totalDur {
		t.Error("expected animation skipped to the end")
	}
	if e.Stage() != quest.StageIntro {
		t.Errorf("expected intro, got %s", e.Stage())
	}
}

func TestEnterStartsAdventure(t *testing.T) {
	s, e := newTestIntro()
	sendTicks(s, 30)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected sync command")
	}
	if _, ok := cmd().(screen.SyncMsg); !ok {
		t.Fatalf("expected SyncMsg, got %T", cmd())
	}
	if e.Stage() != quest.StageQuest1 {
		t.Errorf("expected quest-1, got %s", e.Stage())
	}

	// Pressing again does nothing.
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("second enter should not produce a command")
	}
}

func TestBeginAgainLabel(t *testing.T) {
	kv := store.NewMemoryKV()
	if err := kv.Set(context.Background(), store.StartedKey, "1707919200000"); err != nil {
		t.Fatal(err)
	}
	e := adventure.New(context.Background(), quest.Default(), store.NewProgressStore(kv, nil), logging.Discard())
	s := New(context.Background(), e, "")
	sendTicks(s, 30)

	if !strings.Contains(s.View(100, 40), "Begin Again") {
		t.Error("expected resume label when the adventure was started before")
	}
}
