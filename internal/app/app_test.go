package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lovequest/internal/adventure"
	"github.com/abhisek/lovequest/internal/logging"
	"github.com/abhisek/lovequest/internal/quest"
	"github.com/abhisek/lovequest/internal/screen"
	"github.com/abhisek/lovequest/internal/screens/car"
	"github.com/abhisek/lovequest/internal/screens/finale"
	"github.com/abhisek/lovequest/internal/screens/intro"
	"github.com/abhisek/lovequest/internal/screens/riddle"
	"github.com/abhisek/lovequest/internal/store"
)

func newTestModel(t *testing.T) (AppModel, *adventure.Engine, *store.ProgressStore) {
	t.Helper()
	ps := store.NewProgressStore(store.NewMemoryKV(), nil)
	e := adventure.New(context.Background(), quest.Default(), ps, logging.Discard())
	m := newAppModel(context.Background(), Options{Engine: e, PlayerName: "Kullu", Logger: logging.Discard()})
	return m, e, ps
}

func update(m AppModel, msg tea.Msg) AppModel {
	next, _ := m.Update(msg)
	return next.(AppModel)
}

func TestScreenFollowsEngine(t *testing.T) {
	ctx := context.Background()
	m, e, _ := newTestModel(t)

	if _, ok := m.router.Active().(*intro.IntroScreen); !ok {
		t.Fatalf("expected intro screen, got %T", m.router.Active())
	}

	e.Start(ctx)
	m = update(m, screen.SyncMsg{})
	if _, ok := m.router.Active().(*riddle.RiddleScreen); !ok {
		t.Fatalf("expected riddle screen, got %T", m.router.Active())
	}

	e.SubmitAnswer(ctx, "quest-1", "it takes two")
	m = update(m, screen.SyncMsg{})
	if _, ok := m.router.Active().(*car.CarScreen); !ok {
		t.Fatalf("expected car screen, got %T", m.router.Active())
	}

	for e.SurpriseActive() {
		e.ActivateHotspot()
		e.AnimationComplete()
		e.AcknowledgeSurprise(ctx)
	}
	e.SubmitAnswer(ctx, "quest-2", "concert")
	e.SubmitAnswer(ctx, "quest-3", "i love you")
	m = update(m, screen.SyncMsg{})
	if _, ok := m.router.Active().(*finale.FinaleScreen); !ok {
		t.Fatalf("expected finale screen, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", m.router.Depth())
	}
}

func TestRestoredSessionOpensOnQuest(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	ps := store.NewProgressStore(kv, nil)
	ps.Save(ctx, store.ProgressRecord{CurrentStage: quest.StageQuest2, CompletedQuestIDs: []string{"quest-1"}})

	e := adventure.New(ctx, quest.Default(), ps, logging.Discard())
	m := newAppModel(ctx, Options{Engine: e})
	s, ok := m.router.Active().(*riddle.RiddleScreen)
	if !ok {
		t.Fatalf("expected riddle screen, got %T", m.router.Active())
	}
	if s.Title() != "The Journey of Hearts" {
		t.Errorf("unexpected quest %q", s.Title())
	}
}

func TestCtrlRResets(t *testing.T) {
	ctx := context.Background()
	m, e, ps := newTestModel(t)
	e.Start(ctx)
	e.SubmitAnswer(ctx, "quest-1", "it takes two")
	e.ActivateHotspot()
	m = update(m, screen.SyncMsg{})

	m = update(m, tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	if e.Stage() != quest.StageIntro {
		t.Errorf("expected intro, got %s", e.Stage())
	}
	if e.SurpriseActive() {
		t.Error("expected surprise discarded")
	}
	if _, ok := ps.Load(ctx); ok {
		t.Error("expected stored progress cleared")
	}
	if _, ok := m.router.Active().(*intro.IntroScreen); !ok {
		t.Fatalf("expected intro screen, got %T", m.router.Active())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewFrame(t *testing.T) {
	m, e, _ := newTestModel(t)
	e.Start(context.Background())
	m = update(m, screen.SyncMsg{})
	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if !m.View().AltScreen {
		t.Error("expected alt screen")
	}
	frame := m.render()
	for _, want := range []string{"Love Quest", "Where Love Begins", "Ctrl+R", "♡"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}
