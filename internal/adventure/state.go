package adventure

import (
	"context"
	"slices"

	"github.com/abhisek/lovequest/internal/answer"
	"github.com/abhisek/lovequest/internal/quest"
	"github.com/abhisek/lovequest/internal/surprise"
)

// Outcome classifies what an answer intent did.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // intent did not apply to the current state
	OutcomeEmpty                   // blank input; nothing counted
	OutcomeWrong                   // wrong guess; hint counter advanced
	OutcomeAccepted                // quest completed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeEmpty:
		return "empty"
	case OutcomeWrong:
		return "wrong"
	case OutcomeAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Result is returned by SubmitAnswer and SelectChoice.
type Result struct {
	Outcome         Outcome
	Quest           quest.Quest // the quest that was checked; zero if ignored
	Stage           quest.Stage // stage after the intent
	SurpriseStarted bool
}

// HotspotView is a hotspot together with its current interactivity.
type HotspotView struct {
	surprise.Hotspot
	Status surprise.Status
}

// SurpriseView is the observable state of the car surprise.
type SurpriseView struct {
	Active       bool
	Phase        surprise.Phase
	StepIndex    int
	IsAnimating  bool
	IsComplete   bool
	Current      surprise.Hotspot
	Animation    surprise.Animation
	Announcement string
	Hotspots     []HotspotView
}

// Stage returns the current stage.
func (e *Engine) Stage() quest.Stage { return e.stage }

// Registry returns the quest registry the engine runs over.
func (e *Engine) Registry() *quest.Registry { return e.quests }

// CurrentQuest returns the quest for the current stage.
func (e *Engine) CurrentQuest() (quest.Quest, bool) {
	return e.quests.FindByStage(e.stage)
}

// CompletedQuestIDs returns completed quest ids in completion order.
func (e *Engine) CompletedQuestIDs() []string {
	return slices.Clone(e.completed)
}

// IsCompleted reports whether the quest with id has been completed.
func (e *Engine) IsCompleted(id string) bool {
	return slices.Contains(e.completed, id)
}

// HintCount returns the wrong-guess count for the current quest.
func (e *Engine) HintCount() int { return e.hintCount }

// Hint returns the hint text for the current quest, or "" outside a quest.
func (e *Engine) Hint() string {
	q, ok := e.CurrentQuest()
	if !ok {
		return ""
	}
	return answer.Hint(q, e.hintCount)
}

// HasStarted reports whether the adventure was ever started on this device.
func (e *Engine) HasStarted(ctx context.Context) bool {
	return e.store.HasStarted(ctx)
}

// SurpriseActive reports whether the car surprise owns control.
func (e *Engine) SurpriseActive() bool { return e.seq != nil }

// Surprise returns a snapshot of the car surprise.
func (e *Engine) Surprise() SurpriseView {
	if e.seq == nil {
		return SurpriseView{}
	}
	hs := e.seq.Hotspots()
	views := make([]HotspotView, len(hs))
	for i, h := range hs {
		views[i] = HotspotView{Hotspot: h, Status: e.seq.Status(i)}
	}
	return SurpriseView{
		Active:       true,
		Phase:        e.seq.Phase(),
		StepIndex:    e.seq.StepIndex(),
		IsAnimating:  e.seq.IsAnimating(),
		IsComplete:   e.seq.IsComplete(),
		Current:      e.seq.Current(),
		Animation:    e.seq.Animation(),
		Announcement: e.seq.Announcement(),
		Hotspots:     views,
	}
}
