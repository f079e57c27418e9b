// Package adventure is the progression state machine: it owns the current
// stage and completed quests, checks answers, runs the car surprise and
// persists every transition.
package adventure

import (
	"context"
	"log/slog"
	"slices"

	"github.com/abhisek/lovequest/internal/answer"
	"github.com/abhisek/lovequest/internal/quest"
	"github.com/abhisek/lovequest/internal/store"
	"github.com/abhisek/lovequest/internal/surprise"
)

// ProgressStore is the persistence capability the engine needs.
// Implementations are best effort and never return errors.
type ProgressStore interface {
	Load(ctx context.Context) (store.ProgressRecord, bool)
	Save(ctx context.Context, rec store.ProgressRecord)
	Clear(ctx context.Context)
	MarkStarted(ctx context.Context)
	HasStarted(ctx context.Context) bool
}

// Engine drives Intro -> Quest1 -> Quest2 -> Quest3 -> Complete.
//
// Intents that do not apply to the current state are ignored. Every
// transition that changes progress writes the store before returning.
type Engine struct {
	quests *quest.Registry
	store  ProgressStore
	logger *slog.Logger

	stage     quest.Stage
	completed []string
	hintCount int
	seq       *surprise.Sequencer
}

// New creates an engine and restores any saved progress. A restored session
// never resumes mid-surprise.
func New(ctx context.Context, quests *quest.Registry, st ProgressStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		quests: quests,
		store:  st,
		logger: logger,
		stage:  quest.StageIntro,
	}
	e.restore(ctx)
	return e
}

func (e *Engine) restore(ctx context.Context) {
	rec, ok := e.store.Load(ctx)
	if !ok {
		return
	}
	e.stage = rec.CurrentStage
	e.completed = nil
	for _, id := range rec.CompletedQuestIDs {
		e.markCompleted(id)
	}

	// A stage ahead of the completed set is pulled back to the first
	// unfinished quest. A stage behind it is kept so an interrupted
	// surprise replays its quest.
	if e.stage != quest.StageIntro {
		if first := e.firstUnfinished(); first.Before(e.stage) {
			e.logger.WarnContext(ctx, "saved stage ahead of completed quests",
				slog.String("saved", string(e.stage)),
				slog.String("restored", string(first)))
			e.stage = first
		}
	}
	e.logger.InfoContext(ctx, "progress restored",
		slog.String("stage", string(e.stage)),
		slog.Any("completed", e.completed))
}

// Start leaves the intro. Valid only from Intro.
func (e *Engine) Start(ctx context.Context) bool {
	if e.stage != quest.StageIntro {
		return false
	}
	e.stage = quest.StageQuest1
	e.completed = nil
	e.hintCount = 0
	e.seq = nil

	e.store.MarkStarted(ctx)
	e.persist(ctx, []string{string(quest.StageQuest1)})
	e.logger.InfoContext(ctx, "adventure started")
	return true
}

// SubmitAnswer checks a free-text answer for the current quest.
func (e *Engine) SubmitAnswer(ctx context.Context, questID, text string) Result {
	q, ok := e.activeQuest(questID)
	if !ok {
		return Result{Outcome: OutcomeIgnored, Stage: e.stage}
	}
	return e.apply(ctx, q, answer.Validate(text, q))
}

// SelectChoice checks a selected choice for the current quest.
func (e *Engine) SelectChoice(ctx context.Context, questID, choice string) Result {
	q, ok := e.activeQuest(questID)
	if !ok || !q.HasChoices() {
		return Result{Outcome: OutcomeIgnored, Stage: e.stage}
	}
	return e.apply(ctx, q, answer.ValidateChoice(choice, q))
}

// activeQuest returns the current stage's quest if it matches questID and
// no surprise is in progress.
func (e *Engine) activeQuest(questID string) (quest.Quest, bool) {
	if e.seq != nil {
		return quest.Quest{}, false
	}
	q, ok := e.quests.FindByStage(e.stage)
	if !ok || q.ID != questID {
		return quest.Quest{}, false
	}
	return q, true
}

func (e *Engine) apply(ctx context.Context, q quest.Quest, res answer.Result) Result {
	switch res.Verdict {
	case answer.VerdictEmpty:
		return Result{Outcome: OutcomeEmpty, Quest: q, Stage: e.stage}

	case answer.VerdictRejected:
		e.hintCount++
		e.logger.DebugContext(ctx, "answer rejected",
			slog.String("quest_id", q.ID),
			slog.Int("hint_count", e.hintCount))
		return Result{Outcome: OutcomeWrong, Quest: q, Stage: e.stage}
	}

	e.markCompleted(q.ID)
	e.hintCount = 0
	e.logger.InfoContext(ctx, "quest completed", slog.String("quest_id", q.ID))

	if q.HasCarSurprise {
		// The stage holds until the sequencer reports completion.
		e.seq = surprise.New(e.onSurpriseComplete)
		e.persist(ctx, e.allQuestStages())
		e.logger.InfoContext(ctx, "car surprise started", slog.String("quest_id", q.ID))
		return Result{Outcome: OutcomeAccepted, Quest: q, Stage: e.stage, SurpriseStarted: true}
	}

	e.advance(ctx, q.Stage.Next())
	return Result{Outcome: OutcomeAccepted, Quest: q, Stage: e.stage}
}

// ActivateHotspot opens the current surprise hotspot.
func (e *Engine) ActivateHotspot() bool {
	if e.seq == nil {
		return false
	}
	return e.seq.Activate()
}

// AnimationComplete finishes the in-flight hotspot reveal.
func (e *Engine) AnimationComplete() bool {
	if e.seq == nil {
		return false
	}
	return e.seq.AnimationComplete()
}

// AcknowledgeSurprise dismisses the celebration, which ends the surprise and
// advances to the next quest.
func (e *Engine) AcknowledgeSurprise(ctx context.Context) bool {
	if e.seq == nil {
		return false
	}
	return e.seq.AcknowledgeCelebration(ctx)
}

// onSurpriseComplete is the sequencer's completion callback.
func (e *Engine) onSurpriseComplete(ctx context.Context) {
	if e.seq == nil {
		return
	}
	e.seq = nil
	e.logger.InfoContext(ctx, "car surprise complete")
	e.advance(ctx, e.stage.Next())
}

// Reset discards all progress, including any surprise in flight. Valid from
// any state.
func (e *Engine) Reset(ctx context.Context) {
	e.store.Clear(ctx)
	e.stage = quest.StageIntro
	e.completed = nil
	e.hintCount = 0
	e.seq = nil
	e.logger.InfoContext(ctx, "adventure reset")
}

func (e *Engine) advance(ctx context.Context, next quest.Stage) {
	prev := e.stage
	e.stage = next
	e.persist(ctx, e.allQuestStages())
	e.logger.InfoContext(ctx, "stage advanced",
		slog.String("from", string(prev)),
		slog.String("to", string(next)))
}

func (e *Engine) persist(ctx context.Context, unlocked []string) {
	e.store.Save(ctx, store.ProgressRecord{
		CurrentStage:      e.stage,
		CompletedQuestIDs: slices.Clone(e.completed),
		UnlockedStageIDs:  unlocked,
	})
}

// allQuestStages is the unlocked set written after the first answer. It is
// kept for display and compatibility and does not gate anything.
func (e *Engine) allQuestStages() []string {
	var out []string
	for _, s := range quest.QuestStages() {
		out = append(out, string(s))
	}
	return out
}

// firstUnfinished returns the stage of the first quest not yet completed,
// or Complete when every quest is done.
func (e *Engine) firstUnfinished() quest.Stage {
	for _, q := range e.quests.List() {
		if !slices.Contains(e.completed, q.ID) {
			return q.Stage
		}
	}
	return quest.StageComplete
}

func (e *Engine) markCompleted(id string) {
	if !slices.Contains(e.completed, id) {
		e.completed = append(e.completed, id)
	}
}
