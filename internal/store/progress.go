package store

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/abhisek/lovequest/internal/quest"
	"github.com/abhisek/lovequest/internal/validate"
)

// Fixed storage keys.
const (
	ProgressKey = "love-quest-progress"
	StartedKey  = "love-quest-started"
)

// ProgressRecord is the persisted snapshot of adventure progress.
type ProgressRecord struct {
	CurrentStage      quest.Stage `json:"currentStage"`
	CompletedQuestIDs []string    `json:"completedQuests"`
	UnlockedStageIDs  []string    `json:"unlockedStages"`
}

// ProgressStore persists a ProgressRecord and the started marker in a KV.
//
// Every operation is best effort: storage errors are logged and swallowed,
// and anything that cannot be read back is treated as a fresh session.
type ProgressStore struct {
	kv     KV
	logger *slog.Logger
	now    func() time.Time
}

// NewProgressStore creates a ProgressStore over kv. logger may be nil.
func NewProgressStore(kv KV, logger *slog.Logger) *ProgressStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ProgressStore{kv: kv, logger: logger, now: time.Now}
}

// Load returns the stored record. ok is false when there is no record, the
// store is unavailable, or the record does not parse.
func (p *ProgressStore) Load(ctx context.Context) (ProgressRecord, bool) {
	raw, ok, err := p.kv.Get(ctx, ProgressKey)
	if err != nil {
		p.logger.WarnContext(ctx, "progress load failed", slog.Any("error", err))
		return ProgressRecord{}, false
	}
	if !ok {
		return ProgressRecord{}, false
	}

	if err := validate.JSON(progressSchema, []byte(raw)); err != nil {
		p.logger.WarnContext(ctx, "discarding unreadable progress record", slog.Any("error", err))
		return ProgressRecord{}, false
	}

	var rec ProgressRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		p.logger.WarnContext(ctx, "discarding unreadable progress record", slog.Any("error", err))
		return ProgressRecord{}, false
	}
	return rec, true
}

// Save overwrites the stored record.
func (p *ProgressStore) Save(ctx context.Context, rec ProgressRecord) {
	if rec.CompletedQuestIDs == nil {
		rec.CompletedQuestIDs = []string{}
	}
	if rec.UnlockedStageIDs == nil {
		rec.UnlockedStageIDs = []string{}
	}

	b, err := json.Marshal(rec)
	if err != nil {
		p.logger.WarnContext(ctx, "progress encode failed", slog.Any("error", err))
		return
	}
	if err := p.kv.Set(ctx, ProgressKey, string(b)); err != nil {
		p.logger.WarnContext(ctx, "progress save failed", slog.Any("error", err))
		return
	}
	p.logger.DebugContext(ctx, "progress saved", slog.String("stage", string(rec.CurrentStage)))
}

// Clear removes the record and the started marker.
func (p *ProgressStore) Clear(ctx context.Context) {
	if err := p.kv.Delete(ctx, ProgressKey, StartedKey); err != nil {
		p.logger.WarnContext(ctx, "progress clear failed", slog.Any("error", err))
	}
}

// MarkStarted records the time the adventure was first started.
func (p *ProgressStore) MarkStarted(ctx context.Context) {
	ts := strconv.FormatInt(p.now().UnixMilli(), 10)
	if err := p.kv.Set(ctx, StartedKey, ts); err != nil {
		p.logger.WarnContext(ctx, "started marker save failed", slog.Any("error", err))
	}
}

// HasStarted reports whether the started marker is present.
func (p *ProgressStore) HasStarted(ctx context.Context) bool {
	v, ok, err := p.kv.Get(ctx, StartedKey)
	if err != nil {
		p.logger.WarnContext(ctx, "started marker load failed", slog.Any("error", err))
		return false
	}
	return ok && v != ""
}

// StartedAt returns when the adventure was started, if the marker holds a
// readable timestamp.
func (p *ProgressStore) StartedAt(ctx context.Context) (time.Time, bool) {
	v, ok, err := p.kv.Get(ctx, StartedKey)
	if err != nil || !ok {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

func stageNames() []string {
	var out []string
	for _, s := range quest.AllStages() {
		out = append(out, string(s))
	}
	return out
}

// progressSchema rejects records written by an incompatible version.
var progressSchema = &validate.Schema{
	Name: "progress-record",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"currentStage", "completedQuests"},
		"properties": map[string]any{
			"currentStage": map[string]any{"type": "string", "enum": stageNames()},
			"completedQuests": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"unlockedStages": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	},
}
