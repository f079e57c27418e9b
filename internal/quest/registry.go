package quest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRegistry is returned when adventure content fails validation.
var ErrInvalidRegistry = errors.New("invalid quest registry")

// Registry is the read-only, ordered set of quests for one adventure.
type Registry struct {
	adventure Adventure
	byStage   map[Stage]int
	byID      map[string]int
}

// New validates the adventure and builds a registry over it.
func New(a Adventure) (*Registry, error) {
	if err := validateAdventure(a); err != nil {
		return nil, err
	}

	r := &Registry{
		adventure: a,
		byStage:   make(map[Stage]int, len(a.Quests)),
		byID:      make(map[string]int, len(a.Quests)),
	}
	for i, q := range a.Quests {
		r.byStage[q.Stage] = i
		r.byID[q.ID] = i
	}
	return r, nil
}

// List returns the quests in narrative order.
func (r *Registry) List() []Quest {
	out := make([]Quest, len(r.adventure.Quests))
	copy(out, r.adventure.Quests)
	return out
}

// Len returns the number of quests.
func (r *Registry) Len() int {
	return len(r.adventure.Quests)
}

// FindByStage returns the quest bound to stage. Intro and Complete have none.
func (r *Registry) FindByStage(stage Stage) (Quest, bool) {
	i, ok := r.byStage[stage]
	if !ok {
		return Quest{}, false
	}
	return r.adventure.Quests[i], true
}

// FindByID returns the quest with the given id.
func (r *Registry) FindByID(id string) (Quest, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Quest{}, false
	}
	return r.adventure.Quests[i], true
}

// IDs returns every quest id in narrative order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.adventure.Quests))
	for _, q := range r.adventure.Quests {
		ids = append(ids, q.ID)
	}
	return ids
}

// Title returns the adventure title.
func (r *Registry) Title() string { return r.adventure.Title }

// Tagline returns the adventure tagline.
func (r *Registry) Tagline() string { return r.adventure.Tagline }

// Intro returns the intro blurb.
func (r *Registry) Intro() string { return r.adventure.Intro }

// Finale returns the closing letter.
func (r *Registry) Finale() Finale { return r.adventure.Finale }

// validateAdventure performs structural checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateAdventure(a Adventure) error {
	var errs []string

	stages := QuestStages()
	if len(a.Quests) != len(stages) {
		errs = append(errs, fmt.Sprintf("expected %d quests, got %d", len(stages), len(a.Quests)))
	}

	ids := make(map[string]bool, len(a.Quests))
	surprises := 0
	for i, q := range a.Quests {
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("quest %d has no id", i))
		} else if ids[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate quest id: %q", q.ID))
		}
		ids[q.ID] = true

		if i < len(stages) && q.Stage != stages[i] {
			errs = append(errs, fmt.Sprintf("quest %q has stage %q, want %q", q.ID, q.Stage, stages[i]))
		}

		if len(q.Answers) == 0 {
			errs = append(errs, fmt.Sprintf("quest %q has no accepted answers", q.ID))
		}
		for _, ans := range q.Answers {
			if strings.TrimSpace(ans) == "" {
				errs = append(errs, fmt.Sprintf("quest %q has a blank accepted answer", q.ID))
			}
		}

		if q.HasCarSurprise {
			surprises++
		}
	}

	if surprises > 1 {
		errs = append(errs, fmt.Sprintf("at most one quest may have a car surprise, got %d", surprises))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRegistry, strings.Join(errs, "; "))
	}
	return nil
}
