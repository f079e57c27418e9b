package quest

import "fmt"

// Stage is one discrete position in the linear adventure.
type Stage string

const (
	StageIntro    Stage = "intro"
	StageQuest1   Stage = "quest-1"
	StageQuest2   Stage = "quest-2"
	StageQuest3   Stage = "quest-3"
	StageComplete Stage = "complete"
)

// stageOrder is the narrative order. Successor lookups walk this list.
var stageOrder = []Stage{
	StageIntro,
	StageQuest1,
	StageQuest2,
	StageQuest3,
	StageComplete,
}

// AllStages returns every stage in narrative order.
func AllStages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// QuestStages returns the stages that are bound to a quest, in order.
func QuestStages() []Stage {
	return []Stage{StageQuest1, StageQuest2, StageQuest3}
}

// ParseStage converts a stored stage string into a Stage.
func ParseStage(s string) (Stage, error) {
	st := Stage(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown stage %q", s)
	}
	return st, nil
}

// Valid reports whether s is one of the known stages.
func (s Stage) Valid() bool {
	return s.Index() >= 0
}

// Index returns the position of s in narrative order, or -1.
func (s Stage) Index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// IsQuest reports whether s is bound to a quest.
func (s Stage) IsQuest() bool {
	switch s {
	case StageQuest1, StageQuest2, StageQuest3:
		return true
	default:
		return false
	}
}

// Next returns the successor of s. Complete is terminal and returns itself;
// an unknown stage has no successor and returns Intro.
func (s Stage) Next() Stage {
	i := s.Index()
	switch {
	case i < 0:
		return StageIntro
	case i == len(stageOrder)-1:
		return StageComplete
	default:
		return stageOrder[i+1]
	}
}

// Before reports whether s comes strictly before other in narrative order.
func (s Stage) Before(other Stage) bool {
	return s.Index() < other.Index()
}

// DisplayName returns a human-readable label for a stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageIntro:
		return "Intro"
	case StageQuest1:
		return "Quest 1"
	case StageQuest2:
		return "Quest 2"
	case StageQuest3:
		return "Quest 3"
	case StageComplete:
		return "Complete"
	default:
		return string(s)
	}
}

// UnmarshalText rejects unknown stage strings.
func (s *Stage) UnmarshalText(b []byte) error {
	st, err := ParseStage(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
