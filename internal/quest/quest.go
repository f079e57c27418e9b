package quest

// Character selects the decorative character art shown with a quest.
type Character string

const (
	CharacterCody Character = "cody"
	CharacterBoth Character = "both"
)

// DefaultHint is the thematic hint used when a quest does not define its own.
const DefaultHint = "Think about our gaming adventures... 🎮"

// Quest is a single riddle or choice challenge bound to a stage.
type Quest struct {
	ID             string    `yaml:"id" json:"id"`
	Stage          Stage     `yaml:"stage" json:"stage"`
	Title          string    `yaml:"title" json:"title"`
	Location       string    `yaml:"location" json:"location"`
	Time           string    `yaml:"time" json:"time"`
	Character      Character `yaml:"character" json:"character,omitempty"`
	Riddle         string    `yaml:"riddle" json:"riddle"`
	Answers        []string  `yaml:"answers" json:"answers"`
	Choices        []string  `yaml:"choices" json:"choices,omitempty"`
	Hint           string    `yaml:"hint" json:"hint,omitempty"`
	SuccessMessage string    `yaml:"successMessage" json:"successMessage,omitempty"`
	Memory         string    `yaml:"memory" json:"memory,omitempty"`
	HasCarSurprise bool      `yaml:"hasCarSurprise" json:"hasCarSurprise,omitempty"`
}

// HasChoices reports whether the quest is answered by picking a choice.
func (q Quest) HasChoices() bool {
	return len(q.Choices) > 0
}

// HasMemory reports whether a reveal step follows a correct answer.
func (q Quest) HasMemory() bool {
	return q.Memory != ""
}

// ThematicHint returns the quest's generic hint text.
func (q Quest) ThematicHint() string {
	if q.Hint != "" {
		return q.Hint
	}
	return DefaultHint
}

// Finale is the closing letter shown once every quest is complete.
type Finale struct {
	Greeting  string `yaml:"greeting" json:"greeting"`
	Letter    string `yaml:"letter" json:"letter"`
	Signature string `yaml:"signature" json:"signature"`
}

// Adventure is the full content document: framing copy plus ordered quests.
type Adventure struct {
	Title   string  `yaml:"title" json:"title"`
	Tagline string  `yaml:"tagline" json:"tagline"`
	Intro   string  `yaml:"intro" json:"intro"`
	Quests  []Quest `yaml:"quests" json:"quests"`
	Finale  Finale  `yaml:"finale" json:"finale"`
}
