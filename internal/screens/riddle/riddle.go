// Package riddle shows the current quest: its riddle, the answer input or
// choices, the escalating hint and the memory reveal after a correct answer.
package riddle

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lovequest/internal/adventure"
	"github.com/abhisek/lovequest/internal/quest"
	"github.com/abhisek/lovequest/internal/screen"
	"github.com/abhisek/lovequest/internal/ui/components"
	"github.com/abhisek/lovequest/internal/ui/layout"
)

// wrongFlash is how long the wrong marker stays up.
const wrongFlash = 500 * time.Millisecond

// RiddleScreen implements screen.Screen for one quest.
type RiddleScreen struct {
	ctx      context.Context
	engine   *adventure.Engine
	quest    quest.Quest
	input    components.TextInput
	choices  components.MultiChoice
	wrongSeq int
	accepted *adventure.Result
}

var _ screen.Screen = (*RiddleScreen)(nil)
var _ screen.KeyHintProvider = (*RiddleScreen)(nil)

// New creates a riddle screen for the engine's current quest.
func New(ctx context.Context, engine *adventure.Engine) *RiddleScreen {
	q, _ := engine.CurrentQuest()
	s := &RiddleScreen{
		ctx:    ctx,
		engine: engine,
		quest:  q,
		input:  components.NewTextInput("Enter your answer...", 64),
	}
	if q.HasChoices() {
		s.choices = components.NewMultiChoice(q.Choices)
	}
	return s
}

func (s *RiddleScreen) Init() tea.Cmd {
	if s.quest.HasChoices() {
		return nil
	}
	return s.input.Init()
}

func (s *RiddleScreen) Title() string {
	return s.quest.Title
}

func (s *RiddleScreen) KeyHints() []layout.KeyHint {
	if s.accepted != nil {
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
	if s.quest.HasChoices() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "1-9", Description: "Pick"},
			{Key: "Enter", Description: "Submit"},
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
}

func (s *RiddleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case wrongClearMsg:
		if msg.seq == s.wrongSeq {
			s.input.ClearWrong()
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.accepted == nil && !s.quest.HasChoices() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *RiddleScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	// Success overlay: Enter moves on.
	if s.accepted != nil {
		if msg.String() == "enter" {
			return s, screen.Sync
		}
		return s, nil
	}

	if s.quest.HasChoices() {
		s.choices, _ = s.choices.Update(msg)
		if choice, ok := s.choices.Picked(); ok {
			return s.handleResult(s.engine.SelectChoice(s.ctx, s.quest.ID, choice))
		}
		return s, nil
	}

	if msg.String() == "enter" {
		return s.handleResult(s.engine.SubmitAnswer(s.ctx, s.quest.ID, s.input.Value()))
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *RiddleScreen) handleResult(res adventure.Result) (screen.Screen, tea.Cmd) {
	switch res.Outcome {
	case adventure.OutcomeAccepted:
		s.accepted = &res
		if res.Quest.SuccessMessage == "" && !res.Quest.HasMemory() {
			return s, screen.Sync
		}
		return s, nil

	case adventure.OutcomeWrong, adventure.OutcomeEmpty:
		if s.quest.HasChoices() {
			if res.Outcome == adventure.OutcomeWrong {
				s.choices.MarkWrong()
			}
			return s, nil
		}
		s.input.MarkWrong()
		s.wrongSeq++
		seq := s.wrongSeq
		return s, tea.Tick(wrongFlash, func(time.Time) tea.Msg {
			return wrongClearMsg{seq: seq}
		})

	default:
		// The engine moved on without us, e.g. a reset from elsewhere.
		return s, screen.Sync
	}
}

// ShowingSuccess reports whether the success overlay is up.
func (s *RiddleScreen) ShowingSuccess() bool {
	return s.accepted != nil
}
