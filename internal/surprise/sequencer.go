// Package surprise drives the three-step hotspot reveal that interrupts the
// first quest.
package surprise

import "context"

// Phase is the sequencer's coarse state.
type Phase int

const (
	PhaseIdle        Phase = iota // waiting for the active hotspot to be opened
	PhaseAnimating                // a reveal is in flight; input is locked
	PhaseCelebration              // every hotspot revealed
	PhaseDone                     // celebration acknowledged; the sequencer is spent
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnimating:
		return "animating"
	case PhaseCelebration:
		return "celebration"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// CompleteFunc is called exactly once when the celebration is acknowledged.
type CompleteFunc func(ctx context.Context)

// Sequencer is the hotspot reveal state machine:
// Idle(0) -> Animating(0) -> Idle(1) -> ... -> Celebration -> Done.
//
// Every method reports whether it caused a transition. Intents that do not
// apply to the current phase are no-ops.
type Sequencer struct {
	hotspots   []Hotspot
	step       int
	phase      Phase
	onComplete CompleteFunc
}

// New creates a sequencer at Idle(0). onComplete may be nil.
func New(onComplete CompleteFunc) *Sequencer {
	return &Sequencer{
		hotspots:   Hotspots(),
		onComplete: onComplete,
	}
}

// Activate opens the current hotspot. It is rejected while an animation is
// in flight so a double click cannot advance the sequence twice.
func (s *Sequencer) Activate() bool {
	if s.phase != PhaseIdle || s.step >= len(s.hotspots) {
		return false
	}
	s.phase = PhaseAnimating
	return true
}

// AnimationComplete finishes the in-flight reveal and moves to the next
// hotspot, or to the celebration after the last one.
func (s *Sequencer) AnimationComplete() bool {
	if s.phase != PhaseAnimating {
		return false
	}
	if s.step+1 < len(s.hotspots) {
		s.step++
		s.phase = PhaseIdle
		return true
	}
	s.phase = PhaseCelebration
	return true
}

// AcknowledgeCelebration emits the completion signal and retires the sequencer.
func (s *Sequencer) AcknowledgeCelebration(ctx context.Context) bool {
	if s.phase != PhaseCelebration {
		return false
	}
	s.phase = PhaseDone
	if s.onComplete != nil {
		s.onComplete(ctx)
	}
	return true
}

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase { return s.phase }

// StepIndex returns the index of the interactive hotspot. Once every step has
// been consumed it stays at the last index.
func (s *Sequencer) StepIndex() int { return s.step }

// IsAnimating reports whether a reveal is in flight.
func (s *Sequencer) IsAnimating() bool { return s.phase == PhaseAnimating }

// IsComplete reports whether every hotspot has been revealed.
func (s *Sequencer) IsComplete() bool {
	return s.phase == PhaseCelebration || s.phase == PhaseDone
}

// Current returns the hotspot at the current step.
func (s *Sequencer) Current() Hotspot {
	return s.hotspots[s.step]
}

// Animation returns the animation for the current step.
func (s *Sequencer) Animation() Animation {
	return s.hotspots[s.step].Animation
}

// Hotspots returns the layout this sequencer runs over.
func (s *Sequencer) Hotspots() []Hotspot {
	out := make([]Hotspot, len(s.hotspots))
	copy(out, s.hotspots)
	return out
}

// Status reports whether hotspot i is completed, active or locked.
// Exactly one hotspot is active while the sequence is running.
func (s *Sequencer) Status(i int) Status {
	if s.IsComplete() {
		return StatusCompleted
	}
	switch {
	case i < s.step:
		return StatusCompleted
	case i == s.step:
		return StatusActive
	default:
		return StatusLocked
	}
}

// Announcement returns the status line for the most recently revealed hotspot.
func (s *Sequencer) Announcement() string {
	revealed := s.step
	if !s.IsComplete() {
		revealed--
	}
	if revealed < 0 {
		return ""
	}
	return s.hotspots[revealed].Announcement
}
