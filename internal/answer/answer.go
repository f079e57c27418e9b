// Package answer checks riddle answers and builds the escalating hint ladder.
package answer

import (
	"slices"
	"strings"

	"github.com/abhisek/lovequest/internal/quest"
)

// Verdict is the outcome of checking one candidate answer.
type Verdict int

const (
	VerdictEmpty    Verdict = iota // blank input, not counted as a guess
	VerdictRejected                // a real wrong guess
	VerdictAccepted
)

func (v Verdict) String() string {
	switch v {
	case VerdictEmpty:
		return "empty"
	case VerdictRejected:
		return "rejected"
	case VerdictAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Result is returned by Validate.
type Result struct {
	Accepted bool
	Verdict  Verdict
}

// Validate checks candidate against the quest's accepted answers.
//
// Normalization rules:
//   - Whitespace is trimmed; a blank candidate is rejected as VerdictEmpty
//   - Comparison is case-insensitive
//   - A match is bidirectional substring containment: the candidate contains
//     an accepted answer, or an accepted answer contains the candidate.
//     Short candidates can therefore match ("c" matches "concert").
func Validate(candidate string, q quest.Quest) Result {
	normalized := strings.ToLower(strings.TrimSpace(candidate))
	if normalized == "" {
		return Result{Verdict: VerdictEmpty}
	}

	for _, a := range q.Answers {
		accepted := strings.ToLower(a)
		if strings.Contains(normalized, accepted) || strings.Contains(accepted, normalized) {
			return Result{Accepted: true, Verdict: VerdictAccepted}
		}
	}
	return Result{Verdict: VerdictRejected}
}

// ValidateChoice checks a selected choice. Selections that are not among the
// quest's choices are rejected as VerdictEmpty so they never count as a guess.
func ValidateChoice(choice string, q quest.Quest) Result {
	if !slices.Contains(q.Choices, choice) {
		return Result{Verdict: VerdictEmpty}
	}
	return Validate(choice, q)
}
