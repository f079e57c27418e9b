package answer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/lovequest/internal/quest"
)

const (
	// PartialRevealAfter is the number of wrong guesses before the hint
	// starts revealing the answer.
	PartialRevealAfter = 3

	// FullRevealAfter is the number of wrong guesses after which the first
	// accepted answer is always shown verbatim.
	FullRevealAfter = 6
)

// HintLevel is a rung on the disclosure ladder.
type HintLevel int

const (
	HintGeneric HintLevel = iota
	HintFirstLetter
	HintFullAnswer
)

// Level returns the disclosure level for the given wrong-guess count.
// Levels never decrease as hintCount grows.
func Level(q quest.Quest, hintCount int) HintLevel {
	switch {
	case hintCount < PartialRevealAfter:
		return HintGeneric
	case hintCount >= FullRevealAfter:
		return HintFullAnswer
	case len(q.Answers) > 0 && strings.Contains(q.Answers[0], " "):
		return HintFirstLetter
	default:
		return HintFullAnswer
	}
}

// Hint returns the hint text for the given wrong-guess count.
func Hint(q quest.Quest, hintCount int) string {
	if len(q.Answers) == 0 {
		return q.ThematicHint()
	}
	first := q.Answers[0]

	switch Level(q, hintCount) {
	case HintFirstLetter:
		r, _ := utf8.DecodeRuneInString(first)
		return fmt.Sprintf("First word starts with %q", string(unicode.ToUpper(r)))
	case HintFullAnswer:
		return fmt.Sprintf("The answer is: %q", first)
	default:
		return q.ThematicHint()
	}
}
