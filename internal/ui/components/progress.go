package components

import (
	"strings"

	"github.com/abhisek/lovequest/internal/ui/theme"
)

// ProgressDots renders one heart per quest, filled once that quest is done.
func ProgressDots(questIDs []string, completed func(id string) bool) string {
	dots := make([]string, 0, len(questIDs))
	for _, id := range questIDs {
		if completed(id) {
			dots = append(dots, theme.DotFilled.Render("♥"))
		} else {
			dots = append(dots, theme.DotEmpty.Render("♡"))
		}
	}
	return strings.Join(dots, " ")
}
