package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequest/internal/ui/theme"
)

// MultiChoice lets the player pick one option with arrows, j/k or a number
// key. It does not know which option is correct.
type MultiChoice struct {
	Options  []string
	Selected int
	picked   int
	wrong    int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		picked:  -1,
		wrong:   -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.picked = m.Selected
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
			m.picked = m.Selected
		}
	}

	return m, nil
}

// Picked returns the option chosen since the last call and clears it.
func (m *MultiChoice) Picked() (string, bool) {
	if m.picked < 0 || m.picked >= len(m.Options) {
		return "", false
	}
	opt := m.Options[m.picked]
	m.picked = -1
	return opt, true
}

// MarkWrong flags the currently selected option as rejected.
func (m *MultiChoice) MarkWrong() {
	m.wrong = m.Selected
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		switch {
		case i == m.wrong:
			line = lipgloss.NewStyle().Foreground(theme.Error).Render(line + " ✗")
		case i == m.Selected:
			line = theme.Selected.Render(line)
		default:
			line = theme.Unselected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
