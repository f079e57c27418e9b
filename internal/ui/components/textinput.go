package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequest/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for riddle answers.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
	wrong    bool
}

// NewTextInput creates a new focused text input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Typing clears the wrong marker.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		t.wrong = false
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.wrong {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// MarkWrong flags the last submission as rejected.
func (t *TextInput) MarkWrong() {
	t.wrong = true
}

// ClearWrong removes the rejection marker.
func (t *TextInput) ClearWrong() {
	t.wrong = false
}

// IsWrong reports whether the rejection marker is showing.
func (t TextInput) IsWrong() bool {
	return t.wrong
}

// Reset empties the input and clears the marker.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.wrong = false
}
