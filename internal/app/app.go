// Package app is the root Bubble Tea model. It keeps the visible screen in
// step with the adventure engine.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lovequest/internal/adventure"
	"github.com/abhisek/lovequest/internal/quest"
	"github.com/abhisek/lovequest/internal/router"
	"github.com/abhisek/lovequest/internal/screen"
	"github.com/abhisek/lovequest/internal/screens/car"
	"github.com/abhisek/lovequest/internal/screens/finale"
	"github.com/abhisek/lovequest/internal/screens/intro"
	"github.com/abhisek/lovequest/internal/screens/riddle"
	"github.com/abhisek/lovequest/internal/ui/components"
	"github.com/abhisek/lovequest/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Engine     *adventure.Engine
	PlayerName string
	Logger     *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx    context.Context
	engine *adventure.Engine
	player string
	logger *slog.Logger
	router *router.Router
	width  int
	height int
}

// newAppModel creates the model showing the screen for the engine's
// restored state.
func newAppModel(ctx context.Context, opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := AppModel{
		ctx:    ctx,
		engine: opts.Engine,
		player: opts.PlayerName,
		logger: logger,
	}
	m.router = router.New(m.screenFor())
	return m
}

// screenFor picks the screen for the engine's current state.
func (m AppModel) screenFor() screen.Screen {
	switch stage := m.engine.Stage(); {
	case stage == quest.StageIntro:
		return intro.New(m.ctx, m.engine, m.player)
	case stage == quest.StageComplete:
		return finale.New(m.ctx, m.engine, m.player)
	case m.engine.SurpriseActive():
		return car.New(m.ctx, m.engine)
	default:
		return riddle.New(m.ctx, m.engine)
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.SyncMsg:
		s := m.screenFor()
		m.logger.DebugContext(m.ctx, "screen sync",
			slog.String("stage", string(m.engine.Stage())),
			slog.Bool("surprise", m.engine.SurpriseActive()))
		return m, m.router.Replace(s)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+r":
			m.engine.Reset(m.ctx)
			return m, m.router.Reset(m.screenFor())
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// progress renders one heart per quest for the header.
func (m AppModel) progress() string {
	return components.ProgressDots(m.engine.Registry().IDs(), m.engine.IsCompleted)
}

func (m AppModel) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+R", Description: "Reset"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.progress(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
