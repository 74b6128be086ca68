// Package timer renders the countdown TUI and drives the session
// engine with one tick per second.
package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zhye/tomato/internal/config"
	"github.com/zhye/tomato/internal/engine"
)

const (
	padding  = 2
	maxWidth = 80
)

// tickMsg is emitted once per second while the program runs.
type tickMsg time.Time

// Timer is the bubbletea model wrapping the session engine.
type Timer struct {
	Engine *engine.Engine
	Opts   *config.Config

	styles   *styles
	progress progress.Model
	help     help.Model

	settingsForm *huh.Form
	formValues   *settingsValues

	waitForNextSession bool
}

// New creates the TUI model and its underlying engine.
func New(cfg *config.Config) (*Timer, error) {
	eng, err := engine.New(cfg.EngineSettings())
	if err != nil {
		return nil, err
	}

	return &Timer{
		Engine:   eng,
		Opts:     cfg,
		styles:   newStyles(cfg),
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
	}, nil
}

// Init begins the first work session immediately and arms the tick
// loop.
func (t *Timer) Init() tea.Cmd {
	t.Engine.Start()

	_ = t.writeStatusFile()

	return tick()
}

// tick schedules the next one-second advance. Re-arming from the wall
// clock keeps the loop from drifting over long sessions.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(ts time.Time) tea.Msg {
		return tickMsg(ts)
	})
}

// Run starts the bubbletea program and blocks until the user quits.
func (t *Timer) Run() error {
	_, err := tea.NewProgram(t).Run()

	t.removeStatusFile()

	return err
}
