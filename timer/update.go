package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/zhye/tomato/internal/engine"
	"github.com/zhye/tomato/internal/log"
)

// handleTick advances the engine by one second and re-arms the tick
// loop. The loop never stops: while the engine is paused or waiting,
// ticks are no-ops.
func (t *Timer) handleTick() (tea.Model, tea.Cmd) {
	prev := t.Engine.Phase()

	if t.Engine.Tick() == engine.PhaseComplete {
		t.completePhase(prev)
	}

	_ = t.writeStatusFile()

	return t, tick()
}

// completePhase reacts to a phase transition: it notifies the user,
// runs the session hook, and pauses at the prompt unless the next
// phase auto-starts.
func (t *Timer) completePhase(prev engine.Phase) {
	next := t.Engine.Phase()

	slog.Info("phase complete",
		slog.String("previous", string(prev)),
		slog.String("next", string(next)),
		slog.Int("completed_sessions", t.Engine.CompletedSessions()),
		slog.Duration("total_focus", t.Engine.TotalFocusTime()),
	)

	go t.notify(prev, next)

	if cmd := t.Opts.Settings.Cmd; cmd != "" {
		go func() {
			if err := runSessionCmd(cmd); err != nil {
				slog.Error("session command failed", slog.Any("error", err))
			}
		}()
	}

	if !t.Engine.Running() {
		t.waitForNextSession = true
	}
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.enter):
		if t.waitForNextSession {
			t.waitForNextSession = false
			t.Engine.Resume()

			return t, nil
		}

		if t.Engine.Phase() == engine.Idle {
			t.Engine.Start()
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.togglePlay):
		if t.Engine.Phase() == engine.Idle || t.waitForNextSession {
			return t, nil
		}

		if t.Engine.Running() {
			t.Engine.Pause()
		} else {
			t.Engine.Resume()
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.skip):
		if t.waitForNextSession {
			return t, nil
		}

		prev := t.Engine.Phase()

		if t.Engine.Skip() == engine.PhaseComplete {
			t.completePhase(prev)
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.reset):
		t.waitForNextSession = false
		t.Engine.Reset()

		return t, nil

	case key.Matches(msg, defaultKeymap.settings):
		t.openSettingsForm()

		return t, t.settingsForm.Init()

	case key.Matches(msg, defaultKeymap.quit):
		return t, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return t, nil
}

// handleSettingsForm forwards messages to the active settings form and
// applies the result once the form completes.
func (t *Timer) handleSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := t.settingsForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.settingsForm = f
	}

	switch t.settingsForm.State {
	case huh.StateCompleted:
		if err := t.applySettings(); err != nil {
			slog.Error("applying settings failed", slog.Any("error", err))
		}

		t.closeSettingsForm()

		return t, nil
	case huh.StateAborted:
		t.closeSettingsForm()

		return t, nil
	case huh.StateNormal:
	}

	return t, cmd
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if log.DebugEnabled() {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick()

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd

	case tea.KeyMsg:
		if t.settingsForm != nil {
			// the form owns the keyboard, except for quitting
			if msg.String() == "ctrl+c" {
				return t, tea.Batch(tea.ClearScreen, tea.Quit)
			}

			return t.handleSettingsForm(msg)
		}

		return t.handleKeyPress(msg)
	}

	if t.settingsForm != nil {
		return t.handleSettingsForm(msg)
	}

	return t, nil
}
