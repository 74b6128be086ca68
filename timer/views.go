package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/zhye/tomato/internal/engine"
	"github.com/zhye/tomato/internal/timeutil"
)

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
func (t *Timer) formatTimeRemaining() string {
	return timeutil.FormatSeconds(t.Engine.Remaining())
}

func (t *Timer) endTimeFormat() string {
	if t.Opts.Settings.TwentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

// statsView renders the day's tally, kept in memory for the lifetime
// of the process.
func (t *Timer) statsView() string {
	tomatoes := t.Engine.CompletedSessions()

	noun := "tomatoes"
	if tomatoes == 1 {
		noun = "tomato"
	}

	return t.styles.secondary.SetString(
		fmt.Sprintf(
			"%d %s · %s focused today",
			tomatoes,
			noun,
			timeutil.FormatFocusTime(t.Engine.TotalFocusTime()),
		),
	).String()
}

// sessionPromptView is shown when a phase completes and the next one
// does not auto-start.
func (t *Timer) sessionPromptView() string {
	var s strings.Builder

	title := "Your focus session is complete"
	if t.Engine.Phase() == engine.Work {
		title = "Your break is over"
	}

	s.WriteString(t.styles.main.SetString(title).String())
	s.WriteString(
		"\n\n" + t.styles.secondary.SetString(
			t.Opts.Message(t.Engine.Phase()),
		).String(),
	)
	s.WriteString("\n\n" + t.statsView())
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.settings,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) idleView() string {
	var s strings.Builder

	s.WriteString(t.styles.main.SetString("Ready to focus?").String())
	s.WriteString("\n\n" + t.statsView())
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.settings,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(t.styles.phases[t.Engine.Phase()].Render())

	if !t.Engine.Running() {
		s.WriteString(t.styles.secondary.SetString("[Paused]").String())
	} else {
		endTime := time.Now().
			Add(time.Duration(t.Engine.Remaining()) * time.Second)

		s.WriteString(strings.TrimSpace(
			t.styles.hint.SetString(
				"until " + endTime.Format(t.endTimeFormat()),
			).String(),
		))
	}

	if t.Engine.Phase() == engine.Work {
		s.WriteString(strings.TrimSpace(
			t.styles.hint.SetString(
				fmt.Sprintf(
					" (%d/%d)",
					t.Engine.WorkCycle(),
					t.Engine.Settings().LongBreakInterval,
				),
			).String(),
		))
	}

	percent := 1.0
	if total := t.Engine.PhaseDuration().Seconds(); total > 0 {
		percent = 1 - float64(t.Engine.Remaining())/total
	}

	s.WriteString("\n\n")
	s.WriteString(t.styles.main.SetString(t.formatTimeRemaining()).String())
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(percent))
	s.WriteString("\n\n" + t.statsView())
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.skip,
		defaultKeymap.reset,
		defaultKeymap.settings,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) View() string {
	var view string

	switch {
	case t.waitForNextSession:
		view = t.sessionPromptView()
	case t.Engine.Phase() == engine.Idle:
		view = t.idleView()
	default:
		view = t.timerView()
	}

	if t.settingsForm != nil {
		view += "\n\n" + t.settingsForm.View()
	}

	return t.styles.base.Render(view)
}
