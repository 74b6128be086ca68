package timer

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/zhye/tomato/internal/config"
)

// settingsValues backs the in-app settings form. Durations are edited
// as strings ("25m") and parsed on completion.
type settingsValues struct {
	work           string
	shortBreak     string
	longBreak      string
	interval       string
	autoStartBreak bool
	autoStartWork  bool
	notify         bool
}

func (t *Timer) openSettingsForm() {
	s := t.Engine.Settings()

	v := &settingsValues{
		work:           s.Work.String(),
		shortBreak:     s.ShortBreak.String(),
		longBreak:      s.LongBreak.String(),
		interval:       strconv.Itoa(s.LongBreakInterval),
		autoStartBreak: s.AutoStartBreak,
		autoStartWork:  s.AutoStartWork,
		notify:         t.Opts.Notifications.Enabled,
	}

	t.formValues = v
	t.settingsForm = newSettingsForm(v)
}

func (t *Timer) closeSettingsForm() {
	t.settingsForm = nil
	t.formValues = nil
}

func newSettingsForm(v *settingsValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Work duration").
				Value(&v.work).
				Validate(validateFormDuration),
			huh.NewInput().
				Title("Short break duration").
				Value(&v.shortBreak).
				Validate(validateFormDuration),
			huh.NewInput().
				Title("Long break duration").
				Value(&v.longBreak).
				Validate(validateFormDuration),
			huh.NewInput().
				Title("Sessions before a long break").
				Value(&v.interval).
				Validate(validateFormInterval),
			huh.NewConfirm().
				Title("Auto-start breaks").
				Value(&v.autoStartBreak),
			huh.NewConfirm().
				Title("Auto-start work").
				Value(&v.autoStartWork),
			huh.NewConfirm().
				Title("Desktop notifications").
				Value(&v.notify),
		),
	)
}

func validateFormDuration(s string) error {
	d, err := config.ParseDuration(s)
	if err != nil {
		return err
	}

	if d <= 0 {
		return errors.New("duration must be greater than zero")
	}

	return nil
}

func validateFormInterval(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return errors.New("must be a whole number of at least 1")
	}

	return nil
}

// applySettings validates and persists the edited settings, then hands
// them to the engine. The engine defers them to the next phase
// boundary so the running countdown is untouched.
func (t *Timer) applySettings() error {
	v := t.formValues

	// already validated field by field in the form
	work, _ := config.ParseDuration(v.work)
	shortBreak, _ := config.ParseDuration(v.shortBreak)
	longBreak, _ := config.ParseDuration(v.longBreak)
	interval, _ := strconv.Atoi(v.interval)

	cfg := *t.Opts
	cfg.Work.Duration = work
	cfg.ShortBreak.Duration = shortBreak
	cfg.LongBreak.Duration = longBreak
	cfg.Settings.LongBreakInterval = interval
	cfg.Settings.AutoStartBreak = v.autoStartBreak
	cfg.Settings.AutoStartWork = v.autoStartWork
	cfg.Notifications.Enabled = v.notify

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := t.Engine.Reconfigure(cfg.EngineSettings()); err != nil {
		return err
	}

	*t.Opts = cfg

	return t.Opts.Save(config.ConfigFilePath())
}
