// Package engine implements the Pomodoro session state machine. It has
// no notion of wall-clock time: the host advances it by calling Tick
// once per elapsed second and reacts to the returned result.
package engine

import (
	"time"

	"github.com/zhye/tomato/internal/apperr"
	"github.com/zhye/tomato/internal/timeutil"
)

// Phase represents the current timer mode.
type Phase string

const (
	Idle       Phase = "idle"
	Work       Phase = "work"
	ShortBreak Phase = "short_break"
	LongBreak  Phase = "long_break"
)

// TickResult is returned by Tick and Skip to signal whether the
// current phase is still in progress.
type TickResult int

const (
	// Continue indicates the current phase has time remaining.
	Continue TickResult = iota
	// PhaseComplete indicates the phase ended and the engine advanced
	// to the next one.
	PhaseComplete
)

// ErrInvalidSettings is the base error for all settings validation
// failures.
var ErrInvalidSettings = &apperr.Error{
	Message: "invalid settings",
}

var (
	errNonPositiveDuration = &apperr.Error{
		Cause:   ErrInvalidSettings,
		Message: "%s duration must be greater than zero, got %v",
	}

	errInvalidInterval = &apperr.Error{
		Cause:   ErrInvalidSettings,
		Message: "long break interval must be at least 1, got %d",
	}
)

// Settings holds the per-run engine configuration.
type Settings struct {
	Work              time.Duration
	ShortBreak        time.Duration
	LongBreak         time.Duration
	LongBreakInterval int
	AutoStartBreak    bool
	AutoStartWork     bool
}

// Validate reports whether the settings can drive the engine. All
// durations must be positive and the long break interval at least 1.
func (s Settings) Validate() error {
	durations := map[string]time.Duration{
		"work":        s.Work,
		"short break": s.ShortBreak,
		"long break":  s.LongBreak,
	}

	for name, d := range durations {
		if d <= 0 {
			return errNonPositiveDuration.Fmt(name, d)
		}
	}

	if s.LongBreakInterval < 1 {
		return errInvalidInterval.Fmt(s.LongBreakInterval)
	}

	return nil
}

func (s Settings) duration(p Phase) time.Duration {
	switch p {
	case Work:
		return s.Work
	case ShortBreak:
		return s.ShortBreak
	case LongBreak:
		return s.LongBreak
	}

	return 0
}

// Engine drives a single Pomodoro cycle: work, short breaks, and a
// long break every LongBreakInterval completed work sessions. It is
// not safe for concurrent use; the host must drive it from a single
// goroutine.
type Engine struct {
	settings          Settings
	pending           *Settings
	phase             Phase
	remaining         int
	completedSessions int
	totalFocusSeconds int
	running           bool
}

// New creates an engine in the Idle phase.
func New(s Settings) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		settings: s,
		phase:    Idle,
	}, nil
}

// Start begins a work phase if the engine is idle, or resumes the
// current phase if one is in progress. It is a no-op while running.
func (e *Engine) Start() {
	if e.running {
		return
	}

	if e.phase != Idle {
		e.running = true
		return
	}

	e.applyPending()

	e.phase = Work
	e.remaining = timeutil.Round(e.settings.Work.Seconds())
	e.running = true
}

// Pause freezes the countdown. It is a no-op if the engine is not
// running.
func (e *Engine) Pause() {
	e.running = false
}

// Resume continues the countdown of an in-progress phase from its
// frozen value.
func (e *Engine) Resume() {
	if e.phase == Idle {
		return
	}

	e.running = true
}

// Tick advances the engine by one second. While paused or idle it
// changes nothing. When the countdown reaches zero the engine advances
// to the next phase and PhaseComplete is returned.
func (e *Engine) Tick() TickResult {
	if !e.running || e.phase == Idle {
		return Continue
	}

	if e.remaining > 0 {
		e.remaining--
	}

	if e.phase == Work {
		e.totalFocusSeconds++
	}

	if e.remaining > 0 {
		return Continue
	}

	e.advance()

	return PhaseComplete
}

// Skip ends the current phase immediately, running the same transition
// rule as a natural completion. The unspent remainder is not credited
// to the focus tally.
func (e *Engine) Skip() TickResult {
	if e.phase == Idle {
		return Continue
	}

	e.advance()

	return PhaseComplete
}

// Reset returns the engine to Idle. The session count and focus tally
// are kept: they represent the day's progress, not the current phase.
func (e *Engine) Reset() {
	e.phase = Idle
	e.remaining = 0
	e.running = false
}

// Reconfigure replaces the engine settings. When a phase is in
// progress the new settings are staged and take effect at the next
// phase boundary so the running countdown is left intact.
func (e *Engine) Reconfigure(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if e.phase == Idle {
		e.settings = s
		e.pending = nil

		return nil
	}

	e.pending = &s

	return nil
}

// advance runs the phase transition rule. A finished work phase counts
// towards the session tally and selects the next break kind; a
// finished break always leads back to work. Staged settings are
// applied first so they influence the new phase.
func (e *Engine) advance() {
	prev := e.phase

	if prev == Work {
		e.completedSessions++
	}

	e.applyPending()

	var next Phase

	if prev == Work {
		if e.completedSessions%e.settings.LongBreakInterval == 0 {
			next = LongBreak
		} else {
			next = ShortBreak
		}
	} else {
		next = Work
	}

	e.phase = next
	e.remaining = timeutil.Round(e.settings.duration(next).Seconds())

	if next == Work {
		e.running = e.settings.AutoStartWork
	} else {
		e.running = e.settings.AutoStartBreak
	}
}

func (e *Engine) applyPending() {
	if e.pending == nil {
		return
	}

	e.settings = *e.pending
	e.pending = nil
}

// Phase returns the current timer mode.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Remaining returns the seconds left in the current phase.
func (e *Engine) Remaining() int {
	return e.remaining
}

// Running reports whether the countdown is active.
func (e *Engine) Running() bool {
	return e.running
}

// CompletedSessions returns the number of finished work phases.
func (e *Engine) CompletedSessions() int {
	return e.completedSessions
}

// TotalFocusTime returns the cumulative time spent ticking through
// work phases.
func (e *Engine) TotalFocusTime() time.Duration {
	return time.Duration(e.totalFocusSeconds) * time.Second
}

// PhaseDuration returns the configured duration of the current phase,
// or zero while idle.
func (e *Engine) PhaseDuration() time.Duration {
	return e.settings.duration(e.phase)
}

// WorkCycle returns the position of the current work session within
// the long break interval, starting at 1.
func (e *Engine) WorkCycle() int {
	interval := e.settings.LongBreakInterval

	if e.phase == Work {
		return e.completedSessions%interval + 1
	}

	cycle := e.completedSessions % interval
	if cycle == 0 && e.completedSessions > 0 {
		cycle = interval
	}

	return cycle
}

// Settings returns the active settings value.
func (e *Engine) Settings() Settings {
	return e.settings
}
