package engine_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/zhye/tomato/internal/engine"
)

func defaultSettings() engine.Settings {
	return engine.Settings{
		Work:              25 * time.Minute,
		ShortBreak:        5 * time.Minute,
		LongBreak:         15 * time.Minute,
		LongBreakInterval: 4,
		AutoStartBreak:    true,
		AutoStartWork:     false,
	}
}

func newEngine(t *testing.T, s engine.Settings) *engine.Engine {
	t.Helper()

	e, err := engine.New(s)
	if err != nil {
		t.Fatal(err)
	}

	return e
}

// tickUntilComplete ticks the engine until the current phase ends and
// returns the number of ticks it took.
func tickUntilComplete(t *testing.T, e *engine.Engine) int {
	t.Helper()

	for i := 1; ; i++ {
		if i > 100000 {
			t.Fatal("phase never completed")
		}

		if e.Tick() == engine.PhaseComplete {
			return i
		}
	}
}

func TestStartBeginsWorkPhase(t *testing.T) {
	e := newEngine(t, defaultSettings())

	if e.Phase() != engine.Idle {
		t.Fatalf("new engine phase = %s, want %s", e.Phase(), engine.Idle)
	}

	e.Start()

	assert.Equal(t, engine.Work, e.Phase())
	assert.Equal(t, 1500, e.Remaining())
	assert.True(t, e.Running())

	// Start must be a no-op while running
	e.Start()

	assert.Equal(t, 1500, e.Remaining())
}

func TestWorkCompletionAdvancesToShortBreak(t *testing.T) {
	e := newEngine(t, defaultSettings())
	e.Start()

	var completions int

	for i := 0; i < 1500; i++ {
		if e.Tick() == engine.PhaseComplete {
			completions++
		}
	}

	if completions != 1 {
		t.Fatalf("got %d phase completions in 1500 ticks, want 1", completions)
	}

	assert.Equal(t, engine.ShortBreak, e.Phase())
	assert.Equal(t, 300, e.Remaining())
	assert.Equal(t, 1, e.CompletedSessions())
	assert.Equal(t, 1500*time.Second, e.TotalFocusTime())
}

func TestLongBreakModulusRule(t *testing.T) {
	s := engine.Settings{
		Work:              3 * time.Second,
		ShortBreak:        2 * time.Second,
		LongBreak:         4 * time.Second,
		LongBreakInterval: 4,
		AutoStartBreak:    true,
		AutoStartWork:     true,
	}

	e := newEngine(t, s)
	e.Start()

	// run eight full work/break rounds; the 4th and 8th breaks must be
	// long, the rest short
	for session := 1; session <= 8; session++ {
		tickUntilComplete(t, e)

		want := engine.ShortBreak
		if session%4 == 0 {
			want = engine.LongBreak
		}

		if e.Phase() != want {
			t.Fatalf(
				"after session %d: phase = %s, want %s",
				session, e.Phase(), want,
			)
		}

		if e.CompletedSessions() != session {
			t.Fatalf(
				"after session %d: completed = %d",
				session, e.CompletedSessions(),
			)
		}

		tickUntilComplete(t, e)

		if e.Phase() != engine.Work {
			t.Fatalf("break did not lead back to work, got %s", e.Phase())
		}

		// a completed break must not count as a session
		if e.CompletedSessions() != session {
			t.Fatalf(
				"completed sessions changed after a break: %d",
				e.CompletedSessions(),
			)
		}
	}
}

func TestBreaksDoNotAccrueFocusTime(t *testing.T) {
	s := defaultSettings()
	s.Work = 5 * time.Second
	s.ShortBreak = 3 * time.Second

	e := newEngine(t, s)
	e.Start()

	tickUntilComplete(t, e)

	assert.Equal(t, 5*time.Second, e.TotalFocusTime())

	tickUntilComplete(t, e)

	assert.Equal(t, 5*time.Second, e.TotalFocusTime())
}

func TestPauseFreezesCountdown(t *testing.T) {
	e := newEngine(t, defaultSettings())
	e.Start()

	for i := 0; i < 10; i++ {
		e.Tick()
	}

	e.Pause()

	remaining := e.Remaining()
	focus := e.TotalFocusTime()

	for i := 0; i < 500; i++ {
		if res := e.Tick(); res != engine.Continue {
			t.Fatal("paused engine completed a phase")
		}
	}

	assert.Equal(t, remaining, e.Remaining())
	assert.Equal(t, focus, e.TotalFocusTime())

	e.Resume()
	e.Tick()

	assert.Equal(t, remaining-1, e.Remaining())
	assert.Equal(t, focus+time.Second, e.TotalFocusTime())
}

func TestSkipDoesNotCreditUnspentTime(t *testing.T) {
	e := newEngine(t, defaultSettings())
	e.Start()

	for i := 0; i < 10; i++ {
		e.Tick()
	}

	res := e.Skip()

	assert.Equal(t, engine.PhaseComplete, res)
	assert.Equal(t, engine.ShortBreak, e.Phase())
	assert.Equal(t, 1, e.CompletedSessions())
	assert.Equal(t, 10*time.Second, e.TotalFocusTime())
}

func TestSkipBreakReturnsToWork(t *testing.T) {
	e := newEngine(t, defaultSettings())
	e.Start()
	e.Skip()

	if e.Phase() != engine.ShortBreak {
		t.Fatalf("phase = %s, want %s", e.Phase(), engine.ShortBreak)
	}

	e.Skip()

	assert.Equal(t, engine.Work, e.Phase())
	assert.Equal(t, 1500, e.Remaining())
	assert.Equal(t, 1, e.CompletedSessions())
}

func TestSkipWhileIdleIsNoop(t *testing.T) {
	e := newEngine(t, defaultSettings())

	assert.Equal(t, engine.Continue, e.Skip())
	assert.Equal(t, engine.Idle, e.Phase())
}

func TestResetKeepsDailyTally(t *testing.T) {
	e := newEngine(t, defaultSettings())
	e.Start()

	for i := 0; i < 60; i++ {
		e.Tick()
	}

	e.Skip()
	e.Reset()

	assert.Equal(t, engine.Idle, e.Phase())
	assert.Equal(t, 0, e.Remaining())
	assert.False(t, e.Running())

	// the day's tally must survive a reset
	assert.Equal(t, 1, e.CompletedSessions())
	assert.Equal(t, 60*time.Second, e.TotalFocusTime())

	e.Start()

	assert.Equal(t, engine.Work, e.Phase())
	assert.Equal(t, 1500, e.Remaining())
}

func TestAutoStartPolicies(t *testing.T) {
	tests := []struct {
		name           string
		autoStartBreak bool
		autoStartWork  bool
		wantAfterWork  bool
		wantAfterBreak bool
	}{
		{
			name:           "breaks auto start, work does not",
			autoStartBreak: true,
			autoStartWork:  false,
			wantAfterWork:  true,
			wantAfterBreak: false,
		},
		{
			name:           "nothing auto starts",
			autoStartBreak: false,
			autoStartWork:  false,
			wantAfterWork:  false,
			wantAfterBreak: false,
		},
		{
			name:           "everything auto starts",
			autoStartBreak: true,
			autoStartWork:  true,
			wantAfterWork:  true,
			wantAfterBreak: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultSettings()
			s.AutoStartBreak = tt.autoStartBreak
			s.AutoStartWork = tt.autoStartWork

			e := newEngine(t, s)
			e.Start()
			e.Skip()

			if e.Running() != tt.wantAfterWork {
				t.Fatalf(
					"running after work = %v, want %v",
					e.Running(), tt.wantAfterWork,
				)
			}

			e.Skip()

			if e.Running() != tt.wantAfterBreak {
				t.Fatalf(
					"running after break = %v, want %v",
					e.Running(), tt.wantAfterBreak,
				)
			}

			// an explicit resume always restarts the countdown
			e.Resume()

			if !e.Running() {
				t.Fatal("engine not running after resume")
			}
		})
	}
}

func TestReconfigureMidPhaseIsStaged(t *testing.T) {
	e := newEngine(t, defaultSettings())
	e.Start()

	for i := 0; i < 100; i++ {
		e.Tick()
	}

	next := defaultSettings()
	next.Work = 50 * time.Minute
	next.ShortBreak = 10 * time.Minute

	if err := e.Reconfigure(next); err != nil {
		t.Fatal(err)
	}

	// the running countdown must be left intact
	assert.Equal(t, 1400, e.Remaining())

	if diff := cmp.Diff(defaultSettings(), e.Settings()); diff != "" {
		t.Fatalf("settings changed mid-phase (-want +got):\n%s", diff)
	}

	e.Skip()

	// staged settings land at the phase boundary
	assert.Equal(t, 600, e.Remaining())
	assert.Equal(t, engine.ShortBreak, e.Phase())

	if diff := cmp.Diff(next, e.Settings()); diff != "" {
		t.Fatalf("staged settings not applied (-want +got):\n%s", diff)
	}
}

func TestReconfigureWhileIdleAppliesImmediately(t *testing.T) {
	e := newEngine(t, defaultSettings())

	next := defaultSettings()
	next.Work = time.Minute

	if err := e.Reconfigure(next); err != nil {
		t.Fatal(err)
	}

	e.Start()

	assert.Equal(t, 60, e.Remaining())
}

func TestSettingsValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*engine.Settings)
	}{
		{"zero work duration", func(s *engine.Settings) { s.Work = 0 }},
		{"negative work duration", func(s *engine.Settings) { s.Work = -time.Minute }},
		{"zero short break", func(s *engine.Settings) { s.ShortBreak = 0 }},
		{"zero long break", func(s *engine.Settings) { s.LongBreak = 0 }},
		{"zero interval", func(s *engine.Settings) { s.LongBreakInterval = 0 }},
		{"negative interval", func(s *engine.Settings) { s.LongBreakInterval = -4 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultSettings()
			tt.mutate(&s)

			_, err := engine.New(s)
			if err == nil {
				t.Fatal("expected a validation error")
			}

			if !errors.Is(err, engine.ErrInvalidSettings) {
				t.Fatalf("error %v does not match ErrInvalidSettings", err)
			}
		})
	}
}

func TestTickWhileIdleChangesNothing(t *testing.T) {
	e := newEngine(t, defaultSettings())

	for i := 0; i < 100; i++ {
		if e.Tick() != engine.Continue {
			t.Fatal("idle tick completed a phase")
		}
	}

	assert.Equal(t, engine.Idle, e.Phase())
	assert.Equal(t, time.Duration(0), e.TotalFocusTime())
}

func TestWorkCycleDisplay(t *testing.T) {
	s := defaultSettings()
	s.Work = 2 * time.Second
	s.ShortBreak = 2 * time.Second
	s.LongBreak = 2 * time.Second
	s.AutoStartWork = true

	e := newEngine(t, s)
	e.Start()

	for cycle := 1; cycle <= 4; cycle++ {
		if e.WorkCycle() != cycle {
			t.Fatalf("work cycle = %d, want %d", e.WorkCycle(), cycle)
		}

		tickUntilComplete(t, e) // finish work
		tickUntilComplete(t, e) // finish break
	}

	// interval wrapped round: back to the first cycle
	assert.Equal(t, 1, e.WorkCycle())
}
