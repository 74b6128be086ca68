package timer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/zhye/tomato/internal/config"
	"github.com/zhye/tomato/internal/engine"
	"github.com/zhye/tomato/internal/timeutil"
	"github.com/zhye/tomato/internal/ui"
)

// Status mirrors the state of a running timer for the status command.
type Status struct {
	EndTime           time.Time    `json:"end_time"`
	Phase             engine.Phase `json:"phase"`
	WorkCycle         int          `json:"work_cycle"`
	LongBreakInterval int          `json:"long_break_interval"`
	CompletedSessions int          `json:"completed_sessions"`
	RemainingSeconds  int          `json:"remaining_seconds"`
	Paused            bool         `json:"paused"`
}

func (t *Timer) writeStatusFile() error {
	s := Status{
		Phase:             t.Engine.Phase(),
		WorkCycle:         t.Engine.WorkCycle(),
		LongBreakInterval: t.Engine.Settings().LongBreakInterval,
		CompletedSessions: t.Engine.CompletedSessions(),
		RemainingSeconds:  t.Engine.Remaining(),
		Paused:            !t.Engine.Running(),
		EndTime: time.Now().
			Add(time.Duration(t.Engine.Remaining()) * time.Second),
	}

	statusFile, err := os.Create(config.StatusFilePath())
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	if _, err = writer.Write(b); err != nil {
		return err
	}

	return writer.Flush()
}

func (t *Timer) removeStatusFile() {
	_ = os.Remove(config.StatusFilePath())
}

// ReportStatus prints the status of a running timer instance based on
// the status file it maintains. A missing or stale file means no
// timer is active.
func ReportStatus() error {
	fileBytes, err := os.ReadFile(config.StatusFilePath())
	if err != nil {
		// missing file should not return an error
		return nil
	}

	var s Status

	if err = json.Unmarshal(fileBytes, &s); err != nil {
		return err
	}

	remaining := s.RemainingSeconds
	if !s.Paused {
		remaining = timeutil.Round(time.Until(s.EndTime).Seconds())
	}

	if remaining < 0 || s.Phase == engine.Idle {
		return nil
	}

	var text string

	switch s.Phase {
	case engine.Work:
		text = ui.Green(fmt.Sprintf(
			"[Work %d/%d]", s.WorkCycle, s.LongBreakInterval,
		))
	case engine.ShortBreak:
		text = ui.Blue("[Short break]")
	case engine.LongBreak:
		text = ui.Magenta("[Long break]")
	}

	suffix := ""
	if s.Paused {
		suffix = " (paused)"
	}

	pterm.Printfln(
		"%s: %s%s", text, timeutil.FormatSeconds(remaining), suffix,
	)

	return nil
}
