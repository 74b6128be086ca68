// Package timeutil provides helpers for formatting countdown values.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
)

// Round rounds a time value in seconds to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	mins = val / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = val / minutesInAnHour
	mins = val % minutesInAnHour

	return
}

// FormatSeconds renders a seconds value as "MM:SS".
func FormatSeconds(val int) string {
	m, s := SecsToMinsAndSecs(val)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatFocusTime renders a cumulative focus duration for the stats
// line, e.g. "1h 05m" or "45m".
func FormatFocusTime(d time.Duration) string {
	mins := Round(d.Minutes())

	hrs, mins := MinsToHoursAndMins(mins)
	if hrs > 0 {
		return fmt.Sprintf("%dh %02dm", hrs, mins)
	}

	return fmt.Sprintf("%dm", mins)
}
