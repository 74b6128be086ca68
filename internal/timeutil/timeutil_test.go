package timeutil_test

import (
	"testing"
	"time"

	"github.com/zhye/tomato/internal/timeutil"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1500, "25:00"},
		{3599, "59:59"},
		{3600, "60:00"},
	}

	for _, tt := range tests {
		if got := timeutil.FormatSeconds(tt.secs); got != tt.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestFormatFocusTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0m"},
		{45 * time.Minute, "45m"},
		{75 * time.Minute, "1h 15m"},
		{2*time.Hour + 5*time.Minute, "2h 05m"},
		{90 * time.Second, "2m"}, // rounds to the nearest minute
	}

	for _, tt := range tests {
		if got := timeutil.FormatFocusTime(tt.d); got != tt.want {
			t.Errorf("FormatFocusTime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestSecsToMinsAndSecs(t *testing.T) {
	m, s := timeutil.SecsToMinsAndSecs(125)
	if m != 2 || s != 5 {
		t.Fatalf("SecsToMinsAndSecs(125) = %d, %d, want 2, 5", m, s)
	}
}
