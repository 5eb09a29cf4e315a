package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateBR   = "02/01/2006"
	layoutClock    = "15:04"
	layoutClockSec = "15:04:05"
)

// FormatDateBR formats a time as dd/mm/yyyy.
func FormatDateBR(t time.Time) string {
	return t.Format(layoutDateBR)
}

// DateBR converts "2025-12-24" (or a timestamp starting with it) to "24/12/2025".
// Anything else is returned trimmed but otherwise unchanged.
func DateBR(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < len(layoutDate) {
		return s
	}
	t, err := time.Parse(layoutDate, s[:len(layoutDate)])
	if err != nil {
		return s
	}
	return t.Format(layoutDateBR)
}

// ClockHM normalizes "19:00:00" or "7:30" to zero-padded HH:MM.
// Unparsable input is returned trimmed but otherwise unchanged.
func ClockHM(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range []string{layoutClockSec, layoutClock} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(layoutClock)
		}
	}
	return s
}

// ValidClock reports whether s is a valid HH:MM or HH:MM:SS.
func ValidClock(s string) bool {
	_, err := time.Parse(layoutClock, ClockHM(s))
	return err == nil
}

// AddClockHours adds whole hours to an HH:MM wall-clock value, wrapping past
// midnight: ("22:30", 3) -> "01:30". Unparsable input is returned unchanged.
func AddClockHours(clock string, hours int) string {
	hm := ClockHM(clock)
	t, err := time.Parse(layoutClock, hm)
	if err != nil {
		return hm
	}
	const day = 24 * 60
	minutes := (t.Hour()*60 + t.Minute() + hours*60) % day
	if minutes < 0 {
		minutes += day
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
