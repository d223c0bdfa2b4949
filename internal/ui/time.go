package ui

import (
	"strconv"
	"time"

	internalage "github.com/amonks/ktra/internal/age"
)

var durationUnits = []struct {
	size   time.Duration
	suffix string
}{
	{24 * time.Hour, "d"},
	{time.Hour, "h"},
	{time.Minute, "m"},
}

// FormatDurationShort formats a duration in its largest whole unit, like
// "45s", "2m", "3h" or "2d". Negative durations format as "0s".
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}
	for _, unit := range durationUnits {
		if duration >= unit.size {
			return strconv.FormatInt(int64(duration/unit.size), 10) + unit.suffix
		}
	}
	return strconv.FormatInt(int64(duration/time.Second), 10) + "s"
}

// FormatTimeAgo returns a compact age like "2m ago", or "-" for a zero time.
func FormatTimeAgo(then time.Time, now time.Time) string {
	age, ok := internalage.AgeData(then, now)
	if !ok {
		return "-"
	}
	return FormatDurationShort(age) + " ago"
}
