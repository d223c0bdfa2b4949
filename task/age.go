package task

import (
	"time"

	internalage "github.com/amonks/ktra/internal/age"
)

// AgeData computes the display age and whether timing data exists.
func AgeData(item Task, now time.Time) (time.Duration, bool) {
	return internalage.AgeData(item.CreatedAt, now)
}

// CompletionAgeData computes how long ago the task was completed.
func CompletionAgeData(item Task, now time.Time) (time.Duration, bool) {
	if item.CompletedAt == nil {
		return 0, false
	}
	return internalage.AgeData(*item.CompletedAt, now)
}
