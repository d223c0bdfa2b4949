// Package age computes display ages for timestamps.
package age

import "time"

// AgeData computes the time elapsed since then and whether timing data exists.
// Timestamps in the future clamp to zero.
func AgeData(then time.Time, now time.Time) (time.Duration, bool) {
	if then.IsZero() {
		return 0, false
	}
	age := now.Sub(then)
	if age < 0 {
		age = 0
	}
	return age, true
}
