package task

import "time"

// SummaryWindow is the trailing window covered by the weekly summary.
const SummaryWindow = 7 * 24 * time.Hour

// PointBucket counts completed tasks with one point value.
type PointBucket struct {
	Points Points `json:"points"`
	Count  int    `json:"count"`
}

// WeekSummary is a read-only snapshot of the trailing seven days.
type WeekSummary struct {
	// WindowStart is the inclusive lower bound on CreatedAt.
	WindowStart time.Time `json:"windowStart"`

	// GeneratedAt is the instant the summary was computed for.
	GeneratedAt time.Time `json:"generatedAt"`

	// CompletedCount is the number of done tasks in the window.
	CompletedCount int `json:"completedCount"`

	// CompletedPoints sums the points of done tasks in the window.
	CompletedPoints int `json:"completedPoints"`

	// InProgressPoints sums the points of doing tasks in the window.
	InProgressPoints int `json:"inProgressPoints"`

	// Histogram has one bucket per point value, done tasks only.
	Histogram []PointBucket `json:"histogram"`
}

// Summarize computes the weekly summary for tasks created within
// SummaryWindow of now.
func Summarize(tasks []Task, now time.Time) WeekSummary {
	start := now.Add(-SummaryWindow)
	summary := WeekSummary{
		WindowStart: start,
		GeneratedAt: now,
	}

	counts := make(map[Points]int)
	for _, t := range tasks {
		if t.CreatedAt.Before(start) {
			continue
		}
		switch t.Status {
		case StatusDone:
			summary.CompletedCount++
			summary.CompletedPoints += int(t.Points)
			counts[t.Points]++
		case StatusDoing:
			summary.InProgressPoints += int(t.Points)
		}
	}

	scale := ValidPoints()
	summary.Histogram = make([]PointBucket, 0, len(scale))
	for _, points := range scale {
		summary.Histogram = append(summary.Histogram, PointBucket{Points: points, Count: counts[points]})
	}

	return summary
}

// MaxBucket returns the largest bucket count, for scaling charts.
func (s WeekSummary) MaxBucket() int {
	max := 0
	for _, bucket := range s.Histogram {
		if bucket.Count > max {
			max = bucket.Count
		}
	}
	return max
}
