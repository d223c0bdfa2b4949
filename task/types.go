// Package task implements a single-user, point-based task tracker.
//
// Tasks carry a Fibonacci-like point estimate and move through a three-state
// lifecycle (unstarted, doing, done). A Store owns the collection in memory
// and mirrors it to a key-value transport through a Gateway after every
// mutation.
//
// The public API mirrors the user actions:
//   - Create, Update, Delete for the collection
//   - Cycle and SetStatus for the lifecycle
//   - Move and Ordered for manual placement
//   - Week for the trailing seven-day summary
package task

// Status represents the lifecycle state of a task.
type Status string

const (
	// StatusUnstarted is the initial status of every task.
	StatusUnstarted Status = "unstarted"

	// StatusDoing indicates the task is being worked on.
	StatusDoing Status = "doing"

	// StatusDone indicates the task is complete.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusUnstarted, StatusDoing, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// IsDone reports whether the status belongs to the done group.
func (s Status) IsDone() bool {
	return s == StatusDone
}

// Points is an effort estimate drawn from a fixed scale.
type Points int

// ValidPoints returns the point scale in ascending order.
func ValidPoints() []Points {
	return []Points{0, 1, 2, 3, 5, 8}
}

// IsValid returns true if the value is on the point scale.
func (p Points) IsValid() bool {
	for _, valid := range ValidPoints() {
		if p == valid {
			return true
		}
	}
	return false
}

// MilestoneKind classifies a notable status transition.
type MilestoneKind string

const (
	// MilestoneStart is reported when a task moves from unstarted to doing.
	MilestoneStart MilestoneKind = "start"

	// MilestoneComplete is reported when a task moves from doing to done.
	MilestoneComplete MilestoneKind = "complete"
)

// DoneOrderOffset separates done-group order values from active-group ones.
const DoneOrderOffset = 1000

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500

// DefaultKey is the key-value record that holds the serialized collection.
const DefaultKey = "ktra_tasks"
