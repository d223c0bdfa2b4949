package task

import "time"

// Task represents a single trackable unit of work.
//
// The JSON field names match the record written by the browser version of
// the tracker so existing collections load unchanged.
type Task struct {
	// ID is a unique identifier (8-char base32, derived from title + timestamp).
	ID string `json:"id"`

	// Title is the trimmed summary of the task.
	Title string `json:"title"`

	// Points is the effort estimate.
	Points Points `json:"points"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"createdAt"`

	// CompletedAt is when the task entered done (nil unless done).
	CompletedAt *time.Time `json:"completedAt"`

	// Order is the manual placement within the task's group (nil until the
	// user reorders). Done-group values start at DoneOrderOffset.
	Order *int `json:"order,omitempty"`
}

// IsDone reports whether the task belongs to the done group.
func (t Task) IsDone() bool {
	return t.Status.IsDone()
}

// HasOrder reports whether the task has a manual order.
func (t Task) HasOrder() bool {
	return t.Order != nil
}

// clone returns a copy that shares no pointers with t.
func (t Task) clone() Task {
	out := t
	if t.CompletedAt != nil {
		completedAt := *t.CompletedAt
		out.CompletedAt = &completedAt
	}
	if t.Order != nil {
		order := *t.Order
		out.Order = &order
	}
	return out
}

func cloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].clone()
	}
	return out
}

// OrderPtr returns a pointer to the provided order value.
func OrderPtr(order int) *int {
	return &order
}
