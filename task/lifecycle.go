package task

import (
	"fmt"
	"time"
)

// cycleNext maps each status to its successor in the cycle operation.
var cycleNext = map[Status]Status{
	StatusUnstarted: StatusDoing,
	StatusDoing:     StatusDone,
	StatusDone:      StatusUnstarted,
}

// completionRule applies the completedAt side effect of entering a status.
type completionRule func(t *Task, now time.Time)

func stampCompletedAt(t *Task, now time.Time) {
	completedAt := now
	t.CompletedAt = &completedAt
}

func clearCompletedAt(t *Task, _ time.Time) {
	t.CompletedAt = nil
}

// completionRules is shared by the cycle and direct-set transitions.
var completionRules = map[Status]completionRule{
	StatusUnstarted: clearCompletedAt,
	StatusDoing:     clearCompletedAt,
	StatusDone:      stampCompletedAt,
}

// milestoneTransitions lists the cycle transitions that are worth celebrating.
var milestoneTransitions = map[[2]Status]MilestoneKind{
	{StatusUnstarted, StatusDoing}: MilestoneStart,
	{StatusDoing, StatusDone}:      MilestoneComplete,
}

// Milestone is reported when a cycle starts or completes a task.
type Milestone struct {
	Kind   MilestoneKind `json:"kind"`
	TaskID string        `json:"taskId"`
	Points Points        `json:"points"`
}

// NextStatus returns the successor of status in the cycle.
func NextStatus(status Status) (Status, error) {
	next, ok := cycleNext[status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return next, nil
}

// ClassifyTransition reports the milestone kind for a cycle transition.
func ClassifyTransition(from, to Status) (MilestoneKind, bool) {
	kind, ok := milestoneTransitions[[2]Status{from, to}]
	return kind, ok
}

// applyStatus moves t to status and applies the completedAt rule.
func applyStatus(t *Task, status Status, now time.Time) error {
	rule, ok := completionRules[status]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	t.Status = status
	rule(t, now)
	return nil
}

// cycle advances t to its next status and returns the milestone, if any.
func cycle(t *Task, now time.Time) (*Milestone, error) {
	from := t.Status
	to, err := NextStatus(from)
	if err != nil {
		return nil, err
	}
	if err := applyStatus(t, to, now); err != nil {
		return nil, err
	}

	kind, ok := ClassifyTransition(from, to)
	if !ok {
		return nil, nil
	}
	return &Milestone{Kind: kind, TaskID: t.ID, Points: t.Points}, nil
}
