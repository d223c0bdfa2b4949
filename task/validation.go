package task

import (
	"errors"
	"fmt"

	"github.com/amonks/ktra/internal/validation"
)

var (
	// ErrEmptyTitle is returned when a task title is empty after trimming.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidPoints is returned when a point value is not on the scale.
	ErrInvalidPoints = errors.New("invalid points")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousTaskIDPrefix is returned when an ID prefix matches multiple tasks.
	ErrAmbiguousTaskIDPrefix = errors.New("ambiguous task ID prefix")

	// ErrDuplicateTaskID is returned when two tasks share an ID.
	ErrDuplicateTaskID = errors.New("duplicate task ID")

	// ErrCrossGroupMove is returned when a reorder would move a task between
	// the active and done groups.
	ErrCrossGroupMove = errors.New("cannot move a task between active and done groups")

	// ErrDoneTaskMissingCompletedAt is returned when a done task has no completedAt timestamp.
	ErrDoneTaskMissingCompletedAt = errors.New("done task must have completedAt timestamp")

	// ErrNotDoneTaskHasCompletedAt is returned when a task that isn't done has a completedAt timestamp.
	ErrNotDoneTaskHasCompletedAt = errors.New("task that is not done cannot have completedAt timestamp")

	// ErrMissingID is returned when a stored task has no ID.
	ErrMissingID = errors.New("task ID cannot be empty")

	// ErrPersistence is returned when the collection could not be read from or
	// written to the key-value store.
	ErrPersistence = errors.New("persistence failed")
)

// ValidateTitle checks if the (already normalized) title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidatePoints checks if the point value is on the scale.
func ValidatePoints(points Points) error {
	if !points.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidPoints, points, ValidPoints())
	}
	return nil
}

// ValidateStatus checks if the status is known.
func ValidateStatus(status Status) error {
	if !status.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidStatus, status, ValidStatuses())
	}
	return nil
}

// ValidateTask checks if a task struct is valid. The title length cap is
// an input rule enforced by ValidateTitle; stored titles of any length are
// accepted.
func ValidateTask(t *Task) error {
	if t.ID == "" {
		return ErrMissingID
	}

	if t.Title == "" {
		return ErrEmptyTitle
	}

	if err := ValidatePoints(t.Points); err != nil {
		return err
	}

	if err := ValidateStatus(t.Status); err != nil {
		return err
	}

	if t.Status == StatusDone && t.CompletedAt == nil {
		return ErrDoneTaskMissingCompletedAt
	}
	if t.Status != StatusDone && t.CompletedAt != nil {
		return ErrNotDoneTaskHasCompletedAt
	}

	return nil
}

// ValidateTasks checks every task and that IDs are unique.
func ValidateTasks(tasks []Task) error {
	seen := make(map[string]bool, len(tasks))
	for i := range tasks {
		if err := ValidateTask(&tasks[i]); err != nil {
			return fmt.Errorf("task %d (%s): %w", i, tasks[i].ID, err)
		}
		if seen[tasks[i].ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateTaskID, tasks[i].ID)
		}
		seen[tasks[i].ID] = true
	}
	return nil
}
