package task

import (
	"context"
	"fmt"
	"time"
)

// UpdateOptions configures Update. Nil fields are left unchanged.
type UpdateOptions struct {
	Title  *string
	Points *Points
}

// Create adds a new unstarted task at the front of the collection.
func (s *Store) Create(ctx context.Context, title string, points Points) (*Task, error) {
	title = NormalizeTitle(title)
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := ValidatePoints(points); err != nil {
		return nil, err
	}

	now := s.now()
	created := Task{
		ID:        s.newID(title, now),
		Title:     title,
		Points:    points,
		Status:    StatusUnstarted,
		CreatedAt: now,
	}

	s.tasks = append([]Task{created}, s.tasks...)

	result := created.clone()
	return &result, s.persist(ctx)
}

// Find returns the task with the exact ID.
func (s *Store) Find(id string) (*Task, error) {
	i, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	result := s.tasks[i].clone()
	return &result, nil
}

// Resolve returns the full ID for a unique ID prefix.
func (s *Store) Resolve(prefix string) (string, error) {
	return NewIDIndex(s.tasks).Resolve(prefix)
}

// Update changes the title and/or points of a task.
func (s *Store) Update(ctx context.Context, id string, opts UpdateOptions) (*Task, error) {
	i, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	updated := s.tasks[i].clone()
	changed := false
	if opts.Title != nil {
		title := NormalizeTitle(*opts.Title)
		if err := ValidateTitle(title); err != nil {
			return nil, err
		}
		changed = changed || title != updated.Title
		updated.Title = title
	}
	if opts.Points != nil {
		if err := ValidatePoints(*opts.Points); err != nil {
			return nil, err
		}
		changed = changed || *opts.Points != updated.Points
		updated.Points = *opts.Points
	}

	result := updated.clone()
	if !changed {
		return &result, nil
	}
	if err := ValidateTask(&updated); err != nil {
		return nil, err
	}
	s.tasks[i] = updated
	return &result, s.persist(ctx)
}

// Delete removes a task. Orders of the remaining tasks are left as they are.
func (s *Store) Delete(ctx context.Context, id string) error {
	i, err := s.lookup(id)
	if err != nil {
		return err
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return s.persist(ctx)
}

// List returns a copy of the collection in storage order.
func (s *Store) List() []Task {
	return cloneTasks(s.tasks)
}

// Cycle advances a task to its next status. The milestone is non-nil when
// the task was started or completed.
func (s *Store) Cycle(ctx context.Context, id string) (*Task, *Milestone, error) {
	i, err := s.lookup(id)
	if err != nil {
		return nil, nil, err
	}

	updated := s.tasks[i].clone()
	milestone, err := cycle(&updated, s.now())
	if err != nil {
		return nil, nil, err
	}
	if err := ValidateTask(&updated); err != nil {
		return nil, nil, err
	}
	s.tasks[i] = updated

	result := updated.clone()
	return &result, milestone, s.persist(ctx)
}

// SetStatus moves a task directly to status. Setting the current status
// again changes nothing.
func (s *Store) SetStatus(ctx context.Context, id string, status Status) (*Task, error) {
	status, err := normalizeStatusInput(status)
	if err != nil {
		return nil, err
	}
	i, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	if s.tasks[i].Status == status {
		result := s.tasks[i].clone()
		return &result, nil
	}

	updated := s.tasks[i].clone()
	if err := applyStatus(&updated, status, s.now()); err != nil {
		return nil, err
	}
	if err := ValidateTask(&updated); err != nil {
		return nil, err
	}
	s.tasks[i] = updated

	result := updated.clone()
	return &result, s.persist(ctx)
}

// Ordered returns the presentation sequence of the collection.
func (s *Store) Ordered() []Task {
	return Ordered(s.tasks)
}

// Move places the dragged task at the target's position and renumbers both
// groups. Dropping a task on itself changes nothing.
func (s *Store) Move(ctx context.Context, draggedID, targetID string) ([]Task, error) {
	draggedIndex, err := s.lookup(draggedID)
	if err != nil {
		return nil, err
	}
	targetIndex, err := s.lookup(targetID)
	if err != nil {
		return nil, err
	}
	if draggedIndex == targetIndex {
		return s.Ordered(), nil
	}
	if s.tasks[draggedIndex].IsDone() != s.tasks[targetIndex].IsDone() {
		return nil, fmt.Errorf("%w: %s onto %s", ErrCrossGroupMove, draggedID, targetID)
	}

	s.tasks = moveTask(s.tasks, draggedIndex, targetIndex)
	return s.Ordered(), s.persist(ctx)
}

// Week summarizes the trailing seven days ending at now.
func (s *Store) Week(now time.Time) WeekSummary {
	return Summarize(s.tasks, now)
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}
