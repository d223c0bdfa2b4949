package task

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// OpenOptions configures Open.
type OpenOptions struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Logger receives persistence warnings. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// Store owns the task collection and mirrors it through a Gateway.
//
// A Store is not safe for concurrent use.
type Store struct {
	gateway *Gateway
	tasks   []Task
	issued  map[string]bool
	now     func() time.Time
	logger  logrus.FieldLogger
}

// Open loads the collection through gateway.
func Open(ctx context.Context, gateway *Gateway, opts OpenOptions) (*Store, error) {
	if gateway == nil {
		panic("task.Open: gateway is nil")
	}

	tasks, err := gateway.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	issued := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		issued[t.ID] = true
	}

	return &Store{
		gateway: gateway,
		tasks:   tasks,
		issued:  issued,
		now:     now,
		logger:  logger,
	}, nil
}

// persist writes the collection. The in-memory state is kept on failure.
func (s *Store) persist(ctx context.Context) error {
	if err := s.gateway.Save(ctx, s.tasks); err != nil {
		s.logger.WithError(err).WithField("key", s.gateway.Key()).Warn("failed to persist tasks")
		return err
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) lookup(id string) (int, error) {
	i := s.indexOf(id)
	if i < 0 {
		return -1, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return i, nil
}
