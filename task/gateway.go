package task

import (
	"context"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"

	"github.com/amonks/ktra/internal/kv"
)

// GatewayOptions configures a Gateway.
type GatewayOptions struct {
	// Key is the record holding the collection. Defaults to DefaultKey.
	Key string

	// Logger receives decode failures. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// Gateway serializes the whole collection to one key-value record.
type Gateway struct {
	store  kv.Store
	key    string
	logger logrus.FieldLogger
}

// NewGateway creates a Gateway over store.
func NewGateway(store kv.Store, opts GatewayOptions) *Gateway {
	if store == nil {
		panic("task.NewGateway: store is nil")
	}
	key := opts.Key
	if key == "" {
		key = DefaultKey
	}
	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Gateway{store: store, key: key, logger: logger}
}

// Key returns the record key.
func (g *Gateway) Key() string {
	return g.key
}

// Save writes tasks as a JSON array.
func (g *Gateway) Save(ctx context.Context, tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	encoded, err := sonic.ConfigStd.MarshalToString(tasks)
	if err != nil {
		return fmt.Errorf("%w: encode tasks: %v", ErrPersistence, err)
	}
	if err := g.store.Put(ctx, g.key, encoded); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Load reads the collection. A missing record yields an empty collection.
// A record that cannot be decoded, or that holds an invalid task, is
// logged and treated as empty.
func (g *Gateway) Load(ctx context.Context) ([]Task, error) {
	value, found, err := g.store.Get(ctx, g.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !found {
		return []Task{}, nil
	}

	var tasks []Task
	if err := sonic.ConfigStd.UnmarshalFromString(value, &tasks); err != nil {
		g.logger.WithError(err).WithField("key", g.key).Warn("discarding undecodable task record")
		return []Task{}, nil
	}
	if err := ValidateTasks(tasks); err != nil {
		g.logger.WithError(err).WithField("key", g.key).Warn("discarding invalid task record")
		return []Task{}, nil
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}
