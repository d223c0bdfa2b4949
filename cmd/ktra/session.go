package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/amonks/ktra/internal/config"
	"github.com/amonks/ktra/internal/kv"
	"github.com/amonks/ktra/internal/logging"
	"github.com/amonks/ktra/internal/paths"
	"github.com/amonks/ktra/task"
)

// taskSession bundles an open store with the resources behind it.
type taskSession struct {
	store   *task.Store
	backend kv.Store
	config  *config.Config
	logger  *logrus.Logger
}

func (s *taskSession) Close() error {
	return s.backend.Close()
}

func loadConfig() (*config.Config, error) {
	workDir, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	globalPath, err := paths.ResolveWithDefault(rootConfigPath, paths.DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return config.LoadFrom(globalPath, workDir)
}

func newLogger(cfg *config.Config) (*logrus.Logger, error) {
	level := cfg.Log.Level
	if rootVerbose {
		level = logrus.DebugLevel.String()
	}
	return logging.New(level, os.Stderr)
}

func openTaskSession(ctx context.Context) (*taskSession, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.Storage.KVOptions()
	if err != nil {
		return nil, err
	}
	if rootBackend != "" {
		opts.Backend = kv.Backend(rootBackend)
	}

	backend, err := kv.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	gateway := task.NewGateway(backend, task.GatewayOptions{Key: cfg.Storage.Key, Logger: logger})
	store, err := task.Open(ctx, gateway, task.OpenOptions{Logger: logger})
	if err != nil {
		backend.Close()
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"backend": opts.Backend,
		"key":     gateway.Key(),
		"tasks":   len(store.List()),
	}).Debug("opened task store")

	return &taskSession{store: store, backend: backend, config: cfg, logger: logger}, nil
}

// withTaskSession opens a session, runs fn and closes the session.
func withTaskSession(ctx context.Context, fn func(*taskSession) error) (err error) {
	session, err := openTaskSession(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := session.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close storage: %w", closeErr)
		}
	}()
	return fn(session)
}
