// Package kv provides the string key-value transports that hold the
// serialized task collection.
//
// Every backend stores opaque string values under string keys. The task
// package never sees the backend type; it only reads and writes one record.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amonks/ktra/internal/validation"
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value stored under key. found is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value string) error

	// Close releases any connections held by the store.
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	// BackendFile keeps one file per key in a state directory.
	BackendFile Backend = "file"

	// BackendRedis keeps values in a redis server.
	BackendRedis Backend = "redis"

	// BackendSQLite keeps values in a sqlite database file.
	BackendSQLite Backend = "sqlite"

	// BackendMemory keeps values in process memory.
	BackendMemory Backend = "memory"
)

// ValidBackends returns all valid backend names.
func ValidBackends() []Backend {
	return []Backend{BackendFile, BackendRedis, BackendSQLite, BackendMemory}
}

// ErrUnknownBackend is returned when Options names no known backend.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Options configures Open.
type Options struct {
	// Backend selects the implementation. Defaults to BackendFile.
	Backend Backend

	// Dir is the state directory for BackendFile.
	Dir string

	// RedisAddr is the host:port of the redis server.
	RedisAddr string

	// RedisDB selects the redis logical database.
	RedisDB int

	// RedisPrefix is prepended to every redis key.
	RedisPrefix string

	// SQLitePath is the database file for BackendSQLite.
	SQLitePath string
}

// Open returns the Store selected by opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	backend := Backend(strings.ToLower(strings.TrimSpace(string(opts.Backend))))
	if backend == "" {
		backend = BackendFile
	}

	switch backend {
	case BackendFile:
		if opts.Dir == "" {
			return nil, fmt.Errorf("file backend requires a state directory")
		}
		return NewFileStore(opts.Dir), nil
	case BackendRedis:
		return OpenRedis(ctx, RedisOptions{Addr: opts.RedisAddr, DB: opts.RedisDB, Prefix: opts.RedisPrefix})
	case BackendSQLite:
		if opts.SQLitePath == "" {
			return nil, fmt.Errorf("sqlite backend requires a database path")
		}
		return OpenSQLite(ctx, opts.SQLitePath)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, validation.FormatInvalidValueError(ErrUnknownBackend, opts.Backend, ValidBackends())
	}
}
