package kv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"syscall"
)

var (
	unsafeKeyChars = regexp.MustCompile(`[^a-z0-9_-]`)
	repeatedDashes = regexp.MustCompile(`-+`)
)

// FileStore keeps one file per key inside a directory.
// Writes are atomic and serialized through an exclusive lock file.
type FileStore struct {
	dir string
}

// NewFileStore creates a new file store using the given directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the directory holding the store's files.
func (s *FileStore) Dir() string {
	return s.dir
}

// valuePath returns the path to the file holding key.
func (s *FileStore) valuePath(key string) string {
	return filepath.Join(s.dir, SanitizeKey(key)+".json")
}

// lockPath returns the path to the lock file.
func (s *FileStore) lockPath() string {
	return filepath.Join(s.dir, "ktra.lock")
}

// Get reads the value for key. A missing file reports found=false.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(s.valuePath(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read value file: %w", err)
	}
	return string(data), true, nil
}

// Put writes the value for key.
func (s *FileStore) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.withLock(func() error {
		return s.write(s.valuePath(key), []byte(value))
	})
}

// Close is a no-op for file stores.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) write(path string, data []byte) error {
	if existing, err := os.ReadFile(path); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read value file: %w", err)
	}

	// Write atomically via temp file
	tmpFile, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp value file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp value file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename value file: %w", err)
	}

	return nil
}

// withLock runs fn while holding an exclusive lock on the store directory.
func (s *FileStore) withLock(fn func() error) error {
	// Ensure directory exists
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	lockFile, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	return fn()
}

// SanitizeKey converts a key to a safe file name.
func SanitizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, "/", "-")
	key = strings.ReplaceAll(key, " ", "-")
	key = unsafeKeyChars.ReplaceAllString(key, "")
	key = repeatedDashes.ReplaceAllString(key, "-")
	key = strings.Trim(key, "-")
	if key == "" {
		return "default"
	}
	return key
}
