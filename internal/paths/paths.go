// Package paths locates ktra's state and config files.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "ktra"

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return home, nil
}

// xdgDir returns $env/ktra, or ~/fallback.../ktra when env is unset.
func xdgDir(env string, fallback ...string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName), nil
	}
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append(append([]string{home}, fallback...), appName)...), nil
}

// DefaultStateDir returns $XDG_STATE_HOME/ktra, defaulting to
// ~/.local/state/ktra.
func DefaultStateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", ".local", "state")
}

// DefaultSQLitePath returns ktra.db inside the state directory.
func DefaultSQLitePath() (string, error) {
	dir, err := DefaultStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ktra.db"), nil
}

// DefaultConfigPath returns config.toml inside $XDG_CONFIG_HOME/ktra,
// defaulting to ~/.config/ktra.
func DefaultConfigPath() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// WorkingDir returns the current working directory.
func WorkingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}

// ResolveWithDefault returns override when set, otherwise the result of def.
func ResolveWithDefault(override string, def func() (string, error)) (string, error) {
	if override != "" {
		return override, nil
	}
	return def()
}
