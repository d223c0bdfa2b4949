package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amonks/ktra/internal/config"
	"github.com/amonks/ktra/internal/kv"
	"github.com/amonks/ktra/internal/testsupport"
)

func writeGlobalConfig(t *testing.T, homeDir, content string) {
	t.Helper()

	configDir := filepath.Join(homeDir, ".config", "ktra")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}
}

func writeLocalConfig(t *testing.T, dir, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, config.LocalFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write local config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Storage.Backend != "" {
		t.Errorf("expected empty backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Log.Level != "" {
		t.Errorf("expected empty log level, got %q", cfg.Log.Level)
	}
}

func TestLoad_Full(t *testing.T) {
	testsupport.SetupTestHome(t)
	dir := t.TempDir()

	writeLocalConfig(t, dir, `
[storage]
backend = "redis"
key = "my_tasks"
redis-addr = "localhost:6380"
redis-db = 2
redis-prefix = "ktra:"

[board]
long-press = "500ms"
milestone = "2s"

[log]
level = "debug"
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Backend != "redis" {
		t.Errorf("Backend = %q, expected %q", cfg.Storage.Backend, "redis")
	}
	if cfg.Storage.Key != "my_tasks" {
		t.Errorf("Key = %q, expected %q", cfg.Storage.Key, "my_tasks")
	}
	if cfg.Storage.RedisDB != 2 {
		t.Errorf("RedisDB = %d, expected 2", cfg.Storage.RedisDB)
	}
	if cfg.Storage.RedisPrefix != "ktra:" {
		t.Errorf("RedisPrefix = %q, expected %q", cfg.Storage.RedisPrefix, "ktra:")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, expected %q", cfg.Log.Level, "debug")
	}

	longPress, err := cfg.Board.LongPressDuration(time.Second)
	if err != nil || longPress != 500*time.Millisecond {
		t.Errorf("LongPressDuration = %v (%v), expected 500ms", longPress, err)
	}
	milestone, err := cfg.Board.MilestoneDuration(time.Second)
	if err != nil || milestone != 2*time.Second {
		t.Errorf("MilestoneDuration = %v (%v), expected 2s", milestone, err)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)
	dir := t.TempDir()

	writeLocalConfig(t, dir, `this is not valid toml [`)

	if _, err := config.Load(dir); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoad_UsesGlobalWhenLocalMissing(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[storage]
backend = "sqlite"
redis-db = 3

[log]
level = "warn"
`)

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Backend = %q, expected %q", cfg.Storage.Backend, "sqlite")
	}
	if cfg.Storage.RedisDB != 3 {
		t.Errorf("RedisDB = %d, expected 3", cfg.Storage.RedisDB)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Level = %q, expected %q", cfg.Log.Level, "warn")
	}
}

func TestLoad_LocalOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[storage]
backend = "sqlite"
key = "global_key"

[board]
milestone = "1s"
`)

	dir := t.TempDir()
	writeLocalConfig(t, dir, `
[storage]
backend = "memory"
redis-db = 0
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Backend != "memory" {
		t.Errorf("Backend = %q, expected %q", cfg.Storage.Backend, "memory")
	}
	if cfg.Storage.Key != "global_key" {
		t.Errorf("Key = %q, expected %q", cfg.Storage.Key, "global_key")
	}
	if cfg.Board.Milestone != "1s" {
		t.Errorf("Milestone = %q, expected %q", cfg.Board.Milestone, "1s")
	}
}

func TestLoad_LocalEmptyOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[storage]
backend = "sqlite"

[log]
level = "debug"
`)

	dir := t.TempDir()
	writeLocalConfig(t, dir, `
[storage]
backend = ""

[log]
level = ""
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Backend != "" {
		t.Errorf("Backend = %q, expected empty string", cfg.Storage.Backend)
	}
	if cfg.Log.Level != "" {
		t.Errorf("Level = %q, expected empty string", cfg.Log.Level)
	}
}

func TestLoadFrom_ExplicitGlobalPath(t *testing.T) {
	testsupport.SetupTestHome(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[storage]\nbackend = \"memory\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.LoadFrom(path, t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("Backend = %q, expected %q", cfg.Storage.Backend, "memory")
	}
}

func TestStorage_KVOptionsDefaults(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)

	opts, err := config.Storage{}.KVOptions()
	if err != nil {
		t.Fatalf("KVOptions: %v", err)
	}

	if opts.Backend != "" {
		t.Errorf("Backend = %q, expected empty", opts.Backend)
	}
	if opts.Dir != filepath.Join(homeDir, ".local", "state", "ktra") {
		t.Errorf("Dir = %q", opts.Dir)
	}
	if opts.SQLitePath != filepath.Join(homeDir, ".local", "state", "ktra", "ktra.db") {
		t.Errorf("SQLitePath = %q", opts.SQLitePath)
	}

	opts, err = config.Storage{Backend: "sqlite", SQLitePath: "/data/tasks.db"}.KVOptions()
	if err != nil {
		t.Fatalf("KVOptions: %v", err)
	}
	if opts.Backend != kv.BackendSQLite || opts.SQLitePath != "/data/tasks.db" {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestBoard_Durations(t *testing.T) {
	d, err := config.Board{}.LongPressDuration(300 * time.Millisecond)
	if err != nil || d != 300*time.Millisecond {
		t.Fatalf("expected default 300ms, got %v (%v)", d, err)
	}

	if _, err := (config.Board{LongPress: "soon"}).LongPressDuration(0); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := (config.Board{Milestone: "-1s"}).MilestoneDuration(0); err == nil {
		t.Fatal("expected error for negative duration")
	}
}
