// Package config handles loading ktra.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/amonks/ktra/internal/kv"
	"github.com/amonks/ktra/internal/paths"
)

// LocalFileName is the per-directory config file merged over the global one.
const LocalFileName = "ktra.toml"

// Config represents the ktra.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Board   Board   `toml:"board"`
	Log     Log     `toml:"log"`
}

// Storage selects and configures the key-value backend.
type Storage struct {
	// Backend is one of file, redis, sqlite, memory. Defaults to file.
	Backend string `toml:"backend"`

	// Key is the record holding the task collection.
	Key string `toml:"key"`

	// Dir is the state directory for the file backend.
	Dir string `toml:"dir"`

	RedisAddr   string `toml:"redis-addr"`
	RedisDB     int    `toml:"redis-db"`
	RedisPrefix string `toml:"redis-prefix"`

	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string `toml:"sqlite-path"`
}

// Board configures the terminal board.
type Board struct {
	// LongPress is how long a mouse press is held before dragging starts.
	LongPress string `toml:"long-press"`

	// Milestone is how long the START!/DONE! banner stays up.
	Milestone string `toml:"milestone"`
}

// Log configures diagnostic logging.
type Log struct {
	// Level is a logrus level name.
	Level string `toml:"level"`
}

// Load loads the global config file merged with ktra.toml in workDir.
// Returns an empty config if no config files exist.
func Load(workDir string) (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(globalPath, workDir)
}

// LoadFrom is Load with an explicit global config path.
func LoadFrom(globalPath, workDir string) (*Config, error) {
	globalCfg, _, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(workDir, LocalFileName))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, localCfg, localMeta), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, localCfg *Config, localMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if localCfg == nil {
		localCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.Backend = mergeString(localMeta.IsDefined("storage", "backend"), localCfg.Storage.Backend, globalCfg.Storage.Backend)
	merged.Storage.Key = mergeString(localMeta.IsDefined("storage", "key"), localCfg.Storage.Key, globalCfg.Storage.Key)
	merged.Storage.Dir = mergeString(localMeta.IsDefined("storage", "dir"), localCfg.Storage.Dir, globalCfg.Storage.Dir)
	merged.Storage.RedisAddr = mergeString(localMeta.IsDefined("storage", "redis-addr"), localCfg.Storage.RedisAddr, globalCfg.Storage.RedisAddr)
	merged.Storage.RedisPrefix = mergeString(localMeta.IsDefined("storage", "redis-prefix"), localCfg.Storage.RedisPrefix, globalCfg.Storage.RedisPrefix)
	merged.Storage.SQLitePath = mergeString(localMeta.IsDefined("storage", "sqlite-path"), localCfg.Storage.SQLitePath, globalCfg.Storage.SQLitePath)
	merged.Storage.RedisDB = globalCfg.Storage.RedisDB
	if localMeta.IsDefined("storage", "redis-db") {
		merged.Storage.RedisDB = localCfg.Storage.RedisDB
	}
	merged.Board.LongPress = mergeString(localMeta.IsDefined("board", "long-press"), localCfg.Board.LongPress, globalCfg.Board.LongPress)
	merged.Board.Milestone = mergeString(localMeta.IsDefined("board", "milestone"), localCfg.Board.Milestone, globalCfg.Board.Milestone)
	merged.Log.Level = mergeString(localMeta.IsDefined("log", "level"), localCfg.Log.Level, globalCfg.Log.Level)

	return &merged
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	value := globalValue
	if localDefined {
		value = localValue
	}
	return strings.TrimSpace(value)
}

// KVOptions resolves the storage section into backend options, filling in
// default locations under the state directory.
func (s Storage) KVOptions() (kv.Options, error) {
	dir, err := paths.ResolveWithDefault(s.Dir, paths.DefaultStateDir)
	if err != nil {
		return kv.Options{}, err
	}
	sqlitePath, err := paths.ResolveWithDefault(s.SQLitePath, paths.DefaultSQLitePath)
	if err != nil {
		return kv.Options{}, err
	}
	return kv.Options{
		Backend:     kv.Backend(s.Backend),
		Dir:         dir,
		RedisAddr:   s.RedisAddr,
		RedisDB:     s.RedisDB,
		RedisPrefix: s.RedisPrefix,
		SQLitePath:  sqlitePath,
	}, nil
}

// LongPressDuration parses LongPress, returning def when unset.
func (b Board) LongPressDuration(def time.Duration) (time.Duration, error) {
	return parseDuration("board.long-press", b.LongPress, def)
}

// MilestoneDuration parses Milestone, returning def when unset.
func (b Board) MilestoneDuration(def time.Duration) (time.Duration, error) {
	return parseDuration("board.milestone", b.Milestone, def)
}

func parseDuration(name, value string, def time.Duration) (time.Duration, error) {
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parse %s: negative duration %s", name, value)
	}
	return d, nil
}
