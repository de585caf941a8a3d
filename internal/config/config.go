package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// File names inside the data directory
const (
	LogFileName   = "visitors.csv"
	ChartFileName = "visitors.png"
)

// Defaults for the site config
const (
	DefaultConfigPath    = "~/.config/visitors-counter/config.toml"
	DefaultDataDir       = "~/.local/share/visitors-counter"
	DefaultStartCount    = 0
	DefaultCapacity      = 150
	DefaultNearCapacity  = 140
	DefaultFPS           = 60
	DefaultResumeFromLog = true

	maxFPS = 240
)

// Config is the per-site setup of the counter
type Config struct {
	DataDir       string
	StartCount    int
	Capacity      int
	NearCapacity  int
	FPS           int
	ResumeFromLog bool
}

// Default returns the config used when no file exists
func Default() Config {
	return Config{
		DataDir:       mustExpand(DefaultDataDir),
		StartCount:    DefaultStartCount,
		Capacity:      DefaultCapacity,
		NearCapacity:  DefaultNearCapacity,
		FPS:           DefaultFPS,
		ResumeFromLog: DefaultResumeFromLog,
	}
}

// Load reads the site config at path, falling back to defaults when the file
// is missing. Empty or out-of-range values are replaced by their defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir       string `toml:"data_dir"`
		StartCount    *int   `toml:"start_count"`
		Capacity      *int   `toml:"capacity"`
		NearCapacity  *int   `toml:"near_capacity"`
		FPS           *int   `toml:"fps"`
		ResumeFromLog *bool  `toml:"resume_from_log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}
	if raw.StartCount != nil && *raw.StartCount >= 0 {
		cfg.StartCount = *raw.StartCount
	}
	if raw.Capacity != nil && *raw.Capacity > 0 {
		cfg.Capacity = *raw.Capacity
	}
	if raw.NearCapacity != nil && *raw.NearCapacity >= 0 {
		cfg.NearCapacity = *raw.NearCapacity
	}
	if cfg.NearCapacity > cfg.Capacity {
		cfg.NearCapacity = cfg.Capacity
	}
	if raw.FPS != nil && *raw.FPS > 0 && *raw.FPS <= maxFPS {
		cfg.FPS = *raw.FPS
	}
	if raw.ResumeFromLog != nil {
		cfg.ResumeFromLog = *raw.ResumeFromLog
	}

	return cfg, nil
}

// LogPath returns the visitor log location
func (c Config) LogPath() string {
	return filepath.Join(c.dataDir(), LogFileName)
}

// ChartPath returns the chart image location
func (c Config) ChartPath() string {
	return filepath.Join(c.dataDir(), ChartFileName)
}

func (c Config) dataDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(DefaultDataDir)
	}
	return c.DataDir
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(DefaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
