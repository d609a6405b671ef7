// Package config loads the yaml configuration shared by the tools.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all tool configuration.
type Config struct {
	// TerrainDir is the directory of per-room *.terrain files.
	TerrainDir string `yaml:"terrain_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	Search SearchConfig `yaml:"search"`
}

// SearchConfig mirrors the tunable search options.
type SearchConfig struct {
	PlainCost       uint8   `yaml:"plain_cost"`
	SwampCost       uint8   `yaml:"swamp_cost"`
	MaxOps          int     `yaml:"max_ops"`
	MaxRooms        int     `yaml:"max_rooms"`
	HeuristicWeight float64 `yaml:"heuristic_weight"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		TerrainDir: "data/terrain",
		LogLevel:   "info",
		Search: SearchConfig{
			PlainCost:       1,
			SwampCost:       5,
			MaxOps:          2000,
			MaxRooms:        16,
			HeuristicWeight: 1.2,
		},
	}
}

// Load reads yaml config from path.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the tools cannot run with.
func (c Config) Validate() error {
	if c.TerrainDir == "" {
		return fmt.Errorf("terrain_dir must be set")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Search.PlainCost == 0 {
		return fmt.Errorf("search.plain_cost must be positive")
	}
	if c.Search.SwampCost < c.Search.PlainCost {
		return fmt.Errorf("search.swamp_cost %d below plain_cost %d", c.Search.SwampCost, c.Search.PlainCost)
	}
	if c.Search.MaxOps <= 0 {
		return fmt.Errorf("search.max_ops must be positive")
	}
	if c.Search.MaxRooms <= 0 {
		return fmt.Errorf("search.max_rooms must be positive")
	}
	if c.Search.HeuristicWeight < 1 {
		return fmt.Errorf("search.heuristic_weight must be >= 1")
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}
