// Package config loads editor settings from a TOML file, falling back to
// defaults when the file is absent.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the editor's settings tree.
type Config struct {
	LogLevel  string    `toml:"log_level"`
	History   History   `toml:"history"`
	Resources Resources `toml:"resources"`
}

// History configures the undo engine.
type History struct {
	// MaxBatches caps how many committed batches are retained. Zero means
	// unbounded.
	MaxBatches int `toml:"max_batches"`

	// CacheExpireFrames is how many idle frames a tracked gesture value
	// survives before it is swept.
	CacheExpireFrames uint64 `toml:"cache_expire_frames"`
}

// Resources configures the shared resource cache.
type Resources struct {
	Dir      string `toml:"dir"`
	Autosave bool   `toml:"autosave"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		History: History{
			MaxBatches:        0,
			CacheExpireFrames: 60,
		},
		Resources: Resources{
			Dir:      "resources",
			Autosave: true,
		},
	}
}

// Load reads settings from path. A missing file is not an error; defaults are
// returned. Values present in the file override defaults field by field.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
