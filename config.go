package execq

import (
	"os"
	"time"

	yaml "github.com/goccy/go-yaml"
)

const (
	defaultIdleWaitMS    = 1
	defaultMaxIdleWaitMS = 50
)

// Config mirrors the optional YAML file consumed by LoadConfig.
type Config struct {
	Store           string `yaml:"store"`            // "heap" (by default) or "tree"
	InitialCapacity int    `yaml:"initial_capacity"` // heap preallocation
	IdleWaitMS      int    `yaml:"idle_wait_ms"`     // pump loop backoff floor
	MaxIdleWaitMS   int    `yaml:"max_idle_wait_ms"` // pump loop backoff cap
}

// If the config file is not found, we use default values.
func defaultConfig() Config {
	return Config{
		Store:           "heap",
		InitialCapacity: defaultHeapCapacity,
		IdleWaitMS:      defaultIdleWaitMS,
		MaxIdleWaitMS:   defaultMaxIdleWaitMS,
	}
}

// LoadConfig reads YAML and overrides defaults; empty or unreadable path =
// defaults only.
func LoadConfig(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.Store != "tree" {
		cfg.Store = "heap"
	}
	if cfg.InitialCapacity <= 0 {
		cfg.InitialCapacity = defaultHeapCapacity
	}
	if cfg.IdleWaitMS <= 0 {
		cfg.IdleWaitMS = defaultIdleWaitMS
	}
	if cfg.MaxIdleWaitMS < cfg.IdleWaitMS {
		cfg.MaxIdleWaitMS = cfg.IdleWaitMS
	}

	return cfg
}

// Options maps the file-level settings onto queue Options.
func (c Config) Options() Options {
	o := Options{InitialCapacity: c.InitialCapacity}
	if c.Store == "tree" {
		o.Store = TreeStore
	}
	return o
}

func (c Config) idleWait() time.Duration {
	return time.Duration(c.IdleWaitMS) * time.Millisecond
}

func (c Config) maxIdleWait() time.Duration {
	return time.Duration(c.MaxIdleWaitMS) * time.Millisecond
}
