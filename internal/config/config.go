// Package config loads runtime settings for the delve binaries.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/delvecore/internal/logger"
	"github.com/samdwyer/delvecore/internal/telemetry"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	// StartFloor is the floor a new run begins on.
	StartFloor int `yaml:"start_floor"`

	// FOVRadius is how far the player can see.
	FOVRadius int `yaml:"fov_radius"`

	Logging   logger.Config    `yaml:"logging"`
	Telemetry telemetry.Config `yaml:"telemetry"`
}

// DefaultConfig returns a Config with playable defaults.
func DefaultConfig() *Config {
	return &Config{
		Seed:       0,
		StartFloor: 1,
		FOVRadius:  8,
		Logging:    logger.DefaultConfig(),
	}
}

// Load reads configuration from a YAML file and then applies environment
// overrides. A missing file is not an error: defaults are used.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from DELVE_* and LOG_* environment variables.
// Unparseable values are ignored.
func (c *Config) ApplyEnv() {
	if seed := os.Getenv("DELVE_SEED"); seed != "" {
		if v, err := strconv.ParseInt(seed, 10, 64); err == nil {
			c.Seed = v
		}
	}

	if radius := os.Getenv("DELVE_FOV_RADIUS"); radius != "" {
		if v, err := strconv.Atoi(radius); err == nil {
			c.FOVRadius = v
		}
	}

	if floor := os.Getenv("DELVE_START_FLOOR"); floor != "" {
		if v, err := strconv.Atoi(floor); err == nil {
			c.StartFloor = v
		}
	}

	if endpoint := os.Getenv("DELVE_OTLP_ENDPOINT"); endpoint != "" {
		c.Telemetry.Enabled = true
		c.Telemetry.Endpoint = endpoint
	}

	c.Logging.ApplyEnv()
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.StartFloor < 1 {
		return fmt.Errorf("start_floor must be at least 1, got %d", c.StartFloor)
	}
	if c.FOVRadius < 1 {
		return fmt.Errorf("fov_radius must be at least 1, got %d", c.FOVRadius)
	}
	return nil
}
