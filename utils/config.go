package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifegrid/model"
)

// Config holds the configuration for the simulation driver
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	Seed                []model.Cell  `json:"seed"`
	RandomDensity       float64       `json:"random_density"`
	RandomSeed          int64         `json:"random_seed"`
	UseBoundedGrid      bool          `json:"use_bounded_grid"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	Render              bool          `json:"render"`
	Trace               bool          `json:"trace"`
}

// DefaultSeed is a glider near the top-left corner
func DefaultSeed() []model.Cell {
	return []model.Cell{
		{Row: 10, Col: 11},
		{Row: 11, Col: 12},
		{Row: 12, Col: 11},
		{Row: 12, Col: 12},
		{Row: 12, Col: 10},
	}
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		Seed:                DefaultSeed(),
		UseBoundedGrid:      true, // Enable active region optimization
		UseMemoryPool:       true,
		StagnationThreshold: 5,
		StopOnStagnation:    true,
		Render:              true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}
	return config, nil
}

// ParseConfig decodes JSON over the defaults and validates the result
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	if err := json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrap(err, "[ParseConfig] failed to unmarshal data")
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "[ParseConfig] invalid config")
	}

	return config, nil
}

// Validate rejects values the driver cannot run with.
// Seed coordinates are checked by the grid when the seed is applied.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid must be positive, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Errorf("frame_rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.StagnationThreshold < 0:
		return errors.Errorf("stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	}
	return nil
}
