package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Rows                int           `json:"rows"`    // 0 means fit the terminal
	Columns             int           `json:"columns"` // 0 means fit the terminal
	FrameRate           time.Duration `json:"frame_rate"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"` // 0 means derive from the clock
	UseParallel         bool          `json:"use_parallel"`
	MaxGenerations      int           `json:"max_generations"` // 0 means unbounded
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	ShowStatus          bool          `json:"show_status"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                0,
		Columns:             0,
		FrameRate:           50 * time.Millisecond,
		RandomDensity:       0.14,
		Seed:                0,
		UseParallel:         true,
		MaxGenerations:      0,
		AutoRestart:         true,
		StagnationThreshold: 5,
		ShowStatus:          true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
