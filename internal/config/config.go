// Package config provides YAML-based configuration loading for the snake
// engine: the difficulty table and the acceleration tuning.
package config

import (
	"fmt"
	"time"
)

// SnakeConfig contains all tunable parameters of the snake engine.
type SnakeConfig struct {
	Levels       []LevelConfig      `yaml:"levels"`
	Acceleration AccelerationConfig `yaml:"acceleration"`
}

// LevelConfig binds a difficulty level to its display labels and tick speed.
type LevelConfig struct {
	Level          int    `yaml:"level"`
	Name           string `yaml:"name"`
	Subtitle       string `yaml:"subtitle"`
	BaseIntervalMS int    `yaml:"base_interval_ms"`
}

// BaseInterval returns the level's tick interval as a duration.
func (l LevelConfig) BaseInterval() time.Duration {
	return time.Duration(l.BaseIntervalMS) * time.Millisecond
}

// Label returns "Name (Subtitle)", or just the name when no subtitle is set.
func (l LevelConfig) Label() string {
	if l.Subtitle == "" {
		return l.Name
	}
	return fmt.Sprintf("%s (%s)", l.Name, l.Subtitle)
}

// AccelerationConfig defines the sprint mechanic.
type AccelerationConfig struct {
	WindowMS      int `yaml:"window_ms"`       // How long a sprint lasts after the last qualifying request
	Divisor       int `yaml:"divisor"`         // Base interval is divided by this while sprinting
	MinIntervalMS int `yaml:"min_interval_ms"` // Floor for the sprint interval
}

// Window returns the sprint duration.
func (a AccelerationConfig) Window() time.Duration {
	return time.Duration(a.WindowMS) * time.Millisecond
}

// MinInterval returns the fastest allowed tick interval.
func (a AccelerationConfig) MinInterval() time.Duration {
	return time.Duration(a.MinIntervalMS) * time.Millisecond
}

// Validate checks the configuration for values the engine cannot run with.
func (c SnakeConfig) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("config: no difficulty levels defined")
	}

	seen := make(map[int]bool, len(c.Levels))
	for _, l := range c.Levels {
		if l.Level < 1 {
			return fmt.Errorf("config: level %d: level numbers start at 1", l.Level)
		}
		if seen[l.Level] {
			return fmt.Errorf("config: level %d defined twice", l.Level)
		}
		seen[l.Level] = true
		if l.BaseIntervalMS <= 0 {
			return fmt.Errorf("config: level %d: base_interval_ms must be positive, got %d", l.Level, l.BaseIntervalMS)
		}
	}

	a := c.Acceleration
	if a.WindowMS <= 0 {
		return fmt.Errorf("config: acceleration.window_ms must be positive, got %d", a.WindowMS)
	}
	if a.Divisor < 1 {
		return fmt.Errorf("config: acceleration.divisor must be at least 1, got %d", a.Divisor)
	}
	if a.MinIntervalMS <= 0 {
		return fmt.Errorf("config: acceleration.min_interval_ms must be positive, got %d", a.MinIntervalMS)
	}
	return nil
}
