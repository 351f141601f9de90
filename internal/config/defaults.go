package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Levels: []LevelConfig{
			{Level: 1, Name: "Steve the Snake", Subtitle: "Easy", BaseIntervalMS: 200},
			{Level: 2, Name: "Ssssamantha", Subtitle: "Medium", BaseIntervalMS: 200},
			{Level: 3, Name: "Simon Sssays", Subtitle: "Hard", BaseIntervalMS: 200},
		},
		Acceleration: AccelerationConfig{
			WindowMS:      300,
			Divisor:       3,
			MinIntervalMS: 40,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
