package config

import (
	"sort"
	"time"
)

// DifficultyTable resolves difficulty levels to their labels and tick intervals.
type DifficultyTable struct {
	levels map[int]LevelConfig
	order  []int
	accel  AccelerationConfig
}

// NewDifficultyTable builds a lookup table from a configuration.
// The configuration is expected to be validated.
func NewDifficultyTable(cfg SnakeConfig) *DifficultyTable {
	t := &DifficultyTable{
		levels: make(map[int]LevelConfig, len(cfg.Levels)),
		accel:  cfg.Acceleration,
	}
	for _, l := range cfg.Levels {
		t.levels[l.Level] = l
		t.order = append(t.order, l.Level)
	}
	sort.Ints(t.order)
	return t
}

// Has reports whether the level is defined.
func (t *DifficultyTable) Has(level int) bool {
	_, ok := t.levels[level]
	return ok
}

// Level returns the configuration of a level.
func (t *DifficultyTable) Level(level int) (LevelConfig, bool) {
	l, ok := t.levels[level]
	return l, ok
}

// Levels returns all levels sorted by level number.
func (t *DifficultyTable) Levels() []LevelConfig {
	result := make([]LevelConfig, 0, len(t.order))
	for _, n := range t.order {
		result = append(result, t.levels[n])
	}
	return result
}

// Lowest returns the lowest defined level number, or 0 for an empty table.
func (t *DifficultyTable) Lowest() int {
	if len(t.order) == 0 {
		return 0
	}
	return t.order[0]
}

// Acceleration returns the sprint tuning.
func (t *DifficultyTable) Acceleration() AccelerationConfig {
	return t.accel
}

// BaseInterval returns the tick interval of a level, or 0 if it is unknown.
func (t *DifficultyTable) BaseInterval(level int) time.Duration {
	return t.levels[level].BaseInterval()
}

// AcceleratedInterval returns max(minInterval, base/divisor) for a level.
func (t *DifficultyTable) AcceleratedInterval(level int) time.Duration {
	base := t.BaseInterval(level)
	divisor := t.accel.Divisor
	if divisor < 1 {
		divisor = 1
	}
	return max(t.accel.MinInterval(), base/time.Duration(divisor))
}
