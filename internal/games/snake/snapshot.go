package snake

import (
	"maps"
	"time"
)

// Snapshot is a read-only copy of the game state. It shares no memory with
// the engine and can be handed to a renderer on another goroutine.
type Snapshot struct {
	Tick         uint64
	Snake        []Cell // Head first
	Food         Cell
	Obstacles    []Cell
	Direction    Direction
	Score        int
	Phase        Phase
	Difficulty   int
	IsNewRecord  bool
	SessionBest  map[int]int // Keyed by difficulty level
	Accelerating bool
	Interval     time.Duration
}

// Head returns the head cell, or false for an empty snake.
func (s Snapshot) Head() (Cell, bool) {
	if len(s.Snake) == 0 {
		return Cell{}, false
	}
	return s.Snake[0], true
}

// Best returns the session best of the snapshot's difficulty.
func (s Snapshot) Best() int {
	return s.SessionBest[s.Difficulty]
}

// Frame pairs a snapshot with the events of the tick that produced it.
type Frame struct {
	Snapshot Snapshot
	Events   []Event
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Snake:        append([]Cell(nil), g.snake...),
		Food:         g.food,
		Obstacles:    g.obstacles.Cells(),
		Direction:    g.heading,
		Score:        g.score,
		Phase:        g.phase,
		Difficulty:   g.difficulty,
		IsNewRecord:  g.isNewRecord,
		SessionBest:  maps.Clone(g.sessionBest),
		Accelerating: g.accelerating,
		Interval:     g.intervalLocked(),
	}
}
