// Package snake implements the snake game engine: a tick-driven simulation
// on a toroidal grid with per-difficulty obstacles, a single-slot direction
// queue and a short sprint mechanic.
//
// The engine knows nothing about terminals or timers beyond the Clock it is
// given. Callers feed input through the exported operations and read state
// back with Snapshot; a Driver fires the ticks.
package snake

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

// Phase is the coarse game state.
type Phase int

const (
	PhaseIdle    Phase = iota // Never started, or just reset
	PhaseRunning              // Consuming ticks
	PhasePaused               // No ticks, resumable
	PhaseOver                 // Collision happened; terminal until reset
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Starting position of every game.
var (
	initialSnake     = []Cell{{X: 12, Y: 12}}
	initialFood      = Cell{X: 18, Y: 18}
	initialDirection = Up
)

// ScorePerFood is added to the score for each food eaten.
const ScorePerFood = 10

// Game is the snake engine. All methods are safe for concurrent use; each
// one is applied atomically.
type Game struct {
	mu sync.Mutex

	table   *config.DifficultyTable
	rng     *rand.Rand
	clock   Clock
	logger  *log.Logger
	changed chan struct{}

	difficulty int
	obstacles  ObstacleSet

	snake      []Cell // Head at index 0
	food       Cell
	heading    Direction // Last direction applied by a tick
	pending    Direction // Single-slot input queue
	hasPending bool
	score      int
	phase      Phase
	tick       uint64

	isNewRecord bool
	sessionBest map[int]int

	accelerating bool
	accelTimer   Timer
	accelGen     uint64 // Bumped on every grant or cancel; stale expiries compare against it
}

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds the food placement RNG.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock replaces the clock used for the acceleration window.
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithLogger sets the logger for phase transitions and sprint grants.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithDifficulty selects the starting difficulty. Unknown levels are ignored.
func WithDifficulty(level int) Option {
	return func(g *Game) {
		if g.table.Has(level) {
			g.difficulty = level
		}
	}
}

// New creates a game in the Idle phase at the lowest configured difficulty.
// An invalid configuration is replaced by the built-in defaults.
func New(cfg config.SnakeConfig, opts ...Option) *Game {
	if cfg.Validate() != nil {
		cfg = config.DefaultSnakeConfig()
	}

	table := config.NewDifficultyTable(cfg)
	g := &Game{
		table:       table,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		clock:       realClock{},
		logger:      log.New(io.Discard),
		changed:     make(chan struct{}, 1),
		difficulty:  table.Lowest(),
		sessionBest: make(map[int]int),
	}
	for _, l := range table.Levels() {
		g.sessionBest[l.Level] = 0
	}

	for _, opt := range opts {
		opt(g)
	}

	g.obstacles = ObstaclesFor(g.difficulty)
	g.resetLocked()
	return g
}

// Changes delivers a signal whenever the tick interval or phase changes.
// The channel has a single consumer, normally the Driver.
func (g *Game) Changes() <-chan struct{} {
	return g.changed
}

// notify signals a change without blocking; pending signals coalesce.
func (g *Game) notify() {
	select {
	case g.changed <- struct{}{}:
	default:
	}
}

// Reset returns to the Idle phase with a fresh snake, food and score.
// Difficulty, obstacles and session bests are kept.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.resetLocked()
	g.notify()
}

func (g *Game) resetLocked() {
	g.cancelAccelerationLocked()

	g.snake = append([]Cell(nil), initialSnake...)
	g.food = initialFood
	g.heading = initialDirection
	g.pending = Direction{}
	g.hasPending = false
	g.score = 0
	g.tick = 0
	g.isNewRecord = false
	g.setPhaseLocked(PhaseIdle)
}

// SetDifficulty switches the difficulty level, rebuilds the obstacles and
// resets the game. It returns false and changes nothing for unknown levels.
func (g *Game) SetDifficulty(level int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.table.Has(level) {
		return false
	}

	g.difficulty = level
	g.obstacles = ObstaclesFor(level)
	g.resetLocked()
	g.logger.Debug("difficulty changed", "level", level, "obstacles", len(g.obstacles))
	g.notify()
	return true
}

// Start moves an Idle or Paused game to Running.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == PhaseIdle || g.phase == PhasePaused {
		g.setPhaseLocked(PhaseRunning)
		g.notify()
	}
}

// Pause moves a Running game to Paused and ends any sprint.
func (g *Game) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == PhaseRunning {
		g.cancelAccelerationLocked()
		g.setPhaseLocked(PhasePaused)
		g.notify()
	}
}

// ToggleRunning pauses a running game and starts any other. A finished game
// is reset first, so toggling after game over begins a new round.
func (g *Game) ToggleRunning() {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case PhaseRunning:
		g.cancelAccelerationLocked()
		g.setPhaseLocked(PhasePaused)
	case PhaseOver:
		g.resetLocked()
		g.setPhaseLocked(PhaseRunning)
	default:
		g.setPhaseLocked(PhaseRunning)
	}
	g.notify()
}

func (g *Game) setPhaseLocked(p Phase) {
	if g.phase == p {
		return
	}
	g.logger.Debug("phase", "from", g.phase, "to", p, "score", g.score)
	g.phase = p
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Difficulty returns the active difficulty level.
func (g *Game) Difficulty() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.difficulty
}

// Levels returns the configured difficulty levels.
func (g *Game) Levels() []config.LevelConfig {
	return g.table.Levels()
}

// Interval returns the current tick interval: the level's base interval,
// or the sprint interval while accelerating.
func (g *Game) Interval() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.intervalLocked()
}

func (g *Game) intervalLocked() time.Duration {
	if g.accelerating {
		return g.table.AcceleratedInterval(g.difficulty)
	}
	return g.table.BaseInterval(g.difficulty)
}
