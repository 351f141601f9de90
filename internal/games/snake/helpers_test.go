package snake

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

// fakeClock fires callbacks only when the test advances it.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// Advance moves time forward and runs every callback that came due.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// active counts timers that are still pending.
func (c *fakeClock) active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// newTestGame creates a game with a fixed seed and a fake clock.
func newTestGame(t *testing.T, opts ...Option) (*Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	all := append([]Option{WithSeed(42), WithClock(clock)}, opts...)
	return New(config.DefaultSnakeConfig(), all...), clock
}

// place puts the game into Running with the given body and heading.
func place(g *Game, heading Direction, body ...Cell) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.snake = append([]Cell(nil), body...)
	g.heading = heading
	g.hasPending = false
	g.phase = PhaseRunning
}

func setFood(g *Game, c Cell) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.food = c
}

func hasEvent(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
