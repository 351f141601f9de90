package snake

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Driver fires the game's ticks at its current interval and publishes a
// Frame after every tick and every interval or phase change.
type Driver struct {
	game   *Game
	frames chan Frame
	logger *log.Logger
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithDriverLogger sets the driver's logger.
func WithDriverLogger(l *log.Logger) DriverOption {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDriver creates a driver for g. A game must have at most one driver,
// since the driver consumes the game's change signals.
func NewDriver(g *Game, opts ...DriverOption) *Driver {
	d := &Driver{
		game:   g,
		frames: make(chan Frame, 1),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Frames delivers published frames. Only the latest unread frame is kept;
// when a frame is replaced, its events carry over into the newer one, so a
// slow reader skips renders but never loses an event.
func (d *Driver) Frames() <-chan Frame {
	return d.frames
}

// Run drives the game until ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	timer := time.NewTimer(d.game.Interval())
	defer timer.Stop()

	d.logger.Debug("driver started", "interval", d.game.Interval())
	defer d.logger.Debug("driver stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-d.game.Changes():
			// Re-arm so a new interval applies from now, not after the old one runs out
			timer.Reset(d.game.Interval())
			d.publish(Frame{Snapshot: d.game.Snapshot()})

		case <-timer.C:
			frame, ticked := d.game.Advance()
			timer.Reset(frame.Snapshot.Interval)
			if ticked {
				d.publish(frame)
			}
		}
	}
}

// publish delivers f without blocking, replacing an unread frame.
func (d *Driver) publish(f Frame) {
	for {
		select {
		case d.frames <- f:
			return
		default:
		}

		select {
		case old := <-d.frames:
			f.Events = append(old.Events, f.Events...)
		default:
		}
	}
}
