package snake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

// fastConfig ticks every 5ms so driver tests finish quickly.
func fastConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	for i := range cfg.Levels {
		cfg.Levels[i].BaseIntervalMS = 5
	}
	cfg.Acceleration.MinIntervalMS = 1
	return cfg
}

func TestDriverTicksWhileRunning(t *testing.T) {
	g := New(fastConfig(), WithSeed(1))
	d := NewDriver(g)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	g.Start()

	deadline := time.After(2 * time.Second)
	var last Snapshot
	for last.Tick < 3 {
		select {
		case f := <-d.Frames():
			last = f.Snapshot
		case <-deadline:
			t.Fatalf("Driver did not tick, last tick = %d", last.Tick)
		}
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, expected context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Driver did not stop after cancel")
	}

	// Moving up from (12,12), one cell per tick, wrapping at the top
	want := Cell{X: 12, Y: 12 - int(last.Tick)}.Wrap()
	if head, _ := last.Head(); head != want {
		t.Errorf("Head at tick %d = %v, expected %v", last.Tick, head, want)
	}
}

func TestDriverIdleGameDoesNotAdvance(t *testing.T) {
	g := New(fastConfig(), WithSeed(1))
	d := NewDriver(g)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := d.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() = %v, expected deadline exceeded", err)
	}
	if s := g.Snapshot(); s.Tick != 0 || s.Phase != PhaseIdle {
		t.Errorf("Idle game advanced to tick %d (%v)", s.Tick, s.Phase)
	}
}

func TestDriverPublishKeepsEvents(t *testing.T) {
	g := New(fastConfig(), WithSeed(1))
	d := NewDriver(g)

	d.publish(Frame{Snapshot: Snapshot{Tick: 1}, Events: []Event{{Kind: EventFoodEaten, Score: 10}}})
	d.publish(Frame{Snapshot: Snapshot{Tick: 2}, Events: []Event{{Kind: EventNewRecord, Score: 10}}})
	d.publish(Frame{Snapshot: Snapshot{Tick: 3}})

	f := <-d.Frames()
	if f.Snapshot.Tick != 3 {
		t.Errorf("Expected latest frame (tick 3), got tick %d", f.Snapshot.Tick)
	}
	if len(f.Events) != 2 || f.Events[0].Kind != EventFoodEaten || f.Events[1].Kind != EventNewRecord {
		t.Errorf("Events = %v, expected both carried over in order", f.Events)
	}

	select {
	case extra := <-d.Frames():
		t.Errorf("Unexpected extra frame %+v", extra)
	default:
	}
}

func TestAdvanceReportsTicked(t *testing.T) {
	g := New(fastConfig(), WithSeed(1))

	if _, ticked := g.Advance(); ticked {
		t.Error("Idle game should not tick")
	}

	g.Start()
	frame, ticked := g.Advance()
	if !ticked || frame.Snapshot.Tick != 1 {
		t.Errorf("Expected a tick, got ticked=%v tick=%d", ticked, frame.Snapshot.Tick)
	}
}
