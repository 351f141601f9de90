// Package tui provides the Bubble Tea front end for the snake engine, both
// for a local terminal and for SSH sessions served with Wish.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

// FrameMsg carries a frame published by the engine driver.
type FrameMsg snake.Frame

// driverStoppedMsg is sent when the driver loop returns.
type driverStoppedMsg struct{ err error }

// statusExpiredMsg clears the status line if it still shows message seq.
type statusExpiredMsg struct{ seq int }

// flashEndedMsg ends the border flash started as flash seq.
type flashEndedMsg struct{ seq int }

// runDriver runs the driver until ctx is cancelled.
func runDriver(ctx context.Context, d *snake.Driver) tea.Cmd {
	return func() tea.Msg {
		return driverStoppedMsg{err: d.Run(ctx)}
	}
}

// waitForFrame waits for the next published frame.
func waitForFrame(ctx context.Context, d *snake.Driver) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-d.Frames():
			return FrameMsg(f)
		case <-ctx.Done():
			return nil
		}
	}
}

func expireStatus(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func endFlash(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return flashEndedMsg{seq: seq}
	})
}
