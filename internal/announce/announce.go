// Package announce turns engine frames into short status messages for the
// player: score changes, records, phase changes and game over.
package announce

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

// Politeness says whether a message may interrupt the one already shown.
type Politeness int

const (
	Polite Politeness = iota
	Assertive
)

// RecordPattern is the vibration pattern played for a new session record.
var RecordPattern = []time.Duration{
	100 * time.Millisecond,
	50 * time.Millisecond,
	100 * time.Millisecond,
	50 * time.Millisecond,
	200 * time.Millisecond,
}

// FoodMessageTTL is how long a food message stays on screen.
const FoodMessageTTL = time.Second

// Announcement is one message for the status line.
type Announcement struct {
	Text       string
	Politeness Politeness
	// TTL is how long the message stays visible; zero keeps it until replaced.
	TTL time.Duration
	// Haptic is an on/off vibration pattern; empty means none.
	Haptic []time.Duration
}

// Announce derives the messages for moving from prev to cur, given the
// events raised in between. A frame with no events and no phase change
// yields nothing.
func Announce(prev, cur snake.Snapshot, events []snake.Event) []Announcement {
	var out []Announcement

	// Phase messages go first so events of the same frame take the status line
	if prev.Phase != cur.Phase {
		switch {
		case cur.Phase == snake.PhaseRunning:
			out = append(out, Announcement{Text: "Game started"})
		case prev.Phase == snake.PhaseRunning && cur.Phase == snake.PhasePaused && cur.Score > 0:
			out = append(out, Announcement{Text: "Game paused"})
		}
	}

	for _, ev := range events {
		switch ev.Kind {
		case snake.EventFoodEaten:
			out = append(out, Announcement{
				Text: fmt.Sprintf("Food eaten! Score is now %d", ev.Score),
				TTL:  FoodMessageTTL,
			})
		case snake.EventNewRecord:
			out = append(out, Announcement{
				Text:       "NEW SESSION RECORD!",
				Politeness: Assertive,
				Haptic:     RecordPattern,
			})
		case snake.EventGameOver:
			out = append(out, gameOver(cur.IsNewRecord, ev.Score))
		}
	}

	return out
}

func gameOver(newRecord bool, score int) Announcement {
	text := fmt.Sprintf("Game over! Final score: %d points", score)
	if newRecord {
		text = fmt.Sprintf("Game over! New session record with %d points!", score)
	}
	return Announcement{Text: text, Politeness: Assertive}
}

// Latest returns the message that should be on screen after anns are shown
// in order. An assertive message is not replaced by a later polite one.
func Latest(anns []Announcement) (Announcement, bool) {
	if len(anns) == 0 {
		return Announcement{}, false
	}
	best := anns[0]
	for _, a := range anns[1:] {
		if a.Politeness >= best.Politeness {
			best = a
		}
	}
	return best, true
}
