package snake

// EventKind identifies a one-shot notification produced by a tick.
type EventKind int

const (
	EventFoodEaten EventKind = iota + 1 // Head landed on food
	EventNewRecord                      // Score passed the session best of the active difficulty
	EventGameOver                       // Tick ended in a collision
)

func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food_eaten"
	case EventNewRecord:
		return "new_record"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted exactly once by the tick that caused it.
// Score is the score after that tick.
type Event struct {
	Kind  EventKind
	Score int
}
