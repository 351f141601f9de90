package snake

import "fmt"

// GridSize is the width and height of the square playfield.
const GridSize = 25

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d, without wrapping.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Wrap maps the cell onto the torus: coordinates outside [0, GridSize)
// re-enter from the opposite edge.
func (c Cell) Wrap() Cell {
	return Cell{X: wrap(c.X), Y: wrap(c.Y)}
}

// InBounds reports whether the cell lies on the grid.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func wrap(v int) int {
	v %= GridSize
	if v < 0 {
		v += GridSize
	}
	return v
}

// Direction is a unit step on the grid.
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// isValidTurn reports whether next may follow ref: neither a reversal
// nor a repeat of the reference direction.
func isValidTurn(next, ref Direction) bool {
	return next != ref.Opposite() && next != ref
}
