package snake

import "math/rand"

// PlaceFood picks a uniformly random cell that is neither part of the snake
// nor an obstacle, by rejection sampling.
//
// The caller must guarantee at least one free cell exists; with a full grid
// this never returns. The supported layouts leave most of the grid open, so
// that cannot happen during play.
func PlaceFood(rng *rand.Rand, snake []Cell, obstacles ObstacleSet) Cell {
	for {
		c := Cell{X: rng.Intn(GridSize), Y: rng.Intn(GridSize)}
		if obstacles.Has(c) || occupies(snake, c) {
			continue
		}
		return c
	}
}

// occupies reports whether any segment of the snake is at c.
func occupies(snake []Cell, c Cell) bool {
	for _, seg := range snake {
		if seg == c {
			return true
		}
	}
	return false
}
