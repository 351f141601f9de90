package snake

import "sort"

// ObstacleSet is the set of blocked cells for a difficulty level.
// A set is never mutated after ObstaclesFor returns it.
type ObstacleSet map[Cell]struct{}

// Has reports whether c is blocked.
func (s ObstacleSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Cells returns the blocked cells sorted by row, then column.
func (s ObstacleSet) Cells() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// ObstaclesFor builds the obstacle layout of a difficulty level.
//
// Level 2 and above get a frame two cells thick in each corner, leaving an
// open pocket at the innermost corner cell. Level 3 and above also get a
// five-cell bar across the center row.
func ObstaclesFor(level int) ObstacleSet {
	obstacles := make(ObstacleSet)

	if level >= 2 {
		far := GridSize - 1
		for i := 1; i <= 3; i++ {
			for j := 1; j <= 3; j++ {
				if i > 2 && j > 2 {
					continue // inner pocket
				}
				// i, j count inward from the corner; reflect them into each quadrant
				obstacles[Cell{X: i, Y: j}] = struct{}{}
				obstacles[Cell{X: far - i, Y: j}] = struct{}{}
				obstacles[Cell{X: i, Y: far - j}] = struct{}{}
				obstacles[Cell{X: far - i, Y: far - j}] = struct{}{}
			}
		}
	}

	if level >= 3 {
		center := GridSize / 2
		for x := center - 2; x <= center+2; x++ {
			obstacles[Cell{X: x, Y: center}] = struct{}{}
		}
	}

	return obstacles
}
