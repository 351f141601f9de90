package snake

import (
	"math/rand"
	"testing"
)

func TestObstacleCounts(t *testing.T) {
	tests := []struct {
		level int
		count int
	}{
		{1, 0},
		{2, 32}, // 4 corners x (3x3 - 1)
		{3, 37}, // corners + 5-cell bar
	}

	for _, tc := range tests {
		got := len(ObstaclesFor(tc.level))
		if got != tc.count {
			t.Errorf("ObstaclesFor(%d) has %d cells, expected %d", tc.level, got, tc.count)
		}
	}
}

func TestObstacleLayout(t *testing.T) {
	obstacles := ObstaclesFor(3)

	tests := []struct {
		name    string
		cell    Cell
		blocked bool
	}{
		{"top-left outer", Cell{1, 1}, true},
		{"top-left edge row", Cell{3, 2}, true},
		{"top-left edge col", Cell{2, 3}, true},
		{"top-left pocket", Cell{3, 3}, false},
		{"top-left grid corner", Cell{0, 0}, false},
		{"top-right outer", Cell{23, 1}, true},
		{"top-right pocket", Cell{21, 3}, false},
		{"bottom-left outer", Cell{1, 23}, true},
		{"bottom-left pocket", Cell{3, 21}, false},
		{"bottom-right outer", Cell{23, 23}, true},
		{"bottom-right edge", Cell{21, 22}, true},
		{"bottom-right pocket", Cell{21, 21}, false},
		{"bar left end", Cell{10, 12}, true},
		{"bar center", Cell{12, 12}, true},
		{"bar right end", Cell{14, 12}, true},
		{"left of bar", Cell{9, 12}, false},
		{"right of bar", Cell{15, 12}, false},
		{"above bar", Cell{12, 11}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if obstacles.Has(tc.cell) != tc.blocked {
				t.Errorf("Has(%v) = %v, expected %v", tc.cell, obstacles.Has(tc.cell), tc.blocked)
			}
		})
	}

	// Level 2 has the corners but no bar
	if ObstaclesFor(2).Has(Cell{12, 12}) {
		t.Error("Level 2 should not have the center bar")
	}
}

func TestObstaclesArePure(t *testing.T) {
	a := ObstaclesFor(2)
	b := ObstaclesFor(2)

	delete(a, Cell{1, 1})
	if !b.Has(Cell{1, 1}) {
		t.Error("Mutating one result must not affect another")
	}
	if !ObstaclesFor(2).Has(Cell{1, 1}) {
		t.Error("Fresh result should be unaffected by earlier mutation")
	}
}

func TestObstacleCellsSorted(t *testing.T) {
	cells := ObstaclesFor(3).Cells()
	for i := 1; i < len(cells); i++ {
		prev, cur := cells[i-1], cells[i]
		if prev.Y > cur.Y || (prev.Y == cur.Y && prev.X >= cur.X) {
			t.Fatalf("Cells() not sorted at %d: %v then %v", i, prev, cur)
		}
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	rng := rand.New(rand.NewSource(999))
	body := []Cell{{5, 5}, {5, 6}, {5, 7}, {6, 7}, {7, 7}, {8, 7}}

	for level := 1; level <= 3; level++ {
		obstacles := ObstaclesFor(level)
		for i := 0; i < 500; i++ {
			food := PlaceFood(rng, body, obstacles)

			if !food.InBounds() {
				t.Fatalf("Food spawned out of bounds at %v", food)
			}
			if obstacles.Has(food) {
				t.Fatalf("Food spawned on obstacle at %v (level %d)", food, level)
			}
			if occupies(body, food) {
				t.Fatalf("Food spawned on snake at %v", food)
			}
		}
	}
}

func TestFoodFindsLastFreeCell(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	free := Cell{X: 17, Y: 4}

	var body []Cell
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if c := (Cell{X: x, Y: y}); c != free {
				body = append(body, c)
			}
		}
	}

	if got := PlaceFood(rng, body, ObstaclesFor(1)); got != free {
		t.Errorf("PlaceFood() = %v, expected the only free cell %v", got, free)
	}
}
