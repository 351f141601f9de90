package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

// Board dimensions including the border.
const (
	boardRows     = snake.GridSize + 2
	wideBoardCols = snake.GridSize*2 + 2
)

// glyph is how one kind of grid cell is drawn, in wide (two columns per
// cell) and narrow layouts.
type glyph struct {
	wide   string
	narrow string
	color  core.Color
}

func (g glyph) text(cellW int) string {
	if cellW == 2 {
		return g.wide
	}
	return g.narrow
}

var (
	glyphEmpty    = glyph{" ·", "·", core.ColorGray}
	glyphObstacle = glyph{"▓▓", "▓", core.ColorGray}
	glyphFood     = glyph{"<>", "*", core.ColorBrightRed}
	glyphBody     = glyph{"██", "█", core.ColorGreen}
	glyphHead     = glyph{"██", "@", core.ColorBrightGreen}
	glyphSprint   = glyph{"██", "@", core.ColorBrightYellow}
)

// cellWidthFor picks two columns per cell when the terminal is wide enough,
// which keeps cells roughly square.
func cellWidthFor(termW int) int {
	if termW >= wideBoardCols {
		return 2
	}
	return 1
}

// newBoardScreen allocates a screen that holds the bordered grid.
func newBoardScreen(cellW int) *core.Screen {
	return core.NewScreen(snake.GridSize*cellW+2, boardRows)
}

// drawBoard renders a snapshot onto s. A flashing board gets a highlighted
// border.
func drawBoard(s *core.Screen, snap snake.Snapshot, cellW int, flash bool) {
	s.Clear()

	border := core.ColorGray
	if flash {
		border = core.ColorBrightYellow
	}
	s.DrawBox(core.NewRect(0, 0, s.Width(), s.Height()), border)

	plot := func(c snake.Cell, g glyph) {
		s.DrawTextColored(1+c.X*cellW, 1+c.Y, g.text(cellW), g.color)
	}

	for y := 0; y < snake.GridSize; y++ {
		for x := 0; x < snake.GridSize; x++ {
			plot(snake.Cell{X: x, Y: y}, glyphEmpty)
		}
	}
	for _, c := range snap.Obstacles {
		plot(c, glyphObstacle)
	}
	plot(snap.Food, glyphFood)

	for i := len(snap.Snake) - 1; i > 0; i-- {
		plot(snap.Snake[i], glyphBody)
	}
	if head, ok := snap.Head(); ok {
		if snap.Accelerating {
			plot(head, glyphSprint)
		} else {
			plot(head, glyphHead)
		}
	}

	switch snap.Phase {
	case snake.PhaseIdle:
		drawOverlay(s, core.ColorBrightCyan, "SNAKE", "press space")
	case snake.PhasePaused:
		drawOverlay(s, core.ColorBrightYellow, "PAUSED", "press space")
	case snake.PhaseOver:
		lines := []string{"GAME OVER", fmt.Sprintf("score %d", snap.Score)}
		if snap.IsNewRecord {
			lines = append(lines, "NEW SESSION RECORD!")
		}
		lines = append(lines, "press space")
		drawOverlay(s, core.ColorBrightRed, lines...)
	}
}

// drawOverlay draws a boxed message in the middle of s.
func drawOverlay(s *core.Screen, color core.Color, lines ...string) {
	textW := 0
	for _, l := range lines {
		textW = max(textW, utf8.RuneCountInString(l))
	}

	w := min(textW+4, s.Width())
	r := core.CenterIn(s.Width(), s.Height(), w, len(lines)+2)

	inner := r.Inset(1)
	for y := inner.Y; y < inner.Bottom(); y++ {
		for x := inner.X; x < inner.Right(); x++ {
			s.Set(x, y, ' ')
		}
	}
	s.DrawBox(r, color)

	for i, l := range lines {
		x := r.X + (r.W-utf8.RuneCountInString(l))/2
		s.DrawTextColored(x, r.Y+1+i, l, color)
	}
}
