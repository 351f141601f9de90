package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key    string
		action core.Action
		level  int
	}{
		{"up", core.ActionUp, 0},
		{"w", core.ActionUp, 0},
		{"down", core.ActionDown, 0},
		{"s", core.ActionDown, 0},
		{"left", core.ActionLeft, 0},
		{"a", core.ActionLeft, 0},
		{"right", core.ActionRight, 0},
		{"d", core.ActionRight, 0},
		{" ", core.ActionToggle, 0},
		{"p", core.ActionToggle, 0},
		{"r", core.ActionRestart, 0},
		{"h", core.ActionHistory, 0},
		{"q", core.ActionQuit, 0},
		{"ctrl+c", core.ActionQuit, 0},
		{"1", core.ActionDifficulty, 1},
		{"3", core.ActionDifficulty, 3},
		{"9", core.ActionDifficulty, 9},
		{"x", core.ActionNone, 0},
		{"0", core.ActionNone, 0},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, level := km.Action(keyMsg(tc.key))
			if action != tc.action || level != tc.level {
				t.Errorf("Action(%q) = (%v, %d), expected (%v, %d)", tc.key, action, level, tc.action, tc.level)
			}
		})
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		dir    snake.Direction
		ok     bool
	}{
		{core.ActionUp, snake.Up, true},
		{core.ActionDown, snake.Down, true},
		{core.ActionLeft, snake.Left, true},
		{core.ActionRight, snake.Right, true},
		{core.ActionToggle, snake.Direction{}, false},
	}

	for _, tc := range tests {
		dir, ok := directionFor(tc.action)
		if dir != tc.dir || ok != tc.ok {
			t.Errorf("directionFor(%v) = (%v, %v), expected (%v, %v)", tc.action, dir, ok, tc.dir, tc.ok)
		}
	}
}

func TestHelpListsBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 9 {
		t.Errorf("FullHelp should list every binding, got %d", total)
	}
}
