package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

// KeyMap defines the key bindings for a snake session.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Toggle     key.Binding
	Restart    key.Binding
	Difficulty key.Binding
	History    key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.Restart, k.Difficulty, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Restart, k.Difficulty},
		{k.History, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑↓←→/wasd", "steer (repeat to sprint)"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "start/pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "difficulty"),
		),
		History: key.NewBinding(
			key.WithKeys("h", "tab"),
			key.WithHelp("h", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a player action.
// For difficulty keys the selected level is returned as well.
func (k KeyMap) Action(msg tea.KeyMsg) (core.Action, int) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, 0
	case key.Matches(msg, k.Up):
		return core.ActionUp, 0
	case key.Matches(msg, k.Down):
		return core.ActionDown, 0
	case key.Matches(msg, k.Left):
		return core.ActionLeft, 0
	case key.Matches(msg, k.Right):
		return core.ActionRight, 0
	case key.Matches(msg, k.Toggle):
		return core.ActionToggle, 0
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, 0
	case key.Matches(msg, k.History):
		return core.ActionHistory, 0
	case key.Matches(msg, k.Difficulty):
		level, err := strconv.Atoi(msg.String())
		if err != nil {
			return core.ActionNone, 0
		}
		return core.ActionDifficulty, level
	}
	return core.ActionNone, 0
}

// directionFor maps a movement action to the engine direction.
func directionFor(a core.Action) (snake.Direction, bool) {
	switch a {
	case core.ActionUp:
		return snake.Up, true
	case core.ActionDown:
		return snake.Down, true
	case core.ActionLeft:
		return snake.Left, true
	case core.ActionRight:
		return snake.Right, true
	}
	return snake.Direction{}, false
}
