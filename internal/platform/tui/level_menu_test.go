package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

func newTestMenu() LevelMenuModel {
	return NewLevelMenuModel(config.NewDifficultyTable(config.DefaultSnakeConfig()), 80, 24)
}

func menuUpdate(t *testing.T, m LevelMenuModel, msg tea.Msg) (LevelMenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(LevelMenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestLevelMenuNavigation(t *testing.T) {
	m := newTestMenu()

	m, _ = menuUpdate(t, m, keyMsg("up"))
	if m.cursor != 0 {
		t.Errorf("Cursor should stay at top, got %d", m.cursor)
	}

	m, _ = menuUpdate(t, m, keyMsg("down"))
	m, _ = menuUpdate(t, m, keyMsg("down"))
	m, _ = menuUpdate(t, m, keyMsg("down"))
	if m.cursor != 2 {
		t.Errorf("Cursor should stop at the last level, got %d", m.cursor)
	}

	m, cmd := menuUpdate(t, m, keyMsg(" "))
	if m.Selected() != 3 || cmd == nil {
		t.Errorf("Selected() = %d, expected 3 with a quit command", m.Selected())
	}
}

func TestLevelMenuDigitPicksLevel(t *testing.T) {
	m := newTestMenu()

	m, _ = menuUpdate(t, m, keyMsg("7"))
	if m.Selected() != 0 {
		t.Error("Unknown level digit should be ignored")
	}

	m, _ = menuUpdate(t, m, keyMsg("2"))
	if m.Selected() != 2 {
		t.Errorf("Selected() = %d, expected 2", m.Selected())
	}
}

func TestLevelMenuQuit(t *testing.T) {
	m := newTestMenu()
	m, cmd := menuUpdate(t, m, keyMsg("q"))

	if !m.quitting || cmd == nil || m.Selected() != 0 {
		t.Error("q should quit without a selection")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestLevelMenuView(t *testing.T) {
	view := newTestMenu().View()
	for _, w := range []string{"S N A K E", "1. Steve the Snake (Easy)", "3. Simon Sssays (Hard)"} {
		if !strings.Contains(view, w) {
			t.Errorf("View should contain %q", w)
		}
	}
}
