package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

// menuKeyMap defines the key bindings for the level menu.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/w", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/s", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelMenuModel lets the player choose the starting difficulty.
type LevelMenuModel struct {
	levels   []config.LevelConfig
	cursor   int
	keys     menuKeyMap
	width    int
	height   int
	selected int
	quitting bool
}

// NewLevelMenuModel creates a menu over the levels of table.
func NewLevelMenuModel(table *config.DifficultyTable, width, height int) LevelMenuModel {
	return LevelMenuModel{
		levels: table.Levels(),
		keys:   defaultMenuKeyMap(),
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.levels) > 0 {
			m.selected = m.levels[m.cursor].Level
			return m, tea.Quit
		}
	default:
		// Digits jump straight to a level
		if n, err := strconv.Atoi(msg.String()); err == nil {
			for _, l := range m.levels {
				if l.Level == n {
					m.selected = n
					return m, tea.Quit
				}
			}
		}
	}
	return m, nil
}

// View renders the level list.
func (m LevelMenuModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("S N A K E"))
	b.WriteString("\n\n")
	b.WriteString("Choose your snake:\n\n")

	for i, l := range m.levels {
		line := fmt.Sprintf("%d. %s", l.Level, l.Label())
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(menuItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: play  |  1-9: pick  |  q: quit"))

	body := lipgloss.NewStyle().Align(lipgloss.Left).Render(b.String())
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the chosen level, or 0 when none was chosen.
func (m LevelMenuModel) Selected() int {
	return m.selected
}

// RunLevelSelector shows the level menu and returns the chosen level.
// It returns 0 if the player quit.
func RunLevelSelector(table *config.DifficultyTable, cfg core.RuntimeConfig) (int, error) {
	p := tea.NewProgram(
		NewLevelMenuModel(table, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
