package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

const (
	historyLimit  = 50
	historyHeight = 15
)

var (
	historyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	historyBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	historyInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	historyEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true).
				Padding(2, 4)
)

// newHistoryTable creates the round history table.
func newHistoryTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Record", Width: 7},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(historyHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// historyRows converts journal rounds into table rows.
func historyRows(rounds []storage.Round, levels *config.DifficultyTable) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		name := fmt.Sprintf("Level %d", r.Difficulty)
		if lvl, ok := levels.Level(r.Difficulty); ok {
			name = lvl.Name
		}
		record := ""
		if r.NewRecord {
			record = "yes"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			name,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			record,
			r.EndedAt.Format("15:04:05"),
		}
	}
	return rows
}

// historyScope selects whose rounds the history table lists.
type historyScope int

const (
	scopeAll historyScope = iota
	scopeMine
)

func (s historyScope) title() string {
	if s == scopeMine {
		return "YOUR ROUNDS"
	}
	return "RECENT ROUNDS"
}

func (s historyScope) toggle() historyScope {
	if s == scopeMine {
		return scopeAll
	}
	return scopeMine
}

// historySummary holds the journal totals shown above the table.
type historySummary struct {
	best  map[int]int
	mine  int
	total int
}

// newestFirst returns the last limit rounds of an oldest-first list,
// newest first.
func newestFirst(rounds []storage.Round, limit int) []storage.Round {
	out := slices.Clone(rounds)
	slices.Reverse(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// bestsLine lists the journal best of every level that has a round.
func bestsLine(best map[int]int, levels *config.DifficultyTable) string {
	var parts []string
	for _, lvl := range levels.Levels() {
		if score, ok := best[lvl.Level]; ok {
			parts = append(parts, fmt.Sprintf("%s %d", lvl.Name, score))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "Best: " + strings.Join(parts, "  ")
}

// renderHistory renders the history panel.
func renderHistory(t table.Model, scope historyScope, sum historySummary, levels *config.DifficultyTable) string {
	title := historyTitleStyle.Render(scope.title())
	info := fmt.Sprintf("You played %d of %d rounds  (m: %s)", sum.mine, sum.total, scope.toggle().title())
	lines := []string{title, historyInfoStyle.Render(info)}
	if bests := bestsLine(sum.best, levels); bests != "" {
		lines = append(lines, historyInfoStyle.Render(bests))
	}

	if len(t.Rows()) == 0 {
		lines = append(lines, historyEmptyStyle.Render("No rounds finished yet.\nPlay one to fill the journal!"))
	} else {
		lines = append(lines, historyBoxStyle.Render(t.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
