package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/announce"
	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sprintStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	smallStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Options configures a session model.
type Options struct {
	Config     config.SnakeConfig
	Runtime    core.RuntimeConfig
	Difficulty int            // Starting level; 0 keeps the lowest
	Store      *storage.Store // Round journal; nil disables history
	SessionID  string         // Defaults to a fresh id
	Logger     *log.Logger    // Defaults to discard
}

// Model is the Bubble Tea model for one snake session.
type Model struct {
	game      *snake.Game
	driver    *snake.Driver
	ctx       context.Context
	cancel    context.CancelFunc
	levels    *config.DifficultyTable
	store     *storage.Store
	sessionID string
	logger    *log.Logger

	config core.RuntimeConfig
	screen *core.Screen
	cellW  int
	keys   KeyMap
	help   help.Model

	last      snake.Snapshot
	status    announce.Announcement
	statusSeq int
	flash     bool
	flashSeq  int

	history      table.Model
	historyScope historyScope
	historySum   historySummary
	showHistory  bool
	quitting    bool
}

// NewModel creates a session model. The engine driver stops when ctx is
// cancelled or the player quits.
func NewModel(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid snake config, using defaults", "error", err)
		cfg = config.DefaultSnakeConfig()
	}

	rc := opts.Runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	gameOpts := []snake.Option{snake.WithSeed(rc.Seed), snake.WithLogger(logger)}
	if opts.Difficulty > 0 {
		gameOpts = append(gameOpts, snake.WithDifficulty(opts.Difficulty))
	}
	game := snake.New(cfg, gameOpts...)

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = storage.NewSessionID()
	}

	ctx, cancel := context.WithCancel(ctx)
	cellW := cellWidthFor(rc.ScreenW)

	return Model{
		game:      game,
		driver:    snake.NewDriver(game, snake.WithDriverLogger(logger)),
		ctx:       ctx,
		cancel:    cancel,
		levels:    config.NewDifficultyTable(cfg),
		store:     opts.Store,
		sessionID: sessionID,
		logger:    logger,
		config:    rc,
		screen:    newBoardScreen(cellW),
		cellW:     cellW,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		last:      game.Snapshot(),
		history:   newHistoryTable(),
	}
}

// Init starts the engine driver and waits for its first frame.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		runDriver(m.ctx, m.driver),
		waitForFrame(m.ctx, m.driver),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(snake.Frame(msg))

	case driverStoppedMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.logger.Error("driver stopped", "error", msg.err)
		}
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = announce.Announcement{}
		}
		return m, nil

	case flashEndedMsg:
		if msg.seq == m.flashSeq {
			m.flash = false
		}
		return m, nil
	}

	if m.showHistory {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, level := m.keys.Action(msg)

	if action == core.ActionQuit {
		return m.quit()
	}

	if m.showHistory {
		if action == core.ActionHistory || msg.String() == "esc" {
			m.showHistory = false
			return m, nil
		}
		if msg.String() == "m" {
			m.historyScope = m.historyScope.toggle()
			m.loadHistory()
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	switch action {
	case core.ActionToggle:
		m.game.ToggleRunning()
	case core.ActionRestart:
		m.game.Reset()
	case core.ActionDifficulty:
		if !m.game.SetDifficulty(level) {
			m.logger.Debug("unknown difficulty requested", "level", level)
		}
	case core.ActionHistory:
		// Pause so the snake does not die while the board is hidden
		m.game.Pause()
		m.loadHistory()
		m.showHistory = true
	default:
		if dir, ok := directionFor(action); ok {
			m.game.RequestDirection(dir, true)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	if cellW := cellWidthFor(msg.Width); cellW != m.cellW {
		m.cellW = cellW
		m.screen = newBoardScreen(cellW)
	}

	return m, nil
}

// handleFrame applies a driver frame: status messages, flashes and the
// journal entry for a finished round.
func (m Model) handleFrame(f snake.Frame) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{waitForFrame(m.ctx, m.driver)}

	anns := announce.Announce(m.last, f.Snapshot, f.Events)
	m.last = f.Snapshot

	for _, a := range anns {
		if len(a.Haptic) == 0 {
			continue
		}
		m.flashSeq++
		m.flash = true
		cmds = append(cmds, endFlash(m.flashSeq, patternLength(a.Haptic)))
	}

	if a, ok := announce.Latest(anns); ok {
		m.statusSeq++
		m.status = a
		if a.TTL > 0 {
			cmds = append(cmds, expireStatus(m.statusSeq, a.TTL))
		}
	}

	for _, ev := range f.Events {
		if ev.Kind == snake.EventGameOver {
			m.saveRound(ev, f.Snapshot)
		}
	}

	return m, tea.Batch(cmds...)
}

// saveRound records a finished round in the journal. When the board was
// reset before the frame arrived, only the final score is known.
func (m Model) saveRound(ev snake.Event, snap snake.Snapshot) {
	if m.store == nil {
		return
	}

	round := storage.Round{
		SessionID:  m.sessionID,
		Difficulty: snap.Difficulty,
		Score:      ev.Score,
	}
	if snap.Phase == snake.PhaseOver {
		round.Length = len(snap.Snake)
		round.Ticks = snap.Tick
		round.NewRecord = snap.IsNewRecord
	}

	if _, err := m.store.SaveRound(round); err != nil {
		m.logger.Error("could not save round", "error", err)
		return
	}
	m.logger.Info("round finished", "session", m.sessionID, "difficulty", round.Difficulty, "score", round.Score)
}

func (m *Model) loadHistory() {
	m.historySum = historySummary{}
	if m.store == nil {
		m.history.SetRows(nil)
		return
	}

	mine, err := m.store.SessionRounds(m.sessionID)
	if err != nil {
		m.logger.Error("could not load session rounds", "error", err)
	}
	m.historySum.mine = len(mine)

	if m.historySum.total, err = m.store.Count(); err != nil {
		m.logger.Error("could not count rounds", "error", err)
	}
	if m.historySum.best, err = m.store.BestByDifficulty(); err != nil {
		m.logger.Error("could not load best scores", "error", err)
	}

	var rounds []storage.Round
	if m.historyScope == scopeMine {
		rounds = newestFirst(mine, historyLimit)
	} else if rounds, err = m.store.RecentRounds(historyLimit); err != nil {
		m.logger.Error("could not load history", "error", err)
		rounds = nil
	}
	m.history.SetRows(historyRows(rounds, m.levels))
	m.history.GotoTop()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

// Close stops the engine driver.
func (m Model) Close() {
	m.cancel()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpLine := helpStyle.Render(m.help.View(m.keys))

	if m.showHistory {
		return m.place(lipgloss.JoinVertical(lipgloss.Center, renderHistory(m.history, m.historyScope, m.historySum, m.levels), helpLine))
	}

	if m.config.ScreenH > 0 && m.config.ScreenH < boardRows+3 {
		return smallStyle.Render(fmt.Sprintf("Terminal too small: need %d rows, have %d", boardRows+3, m.config.ScreenH))
	}

	drawBoard(m.screen, m.last, m.cellW, m.flash)

	return m.place(lipgloss.JoinVertical(lipgloss.Center,
		m.header(),
		RenderScreen(m.screen),
		renderStatus(m.status, m.screen.Width()),
		helpLine,
	))
}

func (m Model) header() string {
	label := fmt.Sprintf("Level %d", m.last.Difficulty)
	if lvl, ok := m.levels.Level(m.last.Difficulty); ok {
		label = lvl.Label()
	}

	text := headerStyle.Render(fmt.Sprintf("SCORE %d  BEST %d  %s", m.last.Score, m.last.Best(), label))
	if m.last.Accelerating {
		text += sprintStyle.Render("  >>")
	}
	return text
}

func (m Model) place(body string) string {
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return body
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

func patternLength(pattern []time.Duration) time.Duration {
	var total time.Duration
	for _, d := range pattern {
		total += d
	}
	return total
}

// Run starts a local session in the alternate screen and blocks until the
// player quits.
func Run(ctx context.Context, opts Options) error {
	model := NewModel(ctx, opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
