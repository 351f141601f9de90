package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var (
	flagDifficulty int
	flagSeed       int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a snake session in this terminal.

Controls:
  Arrows/WASD  - Steer; repeat the current direction to sprint
  Space/P      - Start, pause or resume
  R            - Reset the board
  1-9          - Switch difficulty level
  H            - Rounds played this session
  Q/Ctrl+C     - Quit

Without --difficulty a level menu is shown first.
Logs are discarded unless --log-file is given, since the game owns the screen.

Examples:
  snake play
  snake play --difficulty 2
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagDifficulty, "difficulty", 0, "Starting difficulty level (default: lowest)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for food placement (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := checkDifficulty(cfg, flagDifficulty); err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Without --difficulty, let the player choose
	difficulty := flagDifficulty
	if difficulty == 0 && term.IsTerminal(int(os.Stdout.Fd())) {
		difficulty, err = tui.RunLevelSelector(config.NewDifficultyTable(cfg), rc)
		if err != nil {
			return fmt.Errorf("level menu: %w", err)
		}
		if difficulty == 0 {
			return nil
		}
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open round journal", "error", err)
		// Continue without history
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, tui.Options{
		Config:     cfg,
		Runtime:    rc,
		Difficulty: difficulty,
		Store:      store,
		Logger:     logger,
	})
}

// checkDifficulty rejects a level the table does not define; 0 means lowest.
func checkDifficulty(cfg config.SnakeConfig, level int) error {
	if level == 0 || config.NewDifficultyTable(cfg).Has(level) {
		return nil
	}
	return fmt.Errorf("unknown difficulty %d (run 'snake levels' to list them)", level)
}
