// snake is a terminal snake game on a wrapping 25x25 board.
//
// Usage:
//
//	snake play     - Play in this terminal
//	snake serve    - Start SSH server for remote play
//	snake levels   - List difficulty levels
//
// Global flags:
//
//	--config <path>     - Difficulty table YAML (default: ~/.snake/configs/snake.yaml, ./configs/snake.yaml, built-in)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a wrapping snake game for your terminal",
	Long: `Snake is played on a 25x25 board whose edges wrap around.
Eat food to grow and score, avoid your own body and the obstacles of
the harder levels. Repeating your current direction on a clear lane
gives a short sprint.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  levels   - List difficulty levels

Examples:
  snake play
  snake play --difficulty 3
  snake serve --ssh :2222
  snake levels --config ./my-levels.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a difficulty table YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger builds the command logger. Without --log-file, logs go to
// fallback. The returned close function releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the difficulty table honoring --config.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}
