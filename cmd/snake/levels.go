package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List difficulty levels",
	Long:  `Shows the difficulty table in use, including each level's tick interval and obstacle count.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	table := config.NewDifficultyTable(cfg)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Difficulty levels:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := len("Name")
	for _, l := range table.Levels() {
		maxNameLen = max(maxNameLen, len(l.Label()))
	}

	fmt.Fprintf(out, "  %-5s  %-*s  %-8s  %-8s  %s\n", "Level", maxNameLen, "Name", "Tick", "Sprint", "Obstacles")
	fmt.Fprintf(out, "  %-5s  %-*s  %-8s  %-8s  %s\n", "-----", maxNameLen, "----", "----", "------", "---------")

	for _, l := range table.Levels() {
		fmt.Fprintf(out, "  %-5d  %-*s  %-8s  %-8s  %d\n",
			l.Level, maxNameLen, l.Label(),
			table.BaseInterval(l.Level),
			table.AcceleratedInterval(l.Level).Round(time.Millisecond),
			len(snake.ObstaclesFor(l.Level)),
		)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'snake play --difficulty <level>' to start at a level.")
	return nil
}
