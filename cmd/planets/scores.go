package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tiny-planets/internal/platform/tui"
	"github.com/vovakirdan/tiny-planets/internal/scenes/game"
	"github.com/vovakirdan/tiny-planets/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show finished runs and the high score",
	Long: `Display the best runs, the recent runs and the stored high score.

In a terminal an interactive scoreboard is shown; otherwise the best runs
are printed as plain text.

Examples:
  planets scores
  planets scores --limit 5 | cat
  planets scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Runs printed when not in a terminal")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history and reset the high score")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ResetGame(game.GameID, cfg.Session.HighScoreKey); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("Run history and high score cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, game.GameID, cfg.Session.HighScoreKey, width, height)
	}

	scores, err := store.TopScores(game.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	highScore, err := store.GetInt(cfg.Session.HighScoreKey, 0)
	if err != nil {
		return fmt.Errorf("retrieving high score: %w", err)
	}
	fmt.Printf("High Score: %d\n", highScore)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'planets play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Seconds", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "-------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %s\n", i+1, entry.Score, dateStr)
	}

	if stats, err := store.GetGameStats(game.GameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Average: %.1fs\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}
