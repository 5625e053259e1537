package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tiny-planets/internal/config"
	"github.com/vovakirdan/tiny-planets/internal/core"
	"github.com/vovakirdan/tiny-planets/internal/platform/tui"
	"github.com/vovakirdan/tiny-planets/internal/scene"
	"github.com/vovakirdan/tiny-planets/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the first scene of the build list.

Controls:
  Mouse drag   - Move your planet
  Enter/Space  - Start (menu)
  R            - Restart (after game over)
  M/Esc        - Back to the menu (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  planets play
  planets play --difficulty hard
  planets play --config ./my-planets.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	switch config.DifficultyPreset(flagDifficulty) {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
	default:
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))

	logger, closer := fileLogger()
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	env := scene.Env{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Config: cfg,
		Camera: core.DefaultCamera(),
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works, the high score just isn't persisted.
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "path", flagDBPath, "err", err)
		env.Prefs = storage.NewMemoryPrefs()
	} else {
		defer store.Close()
		env.Prefs = store
		env.Runs = store
	}

	logger.Info("starting", "build", cfg.Scenes.Build, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(env); err != nil {
		logger.Error("game stopped", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
