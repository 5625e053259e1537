// planets is a terminal game about dragging a planet out of the way of
// other planets, plus a material analyzer for scene files.
//
// Usage:
//
//	planets play                 - Play the game
//	planets scenes               - List the scene build list
//	planets scores               - Show finished runs and the high score
//	planets serve                - Start SSH server for remote play
//	planets materials <file>...  - Analyze materials used by scene files
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.planets/planets.db)
//	--config <path>     - Custom game config YAML
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiny-planets/internal/config"
	"github.com/vovakirdan/tiny-planets/internal/logging"

	// Import scenes to register them
	_ "github.com/vovakirdan/tiny-planets/internal/scenes/game"
	_ "github.com/vovakirdan/tiny-planets/internal/scenes/menu"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
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
	Use:   "planets",
	Short: "Tiny Planets - Keep your planet alive in the terminal",
	Long: `Tiny Planets is a terminal game: drag your planet with the mouse and
dodge the planets flying across the screen. Your score is the number of
seconds you survive.

Available commands:
  play       - Start the game at the main menu
  scenes     - Show the scene build list
  scores     - View finished runs and the high score
  serve      - Start SSH server for remote play
  materials  - Analyze the materials used by scene files

Examples:
  planets play
  planets play --difficulty hard
  planets scores
  planets serve --ssh :2222
  planets materials testdata/scenes/game.yaml --select Level/Ship`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.planets/planets.db", "Path to the high score and runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.planets/planets.log", "Log file used while the game owns the terminal")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(materialsCmd)
}

// loadConfig reads the game config named by --config, or the default
// search order when it is empty.
func loadConfig() (config.PlanetsConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// fileLogger opens --log-file. The terminal belongs to the UI, so a logger
// that cannot be opened degrades to discarding.
func fileLogger() (*log.Logger, io.Closer) {
	logger, closer, err := logging.OpenFile(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	return logger, closer
}

// stderrLogger logs to stderr for commands that do not take over the
// terminal.
func stderrLogger() (*log.Logger, error) {
	return logging.New(os.Stderr, flagLogLevel)
}
