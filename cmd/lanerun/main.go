// lanerun is a three-lane temple runner for the terminal or a desktop window.
//
// Usage:
//
//	lanerun play             - Play in the terminal (or --window)
//	lanerun menu             - Title screen, then play
//	lanerun list             - List available games
//	lanerun config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom runner.yaml
//	--difficulty <preset> - Starting speed: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Log file for the terminal driver
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/lanerun/internal/games/runner"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanerun",
	Short: "Temple Vibe - a three-lane runner",
	Long: `Temple Vibe is a temple-run style lane runner. Switch lanes to dodge
the falling blocks; the floor speeds up the longer you survive.

Available commands:
  play     - Start a run directly
  menu     - Title screen, then play
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  lanerun play
  lanerun play --window
  lanerun play --difficulty hard --seed 42
  lanerun menu --log-file /tmp/lanerun.log
  lanerun config --config ./my-runner.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Starting speed preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal driver)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
