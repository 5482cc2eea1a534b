package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanerun/internal/games/runner"
	"github.com/vovakirdan/lanerun/internal/logging"
	"github.com/vovakirdan/lanerun/internal/platform/tui"
	"github.com/vovakirdan/lanerun/internal/platform/window"
	"github.com/vovakirdan/lanerun/internal/registry"
)

var flagWindow bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start a run of the lane runner.

Controls:
  Left/A       - Move one lane left
  Right/D      - Move one lane right
  P/Esc        - Pause
  Click/R      - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options (linear speed growth in every preset):
  easy   - Slower start, slower speed-up
  normal - Config values
  hard   - Faster start, faster speed-up

Examples:
  lanerun play
  lanerun play --window
  lanerun play --difficulty easy
  lanerun play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := runner.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'lanerun list' to see available games", gameID)
	}

	return logging.With(logOptions(flagWindow), func(logger *log.Logger) error {
		cfg, err := loadRunnerConfig(logger)
		if err != nil {
			return err
		}
		rt := runtimeConfig()

		if flagWindow {
			if err := window.Run(runner.NewState(cfg, rt.Seed), rt.TickRate, logger); err != nil {
				logger.Error("window driver failed", "error", err)
				return fmt.Errorf("running game: %w", err)
			}
			return nil
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		if err := tui.Run(game, rt, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	})
}
