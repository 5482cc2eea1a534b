package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanerun/internal/games/runner"
	"github.com/vovakirdan/lanerun/internal/logging"
	"github.com/vovakirdan/lanerun/internal/platform/tui"
	"github.com/vovakirdan/lanerun/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title screen",
	Long: `Show the Temple Vibe title screen, then play.

Quitting a run returns to the title screen.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  lanerun menu
  lanerun menu --fps 30
  lanerun menu --log-file /tmp/lanerun.log`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return logging.With(logOptions(false), func(logger *log.Logger) error {
		if _, err := loadRunnerConfig(logger); err != nil {
			return err
		}
		cfg := runtimeConfig()

		// Menu loop
		for {
			play, updated, err := tui.RunMenu(runner.New().Title(), cfg)
			if err != nil {
				return err
			}

			// Update config with any size changes
			cfg = updated
			if !play {
				return nil
			}

			game, err := registry.Create(runner.ID)
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}
			if err := tui.Run(game, cfg, logger); err != nil {
				return fmt.Errorf("running game: %w", err)
			}

			// A fixed --seed replays the same run; otherwise draw a new one.
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
		}
	})
}
