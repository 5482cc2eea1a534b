package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/core"
	"github.com/vovakirdan/lanerun/internal/games/runner"
	"github.com/vovakirdan/lanerun/internal/logging"
)

// logOptions builds the logger options from the flags. The terminal driver
// owns stdout and stderr, so only the window driver logs to stderr.
func logOptions(toStderr bool) logging.Options {
	return logging.Options{
		Level:    flagLogLevel,
		File:     flagLogFile,
		ToStderr: toStderr,
	}
}

// loadRunnerConfig resolves the runner config from the flags and installs it
// for games created afterwards.
func loadRunnerConfig(logger *log.Logger) (config.RunnerConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	cfg, source, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	logger.Info("config loaded", "source", source, "difficulty", string(preset))
	runner.SetConfig(cfg)
	return cfg, nil
}

// runtimeConfig builds the runtime config from the flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
