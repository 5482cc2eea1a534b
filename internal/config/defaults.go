package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in lane runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Canvas: CanvasConfig{
			Width:      800,
			Height:     600,
			Background: "#352e4a",
		},
		Lanes: LanesConfig{
			Positions: []float64{200, 400, 600},
		},
		Player: PlayerConfig{
			Y:            500,
			Width:        50,
			Height:       50,
			StartLane:    1,
			LaneChangeMS: 200,
		},
		Obstacles: ObstaclesConfig{
			Width:           50,
			Height:          50,
			SpawnIntervalMS: 2000,
			BaseVelocity:    200,
			SpeedGain:       10,
		},
		Progression: ProgressionConfig{
			InitialSpeed:   5,
			SpeedIncrement: 0.001,
			ScoreDivisor:   10,
		},
		Perspective: PerspectiveConfig{
			WorldDepth: 10,
			MinScale:   0.3,
			MaxScale:   1.0,
			HorizonY:   100,
		},
		Animation: AnimationConfig{
			RunCycleMS: 100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
