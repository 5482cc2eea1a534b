// Package config provides YAML-based configuration loading for the lane
// runner, including the starting-speed presets.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RunnerConfig contains all configuration for the lane runner.
type RunnerConfig struct {
	Canvas      CanvasConfig      `yaml:"canvas"`
	Lanes       LanesConfig       `yaml:"lanes"`
	Player      PlayerConfig      `yaml:"player"`
	Obstacles   ObstaclesConfig   `yaml:"obstacles"`
	Progression ProgressionConfig `yaml:"progression"`
	Perspective PerspectiveConfig `yaml:"perspective"`
	Animation   AnimationConfig   `yaml:"animation"`
}

// CanvasConfig describes the fixed logical drawing surface.
type CanvasConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"` // hex colour used by the window driver
}

// LanesConfig holds the lane centre x-coordinates, left to right.
type LanesConfig struct {
	Positions []float64 `yaml:"positions"`
}

// PlayerConfig defines the player's size, row and lane-change timing.
type PlayerConfig struct {
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartLane    int     `yaml:"start_lane"`
	LaneChangeMS float64 `yaml:"lane_change_ms"`
}

// ObstaclesConfig defines obstacle size and spawning.
type ObstaclesConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	SpawnIntervalMS float64 `yaml:"spawn_interval_ms"`
	BaseVelocity    float64 `yaml:"base_velocity"` // canvas units per second
	SpeedGain       float64 `yaml:"speed_gain"`    // extra velocity per unit of game speed
}

// ProgressionConfig defines the linear score/speed curve.
type ProgressionConfig struct {
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // added every frame
	ScoreDivisor   float64 `yaml:"score_divisor"`   // score += speed / divisor
}

// PerspectiveConfig defines the depth grid used for the scrolling floor.
type PerspectiveConfig struct {
	WorldDepth int     `yaml:"world_depth"`
	MinScale   float64 `yaml:"min_scale"`
	MaxScale   float64 `yaml:"max_scale"`
	HorizonY   float64 `yaml:"horizon_y"`
}

// AnimationConfig defines cosmetic timers.
type AnimationConfig struct {
	RunCycleMS float64 `yaml:"run_cycle_ms"`
}

// Validate reports every structural problem in the config at once.
func (c RunnerConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		add("canvas size must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := colorful.Hex(c.Canvas.Background); err != nil {
		add("canvas background must be #rrggbb, got %q", c.Canvas.Background)
	}
	if len(c.Lanes.Positions) != 3 {
		add("exactly 3 lane positions required, got %d", len(c.Lanes.Positions))
	} else {
		for i := 1; i < len(c.Lanes.Positions); i++ {
			if c.Lanes.Positions[i] <= c.Lanes.Positions[i-1] {
				add("lane positions must increase left to right")
				break
			}
		}
	}
	if c.Player.StartLane < 0 || c.Player.StartLane > 2 {
		add("player start_lane must be 0..2, got %d", c.Player.StartLane)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		add("player size must be positive")
	}
	if c.Player.LaneChangeMS <= 0 {
		add("player lane_change_ms must be positive")
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		add("obstacle size must be positive")
	}
	if c.Obstacles.SpawnIntervalMS <= 0 {
		add("obstacles spawn_interval_ms must be positive")
	}
	if c.Progression.InitialSpeed < 0 {
		add("progression initial_speed must not be negative")
	}
	if c.Progression.SpeedIncrement <= 0 {
		add("progression speed_increment must be positive")
	}
	if c.Progression.ScoreDivisor <= 0 {
		add("progression score_divisor must be positive")
	}
	if c.Perspective.WorldDepth <= 0 {
		add("perspective world_depth must be positive")
	}
	if c.Perspective.MinScale <= 0 || c.Perspective.MinScale > c.Perspective.MaxScale {
		add("perspective scales must satisfy 0 < min_scale <= max_scale")
	}
	if c.Perspective.HorizonY < 0 || c.Perspective.HorizonY >= c.Canvas.Height {
		add("perspective horizon_y must lie on the canvas")
	}
	if c.Animation.RunCycleMS <= 0 {
		add("animation run_cycle_ms must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset names a starting-speed preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a CLI value into a preset.
// The empty string means "keep the config's values".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset scales the starting speed and per-frame increment.
// Growth stays linear; only its intercept and slope change.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Progression.InitialSpeed *= 0.6
		cfg.Progression.SpeedIncrement *= 0.5
	case DifficultyHard:
		cfg.Progression.InitialSpeed *= 1.6
		cfg.Progression.SpeedIncrement *= 2
	}
}
