package runner

import (
	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/core"
	"github.com/vovakirdan/lanerun/internal/registry"
)

// ID is the registry identifier of the lane runner.
const ID = "runner"

// Game adapts a runner State to the platform's fixed-tick game interface.
type Game struct {
	state   *State
	runtime core.RuntimeConfig
}

// configOverride is the config set by the CLI, nil to load from disk.
var configOverride *config.RunnerConfig

// SetConfig makes every game created afterwards use cfg instead of
// searching for a config file.
func SetConfig(cfg config.RunnerConfig) {
	configOverride = &cfg
}

// New creates a new lane runner instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Temple Vibe"
}

// Reset starts a new run with the runtime's seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.RunnerConfig
	if configOverride != nil {
		cfg = *configOverride
	} else {
		loaded, _, err := config.LoadRunner("")
		if err != nil {
			loaded = config.DefaultRunnerConfig()
		}
		cfg = loaded
	}

	g.state = NewState(cfg, runtime.Seed)
}

// Step advances the run by one tick of the runtime's frame length.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	restarted := Update(g.state, g.runtime.FrameMillis(), in)
	return core.StepResult{
		State:     g.State(),
		Restarted: restarted,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.DisplayScore(),
		GameOver: g.state.Over,
		Paused:   g.state.Paused,
	}
}

// Run exposes the underlying simulation to drivers that draw it themselves.
func (g *Game) Run() *State {
	return g.state
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// RunID returns the id of the current run.
func (g *Game) RunID() string {
	return g.state.RunID
}
