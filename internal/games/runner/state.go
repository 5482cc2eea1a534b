// Package runner implements the Temple Vibe lane runner: the player dodges
// obstacles by switching between three lanes while the floor scrolls toward
// the camera and the game speeds up.
//
// The simulation is an explicit State advanced by free functions. Init
// (re)builds a run, Update advances one frame and OnCollision ends the run.
// Drivers own the clock and the input; this package never blocks.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/engine"
	"github.com/vovakirdan/lanerun/internal/world"
)

// Player is the runner controlled by the user.
type Player struct {
	engine.Body

	Lane          int  // committed lane, 0..2
	ChangingLanes bool // a lane-change tween is in flight
	Alive         bool
	Hit           bool // drawn in the hit colour after a collision
	RunFrame      int  // leg animation frame, 0 or 1

	target int
}

// Obstacle is a block falling toward the player in a single lane.
type Obstacle struct {
	engine.Body

	Lane int
}

// State is everything a run owns. The zero value is not usable; create one
// with NewState.
type State struct {
	Player    Player
	Obstacles []Obstacle

	Score  float64 // accumulated, see DisplayScore
	Speed  float64
	Over   bool
	Paused bool

	GameOverVisible bool
	Frames          uint64 // frames simulated in this run
	Spawned         int    // obstacles spawned in this run
	RunID           string

	cfg       config.RunnerConfig
	lanes     world.Lanes
	persp     world.Perspective
	tiles     *world.TileGrid
	timers    *engine.Scheduler[*State]
	spawner   *engine.Timer
	runCycle  *engine.Timer
	laneTween *engine.Tween
	rng       *rand.Rand
}

// NewState creates a run from a validated config and starts it.
// The seed drives lane selection for every run of this state, including
// restarts, so equal seeds and inputs give equal games.
func NewState(cfg config.RunnerConfig, seed int64) *State {
	s := &State{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	s.lanes = lanesFrom(cfg.Lanes)
	s.persp = world.Perspective{
		WorldDepth: cfg.Perspective.WorldDepth,
		MinScale:   cfg.Perspective.MinScale,
		MaxScale:   cfg.Perspective.MaxScale,
		HorizonY:   cfg.Perspective.HorizonY,
		BottomY:    cfg.Canvas.Height,
		CenterX:    cfg.Canvas.Width / 2,
	}
	Init(s)
	return s
}

func lanesFrom(c config.LanesConfig) world.Lanes {
	var xs [world.LaneCount]float64
	copy(xs[:], c.Positions)
	return world.NewLanes(xs)
}

// Config returns the configuration the state was built with.
func (s *State) Config() config.RunnerConfig {
	return s.cfg
}

// Lanes returns the lane model.
func (s *State) Lanes() world.Lanes {
	return s.lanes
}

// Perspective returns the depth model shared by the floor and the renderers.
func (s *State) Perspective() world.Perspective {
	return s.persp
}

// Tiles returns the scrolling floor grid.
func (s *State) Tiles() *world.TileGrid {
	return s.tiles
}

// PendingTimers returns how many scheduled callbacks are still live.
func (s *State) PendingTimers() int {
	return s.timers.Pending()
}
