package runner

import (
	"math"

	"github.com/google/uuid"

	"github.com/vovakirdan/lanerun/internal/core"
	"github.com/vovakirdan/lanerun/internal/engine"
	"github.com/vovakirdan/lanerun/internal/world"
)

// Init resets s to the start of a fresh run. It is the only reset path:
// restarting after game over rebuilds everything except the RNG stream.
func Init(s *State) {
	if s.timers != nil {
		s.timers.CancelAll()
	}

	cfg := s.cfg
	start := s.lanes.Clamp(cfg.Player.StartLane)

	s.Player = Player{
		Body: engine.Body{
			X: s.lanes.X(start),
			Y: cfg.Player.Y,
			W: cfg.Player.Width,
			H: cfg.Player.Height,
		},
		Lane:   start,
		Alive:  true,
		target: start,
	}
	s.Obstacles = s.Obstacles[:0]
	s.Score = 0
	s.Speed = cfg.Progression.InitialSpeed
	s.Over = false
	s.Paused = false
	s.GameOverVisible = false
	s.Frames = 0
	s.Spawned = 0
	s.RunID = uuid.NewString()
	s.laneTween = nil

	s.tiles = world.NewTileGrid(s.lanes, s.persp)
	s.timers = engine.NewScheduler[*State]()
	s.spawner = s.timers.Schedule(cfg.Obstacles.SpawnIntervalMS, true, spawnObstacle)
	s.runCycle = s.timers.Schedule(cfg.Animation.RunCycleMS, true, advanceRunCycle)
}

// Update advances s by one frame of dt milliseconds. It reports whether the
// frame restarted the run, which only a pointer press after game over does.
//
// Frame order: input, lane tween, floor scroll, timers, obstacle motion,
// collision, then score and speed.
func Update(s *State, dt float64, in core.InputFrame) bool {
	if s.Over {
		if in.Has(core.ActionPointer) {
			Init(s)
			return true
		}
		return false
	}

	if in.Has(core.ActionPause) {
		s.Paused = !s.Paused
	}
	if s.Paused {
		return false
	}
	s.Frames++

	if dir := in.Direction(); dir != 0 {
		RequestLaneChange(s, dir)
	}

	if s.laneTween != nil {
		x, done := s.laneTween.Step(dt)
		s.Player.X = x
		if done {
			s.Player.Lane = s.Player.target
			s.Player.ChangingLanes = false
			s.laneTween = nil
		}
	}

	s.tiles.Scroll(s.Speed)
	s.timers.Advance(dt, s)
	moveObstacles(s, dt)

	if engine.FirstOverlap(s.Player.Bounds(), s.Obstacles) >= 0 {
		OnCollision(s)
		return false
	}

	s.Score += s.Speed / s.cfg.Progression.ScoreDivisor
	s.Speed += s.cfg.Progression.SpeedIncrement
	return false
}

// RequestLaneChange starts a move of one lane in dir (-1 left, +1 right).
// It reports whether a transition started; requests at the edge lanes,
// during another transition or after game over are ignored.
func RequestLaneChange(s *State, dir int) bool {
	if s.Over || s.Player.ChangingLanes {
		return false
	}
	target := s.lanes.Clamp(s.Player.Lane + dir)
	if target == s.Player.Lane {
		return false
	}

	s.Player.ChangingLanes = true
	s.Player.target = target
	s.laneTween = engine.NewTween(s.Player.X, s.lanes.X(target), s.cfg.Player.LaneChangeMS, engine.QuadInOut)
	return true
}

// OnCollision ends the run. Calling it again is a no-op.
func OnCollision(s *State) {
	if s.Over {
		return
	}

	s.Speed = 0
	s.Over = true

	s.spawner.Cancel()
	s.runCycle.Cancel()

	for i := range s.Obstacles {
		s.Obstacles[i].Stop()
	}

	s.GameOverVisible = true

	s.Player.Hit = true
	s.Player.Alive = false
	s.Player.ChangingLanes = false
	s.laneTween = nil
}

// DisplayScore is the score shown to the player.
func (s *State) DisplayScore() int {
	return int(math.Floor(s.Score))
}

func spawnObstacle(s *State) {
	if s.Over {
		return
	}
	addObstacle(s, s.rng.Intn(world.LaneCount))
}

func addObstacle(s *State, lane int) {
	o := s.cfg.Obstacles
	s.Obstacles = append(s.Obstacles, Obstacle{
		Body: engine.Body{
			X:  s.lanes.X(lane),
			Y:  0,
			VY: o.BaseVelocity + s.Speed*o.SpeedGain,
			W:  o.Width,
			H:  o.Height,
		},
		Lane: lane,
	})
	s.Spawned++
}

// moveObstacles integrates every obstacle and drops the ones that have left
// the bottom of the canvas, reusing the slice.
func moveObstacles(s *State, dt float64) {
	bottom := s.cfg.Canvas.Height
	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		o.Integrate(dt)
		if o.Bounds().Y >= bottom {
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(s.Obstacles); i++ {
		s.Obstacles[i] = Obstacle{}
	}
	s.Obstacles = kept
}

func advanceRunCycle(s *State) {
	if s.Over {
		return
	}
	s.Player.RunFrame ^= 1
}
