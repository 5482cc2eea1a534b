package runner

// ObstacleSnapshot is the observable state of one obstacle.
type ObstacleSnapshot struct {
	Lane int
	Y    float64
	VY   float64
}

// Snapshot is a copy of the observable state of a run. It leaves out the run
// id, so two runs fed the same seed and input compare equal.
type Snapshot struct {
	Frames        uint64
	Score         float64
	DisplayScore  int
	Speed         float64
	Over          bool
	Paused        bool
	PlayerLane    int
	PlayerX       float64
	ChangingLanes bool
	Obstacles     []ObstacleSnapshot
	Spawned       int
	TilesRecycled uint64
}

// Snapshot copies the observable state of s.
func (s *State) Snapshot() Snapshot {
	obs := make([]ObstacleSnapshot, len(s.Obstacles))
	for i, o := range s.Obstacles {
		obs[i] = ObstacleSnapshot{Lane: o.Lane, Y: o.Y, VY: o.VY}
	}
	return Snapshot{
		Frames:        s.Frames,
		Score:         s.Score,
		DisplayScore:  s.DisplayScore(),
		Speed:         s.Speed,
		Over:          s.Over,
		Paused:        s.Paused,
		PlayerLane:    s.Player.Lane,
		PlayerX:       s.Player.X,
		ChangingLanes: s.Player.ChangingLanes,
		Obstacles:     obs,
		Spawned:       s.Spawned,
		TilesRecycled: s.tiles.Recycled(),
	}
}

// Snapshot returns the observable state of the current run.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}
