package runner

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/core"
	"github.com/vovakirdan/lanerun/internal/registry"
)

func newTestGame(seed int64) *Game {
	SetConfig(config.DefaultRunnerConfig())
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	in := core.NewInputFrame()
	for i := 0; i < 3000; i++ {
		in.Clear()
		switch {
		case i%400 == 100:
			in.Set(core.ActionLeft)
		case i%400 == 300:
			in.Set(core.ActionRight)
		case i%600 == 599:
			in.Set(core.ActionPointer)
		}

		r1 := g1.Step(in)
		r2 := g2.Step(in)
		if r1 != r2 {
			t.Fatalf("tick %d: step results differ: %+v vs %+v", i, r1, r2)
		}
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	lanes := func(seed int64) []int {
		g := newTestGame(seed)
		var out []int
		for i := 0; i < 20; i++ {
			spawnObstacle(g.Run())
		}
		for _, o := range g.Run().Obstacles {
			out = append(out, o.Lane)
		}
		return out
	}

	if reflect.DeepEqual(lanes(1), lanes(2)) {
		t.Error("different seeds produced the same 20 spawn lanes")
	}
}

func TestStepReportsState(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(core.NewInputFrame())
	if res.State.GameOver || res.State.Paused || res.Restarted {
		t.Errorf("unexpected first step result %+v", res)
	}

	OnCollision(g.Run())
	if !g.State().GameOver {
		t.Error("State().GameOver should follow the run")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionPointer)
	res = g.Step(in)
	if !res.Restarted || res.State.GameOver {
		t.Errorf("pointer after game over: %+v, expected a restart", res)
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create(%q) error: %v", ID, err)
	}
	if g.Title() != "Temple Vibe" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Temple Vibe")
	}
}

func findCell(dst *core.Screen, match func(core.Cell) bool) (core.Cell, bool) {
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if c := dst.GetCell(x, y); match(c) {
				return c, true
			}
		}
	}
	return core.Cell{}, false
}

func findRune(dst *core.Screen, r rune) (core.Cell, bool) {
	return findCell(dst, func(c core.Cell) bool { return c.Rune == r })
}

func TestRender(t *testing.T) {
	g := newTestGame(1)
	dst := core.NewScreen(80, 24)

	g.Render(dst)
	out := dst.String()
	for _, want := range []string{"Score: 0", "TEMPLE VIBE", "Spd: 5.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("GAME OVER shown during a run")
	}

	head, ok := findRune(dst, PlayerHead)
	if !ok {
		t.Fatal("player not drawn")
	}
	if head.Color != core.ColorCyan {
		t.Errorf("player colour = %v, expected cyan", head.Color)
	}
	floor := func(c core.Cell) bool { return c.Rune == FloorNear && c.Color == core.ColorStone }
	if _, ok := findCell(dst, floor); !ok {
		t.Error("floor not drawn")
	}

	addObstacle(g.Run(), 0)
	g.Run().Obstacles[0].Y = 450
	OnCollision(g.Run())
	g.Render(dst)
	out = dst.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Errorf("render missing GAME OVER:\n%s", out)
	}
	if !strings.Contains(out, "Click or press R to restart") {
		t.Errorf("render missing restart hint:\n%s", out)
	}
	if head, _ := findRune(dst, PlayerHead); head.Color != core.ColorRed {
		t.Errorf("hit player colour = %v, expected red", head.Color)
	}
	if _, ok := findRune(dst, ObstacleChar); !ok {
		t.Error("frozen obstacle not drawn")
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(1)
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("render missing PAUSED")
	}
}
