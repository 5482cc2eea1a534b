// Package window runs the lane runner in a desktop window with Ebitengine,
// drawing the logical canvas 1:1.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/lanerun/internal/core"
	"github.com/vovakirdan/lanerun/internal/engine"
	"github.com/vovakirdan/lanerun/internal/games/runner"
	"github.com/vovakirdan/lanerun/internal/world"
)

var (
	colorStone  = color.NRGBA{R: 0x8a, G: 0x7f, B: 0x9e, A: 0xff}
	colorMoss   = color.NRGBA{R: 0x5f, G: 0x7a, B: 0x4a, A: 0xff}
	colorRock   = color.NRGBA{R: 0xe0, G: 0x7a, B: 0x2f, A: 0xff}
	colorRunner = color.NRGBA{R: 0x4f, G: 0xd6, B: 0xe0, A: 0xff}
	colorHit    = color.NRGBA{R: 0xe0, G: 0x3a, B: 0x3a, A: 0xff}
	colorShade  = color.NRGBA{A: 0xa0}

	defaultBackground = color.NRGBA{R: 0x35, G: 0x2e, B: 0x4a, A: 0xff}
)

// Game adapts a runner State to ebiten.Game.
type Game struct {
	state      *runner.State
	dt         float64
	background color.Color
	logger     *log.Logger
	wasOver    bool
}

// New creates a window game advancing state by one frame per tick at tps.
func New(state *runner.State, tps int, logger *log.Logger) *Game {
	return &Game{
		state:      state,
		dt:         core.RuntimeConfig{TickRate: tps}.FrameMillis(),
		background: parseBackground(state.Config().Canvas.Background),
		logger:     logger,
	}
}

// parseBackground reads a "#rrggbb" colour, falling back to the temple purple.
func parseBackground(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return defaultBackground
	}
	return c
}

// Update polls edge-triggered input and advances one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	restarted := runner.Update(g.state, g.dt, pollInput())

	switch {
	case restarted:
		g.logger.Info("restart", "run", g.state.RunID)
	case g.state.Over && !g.wasOver:
		g.logger.Info("game over",
			"score", g.state.DisplayScore(),
			"frames", g.state.Frames,
			"run", g.state.RunID,
		)
	}
	g.wasOver = g.state.Over
	return nil
}

// pollInput builds this tick's input from keys pressed since the last tick.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionPointer)
	}
	return in
}

// Draw renders the floor, obstacles, player and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.state
	p := s.Perspective()
	spacing := s.Lanes().Spacing()
	slot := p.SlotHeight()

	screen.Fill(g.background)

	for _, t := range s.Tiles().Tiles() {
		w := spacing * t.Scale
		if t.Kind == world.TileFloor {
			w -= 6 * t.Scale
		}
		x := p.Project(t.X, t.Y) - w/2
		clr := colorStone
		if t.Kind == world.TileWall {
			clr = colorMoss
		}
		clr.A = uint8(255 * t.Opacity)
		fillRect(screen, x, t.Y-slot/2+1, w, slot-2, clr)
	}

	for _, o := range s.Obstacles {
		drawBox(screen, p, o.Body, colorRock)
	}

	body := colorRunner
	if s.Player.Hit {
		body = colorHit
	}
	drawPlayer(screen, p, s.Player, body)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.DisplayScore()), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Speed: %.2f", s.Speed), 10, 26)
	ebitenutil.DebugPrintAt(screen, "Temple Vibe", int(p.CenterX)-33, 10)

	switch {
	case s.GameOverVisible:
		banner(screen, p, "GAME OVER", fmt.Sprintf("Score %d - click to restart", s.DisplayScore()))
	case s.Paused:
		banner(screen, p, "PAUSED", "press P to resume")
	}
}

// Layout fixes the logical canvas size; Ebitengine scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.state.Config()
	return int(cfg.Canvas.Width), int(cfg.Canvas.Height)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// drawBox draws a body projected to its depth, keeping its flat y.
func drawBox(dst *ebiten.Image, p world.Perspective, b engine.Bounded, clr color.Color) {
	r := b.Bounds()
	cx, cy := r.Center()
	scale := p.Scale(p.DepthAt(cy))
	w := r.W * scale
	fillRect(dst, p.Project(cx, cy)-w/2, r.Y, w, r.H, clr)
}

func drawPlayer(dst *ebiten.Image, p world.Perspective, pl runner.Player, clr color.Color) {
	r := pl.Bounds()
	cx, cy := r.Center()
	scale := p.Scale(p.DepthAt(cy))
	w := r.W * scale
	x := p.Project(cx, cy) - w/2

	// Torso over two legs; the legs swap on every run-cycle tick.
	fillRect(dst, x, r.Y, w, r.H*0.7, clr)
	leg := w / 3
	legY := r.Y + r.H*0.7
	legH := r.H * 0.3
	if pl.RunFrame == 0 {
		fillRect(dst, x, legY, leg, legH, clr)
		fillRect(dst, x+w-leg, legY, leg, legH*0.6, clr)
	} else {
		fillRect(dst, x, legY, leg, legH*0.6, clr)
		fillRect(dst, x+w-leg, legY, leg, legH, clr)
	}
}

func banner(dst *ebiten.Image, p world.Perspective, title, subtitle string) {
	const w, h = 260.0, 60.0
	x := p.CenterX - w/2
	y := (p.HorizonY+p.BottomY)/2 - h/2
	fillRect(dst, x, y, w, h, colorShade)
	// The debug font is 6 pixels per glyph.
	ebitenutil.DebugPrintAt(dst, title, int(p.CenterX)-len(title)*3, int(y)+12)
	ebitenutil.DebugPrintAt(dst, subtitle, int(p.CenterX)-len(subtitle)*3, int(y)+34)
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(state *runner.State, tps int, logger *log.Logger) error {
	cfg := state.Config()
	ebiten.SetWindowSize(int(cfg.Canvas.Width), int(cfg.Canvas.Height))
	ebiten.SetWindowTitle("Temple Vibe")
	ebiten.SetTPS(tps)

	logger.Info("run started", "run", state.RunID, "tps", tps, "driver", "window")
	err := ebiten.RunGame(New(state, tps, logger))
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	logger.Info("driver exit", "score", state.DisplayScore(), "run", state.RunID)
	return err
}
