package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lanerun/internal/core"
	"github.com/vovakirdan/lanerun/internal/world"
)

// Visual characters for rendering
const (
	FloorNear    = ':'
	FloorFar     = '.'
	WallNear     = '█'
	WallFar      = '▒'
	ObstacleChar = '▓'
	PlayerHead   = '●'
	PlayerBody   = '█'
	PlayerLegL   = '╱'
	PlayerLegR   = '╲'
)

// Render draws the current run into a terminal screen, scaling the logical
// canvas onto the screen grid.
func (g *Game) Render(dst *core.Screen) {
	RenderScreen(g.state, dst)
}

// RenderScreen draws s into dst. It only reads s.
func RenderScreen(s *State, dst *core.Screen) {
	dst.Clear()
	v := newViewport(s, dst)

	for _, t := range s.tiles.Tiles() {
		drawTile(dst, v, t)
	}
	for _, o := range s.Obstacles {
		drawObstacle(dst, v, o)
	}
	drawPlayer(dst, v, s.Player)

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", s.DisplayScore()), core.ColorWhite)
	spd := fmt.Sprintf(" Spd: %.2f ", s.Speed)
	dst.DrawTextColored(dst.Width()-len(spd)-2, 0, spd, core.ColorWhite)
	title := "TEMPLE VIBE"
	dst.DrawTextColored((dst.Width()-len(title))/2, 0, title, core.ColorYellow)

	if s.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if s.GameOverVisible {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Click or press R to restart", s.DisplayScore()))
	}
}

// viewport maps logical canvas units onto screen cells.
type viewport struct {
	persp   world.Perspective
	spacing float64 // lane spacing in canvas units
	sx, sy  float64
}

func newViewport(s *State, dst *core.Screen) viewport {
	return viewport{
		persp:   s.persp,
		spacing: s.lanes.Spacing(),
		sx:      float64(dst.Width()) / s.cfg.Canvas.Width,
		sy:      float64(dst.Height()) / s.cfg.Canvas.Height,
	}
}

// box returns the projected screen rect of a w×h box centred on (x, y).
// Every box is at least one cell.
func (v viewport) box(x, y, w, h float64) core.Rect {
	scale := v.persp.Scale(v.persp.DepthAt(y))
	cx := v.persp.Project(x, y) * v.sx
	cy := y * v.sy
	cw := math.Max(1, math.Round(w*scale*v.sx))
	ch := math.Max(1, math.Round(h*v.sy))
	return core.NewRect(
		int(math.Round(cx-cw/2)),
		int(math.Round(cy-ch/2)),
		int(cw),
		int(ch),
	)
}

func drawTile(dst *core.Screen, v viewport, t world.Tile) {
	near := t.Opacity >= 0.8
	y := int(math.Round(t.Y * v.sy))
	width := core.Max(1, int(math.Round(v.spacing*t.Scale*v.sx)))
	x := int(math.Round(v.persp.Project(t.X, t.Y)*v.sx - float64(width)/2))

	switch t.Kind {
	case world.TileWall:
		r, c := WallFar, core.ColorShadow
		if near {
			r, c = WallNear, core.ColorMoss
		}
		dst.DrawRectColored(core.NewRect(x, y, width, 1), r, c)
	default:
		r, c := FloorFar, core.ColorShadow
		if near {
			r, c = FloorNear, core.ColorStone
		}
		// Leave a gap between neighbouring floor tiles so the lanes read.
		dst.DrawRectColored(core.NewRect(x+1, y, core.Max(width-2, 1), 1), r, c)
	}
}

func drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	dst.DrawRectColored(v.box(o.X, o.Y, o.W, o.H), ObstacleChar, core.ColorOrange)
}

// drawPlayer draws a three-row sprite inside the player's box:
//
//	 ●
//	███
//	╱ ╲
func drawPlayer(dst *core.Screen, v viewport, p Player) {
	c := core.ColorCyan
	if p.Hit {
		c = core.ColorRed
	}

	r := v.box(p.X, p.Y, p.W, p.H)
	mid := r.X + r.W/2
	bottom := r.Bottom() - 1
	top := core.Min(r.Y, bottom-2)

	dst.SetColored(mid, top, PlayerHead, c)
	for x := mid - 1; x <= mid+1; x++ {
		dst.SetColored(x, top+1, PlayerBody, c)
	}

	legs := top + 2
	if p.RunFrame == 0 {
		dst.SetColored(mid-1, legs, PlayerLegL, c)
		dst.SetColored(mid+1, legs, PlayerLegR, c)
	} else {
		dst.SetColored(mid-1, legs, PlayerLegR, c)
		dst.SetColored(mid+1, legs, PlayerLegL, c)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorYellow)
	dst.DrawTextCentered(boxY+3, subtitle)
}
