package world

// TileKind distinguishes walkable floor from the temple walls on either side.
type TileKind int

const (
	TileFloor TileKind = iota
	TileWall
)

// Tile is one floor or wall segment of the scrolling grid.
type Tile struct {
	Kind    TileKind
	Column  int     // 0 is the left wall, 1..LaneCount the lanes, LaneCount+1 the right wall
	X       float64 // flat canvas x of the column centre
	Y       float64 // canvas y of the tile centre
	Z       int     // current depth slot
	Scale   float64
	Opacity float64
}

// TileGrid is a fixed arena of tiles, one row per depth slot and one column
// per lane plus a wall on each side. Tiles are moved and recycled in place;
// the backing slice is allocated once.
type TileGrid struct {
	tiles    []Tile
	persp    Perspective
	rows     int
	cols     int
	recycled uint64
}

// GridColumns is the number of tile columns: the lanes plus two walls.
const GridColumns = LaneCount + 2

// NewTileGrid lays out WorldDepth rows of tiles evenly between the horizon
// and the near edge.
func NewTileGrid(lanes Lanes, p Perspective) *TileGrid {
	g := &TileGrid{
		persp: p,
		rows:  p.WorldDepth,
		cols:  GridColumns,
	}
	g.tiles = make([]Tile, 0, g.rows*g.cols)

	spacing := lanes.Spacing()
	slot := p.SlotHeight()
	for z := 0; z < g.rows; z++ {
		y := p.BottomY - (float64(z)+0.5)*slot
		for c := 0; c < g.cols; c++ {
			kind := TileFloor
			var x float64
			switch c {
			case 0:
				kind = TileWall
				x = lanes.X(0) - spacing
			case g.cols - 1:
				kind = TileWall
				x = lanes.X(LaneCount-1) + spacing
			default:
				x = lanes.X(c - 1)
			}
			g.tiles = append(g.tiles, Tile{
				Kind:   kind,
				Column: c,
				X:      x,
				Y:      y,
			})
			g.place(&g.tiles[len(g.tiles)-1], z)
		}
	}
	return g
}

// Scroll advances every tile toward the camera by speed scaled by its depth,
// so near tiles move faster than far ones. Tiles that pass the near edge
// wrap to the horizon at the farthest slot.
func (g *TileGrid) Scroll(speed float64) {
	p := g.persp
	for i := range g.tiles {
		t := &g.tiles[i]
		t.Y += speed * p.Scale(t.Z)
		if t.Y > p.BottomY {
			t.Y = p.HorizonY + (t.Y - p.BottomY)
			g.place(t, p.WorldDepth-1)
			g.recycled++
			continue
		}
		g.place(t, p.DepthAt(t.Y))
	}
}

func (g *TileGrid) place(t *Tile, z int) {
	t.Z = z
	t.Scale = g.persp.Scale(z)
	t.Opacity = g.persp.Opacity(z)
}

// Tiles returns the grid's tiles. Callers must not retain or modify the slice.
func (g *TileGrid) Tiles() []Tile {
	return g.tiles
}

// Len returns the number of tiles in the grid. It never changes.
func (g *TileGrid) Len() int {
	return len(g.tiles)
}

// Recycled returns how many times a tile has wrapped to the horizon.
func (g *TileGrid) Recycled() uint64 {
	return g.recycled
}

// Perspective returns the perspective the grid was built with.
func (g *TileGrid) Perspective() Perspective {
	return g.persp
}
