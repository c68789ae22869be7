package visibility

import (
	"math"

	"github.com/katalvlaran/delve/tilegrid"
)

// Visibility answers sight queries over a read-only tile array.
// It keeps no per-query state.
type Visibility struct {
	tiles    tilegrid.Reader
	width    int
	height   int
	blocking func(code int) bool
}

// New builds a Visibility over tiles. Returns ErrNilTiles for a nil reader.
func New(tiles tilegrid.Reader, opts ...Option) (*Visibility, error) {
	if tiles == nil {
		return nil, ErrNilTiles
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Visibility{
		tiles:    tiles,
		width:    tiles.Width(),
		height:   tiles.Height(),
		blocking: o.Blocking,
	}, nil
}

func (v *Visibility) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.width && y < v.height
}

// IsBlocking reports whether (x,y) obstructs sight. Out of bounds blocks.
func (v *Visibility) IsBlocking(x, y int) bool {
	if !v.inBounds(x, y) {
		return true
	}
	return v.blocking(v.tiles.Tile(x, y))
}

// HasLineOfSight reports whether the Bresenham line between the two cells
// is clear. Only intermediate cells are tested: a blocking endpoint can
// still be seen, and a cell always sees itself.
func (v *Visibility) HasLineOfSight(x1, y1, x2, y2 int) bool {
	pts := tilegrid.Line(tilegrid.Pt(x1, y1), tilegrid.Pt(x2, y2))
	if len(pts) <= 2 {
		return true
	}
	for _, p := range pts[1 : len(pts)-1] {
		if v.IsBlocking(p.X, p.Y) {
			return false
		}
	}
	return true
}

// Line returns the Bresenham cells from (x1,y1) to (x2,y2), both included.
func (v *Visibility) Line(x1, y1, x2, y2 int) []tilegrid.Point {
	return tilegrid.Line(tilegrid.Pt(x1, y1), tilegrid.Pt(x2, y2))
}

// CanSeeEntity reports whether viewer sees target: the Euclidean distance
// must not exceed maxRange (maxRange <= 0 means unlimited), then the line of
// sight must be clear.
func (v *Visibility) CanSeeEntity(viewer, target tilegrid.Point, maxRange float64) bool {
	if maxRange > 0 {
		d := math.Hypot(float64(target.X-viewer.X), float64(target.Y-viewer.Y))
		if d > maxRange {
			return false
		}
	}
	return v.HasLineOfSight(viewer.X, viewer.Y, target.X, target.Y)
}
