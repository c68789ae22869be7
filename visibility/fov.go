package visibility

import (
	"cmp"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/delve/tilegrid"
)

// octants maps a scan-local (col, row) into grid space for each of the eight
// octants: gx = ox + col·xx + row·xy, gy = oy + col·yx + row·yy, with
// 0 <= col <= row. Octant k+4 is octant k rotated by 180°.
var octants = [8]struct{ xx, xy, yx, yy int }{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// slope is the exact fraction n/d (d > 0) of col over row.
type slope struct{ n, d int }

// edge is the slope of the left edge of cell col in row: (2col-1)/(2row).
func edge(col, row int) slope { return slope{2*col - 1, 2 * row} }

// caster holds the state shared by the recursive scans of one ComputeFOV.
type caster struct {
	v       *Visibility
	ox, oy  int
	r2      int
	limit   int
	visible mapset.Set[tilegrid.Point]
}

// ComputeFOV returns every in-bounds cell visible from (ox,oy) within
// radius, origin included, using symmetric shadowcasting: an open cell is
// lit when its center lies inside the unobstructed slope interval, a
// blocking cell when any part of it does, and either only when
// dx²+dy² <= radius². For open cells A and B, B is in the view from A
// exactly when A is in the view from B.
// An out-of-bounds origin yields an empty set.
//
// Complexity: O(radius²) time, recursion depth at most radius.
func (v *Visibility) ComputeFOV(ox, oy, radius int) mapset.Set[tilegrid.Point] {
	c := &caster{
		v:       v,
		ox:      ox,
		oy:      oy,
		r2:      radius * radius,
		limit:   min(radius, max(v.width, v.height)),
		visible: mapset.New[tilegrid.Point](),
	}
	if !v.inBounds(ox, oy) {
		return c.visible
	}
	c.visible.Put(tilegrid.Pt(ox, oy))
	for oct := range octants {
		c.cast(oct, 1, slope{0, 1}, slope{1, 1})
	}
	return c.visible
}

// cast scans one row of an octant between slopes start and end, then the
// rows behind it. Each open run continues into the next row; an open cell
// followed by a blocking one spawns a scan narrowed to end at that cell.
func (c *caster) cast(oct, row int, start, end slope) {
	if row > c.limit {
		return
	}
	t := octants[oct]
	lo, hi := columns(row, start, end)
	prevWall := false
	for col := lo; col <= hi; col++ {
		gx := c.ox + col*t.xx + row*t.xy
		gy := c.oy + col*t.yx + row*t.yy
		wall := c.v.IsBlocking(gx, gy)
		centered := col*start.d >= row*start.n && col*end.d <= row*end.n
		if (wall || centered) && col*col+row*row <= c.r2 && c.v.inBounds(gx, gy) {
			c.visible.Put(tilegrid.Pt(gx, gy))
		}
		if col > lo {
			switch {
			case prevWall && !wall:
				start = edge(col, row)
			case !prevWall && wall:
				c.cast(oct, row+1, start, edge(col, row))
			}
		}
		prevWall = wall
	}
	if lo <= hi && !prevWall {
		c.cast(oct, row+1, start, end)
	}
}

// columns returns the first and last column of row whose center lies within
// half a cell of [start, end], ties rounded inward.
func columns(row int, start, end slope) (lo, hi int) {
	lo = floorDiv(2*row*start.n+start.d, 2*start.d)
	hi = -floorDiv(end.d-2*row*end.n, 2*end.d)
	return lo, hi
}

// floorDiv is a/b rounded toward negative infinity, for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// VisibleMask returns ComputeFOV as a [y][x] boolean mask of the grid.
func (v *Visibility) VisibleMask(ox, oy, radius int) [][]bool {
	mask := make([][]bool, v.height)
	for y := range mask {
		mask[y] = make([]bool, v.width)
	}
	v.ComputeFOV(ox, oy, radius).Each(func(p tilegrid.Point) {
		mask[p.Y][p.X] = true
	})
	return mask
}

// VisibleInRadius runs ComputeFOV and reports the visible set, its size and
// the visible cells that block sight, which outline what the viewer sees.
func (v *Visibility) VisibleInRadius(ox, oy, radius int) Report {
	vis := v.ComputeFOV(ox, oy, radius)
	var edge []tilegrid.Point
	vis.Each(func(p tilegrid.Point) {
		if v.IsBlocking(p.X, p.Y) {
			edge = append(edge, p)
		}
	})
	slices.SortFunc(edge, func(a, b tilegrid.Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return Report{
		Visible:   vis,
		Count:     vis.Size(),
		BlockedBy: edge,
		Origin:    tilegrid.Pt(ox, oy),
		Radius:    radius,
	}
}

// RenderFOV draws the window of radius around (ox,oy), clipped to the grid:
// '@' origin, '.' visible open cell, '#' visible blocking cell, ' ' unseen.
func (v *Visibility) RenderFOV(ox, oy, radius int) string {
	vis := v.ComputeFOV(ox, oy, radius)
	minX, maxX := max(0, ox-radius), min(v.width, ox+radius+1)
	minY, maxY := max(0, oy-radius), min(v.height, oy+radius+1)

	var sb strings.Builder
	for y := minY; y < maxY; y++ {
		if y > minY {
			sb.WriteByte('\n')
		}
		for x := minX; x < maxX; x++ {
			switch p := tilegrid.Pt(x, y); {
			case x == ox && y == oy:
				sb.WriteByte('@')
			case !vis.Has(p):
				sb.WriteByte(' ')
			case v.IsBlocking(x, y):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
