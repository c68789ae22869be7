package dungeon

import "github.com/katalvlaran/delve/tilegrid"

// headings are the four walking directions N, E, S, W.
var headings = [4]tilegrid.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// drunkard walks from the grid center carving Floor until TargetFloorPct of
// the area is open or Lifetime*10 steps have been taken. The walker never
// leaves the interior [1,W-2]×[1,H-2]; it keeps its heading, re-rolling it
// with TurnProbability per step or when the border stops it.
func (c *carver) drunkard() error {
	p := c.opts.Drunkard
	w, h := c.g.Width(), c.g.Height()
	target := int(float64(w*h) * p.TargetFloorPct)
	budget := p.Lifetime * 10

	inside := func(x, y int) bool {
		return x >= 1 && x <= w-2 && y >= 1 && y <= h-2
	}

	pos := tilegrid.Pt(w/2, h/2)
	dir := headings[c.rng.Intn(len(headings))]
	carved := 0
	for step := 0; step < budget && carved < target; step++ {
		if step%1024 == 0 {
			if err := c.cancelled(); err != nil {
				return err
			}
		}
		if inside(pos.X, pos.Y) && c.g.At(pos) == Wall {
			c.g.SetTile(pos.X, pos.Y, Floor)
			carved++
		}
		if c.rng.Chance(p.TurnProbability) {
			dir = headings[c.rng.Intn(len(headings))]
		}
		next := pos.Add(dir.X, dir.Y)
		if inside(next.X, next.Y) {
			pos = next
		} else {
			dir = headings[c.rng.Intn(len(headings))]
		}
	}
	return nil
}
