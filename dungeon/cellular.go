package dungeon

import "github.com/katalvlaran/delve/tilegrid"

// cellular grows a cave: Bernoulli wall seeding, Iterations rounds of the
// Moore birth/death rule, a solid border, then every 4-connected floor region
// except the largest is walled in.
//
// Complexity: O(Iterations·W·H).
func (c *carver) cellular() error {
	p := c.opts.Cellular
	w, h := c.g.Width(), c.g.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.rng.Chance(p.WallProbability) {
				c.g.SetTile(x, y, Wall)
			} else {
				c.g.SetTile(x, y, Floor)
			}
		}
	}

	next := make([]int, w*h)
	for it := 0; it < p.Iterations; it++ {
		if err := c.cancelled(); err != nil {
			return err
		}
		c.automatonStep(next, p)
	}

	for x := 0; x < w; x++ {
		c.g.SetTile(x, 0, Wall)
		c.g.SetTile(x, h-1, Wall)
	}
	for y := 0; y < h; y++ {
		c.g.SetTile(0, y, Wall)
		c.g.SetTile(w-1, y, Wall)
	}

	c.keepLargestRegion()
	return nil
}

// automatonStep applies one synchronous round of the rule to interior cells.
// next is scratch space of W·H cells.
func (c *carver) automatonStep(next []int, p CellularParams) {
	w, h := c.g.Width(), c.g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cur := c.g.Tile(x, y)
			next[y*w+x] = cur
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				continue
			}
			walls := c.g.CountNeighbors(x, y, Wall, tilegrid.Conn8)
			switch {
			case cur == Wall && walls < p.DeathLimit:
				next[y*w+x] = Floor
			case cur != Wall && walls > p.BirthLimit:
				next[y*w+x] = Wall
			}
		}
	}
	for i, v := range next {
		x, y := c.g.Coordinate(i)
		c.g.SetTile(x, y, v)
	}
}

// keepLargestRegion walls in every floor component but the largest.
// On equal sizes the region discovered first in row-major order wins.
func (c *carver) keepLargestRegion() {
	regions := c.g.Components(tilegrid.OneOf(Floor), tilegrid.Conn4)
	if len(regions) < 2 {
		return
	}
	keep := 0
	for i, r := range regions {
		if len(r) > len(regions[keep]) {
			keep = i
		}
	}
	for i, r := range regions {
		if i == keep {
			continue
		}
		for _, p := range r {
			c.g.SetTile(p.X, p.Y, Wall)
		}
	}
}
