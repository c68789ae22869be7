package dungeon

import "github.com/katalvlaran/delve/tilegrid"

// placeDoors turns corridor cells where a corridor pierces a room's
// surrounding ring into Door. A ring cell qualifies when it is not a corner
// and both of its neighbors along the ring are Wall, so corridors that merely
// run alongside a room stay corridors.
func (c *carver) placeDoors() {
	for _, r := range c.lvl.Rooms {
		for x := r.X; x < r.X+r.W; x++ {
			c.tryDoor(x, r.Y-1, tilegrid.Pt(1, 0))
			c.tryDoor(x, r.Y+r.H, tilegrid.Pt(1, 0))
		}
		for y := r.Y; y < r.Y+r.H; y++ {
			c.tryDoor(r.X-1, y, tilegrid.Pt(0, 1))
			c.tryDoor(r.X+r.W, y, tilegrid.Pt(0, 1))
		}
	}
}

// tryDoor converts (x,y) when it is a corridor flanked by walls along along.
func (c *carver) tryDoor(x, y int, along tilegrid.Point) {
	if c.g.Tile(x, y) != Corridor {
		return
	}
	if c.g.Tile(x-along.X, y-along.Y) != Wall || c.g.Tile(x+along.X, y+along.Y) != Wall {
		return
	}
	c.g.SetTile(x, y, Door)
	c.lvl.Doors++
}
