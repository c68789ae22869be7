package dungeon

// roomsAndCorridors places up to NumRooms non-overlapping rooms (kept one
// tile apart) within MaxAttempts tries, then chains consecutive rooms with
// L-shaped corridors. Running out of attempts just yields fewer rooms.
func (c *carver) roomsAndCorridors() error {
	p := c.opts.Rooms
	w, h := c.g.Width(), c.g.Height()

	for attempt := 0; attempt < p.MaxAttempts && len(c.lvl.Rooms) < p.NumRooms; attempt++ {
		if err := c.cancelled(); err != nil {
			return err
		}
		rw := c.rng.IntRange(p.MinRoomSize, p.MaxRoomSize)
		rh := c.rng.IntRange(p.MinRoomSize, p.MaxRoomSize)
		if w-rw-1 < 1 || h-rh-1 < 1 {
			continue // too big for this grid
		}
		r := Room{
			X: c.rng.IntRange(1, w-rw-1),
			Y: c.rng.IntRange(1, h-rh-1),
			W: rw,
			H: rh,
		}
		if c.collides(r) {
			continue
		}
		c.carveRoom(r)
	}

	for i := 1; i < len(c.lvl.Rooms); i++ {
		c.corridor(c.lvl.Rooms[i-1].Center(), c.lvl.Rooms[i].Center())
	}
	return nil
}

// collides reports whether r comes within one tile of a placed room.
func (c *carver) collides(r Room) bool {
	for _, o := range c.lvl.Rooms {
		if r.overlaps(o, 1) {
			return true
		}
	}
	return false
}
