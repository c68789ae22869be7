package dungeon

// bspNode is one region of the partition tree. Children always sit at
// larger arena indices than their parent.
type bspNode struct {
	rect        Room
	depth       int
	left, right int // arena indices, -1 for leaves
	room        int // index into Level.Rooms, -1 if none
}

// bsp partitions the interior (1,1,W-2,H-2), puts one room in each leaf
// large enough for it and joins sibling subtrees with corridors.
//
// Splitting uses an explicit stack, so tree depth is bounded only by
// MaxDepth and the region sizes.
func (c *carver) bsp() error {
	p := c.opts.BSP
	w, h := c.g.Width()-2, c.g.Height()-2
	if w < 1 || h < 1 {
		return nil
	}
	arena := []bspNode{{rect: Room{X: 1, Y: 1, W: w, H: h}, left: -1, right: -1, room: -1}}

	stack := []int{0}
	for len(stack) > 0 {
		if err := c.cancelled(); err != nil {
			return err
		}
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		a, b, ok := c.split(arena[i].rect, arena[i].depth, p)
		if !ok {
			continue
		}
		d := arena[i].depth + 1
		arena[i].left = len(arena)
		arena[i].right = len(arena) + 1
		arena = append(arena,
			bspNode{rect: a, depth: d, left: -1, right: -1, room: -1},
			bspNode{rect: b, depth: d, left: -1, right: -1, room: -1},
		)
		// right first so the left subtree is split first
		stack = append(stack, arena[i].right, arena[i].left)
	}

	for i := range arena {
		if arena[i].left < 0 {
			arena[i].room = c.leafRoom(arena[i].rect, p)
		}
	}

	// Children before parents: first[i] is the first room found in i's subtree.
	first := make([]int, len(arena))
	for i := len(arena) - 1; i >= 0; i-- {
		n := arena[i]
		if n.left < 0 {
			first[i] = n.room
			continue
		}
		ra, rb := first[n.left], first[n.right]
		if ra >= 0 && rb >= 0 {
			c.corridor(c.lvl.Rooms[ra].Center(), c.lvl.Rooms[rb].Center())
		}
		if ra >= 0 {
			first[i] = ra
		} else {
			first[i] = rb
		}
	}
	return nil
}

// split divides r into two children along a random axis that has room for
// two MinSplitSize halves. ok is false when r is a leaf.
func (c *carver) split(r Room, depth int, p BSPParams) (a, b Room, ok bool) {
	if p.MaxDepth > 0 && depth >= p.MaxDepth {
		return Room{}, Room{}, false
	}
	canH := r.W >= 2*p.MinSplitSize
	canV := r.H >= 2*p.MinSplitSize
	if !canH && !canV {
		return Room{}, Room{}, false
	}
	vertical := canH // cut across x, giving left/right halves
	if canH && canV {
		vertical = c.rng.Bool()
	}
	if vertical {
		at := c.rng.IntRange(p.MinSplitSize, r.W-p.MinSplitSize)
		return Room{r.X, r.Y, at, r.H}, Room{r.X + at, r.Y, r.W - at, r.H}, true
	}
	at := c.rng.IntRange(p.MinSplitSize, r.H-p.MinSplitSize)
	return Room{r.X, r.Y, r.W, at}, Room{r.X, r.Y + at, r.W, r.H - at}, true
}

// leafRoom carves a randomly sized room strictly inside leaf, leaving at
// least one wall tile on every side. Returns the room index, or -1 when the
// leaf cannot hold a MinRoomSize room.
func (c *carver) leafRoom(leaf Room, p BSPParams) int {
	maxW := min(p.MaxRoomSize, leaf.W-2)
	maxH := min(p.MaxRoomSize, leaf.H-2)
	if maxW < p.MinRoomSize || maxH < p.MinRoomSize {
		return -1
	}
	rw := c.rng.IntRange(p.MinRoomSize, maxW)
	rh := c.rng.IntRange(p.MinRoomSize, maxH)
	r := Room{
		X: leaf.X + c.rng.IntRange(1, leaf.W-rw-1),
		Y: leaf.Y + c.rng.IntRange(1, leaf.H-rh-1),
		W: rw,
		H: rh,
	}
	c.carveRoom(r)
	return len(c.lvl.Rooms) - 1
}
