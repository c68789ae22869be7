package tilegrid

// FloodFill replaces the contiguous region of cells equal to target that
// contains (x,y) with replace, spreading under conn. It uses an explicit
// stack, so region size is bounded only by memory.
// Returns the number of cells changed; 0 if (x,y) is out of bounds, does not
// hold target, or target == replace.
//
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H) worst case for the stack.
func (g *Grid) FloodFill(x, y, target, replace int, conn Connectivity) int {
	if !g.InBounds(x, y) || target == replace || g.cells[g.index(x, y)] != target {
		return 0
	}
	offsets := conn.Offsets()
	stack := []int{g.index(x, y)}
	g.cells[stack[0]] = replace
	filled := 1

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ux, uy := g.Coordinate(u)
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.index(vx, vy)
			if g.cells[v] != target {
				continue
			}
			// Replace on push so each cell enters the stack once.
			g.cells[v] = replace
			filled++
			stack = append(stack, v)
		}
	}
	return filled
}

// Positions returns every cell whose code equals value, in row-major order.
// Complexity: O(W·H).
func (g *Grid) Positions(value int) []Point {
	var out []Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] == value {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// PositionsFunc returns every cell whose code satisfies match, in row-major order.
func (g *Grid) PositionsFunc(match func(code int) bool) []Point {
	var out []Point
	for i, c := range g.cells {
		if match(c) {
			x, y := g.Coordinate(i)
			out = append(out, Point{x, y})
		}
	}
	return out
}

// RandomPosition picks a uniformly random cell holding value using the
// grid's RNG. Returns ErrNoPositions if there is none.
func (g *Grid) RandomPosition(value int) (Point, error) {
	ps := g.Positions(value)
	if len(ps) == 0 {
		return Point{}, ErrNoPositions
	}
	return ps[g.rng.Intn(len(ps))], nil
}

// Components finds all contiguous regions of cells whose code satisfies
// match, under conn. Components are reported in row-major order of their
// first cell; each component lists its cells in BFS order from that cell.
//
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(match func(code int) bool, conn Connectivity) [][]Point {
	seen := make([]bool, len(g.cells))
	offsets := conn.Offsets()
	var comps [][]Point

	for i0, c := range g.cells {
		if seen[i0] || !match(c) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []Point

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := g.Coordinate(u)
			comp = append(comp, Point{ux, uy})
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if !seen[vi] && match(g.cells[vi]) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// OneOf returns a predicate matching any of codes.
func OneOf(codes ...int) func(int) bool {
	set := make(map[int]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return func(code int) bool {
		_, ok := set[code]
		return ok
	}
}
