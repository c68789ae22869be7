package tilegrid

// New allocates a width×height grid filled with Options.Fill (Blocked by
// default) and seeds its RNG from seed. Identical seeds reproduce identical
// random streams and therefore identical generation.
// Returns ErrInvalidSize if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int, seed int64, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &Grid{
		width:     width,
		height:    height,
		seed:      seed,
		cells:     make([]int, width*height),
		meta:      make(map[int]map[string]string),
		objects:   make(map[int][]Object),
		generator: o.Generator,
		rng:       NewRNG(seed),
	}
	g.Fill(o.Fill)

	return g, nil
}

// FromRows constructs a Grid from a non-empty, rectangular 2D slice indexed
// rows[y][x]. The input is deep-copied. The seed is 0.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h, 0)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		copy(g.cells[y*w:(y+1)*w], rows[y])
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Seed returns the seed the grid was created with.
func (g *Grid) Seed() int64 { return g.seed }

// Rand returns the grid's own random stream.
func (g *Grid) Rand() *RNG { return g.rng }

// Generator returns the tag of the generator that produced the layout.
func (g *Grid) Generator() string { return g.generator }

// SetGenerator records which generator produced the layout.
func (g *Grid) SetGenerator(tag string) { g.generator = tag }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index converts (x,y) to its row-major index. Caller guarantees bounds.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Tile returns the code at (x,y), or OutOfBounds outside the grid.
func (g *Grid) Tile(x, y int) int {
	if !g.InBounds(x, y) {
		return OutOfBounds
	}
	return g.cells[g.index(x, y)]
}

// At is Tile for a Point.
func (g *Grid) At(p Point) int { return g.Tile(p.X, p.Y) }

// SetTile stores v at (x,y). Writes outside the grid are dropped.
func (g *Grid) SetTile(x, y, v int) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = v
}

// Fill sets every cell to v.
func (g *Grid) Fill(v int) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Reset sets every cell to v and drops all metadata and objects. The seed,
// generator tag and RNG position are kept.
func (g *Grid) Reset(v int) {
	g.Fill(v)
	clear(g.meta)
	clear(g.objects)
}

// FillRect sets every in-bounds cell of the rectangle [x, x+w) × [y, y+h) to v.
func (g *Grid) FillRect(x, y, w, h, v int) {
	for ry := y; ry < y+h; ry++ {
		for rx := x; rx < x+w; rx++ {
			g.SetTile(rx, ry, v)
		}
	}
}

// Rows returns a deep copy of the cells as rows[y][x].
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := 0; y < g.height; y++ {
		rows[y] = make([]int, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Neighbors returns the in-bounds cells adjacent to (x,y) under conn:
// N, E, S, W, then (Conn8 only) NW, NE, SE, SW.
// Complexity: O(1).
func (g *Grid) Neighbors(x, y int, conn Connectivity) []Point {
	out := make([]Point, 0, 8)
	for _, d := range cardinalOffsets {
		if g.InBounds(x+d[0], y+d[1]) {
			out = append(out, Point{x + d[0], y + d[1]})
		}
	}
	if conn == Conn8 {
		for _, d := range diagonalOffsets {
			if g.InBounds(x+d[0], y+d[1]) {
				out = append(out, Point{x + d[0], y + d[1]})
			}
		}
	}
	return out
}

// CountNeighbors counts in-bounds neighbors of (x,y) whose code equals value.
// Out-of-bounds neighbors are never counted.
func (g *Grid) CountNeighbors(x, y, value int, conn Connectivity) int {
	n := 0
	for _, d := range cardinalOffsets {
		if g.Tile(x+d[0], y+d[1]) == value {
			n++
		}
	}
	if conn == Conn8 {
		for _, d := range diagonalOffsets {
			if g.Tile(x+d[0], y+d[1]) == value {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid, including metadata, objects and
// the RNG position.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:     g.width,
		height:    g.height,
		seed:      g.seed,
		cells:     append([]int(nil), g.cells...),
		meta:      make(map[int]map[string]string, len(g.meta)),
		objects:   make(map[int][]Object, len(g.objects)),
		generator: g.generator,
		rng:       RestoreRNG(g.seed, g.rng.Position()),
	}
	for i, m := range g.meta {
		cm := make(map[string]string, len(m))
		for k, v := range m {
			cm[k] = v
		}
		c.meta[i] = cm
	}
	for i, objs := range g.objects {
		c.objects[i] = append([]Object(nil), objs...)
	}
	return c
}
