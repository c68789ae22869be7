package pathfind

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/delve/tilegrid"
)

// Pathfinder answers movement queries over a read-only tile array.
// It holds no per-search state, so one Pathfinder may serve concurrent
// queries as long as the underlying tiles are not mutated meanwhile.
type Pathfinder struct {
	tiles    tilegrid.Reader
	width    int
	height   int
	walkable func(code int) bool
	limit    int
	onExpand func(tilegrid.Point)
}

// New builds a Pathfinder over tiles.
// Returns ErrNilTiles for a nil reader and ErrOptionViolation for bad options.
func New(tiles tilegrid.Reader, opts ...Option) (*Pathfinder, error) {
	if tiles == nil {
		return nil, ErrNilTiles
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	pf := &Pathfinder{
		tiles:    tiles,
		width:    tiles.Width(),
		height:   tiles.Height(),
		walkable: o.Walkable,
		limit:    o.MaxExpansions,
		onExpand: o.OnExpand,
	}
	if pf.limit == 0 {
		pf.limit = pf.width * pf.height
	}
	return pf, nil
}

// Walkable reports whether p is inside the grid and its code is walkable.
func (pf *Pathfinder) Walkable(p tilegrid.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= pf.width || p.Y >= pf.height {
		return false
	}
	return pf.walkable(pf.tiles.Tile(p.X, p.Y))
}

func (pf *Pathfinder) index(p tilegrid.Point) int { return p.Y*pf.width + p.X }

func (pf *Pathfinder) point(i int) tilegrid.Point { return tilegrid.Pt(i%pf.width, i/pf.width) }

// neighbors appends the walkable neighbors of p to buf[:0], in offset order.
func (pf *Pathfinder) neighbors(p tilegrid.Point, offs [][2]int, buf []tilegrid.Point) []tilegrid.Point {
	buf = buf[:0]
	for _, d := range offs {
		q := p.Add(d[0], d[1])
		if pf.Walkable(q) {
			buf = append(buf, q)
		}
	}
	return buf
}

// endpoints validates a search: ok is false when either end is not
// walkable; trivial is the one-element path for start == goal.
func (pf *Pathfinder) endpoints(start, goal tilegrid.Point) (trivial Path, ok bool) {
	if !pf.Walkable(start) || !pf.Walkable(goal) {
		return nil, false
	}
	if start == goal {
		return Path{start}, true
	}
	return nil, true
}

// reconstruct walks parent links back from goal.
func (pf *Pathfinder) reconstruct(parent []int32, goal int) Path {
	var rev Path
	for i := goal; i >= 0; i = int(parent[i]) {
		rev = append(rev, pf.point(i))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

func (pf *Pathfinder) newParents() []int32 {
	parent := make([]int32, pf.width*pf.height)
	for i := range parent {
		parent[i] = -1
	}
	return parent
}

// BFS returns a path with the fewest steps from start to goal, or nil.
// Every step costs the same, diagonal or not.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (pf *Pathfinder) BFS(start, goal tilegrid.Point, conn tilegrid.Connectivity) Path {
	path, ok := pf.endpoints(start, goal)
	if !ok || path != nil {
		return path
	}
	offs := conn.Offsets()
	parent := pf.newParents()
	seen := make([]bool, len(parent))
	target := pf.index(goal)

	queue := []int{pf.index(start)}
	seen[queue[0]] = true
	var buf []tilegrid.Point
	for qi := 0; qi < len(queue); qi++ {
		if qi >= pf.limit {
			return nil
		}
		u := queue[qi]
		up := pf.point(u)
		pf.onExpand(up)
		buf = pf.neighbors(up, offs, buf)
		for _, q := range buf {
			v := pf.index(q)
			if seen[v] {
				continue
			}
			seen[v] = true
			parent[v] = int32(u)
			if v == target {
				return pf.reconstruct(parent, v)
			}
			queue = append(queue, v)
		}
	}
	return nil
}

// DFS returns some path from start to goal, or nil. The path is simple but
// usually far from shortest; it exists for completeness, not for movement.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (pf *Pathfinder) DFS(start, goal tilegrid.Point, conn tilegrid.Connectivity) Path {
	path, ok := pf.endpoints(start, goal)
	if !ok || path != nil {
		return path
	}
	offs := conn.Offsets()
	parent := pf.newParents()
	seen := make([]bool, len(parent))
	target := pf.index(goal)

	stack := []int{pf.index(start)}
	seen[stack[0]] = true
	expanded := 0
	var buf []tilegrid.Point
	for len(stack) > 0 {
		if expanded >= pf.limit {
			return nil
		}
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		expanded++
		up := pf.point(u)
		pf.onExpand(up)
		if u == target {
			return pf.reconstruct(parent, u)
		}
		buf = pf.neighbors(up, offs, buf)
		// reverse push so the first neighbor is explored first
		for i := len(buf) - 1; i >= 0; i-- {
			v := pf.index(buf[i])
			if seen[v] {
				continue
			}
			seen[v] = true
			parent[v] = int32(u)
			stack = append(stack, v)
		}
	}
	return nil
}

// FindNearest runs a BFS from start and stops at the first member of
// targets it reaches. ok is false when start is not walkable or no target
// is reachable. A start that is itself a target is its own nearest target.
func (pf *Pathfinder) FindNearest(start tilegrid.Point, targets []tilegrid.Point, conn tilegrid.Connectivity) (tilegrid.Point, Path, bool) {
	if !pf.Walkable(start) || len(targets) == 0 {
		return tilegrid.Point{}, nil, false
	}
	want := mapset.New[tilegrid.Point]()
	for _, t := range targets {
		want.Put(t)
	}
	if want.Has(start) {
		return start, Path{start}, true
	}

	offs := conn.Offsets()
	parent := pf.newParents()
	seen := make([]bool, len(parent))
	queue := []int{pf.index(start)}
	seen[queue[0]] = true
	var buf []tilegrid.Point
	for qi := 0; qi < len(queue) && qi < pf.limit; qi++ {
		u := queue[qi]
		up := pf.point(u)
		pf.onExpand(up)
		buf = pf.neighbors(up, offs, buf)
		for _, q := range buf {
			v := pf.index(q)
			if seen[v] {
				continue
			}
			seen[v] = true
			parent[v] = int32(u)
			if want.Has(q) {
				return q, pf.reconstruct(parent, v), true
			}
			queue = append(queue, v)
		}
	}
	return tilegrid.Point{}, nil, false
}

// FindAllReachable returns every walkable cell within maxDistance steps of
// start, start included. A negative maxDistance means no limit. The set is
// empty when start is not walkable.
func (pf *Pathfinder) FindAllReachable(start tilegrid.Point, maxDistance int, conn tilegrid.Connectivity) mapset.Set[tilegrid.Point] {
	out := mapset.New[tilegrid.Point]()
	if !pf.Walkable(start) {
		return out
	}
	offs := conn.Offsets()
	dist := make([]int, pf.width*pf.height)
	for i := range dist {
		dist[i] = -1
	}
	queue := []int{pf.index(start)}
	dist[queue[0]] = 0
	out.Put(start)
	var buf []tilegrid.Point
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if maxDistance >= 0 && dist[u] >= maxDistance {
			continue
		}
		buf = pf.neighbors(pf.point(u), offs, buf)
		for _, q := range buf {
			v := pf.index(q)
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			out.Put(q)
			queue = append(queue, v)
		}
	}
	return out
}

// SmoothPath drops waypoints that a straight walk can skip. From each kept
// waypoint it jumps to the farthest later waypoint whose Bresenham line
// crosses only walkable cells. The result starts and ends like path, but
// consecutive waypoints are generally no longer adjacent.
// Paths of two points or fewer are returned as a copy.
//
// Complexity: O(n²·L) for n waypoints and segment length L.
func (pf *Pathfinder) SmoothPath(path Path) Path {
	if len(path) <= 2 {
		return append(Path(nil), path...)
	}
	out := Path{path[0]}
	cur := 0
	for cur < len(path)-1 {
		next := cur + 1
		for j := len(path) - 1; j > cur+1; j-- {
			if pf.clearLine(path[cur], path[j]) {
				next = j
				break
			}
		}
		cur = next
		out = append(out, path[cur])
	}
	return out
}

// clearLine reports whether every cell of the segment a→b is walkable.
func (pf *Pathfinder) clearLine(a, b tilegrid.Point) bool {
	for _, p := range tilegrid.Line(a, b) {
		if !pf.Walkable(p) {
			return false
		}
	}
	return true
}
