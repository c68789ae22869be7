package pathfind

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/delve/tilegrid"
)

// AStar returns a least-cost path from start to goal, or nil. Cardinal
// steps cost 1 and diagonal steps √2. h must be admissible for conn for the
// result to be optimal; nil selects DefaultHeuristic(conn). Among equal
// priorities the node pushed first is expanded first.
//
// Complexity: O(W·H·d·log(W·H)) time, O(W·H) memory.
func (pf *Pathfinder) AStar(start, goal tilegrid.Point, conn tilegrid.Connectivity, h Heuristic) Path {
	if h == nil {
		h = DefaultHeuristic(conn)
	}
	return pf.bestFirst(start, goal, conn, h)
}

// Dijkstra returns a least-cost path from start to goal, or nil.
// It is AStar with a zero heuristic: always optimal, never guided.
func (pf *Pathfinder) Dijkstra(start, goal tilegrid.Point, conn tilegrid.Connectivity) Path {
	return pf.bestFirst(start, goal, conn, func(_, _ tilegrid.Point) float64 { return 0 })
}

// GreedyBestFirst expands whichever frontier cell h rates closest to goal,
// ignoring the cost already paid. Fast on open maps, not optimal.
// nil h selects DefaultHeuristic(conn).
func (pf *Pathfinder) GreedyBestFirst(start, goal tilegrid.Point, conn tilegrid.Connectivity, h Heuristic) Path {
	if h == nil {
		h = DefaultHeuristic(conn)
	}
	path, ok := pf.endpoints(start, goal)
	if !ok || path != nil {
		return path
	}
	s := pf.newSearch(conn)
	seen := make([]bool, len(s.parent))
	target := pf.index(goal)

	si := pf.index(start)
	seen[si] = true
	s.push(si, 0, h(start, goal))
	for s.open.Len() > 0 {
		if s.expanded >= pf.limit {
			return nil
		}
		it := heap.Pop(&s.open).(*searchItem)
		s.expanded++
		up := pf.point(it.idx)
		pf.onExpand(up)
		if it.idx == target {
			return pf.reconstruct(s.parent, it.idx)
		}
		s.buf = pf.neighbors(up, s.offs, s.buf)
		for _, q := range s.buf {
			v := pf.index(q)
			if seen[v] {
				continue
			}
			seen[v] = true
			s.parent[v] = int32(it.idx)
			s.push(v, 0, h(q, goal))
		}
	}
	return nil
}

// bestFirst is the shared A*/Dijkstra loop with lazy decrease-key: improved
// nodes are pushed again and stale entries skipped once their node closes.
func (pf *Pathfinder) bestFirst(start, goal tilegrid.Point, conn tilegrid.Connectivity, h Heuristic) Path {
	path, ok := pf.endpoints(start, goal)
	if !ok || path != nil {
		return path
	}
	s := pf.newSearch(conn)
	gScore := make([]float64, len(s.parent))
	for i := range gScore {
		gScore[i] = math.Inf(1)
	}
	closed := make([]bool, len(s.parent))
	target := pf.index(goal)

	si := pf.index(start)
	gScore[si] = 0
	s.push(si, 0, h(start, goal))
	for s.open.Len() > 0 {
		it := heap.Pop(&s.open).(*searchItem)
		if closed[it.idx] {
			continue
		}
		if s.expanded >= pf.limit {
			return nil
		}
		closed[it.idx] = true
		s.expanded++
		up := pf.point(it.idx)
		pf.onExpand(up)
		if it.idx == target {
			return pf.reconstruct(s.parent, it.idx)
		}
		s.buf = pf.neighbors(up, s.offs, s.buf)
		for _, q := range s.buf {
			v := pf.index(q)
			if closed[v] {
				continue
			}
			ng := it.g + stepCost(up, q)
			if ng >= gScore[v] {
				continue
			}
			gScore[v] = ng
			s.parent[v] = int32(it.idx)
			s.push(v, ng, ng+h(q, goal))
		}
	}
	return nil
}

// search holds the mutable state of one best-first run.
type search struct {
	open     openSet
	parent   []int32
	offs     [][2]int
	buf      []tilegrid.Point
	seq      int
	expanded int
}

func (pf *Pathfinder) newSearch(conn tilegrid.Connectivity) *search {
	return &search{
		open:   make(openSet, 0, 64),
		parent: pf.newParents(),
		offs:   conn.Offsets(),
		buf:    make([]tilegrid.Point, 0, 8),
	}
}

// push adds a frontier entry stamped with the next insertion number.
func (s *search) push(idx int, g, f float64) {
	heap.Push(&s.open, &searchItem{idx: idx, g: g, f: f, seq: s.seq})
	s.seq++
}

// searchItem is a frontier entry: cell index, cost so far, priority and
// insertion sequence for tie-breaking.
type searchItem struct {
	idx int
	g   float64
	f   float64
	seq int
}

// openSet is a min-heap of *searchItem ordered by f, then by seq.
type openSet []*searchItem

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq openSet) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openSet) Push(x interface{}) { *pq = append(*pq, x.(*searchItem)) }

func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
