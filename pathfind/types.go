package pathfind

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/delve/tilegrid"
)

// Sentinel errors for Pathfinder construction.
var (
	// ErrNilTiles is returned when New receives a nil tile reader.
	ErrNilTiles = errors.New("pathfind: tiles are nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Option configures a Pathfinder. Invalid values are recorded and surfaced
// as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the walkability predicate, the expansion cap and hooks.
type Options struct {
	// Walkable reports whether a tile code may be entered.
	Walkable func(code int) bool

	// MaxExpansions caps node expansions per search; 0 means the grid area.
	MaxExpansions int

	// OnExpand is called for every node a search expands.
	OnExpand func(p tilegrid.Point)

	err error
}

// DefaultOptions returns Options where only code 0 is walkable, the
// expansion cap is the grid area and OnExpand is a no-op.
func DefaultOptions() Options {
	return Options{
		Walkable: func(code int) bool { return code == 0 },
		OnExpand: func(tilegrid.Point) {},
	}
}

// WithWalkable makes exactly the given codes walkable.
func WithWalkable(codes ...int) Option {
	return func(o *Options) {
		o.Walkable = tilegrid.OneOf(codes...)
	}
}

// WithWalkableFunc installs a custom walkability predicate.
func WithWalkableFunc(fn func(code int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Walkable = fn
		}
	}
}

// WithMaxExpansions caps node expansions per search.
//
//	n > 0:  searches give up (no path) after n expansions
//	n == 0: cap equals the grid area
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run for every expanded node.
func WithOnExpand(fn func(p tilegrid.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Path is an ordered sequence of cells from start to goal, both inclusive.
type Path []tilegrid.Point

// Cost sums the step costs along the path: 1 per cardinal step, √2 per
// diagonal step, Euclidean length for longer (smoothed) segments.
func (p Path) Cost() float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += stepCost(p[i-1], p[i])
	}
	return total
}

// Valid reports whether every consecutive pair is adjacent under conn.
// Empty and single-point paths are valid.
func (p Path) Valid(conn tilegrid.Connectivity) bool {
	for i := 1; i < len(p); i++ {
		dx, dy := absInt(p[i].X-p[i-1].X), absInt(p[i].Y-p[i-1].Y)
		switch {
		case dx+dy == 1:
		case conn == tilegrid.Conn8 && dx == 1 && dy == 1:
		default:
			return false
		}
	}
	return true
}

// stepCost is 1 for cardinal moves and √2 for diagonal ones.
func stepCost(a, b tilegrid.Point) float64 {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)
	switch {
	case dx+dy == 1:
		return 1
	case dx == 1 && dy == 1:
		return math.Sqrt2
	default:
		return math.Hypot(float64(dx), float64(dy))
	}
}

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b tilegrid.Point) float64

// Manhattan is |dx|+|dy|; admissible for Conn4.
func Manhattan(a, b tilegrid.Point) float64 {
	return float64(absInt(a.X-b.X) + absInt(a.Y-b.Y))
}

// Euclidean is the straight-line distance; admissible for both modes.
func Euclidean(a, b tilegrid.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Chebyshev is max(|dx|,|dy|); admissible for both modes, loose for Conn8.
func Chebyshev(a, b tilegrid.Point) float64 {
	return float64(max(absInt(a.X-b.X), absInt(a.Y-b.Y)))
}

// Octile is the exact Conn8 cost on an open grid:
// max(dx,dy) + (√2-1)·min(dx,dy).
func Octile(a, b tilegrid.Point) float64 {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)
	return float64(max(dx, dy)) + (math.Sqrt2-1)*float64(min(dx, dy))
}

// DefaultHeuristic returns Manhattan for Conn4 and Octile for Conn8.
func DefaultHeuristic(conn tilegrid.Connectivity) Heuristic {
	if conn == tilegrid.Conn8 {
		return Octile
	}
	return Manhattan
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
