// Package tilegrid defines core types, options, and sentinel errors
// for the tilegrid subpackage of github.com/katalvlaran/delve.
package tilegrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for tilegrid operations.
var (
	// ErrInvalidSize indicates a non-positive width or height.
	ErrInvalidSize = errors.New("tilegrid: width and height must be positive")
	// ErrEmptyGrid indicates input rows have no rows or no columns.
	ErrEmptyGrid = errors.New("tilegrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("tilegrid: all rows must have the same length")
	// ErrDocumentShape indicates a serialized document whose rows disagree with its size.
	ErrDocumentShape = errors.New("tilegrid: document rows do not match width/height")
	// ErrUnknownFormat indicates an unsupported serialization format.
	ErrUnknownFormat = errors.New("tilegrid: unknown document format")
	// ErrNoPositions indicates that no cell carries the requested tile value.
	ErrNoPositions = errors.New("tilegrid: no positions with requested value")
)

const (
	// OutOfBounds is returned by Tile for coordinates outside the grid.
	// It is distinct from every valid tile code, which are non-negative.
	OutOfBounds = -1

	// Blocked is the default fill value of a fresh grid.
	Blocked = 1
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, E, S, W, NW, NE, SE, SW.
	Conn8
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Offsets in the order neighbors are reported: cardinals first, then diagonals.
var (
	cardinalOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonalOffsets = [4][2]int{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
)

// Offsets returns the neighbor offsets for c.
// The returned slice is freshly allocated and safe to modify.
func (c Connectivity) Offsets() [][2]int {
	offs := make([][2]int, 0, 8)
	offs = append(offs, cardinalOffsets[:]...)
	if c == Conn8 {
		offs = append(offs, diagonalOffsets[:]...)
	}
	return offs
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// String implements fmt.Stringer as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Object is an opaque game-object reference placed on a cell.
// Only its identity and a display glyph matter to this package.
type Object struct {
	ID    string            `json:"id" yaml:"id"`
	Kind  string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Glyph string            `json:"glyph,omitempty" yaml:"glyph,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Reader is the read-only view of a tile array consumed by queries.
// *Grid implements it.
type Reader interface {
	Width() int
	Height() int
	// Tile returns the code at (x,y), or OutOfBounds outside the grid.
	Tile(x, y int) int
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Fill is the initial value of every cell.
	Fill int
	// Generator is the initial generator tag.
	Generator string
}

// Option configures grid construction.
type Option func(*Options)

// DefaultOptions returns Options with Fill=Blocked and an empty generator tag.
func DefaultOptions() Options {
	return Options{Fill: Blocked}
}

// WithFill sets the initial value of every cell.
func WithFill(v int) Option {
	return func(o *Options) {
		o.Fill = v
	}
}

// WithGenerator sets the initial generator tag.
func WithGenerator(tag string) Option {
	return func(o *Options) {
		o.Generator = tag
	}
}

// Grid is a rectangular tile map with sparse per-cell metadata and objects.
// Cells are stored row-major; index = y*width + x.
//
// A Grid is not safe for concurrent mutation. Queries may run concurrently
// only while no goroutine writes to it.
type Grid struct {
	width, height int
	seed          int64
	cells         []int
	meta          map[int]map[string]string
	objects       map[int][]Object
	generator     string
	rng           *RNG
}
