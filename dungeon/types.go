// Package dungeon provides tile codes, tunable parameters, options and error
// definitions for procedural level generation over a tilegrid.Grid.
package dungeon

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/delve/tilegrid"
)

// Sentinel errors for generation.
var (
	// ErrNilGrid is returned when Carve receives a nil grid.
	ErrNilGrid = errors.New("dungeon: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dungeon: invalid option supplied")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("dungeon: unknown algorithm")

	// ErrDegenerateLevel is returned when generation produced no floor at all,
	// so no entrance or exit could be placed.
	ErrDegenerateLevel = errors.New("dungeon: level has no floor cells")
)

// Tile codes written by the generators.
const (
	Floor     = 0
	Wall      = tilegrid.Blocked
	Door      = 2
	Corridor  = 3
	RoomFloor = 4
	Entrance  = 5
	Exit      = 6
)

// DefaultGlyphs renders every tile code above.
var DefaultGlyphs = map[int]rune{
	Floor:     '.',
	Wall:      '#',
	Door:      '+',
	Corridor:  ',',
	RoomFloor: '·',
	Entrance:  '<',
	Exit:      '>',
}

// WalkableTiles returns the codes a walking entity can usually cross:
// everything except Wall. It is a convenience for callers; generation
// never consults it.
func WalkableTiles() []int {
	return []int{Floor, Door, Corridor, RoomFloor, Entrance, Exit}
}

// BlockingTiles returns the codes that usually block sight: Wall and Door.
func BlockingTiles() []int {
	return []int{Wall, Door}
}

// Algorithm names a generation strategy.
type Algorithm string

const (
	BSP            Algorithm = "bsp"
	Cellular       Algorithm = "cellular"
	Drunkard       Algorithm = "drunkard"
	RoomsCorridors Algorithm = "rooms_corridors"
)

// Algorithms lists every supported strategy in a stable order.
var Algorithms = []Algorithm{BSP, Cellular, Drunkard, RoomsCorridors}

// ParseAlgorithm resolves a strategy name.
// Returns ErrUnknownAlgorithm for anything not in Algorithms.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Tag is the generator tag recorded on the grid, e.g. "dungeon:bsp".
func (a Algorithm) Tag() string { return "dungeon:" + string(a) }

// BSPParams tunes binary space partitioning.
type BSPParams struct {
	MinRoomSize  int
	MaxRoomSize  int
	MinSplitSize int
	// MaxDepth caps the tree depth; 0 disables the cap.
	MaxDepth int
}

// DefaultBSPParams returns MinRoomSize=5, MaxRoomSize=15, MinSplitSize=10, MaxDepth=6.
func DefaultBSPParams() BSPParams {
	return BSPParams{MinRoomSize: 5, MaxRoomSize: 15, MinSplitSize: 10, MaxDepth: 6}
}

func (p BSPParams) validate() error {
	switch {
	case p.MinRoomSize < 1:
		return fmt.Errorf("%w: bsp MinRoomSize must be >= 1 (%d)", ErrOptionViolation, p.MinRoomSize)
	case p.MaxRoomSize < p.MinRoomSize:
		return fmt.Errorf("%w: bsp MaxRoomSize %d < MinRoomSize %d", ErrOptionViolation, p.MaxRoomSize, p.MinRoomSize)
	case p.MinSplitSize < 1:
		return fmt.Errorf("%w: bsp MinSplitSize must be >= 1 (%d)", ErrOptionViolation, p.MinSplitSize)
	case p.MaxDepth < 0:
		return fmt.Errorf("%w: bsp MaxDepth cannot be negative (%d)", ErrOptionViolation, p.MaxDepth)
	}
	return nil
}

// CellularParams tunes the cave automaton.
type CellularParams struct {
	// WallProbability is the chance a cell starts as Wall.
	WallProbability float64
	// BirthLimit: a floor with more wall neighbors than this becomes Wall.
	BirthLimit int
	// DeathLimit: a wall with fewer wall neighbors than this becomes Floor.
	DeathLimit int
	Iterations int
}

// DefaultCellularParams returns p=0.45, birth 4, death 3, 5 iterations.
func DefaultCellularParams() CellularParams {
	return CellularParams{WallProbability: 0.45, BirthLimit: 4, DeathLimit: 3, Iterations: 5}
}

func (p CellularParams) validate() error {
	switch {
	case p.WallProbability < 0 || p.WallProbability > 1:
		return fmt.Errorf("%w: cellular WallProbability must be in [0,1] (%v)", ErrOptionViolation, p.WallProbability)
	case p.BirthLimit < 0 || p.BirthLimit > 8:
		return fmt.Errorf("%w: cellular BirthLimit must be in [0,8] (%d)", ErrOptionViolation, p.BirthLimit)
	case p.DeathLimit < 0 || p.DeathLimit > 8:
		return fmt.Errorf("%w: cellular DeathLimit must be in [0,8] (%d)", ErrOptionViolation, p.DeathLimit)
	case p.Iterations < 0:
		return fmt.Errorf("%w: cellular Iterations cannot be negative (%d)", ErrOptionViolation, p.Iterations)
	}
	return nil
}

// DrunkardParams tunes the random walk.
type DrunkardParams struct {
	// TargetFloorPct stops the walk once this fraction of the area is floor.
	TargetFloorPct float64
	// Lifetime sets the step budget to Lifetime*10.
	Lifetime int
	// TurnProbability is the per-step chance of picking a new heading.
	TurnProbability float64
}

// DefaultDrunkardParams returns 40% floor, lifetime 500, turn probability 0.3.
func DefaultDrunkardParams() DrunkardParams {
	return DrunkardParams{TargetFloorPct: 0.4, Lifetime: 500, TurnProbability: 0.3}
}

func (p DrunkardParams) validate() error {
	switch {
	case p.TargetFloorPct < 0 || p.TargetFloorPct > 1:
		return fmt.Errorf("%w: drunkard TargetFloorPct must be in [0,1] (%v)", ErrOptionViolation, p.TargetFloorPct)
	case p.Lifetime < 0:
		return fmt.Errorf("%w: drunkard Lifetime cannot be negative (%d)", ErrOptionViolation, p.Lifetime)
	case p.TurnProbability < 0 || p.TurnProbability > 1:
		return fmt.Errorf("%w: drunkard TurnProbability must be in [0,1] (%v)", ErrOptionViolation, p.TurnProbability)
	}
	return nil
}

// RoomsParams tunes rooms-and-corridors placement.
type RoomsParams struct {
	NumRooms    int
	MinRoomSize int
	MaxRoomSize int
	// MaxAttempts bounds placement tries; failed tries just mean fewer rooms.
	MaxAttempts int
}

// DefaultRoomsParams returns 10 rooms of 4..10 tiles within 100 attempts.
func DefaultRoomsParams() RoomsParams {
	return RoomsParams{NumRooms: 10, MinRoomSize: 4, MaxRoomSize: 10, MaxAttempts: 100}
}

func (p RoomsParams) validate() error {
	switch {
	case p.NumRooms < 0:
		return fmt.Errorf("%w: rooms NumRooms cannot be negative (%d)", ErrOptionViolation, p.NumRooms)
	case p.MinRoomSize < 1:
		return fmt.Errorf("%w: rooms MinRoomSize must be >= 1 (%d)", ErrOptionViolation, p.MinRoomSize)
	case p.MaxRoomSize < p.MinRoomSize:
		return fmt.Errorf("%w: rooms MaxRoomSize %d < MinRoomSize %d", ErrOptionViolation, p.MaxRoomSize, p.MinRoomSize)
	case p.MaxAttempts < 0:
		return fmt.Errorf("%w: rooms MaxAttempts cannot be negative (%d)", ErrOptionViolation, p.MaxAttempts)
	}
	return nil
}

// Stage identifies a generation phase reported to OnStage.
type Stage string

const (
	StageLayout   Stage = "layout"
	StageDoors    Stage = "doors"
	StageFinalize Stage = "finalize"
)

// Option configures generation via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation (or
// ErrUnknownAlgorithm) when Generate or Carve is invoked.
type Option func(*Options)

// Options holds generation parameters and hooks.
type Options struct {
	// Ctx is checked between stages and inside long loops.
	Ctx context.Context

	Algorithm Algorithm
	BSP       BSPParams
	Cellular  CellularParams
	Drunkard  DrunkardParams
	Rooms     RoomsParams

	// Doors turns qualifying corridor cells next to rooms into Door.
	Doors bool

	// OnStage is called after each stage with the grid in its current state.
	OnStage func(stage Stage, g *tilegrid.Grid)

	err error
}

// DefaultOptions returns Options with BSP, every Default*Params, no doors
// and a no-op OnStage hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Algorithm: BSP,
		BSP:       DefaultBSPParams(),
		Cellular:  DefaultCellularParams(),
		Drunkard:  DefaultDrunkardParams(),
		Rooms:     DefaultRoomsParams(),
		OnStage:   func(Stage, *tilegrid.Grid) {},
	}
}

// record keeps the first violation.
func (o *Options) record(err error) {
	if o.err == nil && err != nil {
		o.err = err
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlgorithm selects the strategy. Unknown names → ErrUnknownAlgorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if _, err := ParseAlgorithm(string(a)); err != nil {
			o.record(err)
			return
		}
		o.Algorithm = a
	}
}

// WithBSP replaces the BSP parameters.
func WithBSP(p BSPParams) Option {
	return func(o *Options) {
		o.record(p.validate())
		o.BSP = p
	}
}

// WithCellular replaces the cellular automaton parameters.
func WithCellular(p CellularParams) Option {
	return func(o *Options) {
		o.record(p.validate())
		o.Cellular = p
	}
}

// WithDrunkard replaces the random walk parameters.
func WithDrunkard(p DrunkardParams) Option {
	return func(o *Options) {
		o.record(p.validate())
		o.Drunkard = p
	}
}

// WithRooms replaces the rooms-and-corridors parameters.
func WithRooms(p RoomsParams) Option {
	return func(o *Options) {
		o.record(p.validate())
		o.Rooms = p
	}
}

// WithDoors enables or disables door placement.
func WithDoors(on bool) Option {
	return func(o *Options) {
		o.Doors = on
	}
}

// WithOnStage registers a callback run after each stage.
func WithOnStage(fn func(stage Stage, g *tilegrid.Grid)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}

// Room is an axis-aligned rectangle of RoomFloor.
type Room struct {
	X, Y, W, H int
}

// Center returns the integer center (X+W/2, Y+H/2).
func (r Room) Center() tilegrid.Point {
	return tilegrid.Pt(r.X+r.W/2, r.Y+r.H/2)
}

// Contains reports whether (x,y) lies inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// overlaps reports whether r and o intersect once r is padded by pad tiles.
func (r Room) overlaps(o Room, pad int) bool {
	return r.X-pad < o.X+o.W && r.X+r.W+pad > o.X &&
		r.Y-pad < o.Y+o.H && r.Y+r.H+pad > o.Y
}

// Level is the outcome of one generation pass.
type Level struct {
	Grid      *tilegrid.Grid
	Algorithm Algorithm
	// Rooms in placement order; empty for cellular and drunkard.
	Rooms []Room
	// Corridors counts L-shaped connections carved.
	Corridors int
	// Doors counts Door tiles placed.
	Doors int
	// Floors counts Floor and RoomFloor cells before entrance/exit tagging.
	Floors   int
	Entrance tilegrid.Point
	Exit     tilegrid.Point
	// HasExit is false when only one floor cell existed.
	HasExit bool
}
