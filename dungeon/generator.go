package dungeon

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/delve/tilegrid"
)

// carver encapsulates mutable generation state.
type carver struct {
	g    *tilegrid.Grid
	rng  *tilegrid.RNG
	opts Options
	ctx  context.Context
	lvl  *Level
}

// Generate allocates a width×height grid seeded with seed and carves a level
// into it. Identical arguments always yield identical levels.
//
// Errors:
//   - tilegrid.ErrInvalidSize for non-positive dimensions.
//   - ErrOptionViolation, ErrUnknownAlgorithm for bad options.
//   - ErrDegenerateLevel when no floor was carved.
//   - ctx.Err() if the context is cancelled.
func Generate(width, height int, seed int64, opts ...Option) (*Level, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	g, err := tilegrid.New(width, height, seed)
	if err != nil {
		return nil, fmt.Errorf("dungeon: %w", err)
	}
	return carve(g, o)
}

// Carve resets g to all Wall, dropping its metadata and objects, and carves a level into it, drawing from the
// grid's own RNG at its current position. Errors as Generate, plus ErrNilGrid.
func Carve(g *tilegrid.Grid, opts ...Option) (*Level, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return carve(g, o)
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

func carve(g *tilegrid.Grid, o Options) (*Level, error) {
	c := &carver{
		g:    g,
		rng:  g.Rand(),
		opts: o,
		ctx:  o.Ctx,
		lvl:  &Level{Grid: g, Algorithm: o.Algorithm},
	}
	g.Reset(Wall)
	g.SetGenerator(o.Algorithm.Tag())

	var err error
	switch o.Algorithm {
	case BSP:
		err = c.bsp()
	case Cellular:
		err = c.cellular()
	case Drunkard:
		err = c.drunkard()
	case RoomsCorridors:
		err = c.roomsAndCorridors()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAlgorithm, o.Algorithm)
	}
	if err != nil {
		return nil, err
	}
	o.OnStage(StageLayout, g)

	if o.Doors {
		if err = c.cancelled(); err != nil {
			return nil, err
		}
		c.placeDoors()
		o.OnStage(StageDoors, g)
	}

	if err = c.finalize(); err != nil {
		return nil, err
	}
	o.OnStage(StageFinalize, g)

	return c.lvl, nil
}

// cancelled returns ctx.Err() once the context is done.
func (c *carver) cancelled() error {
	select {
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		return nil
	}
}

// carveRoom fills r with RoomFloor, tags its cells with the room index and
// records it.
func (c *carver) carveRoom(r Room) {
	id := strconv.Itoa(len(c.lvl.Rooms))
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.g.SetTile(x, y, RoomFloor)
			c.g.SetMeta(x, y, "room", id)
		}
	}
	c.lvl.Rooms = append(c.lvl.Rooms, r)
}

// corridor carves an L-shaped Corridor between a and b over Wall cells only.
// Which leg comes first is a coin flip per connection.
func (c *carver) corridor(a, b tilegrid.Point) {
	if c.rng.Bool() {
		c.hline(a.X, b.X, a.Y)
		c.vline(a.Y, b.Y, b.X)
	} else {
		c.vline(a.Y, b.Y, a.X)
		c.hline(a.X, b.X, b.Y)
	}
	c.lvl.Corridors++
}

func (c *carver) hline(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if c.g.Tile(x, y) == Wall {
			c.g.SetTile(x, y, Corridor)
		}
	}
}

func (c *carver) vline(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if c.g.Tile(x, y) == Wall {
			c.g.SetTile(x, y, Corridor)
		}
	}
}

// finalize tags the first and last Floor/RoomFloor cell in row-major order
// as Entrance and Exit. A single floor cell only gets the entrance.
func (c *carver) finalize() error {
	floors := c.g.PositionsFunc(tilegrid.OneOf(Floor, RoomFloor))
	c.lvl.Floors = len(floors)
	if len(floors) == 0 {
		return fmt.Errorf("%w: %s on %dx%d grid (seed %d)",
			ErrDegenerateLevel, c.opts.Algorithm, c.g.Width(), c.g.Height(), c.g.Seed())
	}

	first := floors[0]
	c.g.SetTile(first.X, first.Y, Entrance)
	c.lvl.Entrance = first
	if len(floors) > 1 {
		last := floors[len(floors)-1]
		c.g.SetTile(last.X, last.Y, Exit)
		c.lvl.Exit = last
		c.lvl.HasExit = true
	}
	return nil
}
