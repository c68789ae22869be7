package levelscript

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/delve/dungeon"
	"github.com/katalvlaran/delve/pathfind"
	"github.com/katalvlaran/delve/visibility"
)

// Sentinel errors for recipe loading.
var (
	// ErrNoLevel is returned when a script never calls Level.
	ErrNoLevel = errors.New("levelscript: no Level declared")

	// ErrInvalidField is returned for unknown, mistyped or out-of-range fields.
	ErrInvalidField = errors.New("levelscript: invalid field")
)

// Recipe is a decoded level description.
type Recipe struct {
	// Name is the chunk name the recipe was parsed under.
	Name string

	Width, Height int
	Seed          int64
	Algorithm     dungeon.Algorithm
	Doors         bool

	BSP      dungeon.BSPParams
	Cellular dungeon.CellularParams
	Drunkard dungeon.DrunkardParams
	Rooms    dungeon.RoomsParams

	// Walkable and Blocking are the tile codes declared by the script.
	Walkable []int
	Blocking []int
}

// defaultRecipe is an 80×50 BSP level with seed 0 and default parameters.
func defaultRecipe(name string) *Recipe {
	return &Recipe{
		Name:      name,
		Width:     80,
		Height:    50,
		Algorithm: dungeon.BSP,
		BSP:       dungeon.DefaultBSPParams(),
		Cellular:  dungeon.DefaultCellularParams(),
		Drunkard:  dungeon.DefaultDrunkardParams(),
		Rooms:     dungeon.DefaultRoomsParams(),
		Walkable:  dungeon.WalkableTiles(),
		Blocking:  dungeon.BlockingTiles(),
	}
}

// Options returns the generator options the recipe describes.
func (r *Recipe) Options() []dungeon.Option {
	return []dungeon.Option{
		dungeon.WithAlgorithm(r.Algorithm),
		dungeon.WithBSP(r.BSP),
		dungeon.WithCellular(r.Cellular),
		dungeon.WithDrunkard(r.Drunkard),
		dungeon.WithRooms(r.Rooms),
		dungeon.WithDoors(r.Doors),
	}
}

// Generate builds the level. extra options are applied after the recipe's
// own, so callers can add hooks or a context.
func (r *Recipe) Generate(extra ...dungeon.Option) (*dungeon.Level, error) {
	return dungeon.Generate(r.Width, r.Height, r.Seed, append(r.Options(), extra...)...)
}

// PathfindOptions makes the recipe's walkable codes the movement set.
func (r *Recipe) PathfindOptions() []pathfind.Option {
	return []pathfind.Option{pathfind.WithWalkable(r.Walkable...)}
}

// VisibilityOptions makes the recipe's blocking codes the sight-blocking set.
func (r *Recipe) VisibilityOptions() []visibility.Option {
	return []visibility.Option{visibility.WithBlocking(r.Blocking...)}
}

// String summarizes the recipe, e.g. "caves.lua: cellular 60x40 seed 3".
func (r *Recipe) String() string {
	return fmt.Sprintf("%s: %s %dx%d seed %d", r.Name, r.Algorithm, r.Width, r.Height, r.Seed)
}
