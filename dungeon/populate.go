package dungeon

import (
	"fmt"

	"github.com/katalvlaran/delve/tilegrid"
)

// ByKind matches catalog entries of one kind; an empty kind matches all.
func ByKind(kind string) func(tilegrid.Object) bool {
	return func(o tilegrid.Object) bool { return kind == "" || o.Kind == kind }
}

// ByAttr matches catalog entries whose Attrs[key] equals value.
func ByAttr(key, value string) func(tilegrid.Object) bool {
	return func(o tilegrid.Object) bool { return o.Attrs[key] == value }
}

// Populate scatters objects from catalog over every cell of code tile.
// Each cell independently receives, with probability density, one entry
// drawn uniformly from the catalog entries accepted by match (nil accepts
// all). Draws come from g's RNG, so population is reproducible.
// Returns the number of objects placed, or ErrOptionViolation for a density
// outside [0,1].
//
// Complexity: O(W·H + len(catalog)).
func Populate(g *tilegrid.Grid, catalog []tilegrid.Object, tile int, match func(tilegrid.Object) bool, density float64) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if density < 0 || density > 1 {
		return 0, fmt.Errorf("%w: density must be in [0,1] (%v)", ErrOptionViolation, density)
	}
	var pool []tilegrid.Object
	for _, o := range catalog {
		if match == nil || match(o) {
			pool = append(pool, o)
		}
	}
	if len(pool) == 0 {
		return 0, nil
	}

	rng := g.Rand()
	placed := 0
	for _, p := range g.Positions(tile) {
		if !rng.Chance(density) {
			continue
		}
		if g.PlaceObject(p.X, p.Y, pool[rng.Intn(len(pool))]) {
			placed++
		}
	}
	return placed, nil
}
