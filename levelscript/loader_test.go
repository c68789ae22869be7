package levelscript_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/delve/dungeon"
	"github.com/katalvlaran/delve/levelscript"
	"github.com/katalvlaran/delve/pathfind"
	"github.com/katalvlaran/delve/tilegrid"
	"github.com/katalvlaran/delve/visibility"
)

func TestLoad_Caves(t *testing.T) {
	r, err := levelscript.Load(filepath.Join("testdata", "caves.lua"))
	require.NoError(t, err)

	assert.Equal(t, "caves.lua", r.Name)
	assert.Equal(t, 60, r.Width)
	assert.Equal(t, 40, r.Height)
	assert.Equal(t, int64(3), r.Seed)
	assert.Equal(t, dungeon.Cellular, r.Algorithm)
	assert.False(t, r.Doors)

	want := dungeon.DefaultCellularParams()
	want.WallProbability = 0.42
	want.Iterations = 4
	assert.Equal(t, want, r.Cellular)
	assert.Equal(t, dungeon.DefaultBSPParams(), r.BSP, "untouched sections keep defaults")

	assert.Equal(t, []int{dungeon.Floor, dungeon.Entrance, dungeon.Exit}, r.Walkable)
	assert.Equal(t, []int{dungeon.Wall}, r.Blocking)
	assert.Equal(t, "caves.lua: cellular 60x40 seed 3", r.String())
}

func TestLoad_Missing(t *testing.T) {
	_, err := levelscript.Load(filepath.Join("testdata", "nope.lua"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestParse_Defaults(t *testing.T) {
	r, err := levelscript.Parse("min.lua", `Level {}`)
	require.NoError(t, err)
	assert.Equal(t, 80, r.Width)
	assert.Equal(t, 50, r.Height)
	assert.Equal(t, int64(0), r.Seed)
	assert.Equal(t, dungeon.BSP, r.Algorithm)
	assert.Equal(t, dungeon.DefaultRoomsParams(), r.Rooms)
	assert.Equal(t, dungeon.WalkableTiles(), r.Walkable)
	assert.Equal(t, dungeon.BlockingTiles(), r.Blocking)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"NoLevel", `Walkable { 0 }`, levelscript.ErrNoLevel},
		{"UnknownField", `Level { widht = 10 }`, levelscript.ErrInvalidField},
		{"UnknownNested", `Level { bsp = { depth = 3 } }`, levelscript.ErrInvalidField},
		{"WrongType", `Level { width = "wide" }`, levelscript.ErrInvalidField},
		{"Fractional", `Level { width = 2.5 }`, levelscript.ErrInvalidField},
		{"FractionalSeed", `Level { seed = 0.5 }`, levelscript.ErrInvalidField},
		{"ZeroSize", `Level { height = 0 }`, levelscript.ErrInvalidField},
		{"NotTable", `Level { rooms = 3 }`, levelscript.ErrInvalidField},
		{"DoorsNotBool", `Level { doors = 1 }`, levelscript.ErrInvalidField},
		{"UnknownAlgorithm", `Level { algorithm = "maze" }`, dungeon.ErrUnknownAlgorithm},
		{"BadCodes", `Level {} Walkable { "floor" }`, levelscript.ErrInvalidField},
		{"CodesNotList", `Level {} Blocking { wall = 1 }`, levelscript.ErrInvalidField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := levelscript.Parse(tc.name+".lua", tc.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.name+".lua")
		})
	}
}

// TestParse_ScriptFailures covers errors raised while the script runs.
func TestParse_ScriptFailures(t *testing.T) {
	cases := map[string]string{
		"Syntax":          `Level {`,
		"Twice":           `Level {} Level {}`,
		"NoDofile":        `dofile("x.lua") Level {}`,
		"NoRequire":       `require("os") Level {}`,
		"NoOS":            `os.exit(1)`,
		"NoIO":            `io.write("x")`,
		"NoReseeding":     `math.randomseed(1) Level {}`,
		"LevelNeedsTable": `Level "x"`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := levelscript.Parse(name+".lua", src)
			require.Error(t, err)
		})
	}
}

func TestParse_ScriptLogic(t *testing.T) {
	r, err := levelscript.Parse("logic.lua", `
		local w = 10
		for i = 1, 3 do w = w * 2 end
		Level { width = w, height = math.floor(w / 2), algorithm = string.lower("DRUNKARD") }
		Walkable { Tile.Floor }
		Walkable { Tile.Floor, Tile.Exit }
	`)
	require.NoError(t, err)
	assert.Equal(t, 80, r.Width)
	assert.Equal(t, 40, r.Height)
	assert.Equal(t, dungeon.Drunkard, r.Algorithm)
	assert.Equal(t, []int{dungeon.Floor, dungeon.Exit}, r.Walkable, "last Walkable wins")
}

// TestRecipe_Generate drives the generator, the pathfinder and the
// visibility engine from one recipe.
func TestRecipe_Generate(t *testing.T) {
	r, err := levelscript.Load(filepath.Join("testdata", "keep.lua"))
	require.NoError(t, err)
	require.Equal(t, 9, r.Rooms.MaxRoomSize)
	require.True(t, r.Doors)

	lvl, err := r.Generate()
	require.NoError(t, err)
	again, err := r.Generate()
	require.NoError(t, err)
	assert.Equal(t, lvl.Grid.Rows(), again.Grid.Rows(), "recipes are deterministic")
	assert.Equal(t, dungeon.RoomsCorridors.Tag(), lvl.Grid.Generator())
	require.True(t, lvl.HasExit)

	pf, err := pathfind.New(lvl.Grid, r.PathfindOptions()...)
	require.NoError(t, err)
	path := pf.AStar(lvl.Entrance, lvl.Exit, tilegrid.Conn4, nil)
	require.NotNil(t, path, "entrance and exit are connected")

	vis, err := visibility.New(lvl.Grid, r.VisibilityOptions()...)
	require.NoError(t, err)
	assert.True(t, vis.ComputeFOV(lvl.Entrance.X, lvl.Entrance.Y, 8).Has(lvl.Entrance))
	assert.True(t, vis.IsBlocking(0, 0))
}

func TestRecipe_GenerateInvalidParams(t *testing.T) {
	r, err := levelscript.Parse("bad.lua", `Level { rooms = { min_room_size = 9, max_room_size = 3 } }`)
	require.NoError(t, err, "ranges are checked by the generator")
	_, err = r.Generate()
	assert.ErrorIs(t, err, dungeon.ErrOptionViolation)
}
