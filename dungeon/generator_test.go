package dungeon_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/delve/dungeon"
	"github.com/katalvlaran/delve/tilegrid"
)

// notWall matches every code a walker can stand on in these tests.
func notWall(code int) bool { return code != dungeon.Wall }

// TestGenerate_Deterministic runs each algorithm twice with the same seed.
func TestGenerate_Deterministic(t *testing.T) {
	for _, algo := range dungeon.Algorithms {
		t.Run(string(algo), func(t *testing.T) {
			a, err := dungeon.Generate(60, 30, 42, dungeon.WithAlgorithm(algo), dungeon.WithDoors(true))
			require.NoError(t, err)
			b, err := dungeon.Generate(60, 30, 42, dungeon.WithAlgorithm(algo), dungeon.WithDoors(true))
			require.NoError(t, err)

			assert.Equal(t, a.Grid.Document(), b.Grid.Document())
			assert.Equal(t, a.Rooms, b.Rooms)
			assert.Equal(t, algo.Tag(), a.Grid.Generator())
		})
	}
}

// TestGenerate_SeedsDiffer is a smoke check that the seed actually matters.
func TestGenerate_SeedsDiffer(t *testing.T) {
	a, err := dungeon.Generate(60, 30, 1, dungeon.WithAlgorithm(dungeon.Cellular))
	require.NoError(t, err)
	b, err := dungeon.Generate(60, 30, 2, dungeon.WithAlgorithm(dungeon.Cellular))
	require.NoError(t, err)
	assert.NotEqual(t, a.Grid.Rows(), b.Grid.Rows())
}

// TestGenerate_Connected checks that every open cell of every algorithm
// belongs to a single 4-connected region, across many seeds.
func TestGenerate_Connected(t *testing.T) {
	for _, algo := range dungeon.Algorithms {
		for seed := int64(0); seed < 25; seed++ {
			lvl, err := dungeon.Generate(60, 30, seed, dungeon.WithAlgorithm(algo), dungeon.WithDoors(seed%2 == 0))
			require.NoError(t, err, "%s seed %d", algo, seed)
			comps := lvl.Grid.Components(notWall, tilegrid.Conn4)
			require.Len(t, comps, 1, "%s seed %d: open cells split into %d regions\n%s",
				algo, seed, len(comps), lvl.Grid.Render(dungeon.DefaultGlyphs, false))
		}
	}
}

// TestGenerate_EntranceExit verifies the tagging rule: the entrance is the
// first and the exit the last floor-like cell in row-major order.
func TestGenerate_EntranceExit(t *testing.T) {
	for _, algo := range dungeon.Algorithms {
		lvl, err := dungeon.Generate(48, 32, 7, dungeon.WithAlgorithm(algo))
		require.NoError(t, err)
		g := lvl.Grid

		require.True(t, lvl.HasExit)
		assert.Equal(t, dungeon.Entrance, g.At(lvl.Entrance))
		assert.Equal(t, dungeon.Exit, g.At(lvl.Exit))
		assert.Len(t, g.Positions(dungeon.Entrance), 1)
		assert.Len(t, g.Positions(dungeon.Exit), 1)

		floors := g.PositionsFunc(tilegrid.OneOf(dungeon.Floor, dungeon.RoomFloor))
		assert.Equal(t, lvl.Floors, len(floors)+2)
		for _, p := range floors {
			assert.True(t, rowMajorLess(lvl.Entrance, p), "%s: floor %v precedes entrance %v", algo, p, lvl.Entrance)
			assert.True(t, rowMajorLess(p, lvl.Exit), "%s: floor %v follows exit %v", algo, p, lvl.Exit)
		}
	}
}

func rowMajorLess(a, b tilegrid.Point) bool {
	return a.Y < b.Y || (a.Y == b.Y && a.X < b.X)
}

// TestGenerate_Degenerate covers levels with no floor at all.
func TestGenerate_Degenerate(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		opts []dungeon.Option
	}{
		{"BSPTooSmall", 2, 2, []dungeon.Option{dungeon.WithAlgorithm(dungeon.BSP)}},
		{"BSPNoRoomFits", 6, 6, []dungeon.Option{dungeon.WithAlgorithm(dungeon.BSP)}},
		{"RoomsTooSmall", 5, 5, []dungeon.Option{dungeon.WithAlgorithm(dungeon.RoomsCorridors)}},
		{"CellularAllWall", 20, 20, []dungeon.Option{
			dungeon.WithAlgorithm(dungeon.Cellular),
			dungeon.WithCellular(dungeon.CellularParams{WallProbability: 1, BirthLimit: 4, DeathLimit: 0, Iterations: 3}),
		}},
		{"DrunkardNoTarget", 20, 20, []dungeon.Option{
			dungeon.WithAlgorithm(dungeon.Drunkard),
			dungeon.WithDrunkard(dungeon.DrunkardParams{TargetFloorPct: 0, Lifetime: 10, TurnProbability: 0.3}),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lvl, err := dungeon.Generate(tc.w, tc.h, 1, tc.opts...)
			assert.Nil(t, lvl)
			assert.ErrorIs(t, err, dungeon.ErrDegenerateLevel)
		})
	}
}

// TestGenerate_SingleFloor gets an entrance but no exit.
func TestGenerate_SingleFloor(t *testing.T) {
	lvl, err := dungeon.Generate(3, 3, 1, dungeon.WithAlgorithm(dungeon.Drunkard))
	require.NoError(t, err)
	assert.Equal(t, 1, lvl.Floors)
	assert.False(t, lvl.HasExit)
	assert.Equal(t, tilegrid.Pt(1, 1), lvl.Entrance)
	assert.Equal(t, "###\n#<#\n###", lvl.Grid.Render(dungeon.DefaultGlyphs, false))
}

func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name string
		opt  dungeon.Option
		want error
	}{
		{"UnknownAlgorithm", dungeon.WithAlgorithm("maze"), dungeon.ErrUnknownAlgorithm},
		{"BSPRoomRange", dungeon.WithBSP(dungeon.BSPParams{MinRoomSize: 6, MaxRoomSize: 5, MinSplitSize: 10}), dungeon.ErrOptionViolation},
		{"BSPNegativeDepth", dungeon.WithBSP(dungeon.BSPParams{MinRoomSize: 5, MaxRoomSize: 5, MinSplitSize: 10, MaxDepth: -1}), dungeon.ErrOptionViolation},
		{"CellularProbability", dungeon.WithCellular(dungeon.CellularParams{WallProbability: 1.5}), dungeon.ErrOptionViolation},
		{"CellularLimit", dungeon.WithCellular(dungeon.CellularParams{WallProbability: 0.5, BirthLimit: 9}), dungeon.ErrOptionViolation},
		{"DrunkardPct", dungeon.WithDrunkard(dungeon.DrunkardParams{TargetFloorPct: -0.1}), dungeon.ErrOptionViolation},
		{"DrunkardTurn", dungeon.WithDrunkard(dungeon.DrunkardParams{TargetFloorPct: 0.5, Lifetime: 1, TurnProbability: 2}), dungeon.ErrOptionViolation},
		{"RoomsNegative", dungeon.WithRooms(dungeon.RoomsParams{NumRooms: -1, MinRoomSize: 4, MaxRoomSize: 4}), dungeon.ErrOptionViolation},
		{"RoomsRange", dungeon.WithRooms(dungeon.RoomsParams{NumRooms: 3, MinRoomSize: 0, MaxRoomSize: 4}), dungeon.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dungeon.Generate(40, 40, 1, tc.opt)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := dungeon.Generate(0, 10, 1)
	assert.ErrorIs(t, err, tilegrid.ErrInvalidSize)

	_, err = dungeon.Carve(nil)
	assert.ErrorIs(t, err, dungeon.ErrNilGrid)

	_, err = dungeon.ParseAlgorithm("bogus")
	assert.ErrorIs(t, err, dungeon.ErrUnknownAlgorithm)
	a, err := dungeon.ParseAlgorithm("rooms_corridors")
	require.NoError(t, err)
	assert.Equal(t, dungeon.RoomsCorridors, a)
}

// TestCarve_UsesGridRNG verifies that Carve draws from the grid's stream:
// carving two same-seed grids agrees, and a grid whose stream was advanced
// first produces something else.
func TestCarve_UsesGridRNG(t *testing.T) {
	g1, _ := tilegrid.New(50, 30, 9)
	g2, _ := tilegrid.New(50, 30, 9)
	g3, _ := tilegrid.New(50, 30, 9)
	_ = g3.Rand().Intn(10)

	_, err := dungeon.Carve(g1, dungeon.WithAlgorithm(dungeon.Cellular))
	require.NoError(t, err)
	_, err = dungeon.Carve(g2, dungeon.WithAlgorithm(dungeon.Cellular))
	require.NoError(t, err)
	_, err = dungeon.Carve(g3, dungeon.WithAlgorithm(dungeon.Cellular))
	require.NoError(t, err)

	assert.Equal(t, g1.Rows(), g2.Rows())
	assert.NotEqual(t, g1.Rows(), g3.Rows())

	lvl, err := dungeon.Generate(50, 30, 9, dungeon.WithAlgorithm(dungeon.Cellular))
	require.NoError(t, err)
	assert.Equal(t, g1.Rows(), lvl.Grid.Rows())
}

// TestCarve_Reused: carving over a used grid leaves nothing of the old level.
func TestCarve_Reused(t *testing.T) {
	g, _ := tilegrid.New(60, 40, 3)
	_, err := dungeon.Carve(g, dungeon.WithAlgorithm(dungeon.RoomsCorridors))
	require.NoError(t, err)
	require.NotEmpty(t, roomTagged(g), "rooms tag their cells")
	require.True(t, g.PlaceObject(1, 1, tilegrid.Object{ID: "chest"}))

	lvl, err := dungeon.Carve(g, dungeon.WithAlgorithm(dungeon.Cellular))
	require.NoError(t, err)
	assert.Empty(t, roomTagged(g))
	assert.Zero(t, g.ObjectCount())
	assert.Equal(t, "dungeon:cellular", g.Generator())

	doc := lvl.Grid.Document()
	for _, row := range doc.Objects {
		for _, objs := range row {
			assert.Empty(t, objs)
		}
	}
}

func roomTagged(g *tilegrid.Grid) []tilegrid.Point {
	var out []tilegrid.Point
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if _, ok := g.Meta(x, y, "room"); ok {
				out = append(out, tilegrid.Pt(x, y))
			}
		}
	}
	return out
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, algo := range dungeon.Algorithms {
		_, err := dungeon.Generate(60, 30, 1, dungeon.WithAlgorithm(algo), dungeon.WithContext(ctx))
		assert.True(t, errors.Is(err, context.Canceled), "%s: got %v", algo, err)
	}
}

// TestGenerate_OnStage checks hook order and that the hook sees the grid.
func TestGenerate_OnStage(t *testing.T) {
	var stages []dungeon.Stage
	var layoutEntrances int
	_, err := dungeon.Generate(60, 30, 3,
		dungeon.WithAlgorithm(dungeon.RoomsCorridors),
		dungeon.WithDoors(true),
		dungeon.WithOnStage(func(s dungeon.Stage, g *tilegrid.Grid) {
			stages = append(stages, s)
			if s == dungeon.StageLayout {
				layoutEntrances = len(g.Positions(dungeon.Entrance))
			}
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []dungeon.Stage{dungeon.StageLayout, dungeon.StageDoors, dungeon.StageFinalize}, stages)
	assert.Zero(t, layoutEntrances, "entrance is tagged only at finalize")

	stages = nil
	_, err = dungeon.Generate(60, 30, 3, dungeon.WithOnStage(func(s dungeon.Stage, _ *tilegrid.Grid) {
		stages = append(stages, s)
	}))
	require.NoError(t, err)
	assert.Equal(t, []dungeon.Stage{dungeon.StageLayout, dungeon.StageFinalize}, stages)
}
