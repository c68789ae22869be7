package levelscript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/katalvlaran/delve/dungeon"
)

// collector accumulates constructor calls while the script runs.
type collector struct {
	level    *lua.LTable
	walkable *lua.LTable
	blocking *lua.LTable
}

// Load reads and decodes the recipe file at path.
func Load(path string) (*Recipe, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe %s: %w", path, err)
	}
	return Parse(filepath.Base(path), string(src))
}

// Parse runs src in a fresh sandboxed VM and decodes what it declared.
// name labels error messages.
func Parse(name, src string) (*Recipe, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)
	coll := &collector{}
	registerAPI(L, coll)

	fn, err := L.Load(strings.NewReader(src), name)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}

	if coll.level == nil {
		return nil, fmt.Errorf("%w in %s", ErrNoLevel, name)
	}
	r, err := decode(name, coll)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return r, nil
}

// openSafeLibs opens only the side-effect free standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes file access and anything that could break determinism.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring", "require", "module",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	} {
		L.SetGlobal(name, lua.LNil)
	}
	if tbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		tbl.RawSetString("randomseed", lua.LNil)
		tbl.RawSetString("random", lua.LNil)
	}
}

// registerAPI installs the recipe constructors and the Tile code table.
func registerAPI(L *lua.LState, coll *collector) {
	// Level { ... } may be called once.
	L.SetGlobal("Level", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		if coll.level != nil {
			L.RaiseError("Level declared twice")
		}
		coll.level = tbl
		return 0
	}))
	// Walkable { codes... } and Blocking { codes... }; the last call wins.
	L.SetGlobal("Walkable", L.NewFunction(func(L *lua.LState) int {
		coll.walkable = L.CheckTable(1)
		return 0
	}))
	L.SetGlobal("Blocking", L.NewFunction(func(L *lua.LState) int {
		coll.blocking = L.CheckTable(1)
		return 0
	}))

	tiles := L.NewTable()
	for name, code := range map[string]int{
		"Floor":     dungeon.Floor,
		"Wall":      dungeon.Wall,
		"Door":      dungeon.Door,
		"Corridor":  dungeon.Corridor,
		"RoomFloor": dungeon.RoomFloor,
		"Entrance":  dungeon.Entrance,
		"Exit":      dungeon.Exit,
	} {
		tiles.RawSetString(name, lua.LNumber(code))
	}
	L.SetGlobal("Tile", tiles)
}
