package levelscript

import (
	"fmt"
	"math"
	"slices"

	lua "github.com/yuin/gopher-lua"

	"github.com/katalvlaran/delve/dungeon"
)

// decoder reads typed fields out of Lua tables and keeps the first error.
type decoder struct {
	err error
}

func (d *decoder) fail(section, key, format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: %s.%s: %s", ErrInvalidField, section, key, fmt.Sprintf(format, args...))
	}
}

// only rejects keys outside allowed.
func (d *decoder) only(tbl *lua.LTable, section string, allowed ...string) {
	tbl.ForEach(func(k, _ lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok || !slices.Contains(allowed, string(ks)) {
			d.fail(section, k.String(), "unknown field")
		}
	})
}

func (d *decoder) number(tbl *lua.LTable, section, key string) (float64, bool) {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return 0, false
	}
	n, ok := v.(lua.LNumber)
	if !ok {
		d.fail(section, key, "want number, got %s", v.Type())
		return 0, false
	}
	return float64(n), true
}

func (d *decoder) intField(tbl *lua.LTable, section, key string, dst *int) {
	f, ok := d.number(tbl, section, key)
	if !ok {
		return
	}
	if f != math.Trunc(f) {
		d.fail(section, key, "want integer, got %v", f)
		return
	}
	*dst = int(f)
}

func (d *decoder) floatField(tbl *lua.LTable, section, key string, dst *float64) {
	if f, ok := d.number(tbl, section, key); ok {
		*dst = f
	}
}

func (d *decoder) boolField(tbl *lua.LTable, section, key string, dst *bool) {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return
	}
	b, ok := v.(lua.LBool)
	if !ok {
		d.fail(section, key, "want boolean, got %s", v.Type())
		return
	}
	*dst = bool(b)
}

func (d *decoder) stringField(tbl *lua.LTable, section, key string, dst *string) {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return
	}
	s, ok := v.(lua.LString)
	if !ok {
		d.fail(section, key, "want string, got %s", v.Type())
		return
	}
	*dst = string(s)
}

// table returns the sub-table at key, or nil when absent.
func (d *decoder) table(tbl *lua.LTable, section, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return nil
	}
	t, ok := v.(*lua.LTable)
	if !ok {
		d.fail(section, key, "want table, got %s", v.Type())
		return nil
	}
	return t
}

// codes decodes an array of integer tile codes.
func (d *decoder) codes(tbl *lua.LTable, section string) []int {
	out := make([]int, 0, tbl.Len())
	tbl.ForEach(func(k, v lua.LValue) {
		if _, ok := k.(lua.LNumber); !ok {
			d.fail(section, k.String(), "want a list of tile codes")
			return
		}
		n, ok := v.(lua.LNumber)
		if !ok || float64(n) != math.Trunc(float64(n)) {
			d.fail(section, k.String(), "want integer tile code, got %s", v.String())
			return
		}
		out = append(out, int(n))
	})
	return out
}

// decode turns the collected tables into a Recipe.
func decode(name string, coll *collector) (*Recipe, error) {
	r := defaultRecipe(name)
	d := &decoder{}
	lv := coll.level

	d.only(lv, "level", "width", "height", "seed", "algorithm", "doors",
		"bsp", "cellular", "drunkard", "rooms")
	d.intField(lv, "level", "width", &r.Width)
	d.intField(lv, "level", "height", &r.Height)
	if f, ok := d.number(lv, "level", "seed"); ok {
		if f != math.Trunc(f) {
			d.fail("level", "seed", "want integer, got %v", f)
		}
		r.Seed = int64(f)
	}
	algo := string(r.Algorithm)
	d.stringField(lv, "level", "algorithm", &algo)
	d.boolField(lv, "level", "doors", &r.Doors)

	if t := d.table(lv, "level", "bsp"); t != nil {
		d.only(t, "bsp", "min_room_size", "max_room_size", "min_split_size", "max_depth")
		d.intField(t, "bsp", "min_room_size", &r.BSP.MinRoomSize)
		d.intField(t, "bsp", "max_room_size", &r.BSP.MaxRoomSize)
		d.intField(t, "bsp", "min_split_size", &r.BSP.MinSplitSize)
		d.intField(t, "bsp", "max_depth", &r.BSP.MaxDepth)
	}
	if t := d.table(lv, "level", "cellular"); t != nil {
		d.only(t, "cellular", "wall_probability", "birth_limit", "death_limit", "iterations")
		d.floatField(t, "cellular", "wall_probability", &r.Cellular.WallProbability)
		d.intField(t, "cellular", "birth_limit", &r.Cellular.BirthLimit)
		d.intField(t, "cellular", "death_limit", &r.Cellular.DeathLimit)
		d.intField(t, "cellular", "iterations", &r.Cellular.Iterations)
	}
	if t := d.table(lv, "level", "drunkard"); t != nil {
		d.only(t, "drunkard", "target_floor_pct", "lifetime", "turn_probability")
		d.floatField(t, "drunkard", "target_floor_pct", &r.Drunkard.TargetFloorPct)
		d.intField(t, "drunkard", "lifetime", &r.Drunkard.Lifetime)
		d.floatField(t, "drunkard", "turn_probability", &r.Drunkard.TurnProbability)
	}
	if t := d.table(lv, "level", "rooms"); t != nil {
		d.only(t, "rooms", "num_rooms", "min_room_size", "max_room_size", "max_attempts")
		d.intField(t, "rooms", "num_rooms", &r.Rooms.NumRooms)
		d.intField(t, "rooms", "min_room_size", &r.Rooms.MinRoomSize)
		d.intField(t, "rooms", "max_room_size", &r.Rooms.MaxRoomSize)
		d.intField(t, "rooms", "max_attempts", &r.Rooms.MaxAttempts)
	}
	if coll.walkable != nil {
		r.Walkable = d.codes(coll.walkable, "walkable")
	}
	if coll.blocking != nil {
		r.Blocking = d.codes(coll.blocking, "blocking")
	}
	if d.err != nil {
		return nil, d.err
	}

	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("%w: level size must be positive (%dx%d)", ErrInvalidField, r.Width, r.Height)
	}
	a, err := dungeon.ParseAlgorithm(algo)
	if err != nil {
		return nil, fmt.Errorf("%w: level.algorithm: %w", ErrInvalidField, err)
	}
	r.Algorithm = a
	return r, nil
}
