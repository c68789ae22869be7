// Package levelscript loads level recipes written in Lua.
//
// A recipe file calls three constructors:
//
//	Level {
//	    width = 80, height = 50, seed = 7,
//	    algorithm = "rooms_corridors", doors = true,
//	    rooms = { num_rooms = 12, min_room_size = 4, max_room_size = 9 },
//	}
//	Walkable { Tile.Floor, Tile.RoomFloor, Tile.Corridor, Tile.Door, Tile.Entrance, Tile.Exit }
//	Blocking { Tile.Wall, Tile.Door }
//
// Level is required; Walkable and Blocking fall back to
// dungeon.WalkableTiles and dungeon.BlockingTiles. Parameter tables
// (bsp, cellular, drunkard, rooms) override only the fields they name.
// Unknown fields and wrong types are rejected with ErrInvalidField.
//
// The VM is sandboxed (base, table, string and math only, no file access,
// no math.randomseed) and discarded once the recipe is decoded.
package levelscript
