// Package delve is a toolkit for grid-based dungeon levels: generate them,
// walk them, and work out what can be seen from where.
//
// Everything is organized under a handful of subpackages:
//
//	tilegrid/    the Grid: integer tile codes, objects, metadata, seeded RNG,
//	             flood fill, connected regions, JSON/YAML documents
//	dungeon/     generators: BSP, cellular caves, drunkard's walk,
//	             rooms & corridors, plus doors and entrance/exit tagging
//	pathfind/    A*, Dijkstra, BFS, DFS, greedy best-first, nearest target,
//	             reachable sets and path smoothing
//	visibility/  Bresenham line of sight and recursive shadowcasting FOV
//	levelscript/ sandboxed Lua level recipes
//	preview/     lipgloss rendering and a Bubble Tea explorer
//	cmd/delve/   the command-line front end
//
// Quick ASCII example (rooms & corridors, '<' entrance, '>' exit):
//
//	##########
//	#<..+....#
//	#...#....#
//	#####..>.#
//	##########
//
// A typical round trip:
//
//	lvl, _ := dungeon.Generate(80, 50, 42, dungeon.WithDoors(true))
//	pf, _ := pathfind.New(lvl.Grid, pathfind.WithWalkable(dungeon.WalkableTiles()...))
//	route := pf.AStar(lvl.Entrance, lvl.Exit, tilegrid.Conn8, nil)
//	vis, _ := visibility.New(lvl.Grid, visibility.WithBlocking(dungeon.BlockingTiles()...))
//	fov := vis.ComputeFOV(lvl.Entrance.X, lvl.Entrance.Y, 8)
//
// Runnable scenarios live under examples/.
//
//	go install github.com/katalvlaran/delve/cmd/delve@latest
package delve
