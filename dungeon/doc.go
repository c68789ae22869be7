// Package dungeon carves playable levels into a tilegrid.Grid.
//
// What:
//
//   - BSP: recursive partition into leaves, one room per leaf, sibling
//     subtrees joined by L-shaped corridors.
//   - Cellular: cave automaton; only the largest floor region survives.
//   - Drunkard: random walk from the center until enough floor is open.
//   - RoomsCorridors: random non-overlapping rooms chained by corridors.
//   - Every variant ends by tagging the first and last floor cell (row-major)
//     as Entrance and Exit. Optional doors and object population.
//
// Why:
//
//   - All randomness comes from the grid's own RNG, so a seed reproduces a
//     level exactly and levels can be generated in parallel.
//   - Which codes are walkable or opaque is left to the caller;
//     WalkableTiles and BlockingTiles are only conveniences.
//
// Complexity:
//
//   - BSP, RoomsCorridors, Drunkard: O(W·H) plus the step/attempt budgets.
//   - Cellular: O(Iterations·W·H).
//
// Errors:
//
//   - ErrOptionViolation, ErrUnknownAlgorithm: invalid options.
//   - ErrDegenerateLevel: nothing was carved (e.g. a grid too small for
//     any room); no entrance or exit is tagged.
//   - ErrNilGrid: Carve or Populate on a nil grid.
//
// Running out of placement attempts is not an error: the level just has
// fewer rooms.
package dungeon
