// Package pathfind searches paths over a tilegrid.Reader.
//
// A Pathfinder is built from a read-only tile array and a walkability
// predicate (default: only code 0 is walkable). Every search takes a
// tilegrid.Connectivity that switches the neighbor set (4 or 8), the step
// cost (1, or √2 for diagonals) and the default heuristic together.
//
// Searches:
//
//   - AStar: optimal with an admissible heuristic; Manhattan for Conn4,
//     Octile for Conn8 by default.
//   - Dijkstra: optimal, unguided.
//   - BFS: fewest steps.
//   - DFS: some path, for completeness only.
//   - GreedyBestFirst: heuristic only, fast, not optimal.
//   - FindNearest, FindAllReachable: BFS over several targets or a hop budget.
//   - SmoothPath: drops waypoints a straight walkable line can skip.
//
// "No path", a non-walkable start or goal, and start == goal are results,
// not errors: searches return nil or the one-element path. Every search
// stops after MaxExpansions expanded nodes (default: the grid area).
//
// Complexity:
//
//   - AStar, Dijkstra, GreedyBestFirst: O(N·d·log N), N = W·H.
//   - BFS, DFS, FindNearest, FindAllReachable: O(N·d).
package pathfind
