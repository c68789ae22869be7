// Package visibility answers line-of-sight and field-of-view queries over a
// tilegrid.Reader.
//
// A Visibility is built from a read-only tile array and a sight-blocking
// predicate (default: every code except 0 blocks). Cells outside the grid
// always block.
//
//   - HasLineOfSight: Bresenham line, only intermediate cells can block, so
//     a wall is itself visible.
//   - ComputeFOV: symmetric recursive shadowcasting over eight octants with
//     a circular radius, so two open cells see each other or neither does.
//     The returned set holds in-bounds cells and the origin.
//   - VisibleMask, VisibleInRadius, CanSeeEntity, RenderFOV: wrappers for
//     callers that want a mask, a report, a single yes/no, or an ASCII view.
//
// The walkable set used for movement is independent of the blocking set:
// a glass wall may block movement but not sight, a curtain the opposite.
//
// Complexity: ComputeFOV is O(r²) cells with recursion depth at most r.
package visibility
