// Package tilegrid is the shared base of delve: a rectangular grid of integer
// tile codes with sparse per-cell metadata, per-cell object lists and its own
// deterministic random stream.
//
// What:
//
//   - Grid stores cells row-major; New fills them with Blocked.
//   - Bounds-checked access: Tile returns OutOfBounds outside the grid,
//     SetTile silently drops out-of-range writes.
//   - Spatial helpers: Neighbors, CountNeighbors, FloodFill (explicit stack),
//     Positions, Components, Line (Bresenham).
//   - Documents: JSON or YAML round trip of size, seed, cells, metadata,
//     objects, generator tag and RNG position.
//
// Why:
//
//   - Level generators carve a Grid; pathfinding and visibility read it
//     through the Reader interface and never mutate it.
//   - Each Grid owns its RNG, so levels generated in parallel stay
//     deterministic and independent.
//
// Complexity:
//
//   - Tile, SetTile, InBounds, Neighbors: O(1).
//   - FloodFill, Components, Positions, Stats: O(W×H×d), d = 4 or 8.
//   - Document, FromDocument: O(W×H).
//
// Errors:
//
//   - ErrInvalidSize: non-positive width or height.
//   - ErrEmptyGrid, ErrNonRectangular: malformed FromRows input.
//   - ErrDocumentShape: document rows disagree with width/height.
//   - ErrUnknownFormat: unsupported Format.
//   - ErrNoPositions: RandomPosition found no matching cell.
package tilegrid
