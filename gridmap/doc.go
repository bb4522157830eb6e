// Package gridmap holds the rectangular cost grid that every path search runs on.
//
// What:
//
//   - Grid is an immutable width×height table of integer traversal costs
//     plus the start cell declared by the map file.
//   - Cost ≥ 0 means the cell is walkable and entering it costs that much;
//     cost < 0 marks an obstacle (Obstacle is the canonical value).
//   - Neighbors enumerates the walkable 4-connected cells in the fixed order
//     +x, −x, +y, −y, so searches built on top are reproducible.
//   - Regions labels 4-connected components of walkable cells.
//   - Parse/Load read the plain-text map format, Write emits it back.
//
// Map format (whitespace-separated integers):
//
//	<width> <height>
//	<start_col> <start_row>
//	<row_0: width integers>
//	...
//	<row_{height-1}: width integers>
//
// Complexity:
//
//   - New, Parse, Write: O(W×H) time and memory.
//   - InBounds, IsWalkable, CostOf, Neighbors: O(1).
//   - Regions: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrStartOutOfBounds: start cell outside the grid.
//   - ErrOutOfBounds: a queried or selected cell lies outside the grid.
//   - ErrBadCell: a destination string is not of the form "x,y".
//   - ErrFormat: matched by every *FormatError returned from Parse/Load.
package gridmap
