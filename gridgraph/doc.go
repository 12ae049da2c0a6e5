// Package gridgraph treats a 2D grid of cells as a walkability map for
// path search, plus a few analyses that help explain search results.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Satisfies the astar.Map contract (Width, Height, IsWalkable).
//   - Reads and writes a plain ASCII map format ('.', '#', 'S', 'G').
//   - Identifies connected components of walkable cells.
//   - Computes the fewest walls separating two cells (0-1 BFS).
//
// Why:
//
//   - Game maps: author levels as text, check reachability before searching.
//   - Diagnostics: when no path exists, report how many walls are in the way.
//
// Complexity:
//
//   - ConnectedComponents, Reachable: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - MinBreach:                      O(W×H×d), Memory: O(W×H).
//   - ParseASCII, String, Overlay:    O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered walkable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrBadGlyph, ErrDuplicateMarker: malformed ASCII map.
//   - ErrNoPath: no breach path exists between the specified cells.
package gridgraph
