// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a walkability map. It supports:
//
//   - The Width/Height/IsWalkable contract consumed by package astar
//   - Four- or eight-connectivity (Conn4 or Conn8) for component analysis
//   - Identification of connected components of walkable cells
//   - Minimum-breach searches between cells separated by walls
//   - Reading and writing a plain ASCII map format
//
// Cells with value < LandThreshold are blocked; cells with value ≥ LandThreshold are walkable.
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		width:           w,
		height:          h,
		cells:           cells,
		conn:            opts.Conn,
		landThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph with the default LandThreshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// Width returns the number of columns.
func (gg *GridGraph) Width() int { return gg.width }

// Height returns the number of rows.
func (gg *GridGraph) Height() int { return gg.height }

// Conn returns the connectivity used for component analysis.
func (gg *GridGraph) Conn() Connectivity { return gg.conn }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.width && y >= 0 && y < gg.height
}

// IsWalkable reports whether (x,y) is inside the grid and its value reaches
// the land threshold.
func (gg *GridGraph) IsWalkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.cells[y][x] >= gg.landThreshold
}

// Value returns the original value stored at (x,y).
func (gg *GridGraph) Value(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return gg.cells[y][x], nil
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.width, idx / gg.width
}

// String renders the grid with GlyphWalkable and GlyphBlocked, one row per line.
func (gg *GridGraph) String() string {
	return gg.Overlay(nil)
}

// Overlay renders the grid like String and marks every cell of path with
// GlyphPath. The first and last cells are drawn as GlyphStart and GlyphGoal.
// Cells outside the grid are ignored.
func (gg *GridGraph) Overlay(path [][2]int) string {
	rows := make([][]byte, gg.height)
	for y := range rows {
		rows[y] = make([]byte, gg.width)
		for x := range rows[y] {
			if gg.IsWalkable(x, y) {
				rows[y][x] = GlyphWalkable
			} else {
				rows[y][x] = GlyphBlocked
			}
		}
	}
	for i, p := range path {
		if !gg.InBounds(p[0], p[1]) {
			continue
		}
		switch i {
		case 0:
			rows[p[1]][p[0]] = GlyphStart
		case len(path) - 1:
			rows[p[1]][p[0]] = GlyphGoal
		default:
			rows[p[1]][p[0]] = GlyphPath
		}
	}

	var sb strings.Builder
	sb.Grow((gg.width + 1) * gg.height)
	for _, row := range rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
