// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/gridpath.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell values written by ParseASCII.
const (
	Blocked  = 0
	Walkable = 1
)

// ASCII glyphs understood by ParseASCII and produced by String and Overlay.
const (
	GlyphWalkable = '.'
	GlyphBlocked  = '#'
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
	GlyphPath     = '*'
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered walkable.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity for component analysis.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are walkable), Conn=Conn8 to match the
// movement model of package astar.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn8,
	}
}

// GridGraph is an immutable rectangular grid of integer cell values.
// cells[y][x] holds the original input value; a cell is walkable when its
// value is ≥ landThreshold.
type GridGraph struct {
	width, height   int
	cells           [][]int
	conn            Connectivity
	landThreshold   int
	neighborOffsets [][2]int
}

// Markers records the S and G cells found by ParseASCII.
type Markers struct {
	Start, Goal       [2]int
	HasStart, HasGoal bool
}
