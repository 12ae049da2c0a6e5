package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	require.Equal(t, 3, gg.Width())
	require.Equal(t, 2, gg.Height())

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

//----------------------------------------------------------------------------//
// Walkability Tests
//----------------------------------------------------------------------------//

// TestIsWalkable_Threshold checks the LandThreshold cut-off and out-of-bounds cells.
func TestIsWalkable_Threshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 3
	gg, err := gridgraph.NewGridGraph([][]int{{0, 2, 3, 9}}, opts)
	require.NoError(t, err)

	assert.False(t, gg.IsWalkable(0, 0))
	assert.False(t, gg.IsWalkable(1, 0))
	assert.True(t, gg.IsWalkable(2, 0))
	assert.True(t, gg.IsWalkable(3, 0))
	assert.False(t, gg.IsWalkable(4, 0), "out of bounds is never walkable")
	assert.False(t, gg.IsWalkable(-1, 0), "out of bounds is never walkable")
}

// TestNewGridGraph_DeepCopy ensures later edits to the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 1}}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)

	grid[0][0] = 0
	v, err := gg.Value(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.True(t, gg.IsWalkable(0, 0))

	_, err = gg.Value(2, 0)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// TestIndexCoordinate checks that Index and Coordinate are inverse.
func TestIndexCoordinate(t *testing.T) {
	gg, err := gridgraph.From2D(make2D(4, 3, 1), gridgraph.Conn8)
	require.NoError(t, err)
	for y := 0; y < gg.Height(); y++ {
		for x := 0; x < gg.Width(); x++ {
			i := gg.Index(x, y)
			gx, gy := gg.Coordinate(i)
			require.Equal(t, [2]int{x, y}, [2]int{gx, gy})
		}
	}
	assert.Equal(t, 7, gg.Index(3, 1))
}

// TestNeighborOffsets checks the offset count per connectivity.
func TestNeighborOffsets(t *testing.T) {
	g4, _ := gridgraph.From2D([][]int{{1}}, gridgraph.Conn4)
	g8, _ := gridgraph.From2D([][]int{{1}}, gridgraph.Conn8)
	assert.Len(t, g4.NeighborOffsets(), 4)
	assert.Len(t, g8.NeighborOffsets(), 8)
	assert.Equal(t, gridgraph.Conn4, g4.Conn())
	assert.Equal(t, gridgraph.Conn8, g8.Conn())
}

//----------------------------------------------------------------------------//
// String / Overlay Tests
//----------------------------------------------------------------------------//

// TestOverlay marks endpoints and intermediate path cells.
func TestOverlay(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{1, 1, 1},
		{0, 0, 1},
	}, gridgraph.Conn8)
	require.NoError(t, err)

	assert.Equal(t, "...\n##.\n", gg.String())
	got := gg.Overlay([][2]int{{0, 0}, {1, 0}, {2, 1}, {9, 9}})
	// the out-of-bounds entry is last, so (2,1) is drawn as an intermediate cell
	assert.Equal(t, "S*.\n##*\n", got)

	got = gg.Overlay([][2]int{{0, 0}, {1, 0}, {2, 1}})
	assert.Equal(t, "S*.\n##G\n", got)
}

// make2D returns an h×w grid filled with v.
func make2D(w, h, v int) [][]int {
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
		for x := range grid[y] {
			grid[y][x] = v
		}
	}
	return grid
}
