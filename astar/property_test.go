package astar_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// randomMap builds a w×h Conn8 grid with about density of its cells blocked.
// The corners (0,0) and (w-1,h-1) are always walkable.
func randomMap(t testing.TB, w, h int, density float64, seed int64) *gridgraph.GridGraph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
		for x := range grid[y] {
			if r.Float64() >= density {
				grid[y][x] = gridgraph.Walkable
			}
		}
	}
	grid[0][0] = gridgraph.Walkable
	grid[h-1][w-1] = gridgraph.Walkable
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	return gg
}

// TestRandomMaps_AgreeWithComponents checks on many random maps that the
// search succeeds exactly when both corners share a component, and that
// every returned path is valid.
func TestRandomMaps_AgreeWithComponents(t *testing.T) {
	from, to := astar.Point{X: 0, Y: 0}, astar.Point{X: 19, Y: 14}
	costs := astar.NewCosts(astar.DefaultHorizontalCost, astar.DefaultVerticalCost)
	found := 0
	for seed := int64(1); seed <= 200; seed++ {
		gg := randomMap(t, 20, 15, 0.35, seed)
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			res, err := astar.Find(gg, from, to)
			reachable := gg.Reachable(from.X, from.Y, to.X, to.Y)
			require.Equal(t, reachable, res.Found, "map:\n%s", gg)
			if !reachable {
				require.ErrorIs(t, err, astar.ErrNoPath)
				return
			}
			require.NoError(t, err)
			requireValidPath(t, gg, res.Path, from, to, costs, res.Cost)
			found++
		})
	}
	assert.Positive(t, found, "density should leave some maps solvable")
}

// TestRandomMaps_HeuristicCosts compares heuristics on the same maps:
// Octile matches the Dijkstra cost (Zero heuristic) and ManhattanScaled is
// never cheaper than it.
func TestRandomMaps_HeuristicCosts(t *testing.T) {
	from, to := astar.Point{X: 0, Y: 0}, astar.Point{X: 24, Y: 24}
	for seed := int64(1); seed <= 100; seed++ {
		gg := randomMap(t, 25, 25, 0.3, seed)
		base, err := astar.Find(gg, from, to, astar.WithHeuristic(astar.Zero))
		if err != nil {
			require.ErrorIs(t, err, astar.ErrNoPath)
			continue
		}
		oct, err := astar.Find(gg, from, to, astar.WithHeuristic(astar.Octile))
		require.NoError(t, err)
		man, err := astar.Find(gg, from, to)
		require.NoError(t, err)

		require.Equal(t, base.Cost, oct.Cost, "seed %d: octile must be optimal", seed)
		require.GreaterOrEqual(t, man.Cost, base.Cost, "seed %d", seed)
		require.LessOrEqual(t, oct.Expanded, base.Expanded, "seed %d: octile expands no more than dijkstra", seed)
	}
}

// TestHeuristics checks the three heuristic functions on fixed points.
func TestHeuristics(t *testing.T) {
	c := astar.NewCosts(10, 10)
	a, b := astar.Point{X: 1, Y: 2}, astar.Point{X: 4, Y: 8}

	assert.Equal(t, (3+6)*10, astar.ManhattanScaled(a, b, c))
	assert.Equal(t, 3*14+3*10, astar.Octile(a, b, c))
	assert.Equal(t, 3*14+3*10, astar.Octile(b, a, c), "octile is symmetric")
	assert.Zero(t, astar.Zero(a, b, c))

	// uneven costs: the longer x-run is charged the row cost (Vertical)
	u := astar.NewCosts(10, 20)
	assert.Equal(t, 22, u.Diagonal)
	assert.Equal(t, 10*(10+20)/2, astar.ManhattanScaled(astar.Point{}, astar.Point{X: 5, Y: 5}, u))
	assert.Equal(t, 2*22+3*20, astar.Octile(astar.Point{}, astar.Point{X: 5, Y: 2}, u))
	assert.Equal(t, 2*22+3*10, astar.Octile(astar.Point{}, astar.Point{X: 2, Y: 5}, u))
}

// TestCosts checks the diagonal derivation and the step classification.
func TestCosts(t *testing.T) {
	cases := []struct {
		h, v, diag int
	}{
		{10, 10, 14},
		{3, 4, 5},
		{1, 1, 1},
		{10, 20, 22},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dx%d", tc.h, tc.v), func(t *testing.T) {
			c := astar.NewCosts(tc.h, tc.v)
			assert.Equal(t, tc.diag, c.Diagonal)
		})
	}

	c := astar.NewCosts(7, 9)
	o := astar.Point{X: 3, Y: 3}
	assert.Equal(t, 7, c.Step(o, astar.Point{X: 3, Y: 4}), "same column")
	assert.Equal(t, 9, c.Step(o, astar.Point{X: 2, Y: 3}), "same row")
	assert.Equal(t, c.Diagonal, c.Step(o, astar.Point{X: 4, Y: 2}))

	assert.Equal(t, "(3,3)", o.String())
}
