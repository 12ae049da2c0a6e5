// Package astar finds a route between two cells of a walkability grid.
//
// Overview:
//
//   - The grid is supplied through the Map interface (Width, Height,
//     IsWalkable); *gridgraph.GridGraph satisfies it.
//   - Movement is 8-connected: from any cell the search may step to each
//     in-bounds cell of the surrounding 3×3 block.
//   - Axis-aligned steps cost 10 and diagonal steps round(sqrt(10²+10²)) = 14
//     by default.
//   - One PathFinder performs one search. Build it with New, call FindPath,
//     then read the route with Path and its cost with Cost.
//
// Heuristics:
//
//   - ManhattanScaled (default): (|dx|+|dy|) × (vertical+horizontal)/2.
//     It overestimates under diagonal movement, so routes are valid but may
//     be slightly longer than optimal.
//   - Octile: exact on an empty grid and never overestimates; the route
//     found is the cheapest.
//   - Zero: plain Dijkstra.
//
// Errors (sentinel):
//
//   - ErrNilMap, ErrEmptyMap, ErrOutOfBounds, ErrOptionViolation from New.
//   - ErrNotSearched from Path before FindPath.
//   - ErrNoPath from Path and Find when the destination is unreachable.
//     FindPath itself just returns false.
//
// Example usage:
//
//	pf, err := astar.New(grid, 0, 0, 9, 9)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if pf.FindPath() {
//	    path, _ := pf.Path()
//	    fmt.Println(path)
//	}
package astar
