// Package astar implements A* search on a fixed-size walkability grid with
// 8-connected movement.
//
// A PathFinder performs exactly one search. It keeps its nodes in an arena
// (a growable slice) and links each node to its parent by index, so path
// reconstruction walks indices rather than pointers. The open set is a
// binary heap with a per-cell handle table; the closed set is a bitmap.
//
// Complexity (N = width×height):
//
//   - Time:   O(N log N) worst case; each cell is expanded at most once and
//     each expansion touches at most 8 neighbours.
//   - Memory: O(N) for the handle table, the bitmap and the arena.
//
// Closed cells are never reopened. Combined with the default
// ManhattanScaled heuristic, which overestimates under diagonal movement,
// the returned path is valid but not always the cheapest. Use
// WithHeuristic(Octile) when optimality matters.
package astar

import "fmt"

// PathFinder holds the mutable state of a single search.
// It is not safe for concurrent use.
type PathFinder struct {
	m             Map
	width, height int
	opts          Options

	origin, dest Point
	arena        []node
	open         *openSet
	closed       closedSet

	destIdx  int32
	searched bool
	found    bool
	expanded int
}

// New validates the map, the endpoints and the options and returns a
// PathFinder ready for FindPath.
//
// Errors:
//   - ErrNilMap if m is nil.
//   - ErrEmptyMap if m has a non-positive width or height.
//   - ErrOptionViolation if an option was invalid.
//   - ErrOutOfBounds if either endpoint lies outside the map.
func New(m Map, originX, originY, destX, destY int, opts ...Option) (*PathFinder, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	w, h := m.Width(), m.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyMap, w, h)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	origin := Point{X: originX, Y: originY}
	dest := Point{X: destX, Y: destY}
	for _, p := range [...]Point{origin, dest} {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			return nil, fmt.Errorf("%w: %s not in %d×%d map", ErrOutOfBounds, p, w, h)
		}
	}

	capacity := max(w, h) * 2
	pf := &PathFinder{
		m:       m,
		width:   w,
		height:  h,
		opts:    cfg,
		origin:  origin,
		dest:    dest,
		arena:   make([]node, 0, capacity),
		closed:  newClosedSet(w, h),
		destIdx: noParent,
	}
	pf.open = newOpenSet(&pf.arena, w*h, capacity)
	pf.arena = append(pf.arena, node{
		pt:     origin,
		cell:   pf.cell(origin.X, origin.Y),
		g:      0,
		h:      cfg.Heuristic(origin, dest, cfg.Costs),
		parent: noParent,
	})

	return pf, nil
}

// FindPath runs the search to completion and reports whether the
// destination was reached. Subsequent calls return the same answer without
// searching again.
func (pf *PathFinder) FindPath() bool {
	if pf.searched {
		return pf.found
	}
	pf.searched = true

	cur, ok := int32(0), true
	for ok && pf.arena[cur].pt != pf.dest {
		pf.process(cur)
		cur, ok = pf.open.popMin()
	}
	if ok {
		pf.destIdx = cur
		pf.found = true
	}

	return pf.found
}

// Path returns the cells from origin to destination inclusive.
// It returns ErrNotSearched before FindPath and ErrNoPath after a failed
// search.
func (pf *PathFinder) Path() ([]Point, error) {
	if !pf.searched {
		return nil, ErrNotSearched
	}
	if !pf.found {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, pf.origin, pf.dest)
	}

	n := 0
	for i := pf.destIdx; i != noParent; i = pf.arena[i].parent {
		n++
	}
	path := make([]Point, n)
	for i := pf.destIdx; i != noParent; i = pf.arena[i].parent {
		n--
		path[n] = pf.arena[i].pt
	}

	return path, nil
}

// Cost returns the accumulated step cost of the found path.
// ok is false if no path has been found.
func (pf *PathFinder) Cost() (cost int, ok bool) {
	if !pf.found {
		return 0, false
	}
	return pf.arena[pf.destIdx].g, true
}

// Expanded returns the number of cells expanded so far.
func (pf *PathFinder) Expanded() int { return pf.expanded }

// Origin returns the search origin.
func (pf *PathFinder) Origin() Point { return pf.origin }

// Destination returns the search destination.
func (pf *PathFinder) Destination() Point { return pf.dest }

// Find runs a complete search from `from` to `to` on m.
// When the destination is unreachable it returns the populated Result
// (Found=false) together with an error wrapping ErrNoPath.
func Find(m Map, from, to Point, opts ...Option) (Result, error) {
	pf, err := New(m, from.X, from.Y, to.X, to.Y, opts...)
	if err != nil {
		return Result{}, err
	}
	res := Result{Found: pf.FindPath()}
	res.Expanded = pf.Expanded()
	if !res.Found {
		_, err = pf.Path()
		return res, err
	}
	res.Path, _ = pf.Path()
	res.Cost, _ = pf.Cost()

	return res, nil
}

// process closes the node and offers every walkable, unclosed cell of the
// surrounding 3×3 block to the open set.
func (pf *PathFinder) process(idx int32) {
	p := pf.arena[idx].pt
	pf.closed.setClosed(p.X, p.Y)
	pf.expanded++

	lx, ux := max(p.X-1, 0), min(p.X+1, pf.width-1)
	ly, uy := max(p.Y-1, 0), min(p.Y+1, pf.height-1)
	for x := lx; x <= ux; x++ {
		for y := ly; y <= uy; y++ {
			if !pf.closed.isClosed(x, y) && pf.m.IsWalkable(x, y) {
				pf.addToOpen(x, y, idx)
			}
		}
	}
}

// addToOpen offers (x,y) reached through parent. An existing open entry is
// replaced only if the new route is strictly cheaper.
func (pf *PathFinder) addToOpen(x, y int, parent int32) {
	pt := Point{X: x, Y: y}
	cell := pf.cell(x, y)
	par := &pf.arena[parent]
	g := par.g + pf.opts.Costs.Step(par.pt, pt)

	if existing, ok := pf.open.lookup(cell); ok {
		e := &pf.arena[existing]
		if e.g <= g {
			return
		}
		e.g = g
		e.h = pf.opts.Heuristic(pt, pf.dest, pf.opts.Costs)
		e.parent = parent
		pf.open.requeue(cell)
		return
	}

	pf.arena = append(pf.arena, node{
		pt:     pt,
		cell:   cell,
		g:      g,
		h:      pf.opts.Heuristic(pt, pf.dest, pf.opts.Costs),
		parent: parent,
	})
	pf.open.insert(int32(len(pf.arena) - 1))
}

func (pf *PathFinder) cell(x, y int) int { return y*pf.width + x }
