package gridgraph

import (
	"container/list"
	"fmt"
)

// MinBreach finds a path from (ax,ay) to (bx,by) that crosses the fewest
// blocked cells, moving under the grid's connectivity. Entering a walkable
// cell costs 0 and entering a blocked one costs 1; a blocked start counts
// as well. Returns the row‐major cell indices of the path (start and end
// included) and the number of blocked cells on it. A cost of 0 means the
// two cells are already connected.
//
// Behavior:
//  1. Validate both endpoints.
//  2. 0–1 BFS from the start: cost‐0 moves at the deque front, cost‐1 at the back.
//  3. Stop when the target is dequeued.
//  4. Reconstruct the path via predecessor indices.
//
// Complexity: O(W·H·d) time, O(W·H) memory for distance and prev pointers.
func (gg *GridGraph) MinBreach(ax, ay, bx, by int) (path []int, cost int, err error) {
	for _, p := range [...][2]int{{ax, ay}, {bx, by}} {
		if !gg.InBounds(p[0], p[1]) {
			return nil, 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p[0], p[1])
		}
	}

	n := gg.width * gg.height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := gg.Index(ax, ay), gg.Index(bx, by)
	dist[src] = gg.enterCost(ax, ay)
	dq := list.New()
	dq.PushFront(src)
	target := -1

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.Index(vx, vy)
			step := gg.enterCost(vx, vy)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, fmt.Errorf("%w: (%d,%d) → (%d,%d)", ErrNoPath, ax, ay, bx, by)
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}

func (gg *GridGraph) enterCost(x, y int) int {
	if gg.IsWalkable(x, y) {
		return 0
	}
	return 1
}
