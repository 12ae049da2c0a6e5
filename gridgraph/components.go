package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells,
// according to the grid's connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in discovery order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	var comps [][]int
	gg.label(func(comp []int) { comps = append(comps, comp) })
	return comps
}

// Reachable reports whether (bx,by) can be reached from (ax,ay) by moving
// through walkable cells under the grid's connectivity. Either endpoint
// being blocked or out of bounds yields false.
//
// Time: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) Reachable(ax, ay, bx, by int) bool {
	if !gg.IsWalkable(ax, ay) || !gg.IsWalkable(bx, by) {
		return false
	}
	labels := gg.label(nil)
	return labels[gg.Index(ax, ay)] == labels[gg.Index(bx, by)]
}

// label runs a BFS flood fill over walkable cells and returns the component
// number of every cell (-1 for blocked ones). If emit is non-nil it receives
// each finished component.
func (gg *GridGraph) label(emit func(comp []int)) []int {
	total := gg.width * gg.height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	next := 0

	for y := 0; y < gg.height; y++ {
		for x := 0; x < gg.width; x++ {
			if !gg.IsWalkable(x, y) {
				continue
			}
			i0 := gg.Index(x, y)
			if labels[i0] >= 0 {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			labels[i0] = next

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsWalkable(vx, vy) {
						continue
					}
					vi := gg.Index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = next
						queue = append(queue, vi)
					}
				}
			}
			if emit != nil {
				emit(queue)
			}
			next++
		}
	}
	return labels
}
