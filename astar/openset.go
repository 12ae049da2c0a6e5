package astar

import "container/heap"

// node is an arena entry bound to one cell.
type node struct {
	pt     Point
	cell   int    // row-major index of pt
	g, h   int    // cost from origin, estimate to destination
	parent int32  // arena index of the parent, noParent for none
	seq    uint64 // insertion order, breaks ties between equal totals
}

const noParent int32 = -1

func (n *node) total() int { return n.g + n.h }

// openSet is a min-heap of arena indices ordered by total cost, FIFO among
// equal totals. pos maps a cell to its heap position so lookups by
// coordinate are O(1); a cell holds at most one entry.
type openSet struct {
	arena *[]node
	items []int32
	pos   []int32 // cell → heap position, -1 when absent
	seq   uint64
}

func newOpenSet(arena *[]node, cells, capacity int) *openSet {
	pos := make([]int32, cells)
	for i := range pos {
		pos[i] = -1
	}
	return &openSet{
		arena: arena,
		items: make([]int32, 0, capacity),
		pos:   pos,
	}
}

// Len returns the number of entries in the heap.
func (s *openSet) Len() int { return len(s.items) }

// Less orders by total cost, then by insertion sequence.
func (s *openSet) Less(i, j int) bool {
	a, b := &(*s.arena)[s.items[i]], &(*s.arena)[s.items[j]]
	if ta, tb := a.total(), b.total(); ta != tb {
		return ta < tb
	}
	return a.seq < b.seq
}

// Swap swaps two entries and keeps pos in sync.
func (s *openSet) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.pos[(*s.arena)[s.items[i]].cell] = int32(i)
	s.pos[(*s.arena)[s.items[j]].cell] = int32(j)
}

// Push is called by heap.Push; x must be an int32 arena index.
func (s *openSet) Push(x any) {
	idx := x.(int32)
	s.pos[(*s.arena)[idx].cell] = int32(len(s.items))
	s.items = append(s.items, idx)
}

// Pop is called by heap.Pop and returns the last int32 arena index.
func (s *openSet) Pop() any {
	old := s.items
	n := len(old)
	idx := old[n-1]
	s.items = old[:n-1]
	s.pos[(*s.arena)[idx].cell] = -1
	return idx
}

// insert stamps the node with a fresh sequence number and pushes it.
func (s *openSet) insert(idx int32) {
	s.seq++
	(*s.arena)[idx].seq = s.seq
	heap.Push(s, idx)
}

// lookup returns the arena index of the open entry for cell, if any.
func (s *openSet) lookup(cell int) (int32, bool) {
	p := s.pos[cell]
	if p < 0 {
		return noParent, false
	}
	return s.items[p], true
}

// requeue re-sequences an entry whose costs were just replaced, as if it had
// been removed and inserted again.
func (s *openSet) requeue(cell int) {
	p := s.pos[cell]
	s.seq++
	(*s.arena)[s.items[p]].seq = s.seq
	heap.Fix(s, int(p))
}

// popMin removes and returns the lowest-total entry.
func (s *openSet) popMin() (int32, bool) {
	if len(s.items) == 0 {
		return noParent, false
	}
	return heap.Pop(s).(int32), true
}
