package astar

const wordBits = 64

// closedSet is a bitmap with one bit per cell, addressed row-major.
type closedSet struct {
	width int
	words []uint64
}

func newClosedSet(width, height int) closedSet {
	return closedSet{
		width: width,
		words: make([]uint64, (width*height+wordBits-1)/wordBits),
	}
}

// isClosed reports whether (x,y) has been expanded.
func (c closedSet) isClosed(x, y int) bool {
	i := c.width*y + x
	return c.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// setClosed marks (x,y) as expanded. Setting a cell twice is a no-op.
func (c closedSet) setClosed(x, y int) {
	i := c.width*y + x
	c.words[i/wordBits] |= 1 << (uint(i) % wordBits)
}
