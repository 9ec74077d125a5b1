package core

// Counter accumulates per-cell neighbor counts for a sparse board.
// Only cells adjacent to at least one live cell ever gain an entry, so
// the map stays proportional to the live population rather than to any
// bounding box of the pattern.
type Counter map[Point]int

// NewCounter allocates a counter sized for roughly the given population.
func NewCounter(population int) Counter {
	return make(Counter, population*8)
}

// Bump increments the count of each of the eight neighbors of p.
func (c Counter) Bump(p Point) {
	for _, d := range NeighborOffsets {
		c[p.Add(d)]++
	}
}
