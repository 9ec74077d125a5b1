package core

// Point identifies a single lattice cell on the unbounded grid.
// It is a plain value: equal coordinates are the same cell, and the
// struct is comparable so it can key maps and sets directly.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for constructing a Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns the point offset by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// NeighborOffsets lists the eight compass-direction unit offsets,
// excluding the origin itself.
var NeighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
