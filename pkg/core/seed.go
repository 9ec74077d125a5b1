package core

// PatternSeeder is implemented by sims that can seed their board from a
// rectangular character pattern. Every '1' at row r, column c becomes a
// live cell at (origin.X+c, origin.Y+r); any other character leaves the
// position dead. Callers discover the capability by type assertion.
type PatternSeeder interface {
	SeedPattern(rows []string, origin Point)
}
