package core

// ScatterSoup returns a centered width×height patch of cells where each
// position is alive with probability fill. Output is deterministic per
// seed, so sweeps can revisit interesting soups by number.
func ScatterSoup(seed int64, width, height int, fill float64) map[Point]struct{} {
	live := make(map[Point]struct{})
	rng := NewRNG(seed)
	origin := Pt(-width/2, -height/2)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Chance(fill) {
				live[Pt(origin.X+x, origin.Y+y)] = struct{}{}
			}
		}
	}
	return live
}
