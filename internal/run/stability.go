package run

// DefaultWindow is the number of trailing generations whose population
// must stay identical for the simulation to count as stabilized.
const DefaultWindow = 50

// Detector decides whether a recorded population history has gone
// constant over a trailing window of generations.
type Detector struct {
	Window int
}

// NewDetector returns a detector with the given window, falling back to
// DefaultWindow for non-positive values.
func NewDetector(window int) Detector {
	if window <= 0 {
		window = DefaultWindow
	}
	return Detector{Window: window}
}

// Check inspects the trailing window of history, where history[g] is
// the population at generation g. It reports the generation at which
// the constant run began and true when every population in the window
// equals the latest one. Fewer than Window recorded generations can
// never be stable. Exact equality over the whole window is required, so
// oscillating populations are never flagged.
func (d Detector) Check(history []int) (int, bool) {
	current := len(history) - 1
	if current < d.Window-1 {
		return 0, false
	}
	start := current - d.Window + 1
	latest := history[current]
	for g := start; g < current; g++ {
		if history[g] != latest {
			return 0, false
		}
	}
	return start, true
}
