package run

import "cellula/pkg/core"

// Outcome names the terminal state a simulation run ended in.
type Outcome int

const (
	// OutcomeExhausted means the iteration budget ran out without the
	// population stabilizing.
	OutcomeExhausted Outcome = iota
	// OutcomeStabilized means the population stayed constant for the
	// full stability window and the run halted early.
	OutcomeStabilized
)

// Config controls a single simulation run.
type Config struct {
	// Iterations is the maximum number of generation steps to apply.
	Iterations int
	// Window is the stability window length; zero selects DefaultWindow.
	Window int
	// ProgressEvery fires Progress once per this many generations.
	// Zero disables progress reporting.
	ProgressEvery int
	// Progress, when set, receives periodic (generation, population)
	// updates while the run is in flight.
	Progress func(generation, population int)
}

// Result is the complete outcome of one run. History[g] is the
// population at generation g; indexes are contiguous from zero through
// the final generation simulated. StabilizedAt is only meaningful when
// Outcome is OutcomeStabilized.
type Result struct {
	History      []int
	StabilizedAt int
	Outcome      Outcome
}

// Stabilized reports whether the run halted on a stable population.
func (r Result) Stabilized() bool { return r.Outcome == OutcomeStabilized }

// Generations returns the number of recorded generations, including
// generation zero.
func (r Result) Generations() int { return len(r.History) }

// Run drives sim for up to cfg.Iterations generations, recording the
// population after every step and halting early as soon as the
// stability detector reports a constant trailing window. The sim must
// already be seeded; Run never reseeds or resets it.
func Run(sim core.Sim, cfg Config) Result {
	detector := NewDetector(cfg.Window)
	progress := NewInterval(cfg.ProgressEvery)

	capacity := cfg.Iterations + 1
	if capacity < 1 {
		capacity = 1
	}
	history := make([]int, 1, capacity)
	history[0] = sim.Population()

	if start, ok := detector.Check(history); ok {
		// Only reachable with a window of one recorded generation.
		return Result{History: history, StabilizedAt: start, Outcome: OutcomeStabilized}
	}

	for step := 1; step <= cfg.Iterations; step++ {
		sim.Step()
		population := sim.Population()
		history = append(history, population)

		if start, ok := detector.Check(history); ok {
			return Result{History: history, StabilizedAt: start, Outcome: OutcomeStabilized}
		}

		if progress.Tick() && cfg.Progress != nil {
			cfg.Progress(step, population)
		}
	}

	return Result{History: history, Outcome: OutcomeExhausted}
}
