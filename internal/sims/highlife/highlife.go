package highlife

import (
	"strconv"

	"cellula/pkg/core"
)

// Config holds the random-soup seeding parameters used by Reset.
type Config struct {
	SoupWidth  int
	SoupHeight int
	SoupFill   float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{SoupWidth: 64, SoupHeight: 64, SoupFill: 0.35}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["soup_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SoupWidth = parsed
		}
	}
	if v, ok := cfg["soup_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SoupHeight = parsed
		}
	}
	if v, ok := cfg["soup_fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SoupFill = parsed
		}
	}
	return c
}

// HighLife implements the B36/S23 rule on an unbounded grid. It differs
// from Conway's rule only in the extra birth condition at six neighbors,
// which makes the replicator pattern possible.
type HighLife struct {
	cfg  Config
	live map[core.Point]struct{}
}

// New returns a HighLife simulation with an empty board.
func New(cfg Config) *HighLife {
	return &HighLife{cfg: cfg, live: map[core.Point]struct{}{}}
}

// Name identifies the simulation.
func (h *HighLife) Name() string { return "highlife" }

// Population returns the number of live cells.
func (h *HighLife) Population() int { return len(h.live) }

// Contains reports whether the cell at p is alive.
func (h *HighLife) Contains(p core.Point) bool {
	_, ok := h.live[p]
	return ok
}

// SeedPattern inserts a live cell for every '1' in the pattern rows,
// translated by origin.
func (h *HighLife) SeedPattern(rows []string, origin core.Point) {
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '1' {
				h.live[core.Pt(origin.X+x, origin.Y+y)] = struct{}{}
			}
		}
	}
}

// Reset clears the board and seeds a centered random soup using the
// provided seed.
func (h *HighLife) Reset(seed int64) {
	h.live = core.ScatterSoup(seed, h.cfg.SoupWidth, h.cfg.SoupHeight, h.cfg.SoupFill)
}

// Step advances the automaton by one generation.
func (h *HighLife) Step() {
	counts := core.NewCounter(len(h.live))
	for p := range h.live {
		counts.Bump(p)
	}

	next := make(map[core.Point]struct{}, len(h.live))
	for p, n := range counts {
		alive := h.Contains(p)
		if n == 3 || (n == 6 && !alive) || (n == 2 && alive) {
			next[p] = struct{}{}
		}
	}
	h.live = next
}

func init() {
	core.Register("highlife", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
