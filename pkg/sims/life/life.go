package life

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

// Life implements Conway's Game of Life on an unbounded grid. Only live
// cells are stored; everything else is implicitly dead.
type Life struct {
	cfg  Config
	live map[core.Point]struct{}
}

// New returns a Life simulation with an empty board.
func New(cfg Config) *Life {
	return &Life{cfg: cfg, live: map[core.Point]struct{}{}}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Population returns the number of live cells.
func (l *Life) Population() int { return len(l.live) }

// Contains reports whether the cell at p is alive.
func (l *Life) Contains(p core.Point) bool {
	_, ok := l.live[p]
	return ok
}

// SeedPattern inserts a live cell for every '1' in the pattern rows,
// translated by origin. Rows may differ in length; characters other
// than '1' leave the position dead. Coordinates may be negative.
func (l *Life) SeedPattern(rows []string, origin core.Point) {
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '1' {
				l.live[core.Pt(origin.X+x, origin.Y+y)] = struct{}{}
			}
		}
	}
}

// Reset clears the board and seeds a centered random soup using the
// provided seed.
func (l *Life) Reset(seed int64) {
	l.live = core.ScatterSoup(seed, l.cfg.SoupWidth, l.cfg.SoupHeight, l.cfg.SoupFill)
}

// Step advances the simulation by one generation. Neighbor counts are
// accumulated from live cells only, then the next live set is built and
// swapped in wholesale.
func (l *Life) Step() {
	counts := core.NewCounter(len(l.live))
	for p := range l.live {
		counts.Bump(p)
	}

	next := make(map[core.Point]struct{}, len(l.live))
	for p, n := range counts {
		if n == 3 || (n == 2 && l.Contains(p)) {
			next[p] = struct{}{}
		}
	}
	l.live = next
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
