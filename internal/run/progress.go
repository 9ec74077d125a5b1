package run

// Interval triggers once every n events. It backs the driver's periodic
// progress reporting so callers are not called on every generation.
type Interval struct {
	every int
	count int
}

// NewInterval constructs an Interval firing every n ticks. Non-positive
// n disables it.
func NewInterval(n int) *Interval {
	return &Interval{every: n}
}

// Tick records one event and reports whether the interval elapsed.
func (i *Interval) Tick() bool {
	if i.every <= 0 {
		return false
	}
	i.count++
	if i.count >= i.every {
		i.count = 0
		return true
	}
	return false
}
