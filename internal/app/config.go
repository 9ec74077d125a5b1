package app

import "flag"

// Config represents the command-line parameters for the simulator.
type Config struct {
	Sim        string
	Iterations int
	Width      int
	Window     int
	Seed       int64
	Out        string
	LogEvery   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:        "life",
		Iterations: 10000,
		Width:      9,
		Window:     50,
		Seed:       42,
		Out:        "result",
		LogEvery:   1000,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation rule to run")
	fs.IntVar(&c.Iterations, "iterations", c.Iterations, "maximum generations to simulate")
	fs.IntVar(&c.Width, "width", c.Width, "row width used to split the flat pattern string")
	fs.IntVar(&c.Window, "window", c.Window, "generations of constant population required for stabilization")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random-soup seeding when no pattern is given")
	fs.StringVar(&c.Out, "out", c.Out, "directory for the JSON result file")
	fs.IntVar(&c.LogEvery, "log-every", c.LogEvery, "progress logging interval in generations")
}
