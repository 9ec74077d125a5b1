package main

import (
	"flag"
	"log"
	"time"

	"cellula/internal/app"
	"cellula/internal/pattern"
	"cellula/internal/result"
	"cellula/internal/run"
	_ "cellula/internal/sims/highlife"
	"cellula/pkg/core"
	_ "cellula/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim := factory(nil)

	name := "soup"
	if flag.NArg() > 0 {
		bits := flag.Arg(0)
		rows := pattern.Split(bits, cfg.Width)
		origin := pattern.CenterOrigin(cfg.Width, len(rows))

		seeder, ok := sim.(core.PatternSeeder)
		if !ok {
			log.Fatalf("sim %q cannot seed a pattern", cfg.Sim)
		}
		log.Printf("seeding %d rows centered at (%d,%d)", len(rows), origin.X, origin.Y)
		seeder.SeedPattern(rows, origin)
		name = bits
	} else {
		log.Printf("no pattern given, seeding random soup with seed %d", cfg.Seed)
		sim.Reset(cfg.Seed)
	}
	log.Printf("running %s for up to %d generations, starting population %d",
		sim.Name(), cfg.Iterations, sim.Population())

	start := time.Now()
	res := run.Run(sim, run.Config{
		Iterations:    cfg.Iterations,
		Window:        cfg.Window,
		ProgressEvery: cfg.LogEvery,
		Progress: func(generation, population int) {
			log.Printf("generation %d: population %d", generation, population)
		},
	})
	elapsed := time.Since(start)

	if res.Stabilized() {
		final := res.History[len(res.History)-1]
		log.Printf("population stabilized at %d from generation %d (%s)",
			final, res.StabilizedAt, elapsed.Round(time.Millisecond))
	} else {
		log.Printf("completed all %d generations without stabilizing (%s)",
			cfg.Iterations, elapsed.Round(time.Millisecond))
	}

	path, err := result.Write(cfg.Out, name, res)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("generation data written to %s", path)
}
