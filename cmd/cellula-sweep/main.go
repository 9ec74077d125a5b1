package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"cellula/internal/run"
	_ "cellula/internal/sims/highlife"
	"cellula/pkg/core"
	_ "cellula/pkg/sims/life"
)

type sweepResult struct {
	seed         int64
	stabilized   bool
	stabilizedAt int
	generations  int
	finalPop     int
	peakPop      int
}

func (r sweepResult) String() string {
	if r.stabilized {
		return fmt.Sprintf("seed=%d stabilized@%d pop=%d peak=%d", r.seed, r.stabilizedAt, r.finalPop, r.peakPop)
	}
	return fmt.Sprintf("seed=%d survived %d generations pop=%d peak=%d", r.seed, r.generations-1, r.finalPop, r.peakPop)
}

func main() {
	simName := flag.String("sim", "life", "simulation rule to sweep")
	runs := flag.Int("runs", 256, "number of soup seeds to try")
	iterations := flag.Int("iterations", 5000, "generation budget per seed")
	window := flag.Int("window", 50, "stability window in generations")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	soupW := flag.Int("soup-w", 32, "soup width in cells")
	soupH := flag.Int("soup-h", 32, "soup height in cells")
	soupFill := flag.Float64("soup-fill", 0.35, "soup fill probability")
	flag.Parse()

	factory, ok := core.Sims()[*simName]
	if !ok {
		log.Fatalf("unknown sim %q", *simName)
	}

	simCfg := map[string]string{
		"soup_w":    strconv.Itoa(*soupW),
		"soup_h":    strconv.Itoa(*soupH),
		"soup_fill": strconv.FormatFloat(*soupFill, 'f', -1, 64),
	}
	runCfg := run.Config{Iterations: *iterations, Window: *window}

	fmt.Printf("Sweeping %d seeds (%d workers, budget %d, %dx%d soup)\n",
		*runs, *workers, *iterations, *soupW, *soupH)

	jobs := make(chan int64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(factory, simCfg, seed, runCfg)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for seed := int64(1); seed <= int64(*runs); seed++ {
			jobs <- seed
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	survivors := 0
	for res := range results {
		all = append(all, res)
		if !res.stabilized {
			survivors++
			fmt.Printf("Survivor: %s\n", res)
		}
	}

	// Longest-lived soups first: survivors, then late stabilizers.
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.stabilized != b.stabilized {
			return !a.stabilized
		}
		if a.stabilized {
			return a.stabilizedAt > b.stabilizedAt
		}
		return a.finalPop > b.finalPop
	})
	elapsed := time.Since(start)

	fmt.Printf("\n%d of %d seeds never stabilized. Top 5 (elapsed %s):\n",
		survivors, *runs, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}
}

func runSeed(factory core.Factory, simCfg map[string]string, seed int64, runCfg run.Config) sweepResult {
	sim := factory(simCfg)
	sim.Reset(seed)

	res := run.Run(sim, runCfg)

	peak := 0
	for _, pop := range res.History {
		if pop > peak {
			peak = pop
		}
	}

	return sweepResult{
		seed:         seed,
		stabilized:   res.Stabilized(),
		stabilizedAt: res.StabilizedAt,
		generations:  res.Generations(),
		finalPop:     res.History[len(res.History)-1],
		peakPop:      peak,
	}
}
