// Package montecarlo quantifies plan robustness by rerunning the
// projection engine under randomized growth and inflation assumptions.
package montecarlo

import (
	"math"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"firecast/internal/engine"
	"firecast/internal/model"
)

// DefaultRuns is the trial count used when Options.Runs is zero.
const DefaultRuns = 2500

// Options controls a simulation. The zero value means 2500 trials,
// one worker per CPU, and a non-deterministic seed.
type Options struct {
	Runs int
	// Seed makes the simulation reproducible. Zero draws a random seed.
	Seed uint64
	// Workers caps concurrent trials; <= 0 means GOMAXPROCS.
	Workers int
}

// Simulate runs opts.Runs independent trials of the plan. Each trial
// redraws savings growth, retirement growth, and inflation from normal
// distributions centered on the configured rates with standard
// deviation proportional to their magnitude (10% for the growth rates,
// 5% for inflation). A configured rate of zero therefore has zero
// variance and is never perturbed.
//
// Trials run concurrently; each derives its generator from (seed,
// trial index), so a fixed seed reproduces results regardless of
// scheduling, and AllNetWorths[i] always belongs to trial i.
func Simulate(in model.PlanInputs, opts Options) model.MonteCarloResult {
	runs := opts.Runs
	if runs <= 0 {
		runs = DefaultRuns
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	terminal := make([]float64, runs)
	succeeded := make([]bool, runs)

	var g errgroup.Group
	g.SetLimit(workers)
	for trial := 0; trial < runs; trial++ {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, uint64(trial)))

			varied := in
			varied.SavingsGrowth = draw(rng, in.SavingsGrowth, 0.1)
			varied.RetirementGrowth = draw(rng, in.RetirementGrowth, 0.1)
			varied.Inflation = draw(rng, in.Inflation, 0.05)

			p := engine.Project(varied)
			terminal[trial] = p.FinalNetWorth()
			succeeded[trial] = p.Succeeded()
			return nil
		})
	}
	_ = g.Wait() // trials never fail

	successes := 0
	for _, ok := range succeeded {
		if ok {
			successes++
		}
	}

	return model.MonteCarloResult{
		Runs:                 runs,
		SuccessRate:          float64(successes) / float64(runs),
		MedianNetWorth:       Percentile(terminal, 50),
		Percentile10NetWorth: Percentile(terminal, 10),
		AllNetWorths:         terminal,
	}
}

// draw samples Normal(mean, |mean|*sdFrac). A zero mean is returned
// unchanged (degenerate distribution).
func draw(rng *rand.Rand, mean, sdFrac float64) float64 {
	sd := math.Abs(mean) * sdFrac
	if sd == 0 {
		return mean
	}
	return rng.NormFloat64()*sd + mean
}
