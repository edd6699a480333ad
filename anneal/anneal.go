// Package anneal - the annealing drivers.
package anneal

import (
	"sync"

	"github.com/katalvlaran/spinopt/poly"
	"github.com/katalvlaran/spinopt/simulate"
)

// Spin anneals a spin model: NumAnneals independent Metropolis runs
// through the resolved cooling schedule, each from a fresh random
// starting state unless one is fixed. Results arrive in anneal order.
//
// Contracts:
//   - model must be in the spin domain (ErrDomainMismatch otherwise).
//   - NumAnneals < 1 returns an empty result set, no error.
//   - A model with no variable terms returns NumAnneals copies of the
//     offset with an empty state; no sweeps run.
//   - Identical Options (including Seed) reproduce identical Results,
//     regardless of Workers.
//
// Complexity: O(NumAnneals × duration × Σ degree) sweep work, fanned
// out across Workers goroutines when Workers > 1.
func Spin(model poly.Poly, opts ...Option) (Results, error) {
	if model.Domain() != poly.Spin {
		return Results{}, ErrDomainMismatch
	}
	return run(model, buildOptions(opts), poly.Spin)
}

// Boolean anneals a boolean model. The model is recoded to spins once,
// annealed exactly as Spin would, and the result states are mapped back
// to bits. A fixed InitialState is interpreted as bits.
//
// Contracts match Spin, with ErrDomainMismatch for spin-domain input.
func Boolean(model poly.Poly, opts ...Option) (Results, error) {
	if model.Domain() != poly.Boolean {
		return Results{}, ErrDomainMismatch
	}
	o := buildOptions(opts)

	// The recoding preserves values, so annealing the spin twin is
	// equivalent; only the states need translating at the edges.
	spinModel := poly.ToSpin(model)
	var err error
	if o.InitialState != nil {
		if o.InitialState, err = poly.BooleanStateToSpin(o.InitialState); err != nil {
			return Results{}, err
		}
	}

	res, err := run(spinModel, o, poly.Spin)
	if err != nil {
		return Results{}, err
	}
	return res.ToBoolean()
}

// run executes the batch over a spin model.
func run(model poly.Poly, o Options, domain poly.Domain) (Results, error) {
	out := Results{Domain: domain}
	if o.NumAnneals < 1 {
		return out, nil
	}

	schedule, err := runSchedule(model, o)
	if err != nil {
		return Results{}, err
	}

	vars := model.Variables()
	out.All = make([]Result, o.NumAnneals)

	// Offset-only model: nothing to sweep.
	if len(vars) == 0 {
		var i int
		for i = range out.All {
			out.All[i] = Result{State: map[string]int{}, Value: model.Offset()}
		}
		return out, nil
	}

	var k int
	if o.Workers < 2 || o.NumAnneals == 1 {
		for k = 0; k < o.NumAnneals; k++ {
			if out.All[k], err = runOne(model, o, schedule, vars, k); err != nil {
				return Results{}, err
			}
		}
		return out, nil
	}

	// Parallel fan-out. Each goroutine owns a distinct slot of out.All
	// and errs, so no mutex is needed; the semaphore caps concurrency.
	var (
		wg   sync.WaitGroup
		sem  = make(chan struct{}, o.Workers)
		errs = make([]error, o.NumAnneals)
	)
	for k = 0; k < o.NumAnneals; k++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			out.All[idx], errs[idx] = runOne(model, o, schedule, vars, idx)
		}(k)
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return Results{}, e
		}
	}
	return out, nil
}

// runOne performs anneal number k with its two private RNG streams.
func runOne(model poly.Poly, o Options, schedule simulate.Schedule, vars []string, k int) (Result, error) {
	stateSeed, simSeed := annealStreams(o.Seed, k)

	initial := o.InitialState
	if initial == nil {
		initial = randomSpinState(vars, stateSeed)
	}

	sim, err := simulate.NewSpinSimulation(model,
		simulate.WithInitialState(initial),
		simulate.WithOrder(o.Order),
		simulate.WithSeed(simSeed),
	)
	if err != nil {
		return Result{}, err
	}
	if err = sim.ScheduleUpdate(schedule); err != nil {
		return Result{}, err
	}
	return Result{State: sim.State(), Value: sim.Value()}, nil
}
