// Package spinopt is your in-memory toolkit for formulating boolean and
// spin polynomial objectives (PUBO / QUBO / PUSO / QUSO) and minimizing
// them with Metropolis simulated annealing.
//
// 🚀 What is spinopt?
//
//	A deterministic, dependency-light library that brings together:
//		• Polynomial models: canonical monomial dictionaries over {0,1} or {±1}
//		• Exact conversions: boolean ↔ spin transcriptions that preserve values
//		• Simulation: a subgraph-indexed Metropolis engine with temperature schedules
//		• Annealing: a multi-restart driver with linear/geometric cooling
//		• Reference solving: bruteforce minimization for small instances
//
// ✨ Why choose spinopt?
//
//   - Reproducible – every random choice flows from an explicit seed
//   - Fast inner loop – flipping one variable costs O(degree of that variable)
//   - Strict contracts – sentinel errors, no silent coercion of bad states
//   - Pure Go – no cgo, no hidden machinery
//
// Everything is organized under focused subpackages:
//
//	poly/     — polynomial value type, canonicalization, evaluation, conversion
//	simulate/ — SpinSimulation + BooleanSimulation (Metropolis state machines)
//	anneal/   — annealing driver, cooling schedules, temperature heuristic
//	cmd/      — the spinopt CLI (YAML problems in, results out)
//
// Quick sketch (3-spin ferromagnetic chain):
//
//	    z0───z1───z2        H = −z0·z1 − z1·z2
//
//	h := poly.NewSpin(
//	    poly.Term{Vars: []string{"z0", "z1"}, Coeff: -1},
//	    poly.Term{Vars: []string{"z1", "z2"}, Coeff: -1},
//	)
//	res, err := anneal.Spin(h, anneal.WithNumAnneals(5), anneal.WithSeed(7))
//	best, _ := res.Best() // best.Value == -2 with all spins aligned
//
// Start with poly to build a model, simulate to study its dynamics, and
// anneal to search for low-energy states.
package spinopt
