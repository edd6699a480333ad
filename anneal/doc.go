// Package anneal runs simulated annealing over spin and boolean
// polynomial models built with package poly, driving the Metropolis
// engine from package simulate through a cooling schedule.
//
// What this package covers:
//
//   - Temperature schedules: linear or geometric interpolation between a
//     hot and a cold temperature, one sweep per step, or a fully explicit
//     simulate.Schedule supplied by the caller.
//   - A temperature-range heuristic that picks hot/cold so a bit flips
//     against the energy gradient with a chosen probability at the start
//     and at the end of the anneal.
//   - Repeated independent anneals (NumAnneals) with fresh uniform-random
//     starting states, collected into a Results set with best-value
//     tracking and domain conversion views.
//   - Optional parallel fan-out across workers. Per-anneal RNG streams
//     are derived with a SplitMix64 mix from the base seed, so a run with
//     Workers > 1 produces exactly the same Results as a serial run.
//
// Determinism: a fixed Seed fully determines every anneal, including the
// random starting states, regardless of the worker count. Seed 0 selects
// a fixed default stream.
//
// Errors are sentinel values declared in types.go and are returned, never
// panicked.
package anneal
