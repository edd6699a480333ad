// Package simulate implements the Metropolis spin-system state machines
// at the heart of spinopt: SpinSimulation for {±1} models and its
// boolean adapter BooleanSimulation for {0,1} models.
//
// A simulation owns one mutable assignment over the model's variable
// set, a read-only subgraph index built once at construction, an
// immutable snapshot of the initial assignment, and an optional bounded
// ring of pre-sweep snapshots.
//
// The subgraph index maps every variable to the terms that contain it.
// Because each squashed term is linear in each of its variables, flipping
// variable v negates exactly the terms containing v, so the energy delta
// of a candidate flip is
//
//	ΔE = −2 × Σ (coeff × ∏ state)  over the terms touching v,
//
// computable in O(degree of v) instead of O(model size). The Metropolis
// rule accepts the flip when ΔE ≤ 0, otherwise with probability
// exp(−ΔE/T) for T > 0; T == 0 is pure greedy descent.
//
// One sweep visits every variable exactly once, either in the canonical
// sorted order (InOrder) or in a fresh random permutation (Random).
// A temperature Schedule is a sequence of (temperature, sweeps) stages
// executed cumulatively; validation is all-or-nothing, so a rejected
// schedule never partially mutates the state.
//
// Determinism:
//   - Every simulation owns a private *rand.Rand; nothing touches the
//     global source. Same seed + same schedule + same sweep order ⇒
//     identical trajectories, across platforms.
//   - Reseed is explicit and call-scoped; it is never invoked implicitly
//     between sweeps.
//
// BooleanSimulation holds a spin simulation of the spin-recoded model
// and translates states through the affine map (0 ↦ +1, 1 ↦ −1) at the
// boundary, so a boolean run and the equivalent spin run with the same
// seed produce bit-identical trajectories after mapping.
//
// Concurrency: an instance is single-threaded and runs to completion;
// distinct instances share nothing mutable and may run in parallel.
//
// Errors (sentinel, see types.go): invalid state values, missing/extra
// state variables, negative sweep counts, negative temperatures, wrong
// model domain, negative history capacity.
package simulate
