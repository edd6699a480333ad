// Package simulate - sentinel errors, schedule types and configuration
// options for the Metropolis state machines.
package simulate

import "errors"

// Sentinel errors returned by the simulate package.
var (
	// ErrInvalidSpinValue indicates a spin assignment with a value outside {−1, +1}.
	ErrInvalidSpinValue = errors.New("simulate: spin state values must be -1 or +1")

	// ErrInvalidBooleanValue indicates a boolean assignment with a value outside {0, 1}.
	ErrInvalidBooleanValue = errors.New("simulate: boolean state values must be 0 or 1")

	// ErrMissingVariable indicates a supplied state lacking an assignment
	// for some model variable. Missing entries are never defaulted.
	ErrMissingVariable = errors.New("simulate: state is missing a model variable")

	// ErrExtraVariable indicates a supplied state assigning a variable the
	// model does not reference; the state domain must match exactly.
	ErrExtraVariable = errors.New("simulate: state assigns a variable outside the model")

	// ErrNegativeSweeps indicates a schedule stage with a negative sweep count.
	ErrNegativeSweeps = errors.New("simulate: sweep count must be non-negative")

	// ErrNegativeTemperature indicates a schedule stage with a negative
	// temperature. Zero is legal and means greedy descent.
	ErrNegativeTemperature = errors.New("simulate: temperature must be non-negative")

	// ErrDomainMismatch indicates a model of the wrong domain: boolean
	// input to NewSpinSimulation or spin input to NewBooleanSimulation.
	ErrDomainMismatch = errors.New("simulate: model domain does not match the simulation kind")

	// ErrNegativeMemory indicates a negative history capacity.
	ErrNegativeMemory = errors.New("simulate: memory must be non-negative")
)

// Stage is one entry of a temperature schedule: run Sweeps full sweeps at
// temperature T. T must be ≥ 0 and Sweeps ≥ 0.
type Stage struct {
	T      float64
	Sweeps int
}

// Schedule is an ordered sequence of stages, executed cumulatively (the
// state is never reset between stages).
type Schedule []Stage

// SweepOrder selects how one sweep visits the model variables.
//
//   - Random: a fresh replacement-free random permutation per sweep;
//     the more physically realistic sampling mode.
//   - InOrder: the canonical sorted variable order; deterministic
//     visitation, usually preferable when annealing to convergence.
type SweepOrder int

const (
	// Random visits variables in a fresh random permutation each sweep.
	Random SweepOrder = iota

	// InOrder visits variables in canonical sorted-label order.
	InOrder
)

// Options configures a simulation instance.
//
//   - InitialState: explicit initial assignment covering the model's
//     variable set exactly; nil ⇒ all +1 (spin) / all 0 (boolean).
//   - Memory: capacity of the pre-sweep snapshot ring; 0 disables history.
//   - Order: sweep visitation mode (default Random).
//   - Seed: seed for the instance's private RNG; 0 ⇒ a fixed default
//     seed, so the zero Options value is still fully reproducible.
type Options struct {
	InitialState map[string]int
	Memory       int
	Order        SweepOrder
	Seed         int64
}

// Option is a functional option for configuring a simulation.
type Option func(*Options)

// WithInitialState sets the explicit initial assignment. The map is read
// at construction; the simulation stores its own copy.
func WithInitialState(state map[string]int) Option {
	return func(o *Options) { o.InitialState = state }
}

// WithMemory sets the bounded history capacity (0 disables history).
// Negative capacities are rejected at construction with ErrNegativeMemory.
func WithMemory(capacity int) Option {
	return func(o *Options) { o.Memory = capacity }
}

// WithOrder sets the sweep visitation mode.
func WithOrder(order SweepOrder) Option {
	return func(o *Options) { o.Order = order }
}

// WithSeed seeds the instance's private RNG (0 ⇒ fixed default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the baseline configuration: default all-ones /
// all-zeros initial state, no history, Random sweep order, default seed.
func DefaultOptions() Options {
	return Options{}
}
