// Package anneal - shared types, sentinel errors and run options.
package anneal

import (
	"errors"

	"github.com/katalvlaran/spinopt/poly"
	"github.com/katalvlaran/spinopt/simulate"
)

// Sentinel errors returned by the annealing drivers. Callers should
// match with errors.Is.
var (
	// ErrDomainMismatch - the model's domain does not match the driver
	// (boolean model passed to Spin, or spin model passed to Boolean).
	ErrDomainMismatch = errors.New("anneal: model domain does not match driver")

	// ErrNonPositiveDuration - a generated schedule needs at least one step.
	ErrNonPositiveDuration = errors.New("anneal: duration must be at least 1")

	// ErrInvalidTemperatureRange - hot/cold must satisfy hot >= cold >= 0.
	ErrInvalidTemperatureRange = errors.New("anneal: temperature range must satisfy hot >= cold >= 0")

	// ErrGeometricZeroTemperature - geometric cooling interpolates
	// multiplicatively and cannot reach or start from zero.
	ErrGeometricZeroTemperature = errors.New("anneal: geometric schedule requires positive temperatures")

	// ErrInvalidFlipProbability - flip probabilities must lie in [0, 1)
	// with start >= end.
	ErrInvalidFlipProbability = errors.New("anneal: flip probabilities must be in [0, 1) with start >= end")

	// ErrNoResults - Best was asked of an empty result set.
	ErrNoResults = errors.New("anneal: empty result set")
)

// ScheduleKind selects how temperatures are interpolated between the
// hot and cold ends of a generated schedule.
type ScheduleKind int

const (
	// Geometric interpolates multiplicatively; the classic annealing
	// cooldown and the default. Requires hot > 0 and cold > 0.
	Geometric ScheduleKind = iota

	// Linear interpolates additively and may cool all the way to zero.
	Linear
)

// String implements fmt.Stringer for log and error messages.
func (k ScheduleKind) String() string {
	switch k {
	case Geometric:
		return "geometric"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

// Range is an annealing temperature range, hot down to cold.
type Range struct {
	Hot  float64
	Cold float64
}

// Options configures an annealing run. The zero value of every field is
// replaced by the documented default; construct with DefaultOptions and
// apply functional setters.
type Options struct {
	// NumAnneals is the number of independent anneals to run. Values
	// below 1 yield an empty result set. Default 1.
	NumAnneals int

	// Duration is the number of schedule steps (one sweep each) when the
	// schedule is generated from a temperature range. Ignored when an
	// explicit Schedule is given. Default 1000.
	Duration int

	// Temperatures overrides the heuristic hot/cold range. Nil selects
	// the automatic TemperatureRange heuristic.
	Temperatures *Range

	// Kind selects the interpolation of generated schedules.
	// Default Geometric.
	Kind ScheduleKind

	// Schedule, when non-nil, is used verbatim and suppresses Duration,
	// Temperatures and Kind.
	Schedule simulate.Schedule

	// InitialState fixes the starting assignment of every anneal. Nil
	// draws a fresh uniform-random state per anneal.
	InitialState map[string]int

	// Order is the within-sweep visitation order. Default InOrder.
	Order simulate.SweepOrder

	// Seed drives all random choices of the run. Seed 0 selects a fixed
	// default stream.
	Seed int64

	// Workers caps the number of concurrent anneals. Values below 2 run
	// serially. Results are identical either way.
	Workers int
}

// DefaultOptions returns the baseline configuration: one anneal, a
// 1000-step geometric cooldown over the heuristic temperature range,
// in-order sweeps, serial execution.
func DefaultOptions() Options {
	return Options{
		NumAnneals: 1,
		Duration:   1000,
		Kind:       Geometric,
		Order:      simulate.InOrder,
		Workers:    1,
	}
}

// Option mutates Options in place.
type Option func(*Options)

// WithNumAnneals sets the number of independent anneals.
func WithNumAnneals(n int) Option {
	return func(o *Options) { o.NumAnneals = n }
}

// WithDuration sets the number of generated schedule steps.
func WithDuration(d int) Option {
	return func(o *Options) { o.Duration = d }
}

// WithTemperatures fixes the hot/cold range instead of the heuristic.
func WithTemperatures(hot, cold float64) Option {
	return func(o *Options) { o.Temperatures = &Range{Hot: hot, Cold: cold} }
}

// WithScheduleKind selects linear or geometric interpolation.
func WithScheduleKind(k ScheduleKind) Option {
	return func(o *Options) { o.Kind = k }
}

// WithSchedule supplies an explicit schedule, bypassing generation.
func WithSchedule(s simulate.Schedule) Option {
	return func(o *Options) { o.Schedule = s }
}

// WithInitialState fixes the starting assignment of every anneal. The
// state is interpreted in the driver's domain (spin values for Spin,
// bits for Boolean).
func WithInitialState(state map[string]int) Option {
	return func(o *Options) { o.InitialState = state }
}

// WithOrder sets the within-sweep visitation order.
func WithOrder(order simulate.SweepOrder) Option {
	return func(o *Options) { o.Order = order }
}

// WithSeed pins the base RNG seed for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers caps concurrent anneals; below 2 means serial.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// buildOptions folds functional setters over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Result is the outcome of one anneal: the final assignment and its
// model value (offset included).
type Result struct {
	State map[string]int
	Value float64
}

// toDomain converts one result's state between domains.
func (r Result) toDomain(target poly.Domain) (Result, error) {
	var (
		state map[string]int
		err   error
	)
	if target == poly.Boolean {
		state, err = poly.SpinStateToBoolean(r.State)
	} else {
		state, err = poly.BooleanStateToSpin(r.State)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{State: state, Value: r.Value}, nil
}
