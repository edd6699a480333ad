// Package simulate - the boolean adapter.
//
// BooleanSimulation is a pure wrapper: it owns a SpinSimulation of the
// spin-recoded model and translates assignments through the affine map
// (boolean 0 ↦ spin +1, 1 ↦ spin −1) at every boundary. No Metropolis
// logic is duplicated, which is what guarantees trajectory equivalence:
// a boolean run and the equivalent spin run with the same seed, order
// and schedule produce bit-identical states after mapping.
package simulate

import "github.com/katalvlaran/spinopt/poly"

// BooleanSimulation evolves a {0,1} assignment of a boolean model by
// delegating to a spin simulation of the recoded model. Create instances
// with NewBooleanSimulation; the zero value is not usable.
type BooleanSimulation struct {
	inner *SpinSimulation
}

// NewBooleanSimulation builds a simulation of a boolean-domain model.
// With no explicit initial state, every variable starts at 0 (which is
// spin +1 under the recoding, so defaults of the two kinds correspond).
//
// Errors: ErrDomainMismatch for spin models, ErrNegativeMemory, and the
// boolean state validation sentinels for a malformed InitialState.
func NewBooleanSimulation(model poly.Poly, opts ...Option) (*BooleanSimulation, error) {
	if model.Domain() != poly.Boolean {
		return nil, ErrDomainMismatch
	}

	var o = DefaultOptions()
	var apply Option
	for _, apply = range opts {
		apply(&o)
	}

	// Translate the initial state before delegating so that boolean
	// callers get boolean sentinels, not spin ones.
	spinOpts := []Option{WithMemory(o.Memory), WithOrder(o.Order), WithSeed(o.Seed)}
	spinModel := poly.ToSpin(model)
	if o.InitialState != nil {
		// Shape first: the recoded model has the same variable set.
		if err := validateStateShape(spinModel.Variables(), o.InitialState); err != nil {
			return nil, err
		}
		if err := validateBooleanValues(o.InitialState); err != nil {
			return nil, err
		}
		recoded, err := poly.BooleanStateToSpin(o.InitialState)
		if err != nil {
			return nil, ErrInvalidBooleanValue
		}
		spinOpts = append(spinOpts, WithInitialState(recoded))
	}

	inner, err := NewSpinSimulation(spinModel, spinOpts...)
	if err != nil {
		return nil, err
	}

	return &BooleanSimulation{inner: inner}, nil
}

// Variables returns the model's variable set in canonical sorted order.
func (b *BooleanSimulation) Variables() []string { return b.inner.Variables() }

// Memory returns the history capacity the simulation was built with.
func (b *BooleanSimulation) Memory() int { return b.inner.Memory() }

// State returns a copy of the current {0,1} assignment.
func (b *BooleanSimulation) State() map[string]int {
	return mustBoolean(b.inner.State())
}

// InitialState returns a copy of the {0,1} snapshot taken at construction.
func (b *BooleanSimulation) InitialState() map[string]int {
	return mustBoolean(b.inner.InitialState())
}

// Value returns the boolean model energy of the current assignment.
// The recoding preserves values exactly, so this is the inner energy.
func (b *BooleanSimulation) Value() float64 { return b.inner.Value() }

// SetState replaces the live assignment with a {0,1} state covering the
// variable set exactly. On error the live state is unchanged.
func (b *BooleanSimulation) SetState(state map[string]int) error {
	if err := validateStateShape(b.inner.ix.vars, state); err != nil {
		return err
	}
	if err := validateBooleanValues(state); err != nil {
		return err
	}
	recoded, err := poly.BooleanStateToSpin(state)
	if err != nil {
		return ErrInvalidBooleanValue
	}

	return b.inner.SetState(recoded)
}

// Reset restores the live assignment to the initial snapshot and clears
// history.
func (b *BooleanSimulation) Reset() { b.inner.Reset() }

// Reseed re-seeds the private RNG (0 ⇒ fixed default seed).
func (b *BooleanSimulation) Reseed(seed int64) { b.inner.Reseed(seed) }

// PastStates returns history + current state as {0,1} assignments, with
// the same k semantics as SpinSimulation.PastStates.
func (b *BooleanSimulation) PastStates(k int) []map[string]int {
	spinStates := b.inner.PastStates(k)
	out := make([]map[string]int, len(spinStates))
	var i int
	for i = range spinStates {
		out[i] = mustBoolean(spinStates[i])
	}

	return out
}

// Update runs sweeps full sweeps at temperature t on the recoded model.
func (b *BooleanSimulation) Update(t float64, sweeps int) error {
	return b.inner.Update(t, sweeps)
}

// ScheduleUpdate runs the schedule on the recoded model; validation and
// sweep semantics are exactly those of SpinSimulation.ScheduleUpdate.
func (b *BooleanSimulation) ScheduleUpdate(schedule Schedule) error {
	return b.inner.ScheduleUpdate(schedule)
}

// mustBoolean recodes an internal spin state; the inner simulation only
// ever holds ±1 values, so conversion cannot fail.
func mustBoolean(spin map[string]int) map[string]int {
	out, _ := poly.SpinStateToBoolean(spin)

	return out
}
