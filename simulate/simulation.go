// Package simulate - the SpinSimulation state machine.
//
// Contracts:
//   - The model is immutable for the run; the subgraph index is built
//     once at construction and never rebuilt (Reset keeps it).
//   - ScheduleUpdate validates the whole schedule first; a rejected call
//     leaves state, history and RNG untouched.
//   - All exposed states are defensive copies; internal buffers never
//     escape.
//
// Hot-path discipline: the live assignment is a dense []int8 indexed by
// the index's variable order; one permutation buffer is reused across
// sweeps; map conversion happens only at the API boundary.
package simulate

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/spinopt/poly"
)

// SpinSimulation evolves a {±1} assignment of a spin model under the
// Metropolis rule. Create instances with NewSpinSimulation; the zero
// value is not usable.
type SpinSimulation struct {
	ix      *index
	state   []int8
	initial []int8
	hist    *history
	rng     *rand.Rand
	order   SweepOrder
	perm    []int // reusable visitation buffer, len == len(ix.vars)
}

// NewSpinSimulation builds a simulation of a spin-domain model.
// With no explicit initial state, every spin starts at +1.
//
// Errors: ErrDomainMismatch for boolean models (recode with the
// BooleanSimulation adapter instead), ErrNegativeMemory, and the state
// validation sentinels for a malformed InitialState.
//
// Complexity: O(total key length + V log V).
func NewSpinSimulation(model poly.Poly, opts ...Option) (*SpinSimulation, error) {
	if model.Domain() != poly.Spin {
		return nil, ErrDomainMismatch
	}

	var o = DefaultOptions()
	var apply Option
	for _, apply = range opts {
		apply(&o)
	}
	if err := validateOptions(o); err != nil {
		return nil, err
	}

	ix := newIndex(model)
	s := &SpinSimulation{
		ix:    ix,
		hist:  newHistory(o.Memory),
		rng:   rngFromSeed(o.Seed),
		order: o.Order,
		perm:  make([]int, len(ix.vars)),
	}

	s.initial = make([]int8, len(ix.vars))
	if o.InitialState == nil {
		var i int
		for i = range s.initial {
			s.initial[i] = 1
		}
	} else {
		packed, err := s.pack(o.InitialState)
		if err != nil {
			return nil, err
		}
		s.initial = packed
	}
	s.state = make([]int8, len(s.initial))
	copy(s.state, s.initial)

	return s, nil
}

// pack validates a spin assignment against the model's variable set and
// converts it to the dense representation.
func (s *SpinSimulation) pack(state map[string]int) ([]int8, error) {
	if err := validateStateShape(s.ix.vars, state); err != nil {
		return nil, err
	}
	if err := validateSpinValues(state); err != nil {
		return nil, err
	}
	packed := make([]int8, len(s.ix.vars))
	var i int
	var v string
	for i, v = range s.ix.vars {
		packed[i] = int8(state[v])
	}

	return packed, nil
}

// unpack converts a dense assignment to a fresh label→value map.
func (s *SpinSimulation) unpack(state []int8) map[string]int {
	out := make(map[string]int, len(state))
	var i int
	var v string
	for i, v = range s.ix.vars {
		out[v] = int(state[i])
	}

	return out
}

// Variables returns the model's variable set in canonical sorted order.
func (s *SpinSimulation) Variables() []string {
	out := make([]string, len(s.ix.vars))
	copy(out, s.ix.vars)

	return out
}

// Memory returns the history capacity the simulation was built with.
func (s *SpinSimulation) Memory() int { return s.hist.capacity }

// State returns a copy of the current assignment.
func (s *SpinSimulation) State() map[string]int { return s.unpack(s.state) }

// InitialState returns a copy of the snapshot taken at construction.
func (s *SpinSimulation) InitialState() map[string]int { return s.unpack(s.initial) }

// Value returns the model energy of the current assignment, offset
// included. O(total key length).
func (s *SpinSimulation) Value() float64 { return s.ix.value(s.state) }

// SetState replaces the live assignment. The supplied state must cover
// the variable set exactly with ±1 values; on error the live state is
// unchanged. History is not touched.
func (s *SpinSimulation) SetState(state map[string]int) error {
	packed, err := s.pack(state)
	if err != nil {
		return err
	}
	copy(s.state, packed)

	return nil
}

// Reset restores the live assignment to the initial snapshot and clears
// history. The subgraph index is structural and is kept as-is.
func (s *SpinSimulation) Reset() {
	copy(s.state, s.initial)
	s.hist.clear()
}

// Reseed re-seeds the simulation's private RNG (0 ⇒ fixed default seed).
// This is the only reseeding path; sweeps never reseed implicitly.
func (s *SpinSimulation) Reseed(seed int64) { s.rng = rngFromSeed(seed) }

// PastStates returns the most recent pre-sweep snapshots followed by the
// current live state, oldest first:
//
//	k == 1  ⇒ [current]
//	k ≤ 0   ⇒ all retained history + current
//	k > 1   ⇒ the last k−1 snapshots + current
//
// Each returned map is an independent copy.
func (s *SpinSimulation) PastStates(k int) []map[string]int {
	if k == 1 {
		return []map[string]int{s.State()}
	}

	var snaps [][]int8
	if k <= 0 {
		snaps = s.hist.last(0)
	} else {
		snaps = s.hist.last(k - 1)
	}
	out := make([]map[string]int, 0, len(snaps)+1)
	var snap []int8
	for _, snap = range snaps {
		out = append(out, s.unpack(snap))
	}

	return append(out, s.State())
}

// Update runs sweeps full sweeps at temperature t. It is exactly
// ScheduleUpdate(Schedule{{T: t, Sweeps: sweeps}}).
func (s *SpinSimulation) Update(t float64, sweeps int) error {
	return s.ScheduleUpdate(Schedule{{T: t, Sweeps: sweeps}})
}

// ScheduleUpdate runs the schedule's stages in order, cumulatively.
// The whole schedule is validated before the first sweep; a rejected
// schedule leaves the simulation untouched.
//
// One sweep: snapshot the pre-sweep state into history (if enabled),
// then visit every variable once — canonical order for InOrder, a fresh
// Fisher–Yates permutation for Random — and apply the Metropolis rule:
//
//	ΔE = −2·siteValue(v); accept if ΔE ≤ 0, else with prob exp(−ΔE/T).
//
// A uniform draw is consumed only when ΔE > 0 and T > 0, matching the
// short-circuit acceptance rule.
//
// Complexity: O(Σ sweeps × (V + Σ degree)) ≈ O(total schedule work).
func (s *SpinSimulation) ScheduleUpdate(schedule Schedule) error {
	if err := validateSchedule(schedule); err != nil {
		return err
	}

	var (
		stage Stage
		sweep int
	)
	for _, stage = range schedule {
		for sweep = 0; sweep < stage.Sweeps; sweep++ {
			s.hist.push(s.state)
			s.runSweep(stage.T)
		}
	}

	return nil
}

// runSweep performs one full sweep at temperature t.
func (s *SpinSimulation) runSweep(t float64) {
	identityPerm(s.perm)
	if s.order == Random {
		shuffleIntsInPlace(s.perm, s.rng)
	}

	var (
		v  int
		dE float64
	)
	for _, v = range s.perm {
		// Flipping v negates every term containing it (terms are linear
		// in each squashed variable), so the delta is minus twice the
		// site value.
		dE = -2 * s.ix.siteValue(s.state, v)
		if dE <= 0 || (t > 0 && s.rng.Float64() < math.Exp(-dE/t)) {
			s.state[v] = -s.state[v]
		}
	}
}
