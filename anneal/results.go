package anneal

import (
	"sort"

	"github.com/katalvlaran/spinopt/poly"
)

// Results collects the outcomes of a batch of independent anneals, in
// run order. All states share one domain.
type Results struct {
	// Domain is the variable encoding of every State in All.
	Domain poly.Domain

	// All holds one Result per anneal, in the order the anneals were
	// numbered (stable across serial and parallel execution).
	All []Result
}

// Len reports the number of collected results.
func (r Results) Len() int { return len(r.All) }

// Best returns the result with the minimum value. Ties go to the
// earliest anneal. Returns ErrNoResults on an empty set.
func (r Results) Best() (Result, error) {
	if len(r.All) == 0 {
		return Result{}, ErrNoResults
	}
	best := r.All[0]
	for _, res := range r.All[1:] {
		if res.Value < best.Value {
			best = res
		}
	}
	return best, nil
}

// Sort orders All by ascending value, keeping the run order among equal
// values.
func (r Results) Sort() {
	sort.SliceStable(r.All, func(i, j int) bool {
		return r.All[i].Value < r.All[j].Value
	})
}

// ToBoolean returns a copy of the results with every state recoded to
// bits. Values are unchanged; the recoding preserves them exactly. A
// set already in the boolean domain is returned as-is.
func (r Results) ToBoolean() (Results, error) {
	return r.convert(poly.Boolean)
}

// ToSpin returns a copy of the results with every state recoded to
// spins. A set already in the spin domain is returned as-is.
func (r Results) ToSpin() (Results, error) {
	return r.convert(poly.Spin)
}

func (r Results) convert(target poly.Domain) (Results, error) {
	if r.Domain == target {
		return r, nil
	}
	out := Results{Domain: target, All: make([]Result, len(r.All))}
	var (
		i   int
		err error
	)
	for i = range r.All {
		out.All[i], err = r.All[i].toDomain(target)
		if err != nil {
			return Results{}, err
		}
	}
	return out, nil
}
