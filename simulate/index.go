// Package simulate - the subgraph index: the precomputation that makes
// single-variable energy deltas cheap.
//
// The model is compiled once into dense form:
//   - vars:  sorted variable labels; dense index == position.
//   - terms: flattened (coefficient, member-indices) arrays; the constant
//     offset is kept separately (it never changes under flips).
//   - adj:   for each variable, the ids of the terms containing it.
//     Σ len(adj) equals the total key length across all terms.
//
// The index is structural: it depends only on which variables appear in
// which terms, never on the current assignment, so it is built once and
// shared read-only for the lifetime of the simulation.
//
// Complexity: construction O(total key length + V log V); siteValue is
// O(degree of the variable); value is O(total key length).
package simulate

import "github.com/katalvlaran/spinopt/poly"

// index is the compiled, read-only view of a spin model.
type index struct {
	vars   []string       // sorted labels; dense id == slice position
	pos    map[string]int // label → dense id
	coeffs []float64      // term id → coefficient (offset excluded)
	termAt [][]int        // term id → dense ids of its variables
	adj    [][]int        // dense id → term ids containing that variable
	offset float64        // constant part of the model
}

// newIndex compiles a canonical spin polynomial. The input is immutable
// for the run, so slices derived from it are safe to retain.
func newIndex(model poly.Poly) *index {
	vars := model.Variables()
	ix := &index{
		vars:   vars,
		pos:    make(map[string]int, len(vars)),
		adj:    make([][]int, len(vars)),
		offset: model.Offset(),
	}
	var i int
	var v string
	for i, v = range vars {
		ix.pos[v] = i
	}

	var term poly.Term
	for _, term = range model.Terms() {
		if len(term.Vars) == 0 {
			continue // offset handled separately
		}
		id := len(ix.coeffs)
		members := make([]int, len(term.Vars))
		for i, v = range term.Vars {
			members[i] = ix.pos[v]
		}
		ix.coeffs = append(ix.coeffs, term.Coeff)
		ix.termAt = append(ix.termAt, members)
		for _, m := range members {
			ix.adj[m] = append(ix.adj[m], id)
		}
	}

	return ix
}

// siteValue evaluates the energy contribution of all terms touching
// variable v under state: Σ coeff × ∏ state over each adjacent term.
// This is the quantity whose negated double is the flip delta.
func (ix *index) siteValue(state []int8, v int) float64 {
	var (
		sum  float64
		t, m int
	)
	for _, t = range ix.adj[v] {
		term := ix.coeffs[t]
		for _, m = range ix.termAt[t] {
			if state[m] < 0 {
				term = -term
			}
		}
		sum += term
	}

	return sum
}

// value evaluates the full model energy under state, offset included.
func (ix *index) value(state []int8) float64 {
	var (
		total = ix.offset
		t, m  int
	)
	for t = 0; t < len(ix.coeffs); t++ {
		term := ix.coeffs[t]
		for _, m = range ix.termAt[t] {
			if state[m] < 0 {
				term = -term
			}
		}
		total += term
	}

	return total
}
