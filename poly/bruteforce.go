// Package poly - bruteforce reference minimizer.
//
// MinimizeBruteforce enumerates every assignment of the model's variable
// set and returns a minimum. It exists as a correctness oracle for tests
// and for tiny instances where exactness beats heuristics; anything
// larger belongs to the anneal package.
//
// Determinism: enumeration order is fixed (variables sorted, assignment
// bits counted up from zero, bit 0 ⇒ spin +1 / boolean 0), so ties
// always resolve to the same state.
//
// Complexity: O(2^N × total key length); rejected above
// MaxBruteforceVariables.
package poly

// MaxBruteforceVariables caps exhaustive enumeration. 2^26 evaluations is
// already minutes of work on commodity hardware; beyond that the cap
// protects callers from accidental astronomically long loops.
const MaxBruteforceVariables = 26

// MinimizeBruteforce returns a minimizing assignment and its value.
// For models with no variables it returns an empty state and the offset.
//
// Errors: ErrTooManyVariables when the variable set exceeds
// MaxBruteforceVariables.
func MinimizeBruteforce(p Poly) (map[string]int, float64, error) {
	vars := p.Variables()
	n := len(vars)
	if n > MaxBruteforceVariables {
		return nil, 0, ErrTooManyVariables
	}
	if n == 0 {
		return map[string]int{}, p.Offset(), nil
	}

	// zero/one are the domain's value pair for an unset/set bit.
	zero, one := 1, -1 // spin: bit 0 ⇒ +1
	if p.domain == Boolean {
		zero, one = 0, 1
	}

	var (
		state     = make(map[string]int, n)
		bestState map[string]int
		bestValue float64
		mask      uint64
		i         int
	)
	for mask = 0; mask < 1<<uint(n); mask++ {
		for i = 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				state[vars[i]] = one
			} else {
				state[vars[i]] = zero
			}
		}
		// State is complete and legal by construction; Value cannot fail.
		val, _ := p.Value(state)
		if bestState == nil || val < bestValue {
			bestValue = val
			bestState = make(map[string]int, n)
			for i = 0; i < n; i++ {
				bestState[vars[i]] = state[vars[i]]
			}
		}
	}

	return bestState, bestValue, nil
}
