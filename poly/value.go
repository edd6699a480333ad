// Package poly - objective value evaluators for both domains.
//
// Contracts:
//   - Value demands a complete, legal state: every variable of the model
//     must be assigned a value from the domain. Missing assignments and
//     out-of-domain values are hard errors, never defaulted.
//   - Extra keys in the state map are ignored (the model simply does not
//     reference them).
//
// Complexity: O(total key length across all terms).
package poly

// Value evaluates the polynomial under state:
//
//	spin:    Σ coeff × ∏ state[v]        (each factor ±1)
//	boolean: Σ coeff × ∏ state[v]        (term counts iff all vars are 1)
//
// Errors: ErrMissingVariable if a referenced variable is unassigned,
// ErrInvalidStateValue if an assigned value is outside the domain.
func (p Poly) Value(state map[string]int) (float64, error) {
	// Validate the referenced assignments up front so that evaluation is
	// all-or-nothing (no partial sums on malformed input).
	if err := p.validateState(state); err != nil {
		return 0, err
	}

	var (
		total float64
		k     string
		c     float64
		v     string
	)
	for k, c = range p.terms {
		term := c
		for _, v = range decodeKey(k) {
			if p.domain == Spin {
				if state[v] == -1 {
					term = -term
				}
			} else if state[v] == 0 {
				term = 0
				break
			}
		}
		total += term
	}

	return total, nil
}

// validateState checks completeness and domain membership of state with
// respect to the model's variable set.
func (p Poly) validateState(state map[string]int) error {
	var k, v string
	for k = range p.terms {
		for _, v = range decodeKey(k) {
			val, ok := state[v]
			if !ok {
				return ErrMissingVariable
			}
			if !legalValue(p.domain, val) {
				return ErrInvalidStateValue
			}
		}
	}

	return nil
}

// legalValue reports whether val belongs to the domain.
func legalValue(d Domain, val int) bool {
	if d == Spin {
		return val == 1 || val == -1
	}

	return val == 0 || val == 1
}
