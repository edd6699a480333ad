// Package simulate - input validation. Stage order:
//
//  1. Options-only sanity (memory capacity).
//  2. State shape (exact variable-set match) and value domain.
//  3. Schedule sanity (all stages checked before any sweep runs).
//
// Every check fails with a sentinel from types.go; no partial mutation
// ever happens on a rejected input.
package simulate

// validateOptions checks option combinations that do not depend on the
// model.
func validateOptions(o Options) error {
	if o.Memory < 0 {
		return ErrNegativeMemory
	}

	return nil
}

// validateStateShape verifies that state covers vars exactly: no missing
// entries, no extras. Value-domain checks are separate (spin vs boolean).
func validateStateShape(vars []string, state map[string]int) error {
	var v string
	for _, v = range vars {
		if _, ok := state[v]; !ok {
			return ErrMissingVariable
		}
	}
	if len(state) > len(vars) {
		return ErrExtraVariable
	}

	return nil
}

// validateSpinValues verifies every assignment is ±1.
func validateSpinValues(state map[string]int) error {
	var val int
	for _, val = range state {
		if val != 1 && val != -1 {
			return ErrInvalidSpinValue
		}
	}

	return nil
}

// validateBooleanValues verifies every assignment is 0 or 1.
func validateBooleanValues(state map[string]int) error {
	var val int
	for _, val = range state {
		if val != 0 && val != 1 {
			return ErrInvalidBooleanValue
		}
	}

	return nil
}

// validateSchedule rejects negative sweep counts and negative
// temperatures anywhere in the schedule, before the first sweep runs.
// Temperature 0 is legal (greedy descent); zero sweeps are a no-op stage.
func validateSchedule(s Schedule) error {
	var st Stage
	for _, st = range s {
		if st.Sweeps < 0 {
			return ErrNegativeSweeps
		}
		if st.T < 0 {
			return ErrNegativeTemperature
		}
	}

	return nil
}
