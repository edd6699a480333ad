package poly

import "errors"

// Sentinel errors returned by the poly package.
var (
	// ErrDomainMismatch indicates that two polynomials (or a polynomial and
	// a consumer) disagree on the variable domain (spin vs boolean).
	ErrDomainMismatch = errors.New("poly: domain mismatch")

	// ErrInvalidStateValue indicates that a state assigns a value outside
	// the legal domain: {−1, +1} for spin, {0, 1} for boolean.
	ErrInvalidStateValue = errors.New("poly: state value outside legal domain")

	// ErrMissingVariable indicates that a state lacks an assignment for a
	// variable referenced by the polynomial.
	ErrMissingVariable = errors.New("poly: state is missing a model variable")

	// ErrTooManyVariables indicates that a bruteforce enumeration was
	// requested for a model larger than MaxBruteforceVariables.
	ErrTooManyVariables = errors.New("poly: too many variables for bruteforce enumeration")
)

// Domain identifies the variable domain of a polynomial.
//
// Spin    – variables take values in {−1, +1} (PUSO/QUSO forms).
// Boolean – variables take values in {0, 1} (PUBO/QUBO forms).
type Domain int

const (
	// Spin marks a polynomial over {−1, +1} variables.
	Spin Domain = iota

	// Boolean marks a polynomial over {0, 1} variables.
	Boolean
)

// String returns the lowercase domain name ("spin" or "boolean").
func (d Domain) String() string {
	if d == Boolean {
		return "boolean"
	}

	return "spin"
}

// Term is one monomial of a polynomial: the product of Vars scaled by
// Coeff. Vars need not be canonical on input; constructors squash them.
// An empty Vars slice denotes the constant offset.
type Term struct {
	Vars  []string
	Coeff float64
}
