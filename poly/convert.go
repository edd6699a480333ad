// Package poly - exact boolean↔spin transcription.
//
// The correspondence is the affine recoding
//
//	x = (1 − z) / 2        z = 1 − 2x
//
// so boolean 0 pairs with spin +1 and boolean 1 with spin −1. Polynomial
// conversion substitutes the recoding into every monomial and re-squashes;
// state conversion recodes values in place. Both preserve objective
// values exactly:
//
//	p.Value(x) == ToSpin(p).Value(BooleanStateToSpin(x))
//
// Complexity: a key of degree k expands into 2^k monomials before
// merging, so conversion is O(Σ 2^|key|) — exponential in term degree
// only, linear in the number of terms.
package poly

// ToSpin returns the spin-domain transcription of p. Spin input is
// returned unchanged (already canonical, Poly is immutable).
func ToSpin(p Poly) Poly {
	if p.domain == Spin {
		return p
	}

	return substitute(p, Spin, 0.5, -0.5)
}

// ToBoolean returns the boolean-domain transcription of p. Boolean input
// is returned unchanged.
func ToBoolean(p Poly) Poly {
	if p.domain == Boolean {
		return p
	}

	return substitute(p, Boolean, 1, -2)
}

// substitute rewrites every monomial of p by replacing each variable v
// with (c0 + c1·v') in the target domain, then re-canonicalizes:
//
//	boolean → spin: x = 1/2 − z/2   (c0 = 1/2, c1 = −1/2)
//	spin → boolean: z = 1 − 2x      (c0 = 1,   c1 = −2)
func substitute(p Poly, target Domain, c0, c1 float64) Poly {
	out := make([]Term, 0, len(p.terms))
	var (
		k string
		c float64
	)
	for k, c = range p.terms {
		vars := decodeKey(k)

		// Expand ∏(c0 + c1·v) over the key's variables: each partial
		// product is a (subset, coefficient) pair.
		partial := []Term{{Vars: nil, Coeff: c}}
		var v string
		for _, v = range vars {
			next := make([]Term, 0, len(partial)*2)
			var t Term
			for _, t = range partial {
				next = append(next, Term{Vars: t.Vars, Coeff: t.Coeff * c0})
				withV := make([]string, len(t.Vars)+1)
				copy(withV, t.Vars)
				withV[len(t.Vars)] = v
				next = append(next, Term{Vars: withV, Coeff: t.Coeff * c1})
			}
			partial = next
		}
		out = append(out, partial...)
	}

	return build(target, out)
}

// BooleanStateToSpin recodes a {0,1} assignment to the paired {±1}
// assignment (0 ↦ +1, 1 ↦ −1). Values outside {0,1} yield
// ErrInvalidStateValue; no partial result is returned.
func BooleanStateToSpin(state map[string]int) (map[string]int, error) {
	out := make(map[string]int, len(state))
	var v string
	var x int
	for v, x = range state {
		if !legalValue(Boolean, x) {
			return nil, ErrInvalidStateValue
		}
		out[v] = 1 - 2*x
	}

	return out, nil
}

// SpinStateToBoolean recodes a {±1} assignment to the paired {0,1}
// assignment (+1 ↦ 0, −1 ↦ 1). Values outside {±1} yield
// ErrInvalidStateValue; no partial result is returned.
func SpinStateToBoolean(state map[string]int) (map[string]int, error) {
	out := make(map[string]int, len(state))
	var v string
	var z int
	for v, z = range state {
		if !legalValue(Spin, z) {
			return nil, ErrInvalidStateValue
		}
		out[v] = (1 - z) / 2
	}

	return out, nil
}
