// Package poly - the Poly value type, constructors and free-function
// arithmetic.
//
// Design:
//   - Poly is immutable by contract: constructors canonicalize and copy,
//     accessors return fresh slices/maps, arithmetic returns new values.
//   - Zero-valued coefficients are logically absent and never stored.
//   - Iteration order (Terms, Variables) is deterministic: offset first,
//     then ascending degree, then lexicographic.
package poly

import "sort"

// Poly is an immutable polynomial over spin or boolean variables: a
// mapping from canonical monomial keys to non-zero real coefficients.
// The zero value is an empty spin polynomial.
type Poly struct {
	domain Domain
	terms  map[string]float64
}

// NewSpin builds a spin-domain polynomial (PUSO/QUSO) from terms.
// Keys are squashed with the spin rule (odd multiplicity survives),
// equal keys merge by summation, zero coefficients are dropped.
func NewSpin(terms ...Term) Poly {
	return build(Spin, terms)
}

// NewBoolean builds a boolean-domain polynomial (PUBO/QUBO) from terms.
// Keys are squashed with the boolean rule (deduplicate), equal keys merge
// by summation, zero coefficients are dropped.
func NewBoolean(terms ...Term) Poly {
	return build(Boolean, terms)
}

// build is the shared constructor body.
func build(d Domain, terms []Term) Poly {
	m := make(map[string]float64, len(terms))
	var t Term
	for _, t = range terms {
		if t.Coeff == 0 {
			continue
		}
		k := encodeKey(canonicalVars(d, t.Vars))
		m[k] += t.Coeff
		if m[k] == 0 {
			delete(m, k) // merged to zero ⇒ logically absent
		}
	}

	return Poly{domain: d, terms: m}
}

// Domain reports whether the polynomial is over spin or boolean variables.
func (p Poly) Domain() Domain { return p.domain }

// NumTerms returns the number of stored monomials, offset included.
func (p Poly) NumTerms() int { return len(p.terms) }

// Offset returns the coefficient of the empty key (the constant part).
func (p Poly) Offset() float64 { return p.terms[""] }

// Coefficient returns the coefficient of the monomial over vars, after
// canonicalization; absent monomials report 0.
func (p Poly) Coefficient(vars ...string) float64 {
	return p.terms[encodeKey(canonicalVars(p.domain, vars))]
}

// Degree returns the largest key length, or 0 for a constant/empty model.
func (p Poly) Degree() int {
	var best int
	var k string
	for k = range p.terms {
		if d := keyDegree(k); d > best {
			best = d
		}
	}

	return best
}

// Terms returns the canonical monomials in deterministic order (offset
// first, then ascending degree, then lexicographic). The result is a
// fresh slice with fresh Vars slices.
func (p Poly) Terms() []Term {
	keys := p.sortedKeys()
	out := make([]Term, 0, len(keys))
	var k string
	for _, k = range keys {
		out = append(out, Term{Vars: decodeKey(k), Coeff: p.terms[k]})
	}

	return out
}

// Variables returns the sorted set of labels referenced by at least one
// non-empty key. Its length is the model size N.
func (p Poly) Variables() []string {
	seen := make(map[string]struct{})
	var k, v string
	for k = range p.terms {
		for _, v = range decodeKey(k) {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v = range seen {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// NumVariables returns the size of the variable set.
func (p Poly) NumVariables() int { return len(p.Variables()) }

// sortedKeys returns the encoded keys in canonical iteration order.
func (p Poly) sortedKeys() []string {
	keys := make([]string, 0, len(p.terms))
	var k string
	for k = range p.terms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })

	return keys
}

// Add returns a + b. Both operands must share a domain; mixing spin and
// boolean polynomials returns ErrDomainMismatch (convert first with
// ToSpin/ToBoolean).
func Add(a, b Poly) (Poly, error) {
	if a.domain != b.domain {
		return Poly{}, ErrDomainMismatch
	}

	m := make(map[string]float64, len(a.terms)+len(b.terms))
	var k string
	var c float64
	for k, c = range a.terms {
		m[k] = c
	}
	for k, c = range b.terms {
		m[k] += c
		if m[k] == 0 {
			delete(m, k)
		}
	}

	return Poly{domain: a.domain, terms: m}, nil
}

// Scale returns p scaled by factor. Scaling by 0 yields the empty
// polynomial of the same domain.
func Scale(p Poly, factor float64) Poly {
	m := make(map[string]float64, len(p.terms))
	if factor != 0 {
		var k string
		var c float64
		for k, c = range p.terms {
			m[k] = c * factor
		}
	}

	return Poly{domain: p.domain, terms: m}
}
