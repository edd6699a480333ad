// Package poly - canonical key construction ("squashing").
//
// Keys are stored as a single string: canonical variable labels joined by
// an unprintable separator. This keeps map lookups allocation-free on the
// read path and gives a total, stable ordering for iteration.
//
// Contracts:
//   - canonicalVars is pure; it never aliases its input.
//   - encodeKey(canonicalVars(d, vars)) is the unique canonical key for a
//     monomial in domain d; decodeKey inverts encodeKey exactly.
//   - Variable labels must not contain keySep; constructors do not check
//     this (labels are ordinary identifiers in practice), decodeKey would
//     simply split them apart.
//
// Complexity: O(k log k) per key of length k (sorting dominates).
package poly

import (
	"sort"
	"strings"
)

// keySep separates variable labels inside an encoded canonical key.
// ASCII unit separator: vanishingly unlikely in a real label.
const keySep = "\x1f"

// canonicalVars squashes vars for the given domain and returns the sorted
// canonical variable list.
//
//   - Spin: z² = 1 ⇒ keep labels with odd multiplicity only.
//   - Boolean: x² = x ⇒ keep each label once.
func canonicalVars(d Domain, vars []string) []string {
	if len(vars) == 0 {
		return nil
	}

	// Count multiplicities; map size is bounded by the key length.
	counts := make(map[string]int, len(vars))
	var v string
	for _, v = range vars {
		counts[v]++
	}

	kept := make([]string, 0, len(counts))
	var c int
	for v, c = range counts {
		if d == Spin && c%2 == 0 {
			continue // even powers of a spin variable cancel
		}
		kept = append(kept, v)
	}
	sort.Strings(kept)

	return kept
}

// encodeKey joins canonical vars into the map key. Empty vars ⇒ "" (the
// offset key).
func encodeKey(vars []string) string {
	return strings.Join(vars, keySep)
}

// decodeKey splits an encoded key back into its variable labels.
// The offset key "" decodes to nil.
func decodeKey(key string) []string {
	if key == "" {
		return nil
	}

	return strings.Split(key, keySep)
}

// keyLess orders encoded keys for stable iteration: offset first, then by
// degree, then lexicographically by the label sequence.
func keyLess(a, b string) bool {
	da, db := keyDegree(a), keyDegree(b)
	if da != db {
		return da < db
	}

	return a < b
}

// keyDegree returns the number of variables in an encoded key.
func keyDegree(key string) int {
	if key == "" {
		return 0
	}

	return strings.Count(key, keySep) + 1
}
