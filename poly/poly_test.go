// Package poly_test exercises canonicalization, accessors and the free
// arithmetic functions through the public API only.
package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinopt/poly"
)

// TestCanonicalization_SpinSquash verifies the odd-multiplicity rule:
// even powers of a spin variable vanish, odd powers collapse to one.
func TestCanonicalization_SpinSquash(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		wantVars []string // nil ⇒ collapses to the offset
	}{
		{name: "pair cancels", in: []string{"a", "a"}, wantVars: nil},
		{name: "triple collapses", in: []string{"a", "a", "a"}, wantVars: []string{"a"}},
		{name: "mixed parity", in: []string{"b", "a", "b", "b"}, wantVars: []string{"a", "b"}},
		{name: "sorted output", in: []string{"c", "a", "b"}, wantVars: []string{"a", "b", "c"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := poly.NewSpin(poly.Term{Vars: tc.in, Coeff: 2.5})
			if tc.wantVars == nil {
				require.Equal(t, 2.5, p.Offset(), "even powers must fold into the offset")
				require.Empty(t, p.Variables())
				return
			}
			require.Equal(t, 2.5, p.Coefficient(tc.wantVars...))
			require.Equal(t, tc.wantVars, p.Variables())
		})
	}
}

// TestCanonicalization_BooleanSquash verifies idempotent deduplication:
// x·x = x, so repeated boolean variables never cancel.
func TestCanonicalization_BooleanSquash(t *testing.T) {
	p := poly.NewBoolean(poly.Term{Vars: []string{"x", "x", "y", "x"}, Coeff: 3})
	require.Equal(t, 3.0, p.Coefficient("x", "y"))
	require.Equal(t, 0.0, p.Offset())
	require.Equal(t, []string{"x", "y"}, p.Variables())
	require.Equal(t, 2, p.Degree())
}

// TestConstruction_MergeAndDropZeros checks that equal canonical keys
// merge by summation and that zero coefficients never persist.
func TestConstruction_MergeAndDropZeros(t *testing.T) {
	p := poly.NewSpin(
		poly.Term{Vars: []string{"a", "b"}, Coeff: 1},
		poly.Term{Vars: []string{"b", "a"}, Coeff: 2},  // same canonical key
		poly.Term{Vars: []string{"c"}, Coeff: 4},       //
		poly.Term{Vars: []string{"c"}, Coeff: -4},      // merges to zero ⇒ dropped
		poly.Term{Vars: []string{"d", "d"}, Coeff: -7}, // folds into offset
		poly.Term{Vars: nil, Coeff: 7},                 // cancels the fold
	)
	require.Equal(t, 3.0, p.Coefficient("a", "b"))
	require.Equal(t, 0.0, p.Coefficient("c"))
	require.Equal(t, 0.0, p.Offset())
	require.Equal(t, 1, p.NumTerms())
	require.Equal(t, []string{"a", "b"}, p.Variables())
}

// TestTerms_DeterministicOrder locks the iteration contract: offset
// first, then ascending degree, then lexicographic.
func TestTerms_DeterministicOrder(t *testing.T) {
	p := poly.NewSpin(
		poly.Term{Vars: []string{"b", "c"}, Coeff: 1},
		poly.Term{Vars: []string{"a"}, Coeff: 2},
		poly.Term{Vars: nil, Coeff: 3},
		poly.Term{Vars: []string{"a", "b"}, Coeff: 4},
		poly.Term{Vars: []string{"b"}, Coeff: 5},
	)

	terms := p.Terms()
	require.Len(t, terms, 5)
	require.Empty(t, terms[0].Vars) // offset leads
	require.Equal(t, []string{"a"}, terms[1].Vars)
	require.Equal(t, []string{"b"}, terms[2].Vars)
	require.Equal(t, []string{"a", "b"}, terms[3].Vars)
	require.Equal(t, []string{"b", "c"}, terms[4].Vars)
}

// TestValue_SpinAndBoolean pins the evaluators on hand-checked inputs.
func TestValue_SpinAndBoolean(t *testing.T) {
	// H = −z0·z1 + 2·z2 + 1
	h := poly.NewSpin(
		poly.Term{Vars: []string{"z0", "z1"}, Coeff: -1},
		poly.Term{Vars: []string{"z2"}, Coeff: 2},
		poly.Term{Vars: nil, Coeff: 1},
	)
	v, err := h.Value(map[string]int{"z0": 1, "z1": -1, "z2": -1})
	require.NoError(t, err)
	require.Equal(t, 0.0, v) // +1 − 2 + 1

	// P = 3·x·y − x
	p := poly.NewBoolean(
		poly.Term{Vars: []string{"x", "y"}, Coeff: 3},
		poly.Term{Vars: []string{"x"}, Coeff: -1},
	)
	v, err = p.Value(map[string]int{"x": 1, "y": 0})
	require.NoError(t, err)
	require.Equal(t, -1.0, v)

	v, err = p.Value(map[string]int{"x": 1, "y": 1})
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

// TestValue_Errors locks the strict state contract: missing variables and
// out-of-domain values fail, and extra keys are ignored.
func TestValue_Errors(t *testing.T) {
	h := poly.NewSpin(poly.Term{Vars: []string{"a", "b"}, Coeff: 1})

	_, err := h.Value(map[string]int{"a": 1})
	require.ErrorIs(t, err, poly.ErrMissingVariable)

	_, err = h.Value(map[string]int{"a": 1, "b": 0})
	require.ErrorIs(t, err, poly.ErrInvalidStateValue)

	v, err := h.Value(map[string]int{"a": 1, "b": -1, "unrelated": 99})
	require.NoError(t, err, "unreferenced keys must be ignored")
	require.Equal(t, -1.0, v)
}

// TestAdd_And_Scale verifies the free-function arithmetic and the domain
// guard on Add.
func TestAdd_And_Scale(t *testing.T) {
	a := poly.NewSpin(
		poly.Term{Vars: []string{"x"}, Coeff: 1},
		poly.Term{Vars: []string{"x", "y"}, Coeff: 2},
	)
	b := poly.NewSpin(
		poly.Term{Vars: []string{"x"}, Coeff: -1},
		poly.Term{Vars: []string{"y"}, Coeff: 3},
	)

	sum, err := poly.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, 0.0, sum.Coefficient("x"))
	require.Equal(t, 2.0, sum.Coefficient("y", "x"))
	require.Equal(t, 3.0, sum.Coefficient("y"))
	require.Equal(t, 2, sum.NumTerms())

	_, err = poly.Add(a, poly.NewBoolean(poly.Term{Vars: []string{"x"}, Coeff: 1}))
	require.ErrorIs(t, err, poly.ErrDomainMismatch)

	half := poly.Scale(a, 0.5)
	require.Equal(t, 0.5, half.Coefficient("x"))
	require.Equal(t, 1.0, half.Coefficient("x", "y"))

	empty := poly.Scale(a, 0)
	require.Equal(t, 0, empty.NumTerms())
}
