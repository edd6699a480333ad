package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinopt/poly"
)

const chainProblemYAML = `
domain: spin
terms:
  - vars: [a, b]
    coeff: -1
  - vars: [b, c]
    coeff: -1
anneals: 4
duration: 50
seed: 7
`

func TestParseProblemYAML(t *testing.T) {
	p, err := ParseProblemYAML([]byte(chainProblemYAML))
	require.NoError(t, err)
	require.True(t, p.spin())
	require.Equal(t, 4, p.Anneals)
	require.Equal(t, int64(7), p.Seed)

	model := p.model()
	require.Equal(t, poly.Spin, model.Domain())
	require.Equal(t, 3, model.NumVariables())
	require.Equal(t, -1.0, model.Coefficient("a", "b"))
}

func TestParseProblemYAML_FullSchema(t *testing.T) {
	p, err := ParseProblemYAML([]byte(`
domain: boolean
terms:
  - vars: [x]
    coeff: -1
  - vars: []
    coeff: 2.5
schedule:
  - t: 2
    sweeps: 5
  - t: 0
    sweeps: 5
order: random
workers: 2
initial_state:
  x: 1
`))
	require.NoError(t, err)
	require.False(t, p.spin())

	model := p.model()
	require.Equal(t, poly.Boolean, model.Domain())
	require.Equal(t, 2.5, model.Offset())

	opts, err := p.annealOptions(model)
	require.NoError(t, err)
	require.Len(t, opts, 4)
}

func TestProblemInitialList_PairsWithSortedVariables(t *testing.T) {
	p, err := ParseProblemYAML([]byte(`
domain: spin
terms:
  - vars: [b, c]
    coeff: 1
  - vars: [a, b]
    coeff: 1
initial_list: [1, -1, 1]
`))
	require.NoError(t, err)

	state, err := p.initialState(p.model())
	require.NoError(t, err)
	require.Equal(t, map[string]int{"a": 1, "b": -1, "c": 1}, state)

	// Wrong length is rejected against the model, not silently padded.
	p.InitialList = []int{1}
	_, err = p.initialState(p.model())
	require.Error(t, err)
}

func TestParseProblemYAML_Rejections(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad domain", "domain: ising\nterms:\n  - vars: [a]\n    coeff: 1\n"},
		{"no terms", "domain: spin\n"},
		{"bad kind", "domain: spin\nkind: cubic\nterms:\n  - vars: [a]\n    coeff: 1\n"},
		{"bad order", "domain: spin\norder: backwards\nterms:\n  - vars: [a]\n    coeff: 1\n"},
		{"inverted range", "domain: spin\ntemperature: {hot: 1, cold: 2}\nterms:\n  - vars: [a]\n    coeff: 1\n"},
		{"negative stage", "domain: spin\nschedule:\n  - t: -1\n    sweeps: 1\nterms:\n  - vars: [a]\n    coeff: 1\n"},
		{"negative anneals", "domain: spin\nanneals: -1\nterms:\n  - vars: [a]\n    coeff: 1\n"},
		{"both initial forms", "domain: spin\ninitial_state: {a: 1}\ninitial_list: [1]\nterms:\n  - vars: [a]\n    coeff: 1\n"},
		{"not yaml", ":::"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseProblemYAML([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
}
