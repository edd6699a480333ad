package anneal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinopt/anneal"
)

// TestBuildSchedule_Linear checks endpoints, step count and the
// one-sweep-per-step shape of linear cooldowns.
func TestBuildSchedule_Linear(t *testing.T) {
	s, err := anneal.BuildSchedule(anneal.Linear, 4, 0, 5)
	require.NoError(t, err)
	require.Len(t, s, 5)

	var i int
	for i = 0; i < 5; i++ {
		require.Equal(t, 1, s[i].Sweeps)
		require.InDelta(t, 4-float64(i), s[i].T, 1e-12)
	}
}

// TestBuildSchedule_Geometric checks the multiplicative profile: exact
// endpoints and a constant ratio between consecutive temperatures.
func TestBuildSchedule_Geometric(t *testing.T) {
	s, err := anneal.BuildSchedule(anneal.Geometric, 8, 0.5, 5)
	require.NoError(t, err)
	require.Len(t, s, 5)

	require.Equal(t, 8.0, s[0].T)
	require.Equal(t, 0.5, s[4].T)

	// (0.5/8)^(1/4) = 0.5, so each step halves the temperature.
	var i int
	for i = 1; i < 5; i++ {
		require.InDelta(t, 0.5, s[i].T/s[i-1].T, 1e-9, "step %d", i)
	}
}

// TestBuildSchedule_Edges covers the single-step schedule, the flat
// range and every rejection.
func TestBuildSchedule_Edges(t *testing.T) {
	s, err := anneal.BuildSchedule(anneal.Geometric, 3, 1, 1)
	require.NoError(t, err)
	require.Len(t, s, 1)
	require.Equal(t, 3.0, s[0].T)

	s, err = anneal.BuildSchedule(anneal.Geometric, 2, 2, 4)
	require.NoError(t, err)
	for _, st := range s {
		require.Equal(t, 2.0, st.T)
	}

	_, err = anneal.BuildSchedule(anneal.Linear, 4, 0, 0)
	require.ErrorIs(t, err, anneal.ErrNonPositiveDuration)

	_, err = anneal.BuildSchedule(anneal.Linear, 1, 2, 3)
	require.ErrorIs(t, err, anneal.ErrInvalidTemperatureRange)

	_, err = anneal.BuildSchedule(anneal.Linear, 1, -1, 3)
	require.ErrorIs(t, err, anneal.ErrInvalidTemperatureRange)

	_, err = anneal.BuildSchedule(anneal.Geometric, 1, 0, 3)
	require.ErrorIs(t, err, anneal.ErrGeometricZeroTemperature)
}
