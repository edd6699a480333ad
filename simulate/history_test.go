package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinopt/poly"
	"github.com/katalvlaran/spinopt/simulate"
)

// TestPastStates_RecordsPreSweepSnapshots drives single sweeps and
// checks that PastStates returns exactly the pre-sweep snapshots, oldest
// first, capped at the configured memory, with the live state appended.
func TestPastStates_RecordsPreSweepSnapshots(t *testing.T) {
	sim, err := simulate.NewSpinSimulation(frustratedModel(),
		simulate.WithMemory(3), simulate.WithSeed(5))
	require.NoError(t, err)

	// Record each pre-sweep state by hand, then compare.
	var snapshots []map[string]int
	var i int
	for i = 0; i < 5; i++ {
		snapshots = append(snapshots, sim.State())
		require.NoError(t, sim.Update(2, 1))
	}

	// Memory 3 retains the last three snapshots; the current state
	// closes the sequence.
	want := append([]map[string]int{}, snapshots[2], snapshots[3], snapshots[4], sim.State())
	require.Equal(t, want, sim.PastStates(0))

	// k caps the total count, newest-biased.
	require.Equal(t, []map[string]int{sim.State()}, sim.PastStates(1))
	require.Equal(t, want[2:], sim.PastStates(2))
	require.Equal(t, want, sim.PastStates(10), "k beyond retention returns everything")
}

// TestPastStates_MemoryZeroKeepsOnlyCurrent verifies the disabled
// history mode: no snapshots survive, only the live state is reported.
func TestPastStates_MemoryZeroKeepsOnlyCurrent(t *testing.T) {
	sim, err := simulate.NewSpinSimulation(frustratedModel(), simulate.WithSeed(5))
	require.NoError(t, err)

	require.NoError(t, sim.Update(2, 6))
	require.Equal(t, []map[string]int{sim.State()}, sim.PastStates(0))
}

// TestPastStates_MultiStageScheduleCountsEverySweep checks that the
// snapshot cadence is per sweep, not per stage.
func TestPastStates_MultiStageScheduleCountsEverySweep(t *testing.T) {
	sim, err := simulate.NewSpinSimulation(frustratedModel(),
		simulate.WithMemory(100), simulate.WithSeed(5))
	require.NoError(t, err)

	require.NoError(t, sim.ScheduleUpdate(simulate.Schedule{
		{T: 3, Sweeps: 4},
		{T: 1, Sweeps: 2},
		{T: 0, Sweeps: 1},
	}))
	require.Len(t, sim.PastStates(0), 7+1, "one snapshot per sweep plus the current state")
}

// TestPastStates_CopiesAreIndependent guards the snapshot-isolation
// contract: mutating a returned map never corrupts the history.
func TestPastStates_CopiesAreIndependent(t *testing.T) {
	model := poly.NewSpin(poly.Term{Vars: []string{"0"}, Coeff: 1})
	sim, err := simulate.NewSpinSimulation(model,
		simulate.WithMemory(4), simulate.WithInitialState(map[string]int{"0": 1}))
	require.NoError(t, err)

	require.NoError(t, sim.Update(0, 1))

	got := sim.PastStates(0)
	require.Equal(t, []map[string]int{{"0": 1}, {"0": -1}}, got)

	got[0]["0"] = 99
	require.Equal(t, []map[string]int{{"0": 1}, {"0": -1}}, sim.PastStates(0))
}
