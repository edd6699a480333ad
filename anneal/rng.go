// Package anneal - RNG stream derivation for independent anneals.
//
// Every anneal k consumes two private streams derived from the base
// seed: one for its random starting state, one for its Metropolis
// draws. Because derivation depends only on (seed, k), the result of
// anneal k is identical whether the run is serial or fanned out across
// workers.
package anneal

import "math/rand"

// defaultRNGSeed mirrors the engine's seed==0 policy.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer, giving well-decorrelated child seeds for
// adjacent stream ids.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// annealStreams returns the two child seeds of anneal k: the state
// stream (random initial assignment) and the simulation stream.
func annealStreams(seed int64, k int) (stateSeed, simSeed int64) {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	stateSeed = deriveSeed(seed, uint64(2*k))
	simSeed = deriveSeed(seed, uint64(2*k+1))
	return stateSeed, simSeed
}

// randomSpinState draws an independent uniform ±1 assignment for vars.
func randomSpinState(vars []string, seed int64) map[string]int {
	var (
		rng   = rand.New(rand.NewSource(seed))
		state = make(map[string]int, len(vars))
	)
	for _, v := range vars {
		if rng.Intn(2) == 0 {
			state[v] = 1
		} else {
			state[v] = -1
		}
	}
	return state
}
