package anneal

import (
	"math"

	"github.com/katalvlaran/spinopt/poly"
)

// Default flip probabilities for the automatic temperature range: at
// the hot end an unfavorable flip succeeds about half the time, at the
// cold end about once in a hundred.
const (
	DefaultStartFlipProbability = 0.5
	DefaultEndFlipProbability   = 0.01
)

// TemperatureRange estimates the hot and cold temperatures of an anneal
// such that a single variable flips against the energy gradient with
// probability startFlipProb at the start and endFlipProb at the end.
//
// The estimate bounds the energy change of one spin flip: the maximum
// is twice the largest per-variable sum of absolute coefficients, the
// minimum is twice the smallest absolute coefficient. Solving
// exp(-dE/T) = p for T at both ends gives the range. Boolean models are
// recoded to spin first so the bounds refer to actual flip deltas.
//
// A model with no variable terms returns (0, 0). The heuristic is a
// starting point, not a guarantee; callers with domain knowledge should
// pass their own range via WithTemperatures.
//
// Errors: ErrInvalidFlipProbability if either probability is outside
// [0, 1) or startFlipProb < endFlipProb.
func TemperatureRange(model poly.Poly, startFlipProb, endFlipProb float64) (hot, cold float64, err error) {
	if startFlipProb < 0 || startFlipProb >= 1 ||
		endFlipProb < 0 || endFlipProb >= 1 ||
		endFlipProb > startFlipProb {
		return 0, 0, ErrInvalidFlipProbability
	}

	if model.Domain() == poly.Boolean {
		model = poly.ToSpin(model)
	}

	var (
		perVar   = make(map[string]float64, model.NumVariables())
		minAbs   = math.Inf(1)
		hasTerms bool
	)
	for _, term := range model.Terms() {
		if len(term.Vars) == 0 {
			continue
		}
		hasTerms = true
		abs := math.Abs(term.Coeff)
		if abs < minAbs {
			minAbs = abs
		}
		for _, v := range term.Vars {
			perVar[v] += abs
		}
	}
	if !hasTerms {
		return 0, 0, nil
	}

	var maxPerVar float64
	for _, sum := range perVar {
		if sum > maxPerVar {
			maxPerVar = sum
		}
	}

	// One flip changes each touching term's contribution by twice its
	// magnitude at most.
	var (
		maxDelta = 2 * maxPerVar
		minDelta = 2 * minAbs
	)
	if startFlipProb > 0 {
		hot = -maxDelta / math.Log(startFlipProb)
	}
	if endFlipProb > 0 {
		cold = -minDelta / math.Log(endFlipProb)
	}
	return hot, cold, nil
}
