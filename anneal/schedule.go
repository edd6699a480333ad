package anneal

import (
	"math"

	"github.com/katalvlaran/spinopt/poly"
	"github.com/katalvlaran/spinopt/simulate"
)

// BuildSchedule interpolates duration temperatures from hot down to
// cold, one sweep each. Linear interpolation is additive and may end at
// zero; geometric interpolation is multiplicative and requires both
// ends positive. duration == 1 emits just the hot temperature.
//
// Errors: ErrNonPositiveDuration, ErrInvalidTemperatureRange,
// ErrGeometricZeroTemperature.
func BuildSchedule(kind ScheduleKind, hot, cold float64, duration int) (simulate.Schedule, error) {
	if duration < 1 {
		return nil, ErrNonPositiveDuration
	}
	if cold < 0 || hot < cold {
		return nil, ErrInvalidTemperatureRange
	}
	if kind == Geometric && cold <= 0 {
		return nil, ErrGeometricZeroTemperature
	}

	schedule := make(simulate.Schedule, duration)
	if duration == 1 {
		schedule[0] = simulate.Stage{T: hot, Sweeps: 1}
		return schedule, nil
	}

	var (
		step  = float64(duration - 1)
		ratio = 0.0
		i     int
	)
	if kind == Geometric {
		ratio = math.Pow(cold/hot, 1/step)
	}
	for i = 0; i < duration; i++ {
		var t float64
		switch kind {
		case Linear:
			t = hot + (cold-hot)*float64(i)/step
		default:
			t = hot * math.Pow(ratio, float64(i))
		}
		schedule[i] = simulate.Stage{T: t, Sweeps: 1}
	}
	// Pin the endpoints exactly; Pow drift must not leak past cold.
	schedule[0].T = hot
	schedule[duration-1].T = cold
	return schedule, nil
}

// runSchedule resolves the schedule an options set implies for a spin
// model: explicit schedule wins, otherwise the temperature range (given
// or heuristic) is interpolated over Duration steps.
func runSchedule(model poly.Poly, o Options) (simulate.Schedule, error) {
	if o.Schedule != nil {
		return o.Schedule, nil
	}

	var (
		hot, cold float64
		err       error
	)
	if o.Temperatures != nil {
		hot, cold = o.Temperatures.Hot, o.Temperatures.Cold
		if cold < 0 || hot < cold {
			return nil, ErrInvalidTemperatureRange
		}
	} else {
		hot, cold, err = TemperatureRange(model, DefaultStartFlipProbability, DefaultEndFlipProbability)
		if err != nil {
			return nil, err
		}
		if hot == 0 && cold == 0 {
			// Offset-only model; any positive schedule works and the
			// driver short-circuits before sweeping anyway.
			hot, cold = 1, 1
		}
	}
	return BuildSchedule(o.Kind, hot, cold, o.Duration)
}
