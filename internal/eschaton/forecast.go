// Package eschaton computes the days remaining before a world reaches its
// terminal condition. The forecast is a pure function of the inputs and an
// explicit reading of now, so callers inject the clock instead of the
// package reading one.
package eschaton

import (
	"math"
	"time"
)

const (
	secondsPerDay = 86400

	// influenceWindow is how many leading constants weigh on the forecast.
	influenceWindow = 10

	// influenceModulus folds the physical influence into [0, 100).
	influenceModulus = 100

	// EschatologicalConstant weighs each conscious entity in the forecast.
	EschatologicalConstant = 0.12345

	// consciousnessCeiling caps the combined conscious influence.
	consciousnessCeiling = 1000
)

// Inputs is the slice of world state the forecast consumes.
type Inputs struct {
	CreatedAt    time.Time
	LifespanDays int64
	EntropyLevel float64
	MaxEntropy   float64
	Constants    []float64
	EntityCount  int
}

// Forecast projects how many days remain at now. It never fails on valid
// inputs and never returns a negative count; results beyond the int64 range
// clamp to the maximum.
func Forecast(in Inputs, now time.Time) int64 {
	daysSince := now.Sub(in.CreatedAt).Seconds() / secondsPerDay

	// A zero ceiling has no defined ratio; treat it as zero entropy pressure.
	ratio := 0.0
	if in.MaxEntropy != 0 {
		ratio = in.EntropyLevel / in.MaxEntropy
	}

	daysRemaining := math.Max(0, float64(in.LifespanDays)-daysSince)

	physical := 0.0
	window := influenceWindow
	if len(in.Constants) < window {
		window = len(in.Constants)
	}
	for i := 0; i < window; i++ {
		c := in.Constants[i]
		physical += (c / (math.Abs(c) + 1)) / float64(i+1)
	}
	physical = math.Mod(math.Abs(physical), influenceModulus)

	conscious := math.Min(consciousnessCeiling, float64(in.EntityCount)*EschatologicalConstant)

	result := math.Max(0, daysRemaining*(1-ratio)-physical*ratio+conscious)
	if result >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(result)
}
