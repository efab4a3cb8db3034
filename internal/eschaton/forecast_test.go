package eschaton

import (
	"math"
	"testing"
	"time"

	"github.com/veradun/demiurge/internal/cosmology"
)

func genesisInputs() Inputs {
	constants := make([]float64, cosmology.ConstantCount)
	for i := range constants {
		constants[i] = cosmology.Seed(i)
	}
	return Inputs{
		CreatedAt:    time.Unix(1_000_000_000, 0),
		LifespanDays: cosmology.LifespanDays,
		EntropyLevel: cosmology.GenesisEntropy,
		MaxEntropy:   cosmology.EntropyCeiling,
		Constants:    constants,
	}
}

// The reference count for a genesis-default world read at its creation
// instant, derived once by hand: daysRemaining 1825000, entropy ratio 0.618,
// physical influence ~1.10909090578, no conscious influence.
const genesisForecast = 697149

func TestForecastGenesisRegression(t *testing.T) {
	in := genesisInputs()
	if got := Forecast(in, in.CreatedAt); got != genesisForecast {
		t.Fatalf("Forecast = %d, want %d", got, genesisForecast)
	}
}

func TestForecastDeterminism(t *testing.T) {
	in := genesisInputs()
	now := in.CreatedAt.Add(37 * time.Hour)

	first := Forecast(in, now)
	second := Forecast(in, now)
	if first != second {
		t.Fatalf("Forecast not deterministic: %d then %d", first, second)
	}
}

func TestForecastAgesWithNow(t *testing.T) {
	in := genesisInputs()

	// One elapsed day takes one weighted day off the remaining count.
	if got := Forecast(in, in.CreatedAt.Add(24*time.Hour)); got != genesisForecast-1 {
		t.Fatalf("Forecast after one day = %d, want %d", got, genesisForecast-1)
	}
}

func TestForecastEntropySweepNeverIncreasesOrGoesNegative(t *testing.T) {
	in := genesisInputs()
	in.EntityCount = 5

	prev := int64(math.MaxInt64)
	for level := 0.0; level <= 1.0; level += 0.1 {
		in.EntropyLevel = level
		got := Forecast(in, in.CreatedAt)
		if got < 0 {
			t.Fatalf("Forecast(entropy=%g) = %d, want >= 0", level, got)
		}
		if got > prev {
			t.Fatalf("Forecast(entropy=%g) = %d rose above %d", level, got, prev)
		}
		prev = got
	}
}

func TestForecastZeroCeilingGuard(t *testing.T) {
	in := genesisInputs()
	in.EntropyLevel = 0
	in.MaxEntropy = 0

	// No defined ratio means no entropy pressure: the full span plus the
	// physical term's zero weight.
	if got := Forecast(in, in.CreatedAt); got != cosmology.LifespanDays {
		t.Fatalf("Forecast with zero ceiling = %d, want %d", got, int64(cosmology.LifespanDays))
	}
}

func TestForecastExpiredWorld(t *testing.T) {
	in := Inputs{
		CreatedAt:    time.Unix(0, 0),
		LifespanDays: 10,
		EntropyLevel: 0.618,
		MaxEntropy:   1.0,
		EntityCount:  100,
	}
	now := in.CreatedAt.Add(20 * 24 * time.Hour)

	// Days remaining floors at zero; only the conscious influence is left:
	// 100 × 0.12345 = 12.345, truncated.
	if got := Forecast(in, now); got != 12 {
		t.Fatalf("Forecast = %d, want 12", got)
	}
}

func TestForecastConsciousCeiling(t *testing.T) {
	in := Inputs{
		CreatedAt:   time.Unix(0, 0),
		MaxEntropy:  1.0,
		EntityCount: 10_000_000,
	}

	if got := Forecast(in, in.CreatedAt); got != consciousnessCeiling {
		t.Fatalf("Forecast = %d, want ceiling %d", got, int64(consciousnessCeiling))
	}
}

func TestForecastNegativeConstantFoldsAbsolute(t *testing.T) {
	in := Inputs{
		CreatedAt:    time.Unix(0, 0),
		LifespanDays: 1000,
		EntropyLevel: 0.5,
		MaxEntropy:   1.0,
		Constants:    []float64{-299792458.0},
	}

	// 1000×0.5 − |−0.99999999667|×0.5 = 499.5000000017, truncated.
	if got := Forecast(in, in.CreatedAt); got != 499 {
		t.Fatalf("Forecast = %d, want 499", got)
	}
}

func TestForecastShortConstantWindow(t *testing.T) {
	in := Inputs{
		CreatedAt:    time.Unix(0, 0),
		LifespanDays: 100,
		EntropyLevel: 1.0,
		MaxEntropy:   1.0,
		Constants:    []float64{3.0}, // (3/4)/1 = 0.75
	}

	// Ratio 1 cancels the remaining days entirely: max(0, 0 − 0.75 + 0) = 0.
	if got := Forecast(in, in.CreatedAt); got != 0 {
		t.Fatalf("Forecast = %d, want 0", got)
	}
}

func TestForecastClampsToInt64(t *testing.T) {
	in := Inputs{
		CreatedAt:    time.Unix(0, 0),
		LifespanDays: math.MaxInt64,
		MaxEntropy:   1.0,
	}

	if got := Forecast(in, in.CreatedAt); got != math.MaxInt64 {
		t.Fatalf("Forecast = %d, want clamp at MaxInt64", got)
	}
}
