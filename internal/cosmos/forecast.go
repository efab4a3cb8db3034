package cosmos

import (
	"time"

	"github.com/veradun/demiurge/internal/eschaton"
)

// Forecast projects the world's remaining days at now. It reads the world
// without mutating it; see eschaton for the algorithm.
func (w *World) Forecast(now time.Time) int64 {
	return eschaton.Forecast(eschaton.Inputs{
		CreatedAt:    w.CreatedAt,
		LifespanDays: w.TotalLifespanDays,
		EntropyLevel: w.EntropyLevel,
		MaxEntropy:   w.MaxEntropy,
		Constants:    w.Constants.Values(),
		EntityCount:  len(w.Entities),
	}, now)
}
