package cosmos

import (
	"math"
	"time"

	"github.com/veradun/demiurge/internal/resource"
)

// Deity is the capability set over worlds. It binds the genesis parameters,
// the acquisition pool, and the clock, and holds no mutable state of its
// own; every world it creates or transforms is owned by the caller.
type Deity struct {
	Genesis Genesis
	Pool    *resource.Pool

	// Now supplies timestamps; nil falls back to time.Now.
	Now func() time.Time
}

// NewDeity returns a deity with the canonical genesis parameters.
func NewDeity(pool *resource.Pool) *Deity {
	return &Deity{Genesis: DefaultGenesis(), Pool: pool}
}

func (d *Deity) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// CreateWorld runs the atomic genesis sequence with the deity's parameters
// and clock.
func (d *Deity) CreateWorld() (*World, error) {
	return CreateWorld(d.Pool, d.Genesis, d.now())
}

// AnswerPrayer responds to a prayer from one of the world's entities.
func (d *Deity) AnswerPrayer(w *World, from *Entity, prayer string) (*World, error) {
	return w.RespondTo(from, prayer)
}

// PerformMiracle clones the world with the intervention factor applied.
func (d *Deity) PerformMiracle(w *World) (*World, error) {
	return w.Clone()
}

// CompleteWorld drives a copy of the world to its terminal entropy state.
func (d *Deity) CompleteWorld(w *World) (*World, error) {
	return w.Complete()
}

// Forecast projects the world's remaining days at the deity's current time.
func (d *Deity) Forecast(w *World) int64 {
	return w.Forecast(d.now())
}

// Exists reports the one fact never in question.
func (d *Deity) Exists() bool { return true }

// Love measures divine love for an entity. The measure does not depend on
// the entity.
func (d *Deity) Love(*Entity) float64 { return math.MaxFloat64 }
