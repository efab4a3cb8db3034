package cosmos

import (
	"fmt"
	"strings"

	"github.com/veradun/demiurge/internal/cosmology"
	"github.com/veradun/demiurge/internal/fault"
)

// Clone returns an independent world: the constant vector, spacetime
// buffer, matter, and energy are value copies in fresh storage, and the
// clone starts with no entities. Entropy is scaled by the intervention
// factor. The source is never mutated, even when a copy stage fails and
// this call unwinds.
func (w *World) Clone() (clone *World, err error) {
	var st stage
	defer func() {
		if err != nil {
			st.unwind()
		}
	}()

	constants, err := w.pool.Vector(w.Constants.Len())
	if err != nil {
		return nil, fmt.Errorf("constants copy: %w", err)
	}
	st.track(constants)
	copy(constants.Values(), w.Constants.Values())

	spacetime, err := w.pool.Vector(w.Spacetime.Len())
	if err != nil {
		return nil, fmt.Errorf("spacetime copy: %w", err)
	}
	st.track(spacetime)
	copy(spacetime.Values(), w.Spacetime.Values())

	matter, err := w.pool.Scalar(w.Matter.Value())
	if err != nil {
		return nil, fmt.Errorf("matter copy: %w", err)
	}
	st.track(matter)

	energy, err := w.pool.Scalar(w.Energy.Value())
	if err != nil {
		return nil, fmt.Errorf("energy copy: %w", err)
	}
	st.track(energy)

	return &World{
		Constants:         constants,
		Spacetime:         spacetime,
		Matter:            matter,
		Energy:            energy,
		CreatedAt:         w.CreatedAt,
		TotalLifespanDays: w.TotalLifespanDays,
		EntropyLevel:      w.EntropyLevel * cosmology.InterventionFactor,
		MaxEntropy:        w.MaxEntropy,
		pool:              w.pool,
	}, nil
}

// RespondTo answers a message from one of the world's own entities with a
// new world: a clone whose lifespan is extended by one day, with entropy
// eased once more when the message asks for guidance. The entity must
// belong to this world and the message must be non-empty. The source world
// is unaffected.
func (w *World) RespondTo(e *Entity, message string) (*World, error) {
	if e == nil {
		return nil, fault.New(fault.InvalidArgument, "no entity given")
	}
	if message == "" {
		return nil, fault.New(fault.InvalidArgument, "message is empty")
	}
	if !w.owns(e) {
		return nil, fault.Newf(fault.NotFound, "entity %d does not belong to this world", e.ID)
	}

	answered, err := w.Clone()
	if err != nil {
		return nil, err
	}
	answered.TotalLifespanDays++
	if strings.Contains(message, cosmology.GuidancePhrase) {
		answered.EntropyLevel *= cosmology.GuidanceFactor
	}
	return answered, nil
}

// Complete drives a copy of the world to its terminal entropy state.
func (w *World) Complete() (*World, error) {
	done, err := w.Clone()
	if err != nil {
		return nil, err
	}
	done.EntropyLevel = done.MaxEntropy
	return done, nil
}
