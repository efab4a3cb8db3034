// Package cosmos implements the owned world graph: construction, entity
// append, miracle cloning, stimulus response, completion, and teardown.
// Every acquisition goes through a resource.Pool, and every multi-stage
// operation is all-or-nothing: it returns a fully formed value or releases
// everything it acquired before reporting the failure.
package cosmos

import (
	"fmt"
	"time"

	"github.com/veradun/demiurge/internal/cosmology"
	"github.com/veradun/demiurge/internal/fault"
	"github.com/veradun/demiurge/internal/resource"
)

// Genesis fixes the shape of a world at creation.
type Genesis struct {
	ConstantCount int
	LifespanDays  int64
	EntropyLevel  float64
	MaxEntropy    float64
}

// DefaultGenesis returns the canonical creation parameters.
func DefaultGenesis() Genesis {
	return Genesis{
		ConstantCount: cosmology.ConstantCount,
		LifespanDays:  cosmology.LifespanDays,
		EntropyLevel:  cosmology.GenesisEntropy,
		MaxEntropy:    cosmology.EntropyCeiling,
	}
}

func (g Genesis) validate() error {
	if g.ConstantCount <= 0 {
		return fault.Newf(fault.InvalidArgument, "constant count %d", g.ConstantCount)
	}
	if g.LifespanDays < 0 {
		return fault.Newf(fault.InvalidArgument, "lifespan %d days", g.LifespanDays)
	}
	if g.MaxEntropy <= 0 {
		return fault.Newf(fault.InvalidArgument, "entropy ceiling %g", g.MaxEntropy)
	}
	if g.EntropyLevel < 0 || g.EntropyLevel > g.MaxEntropy {
		return fault.Newf(fault.InvalidArgument, "entropy level %g outside [0, %g]", g.EntropyLevel, g.MaxEntropy)
	}
	return nil
}

// World is the root aggregate. It exclusively owns its constant vector,
// spacetime buffer, matter and energy scalars, and every entity in its
// collection; no owned resource is shared with another world. Worlds are
// single-owner values and not safe for concurrent use.
type World struct {
	Constants *resource.Vector
	Spacetime *resource.Vector
	Matter    *resource.Scalar
	Energy    *resource.Scalar

	// Entities is append-only; insertion order is creation order, and the
	// length is what assigns the next entity ID.
	Entities []*Entity

	CreatedAt         time.Time
	TotalLifespanDays int64
	EntropyLevel      float64
	MaxEntropy        float64

	pool      *resource.Pool
	slab      *resource.Block
	destroyed bool
}

// stage accumulates one call's acquisitions so any failure can unwind them
// newest-first before the error escapes.
type stage struct {
	acquired []interface{ Release() }
}

func (s *stage) track(r interface{ Release() }) {
	s.acquired = append(s.acquired, r)
}

func (s *stage) unwind() {
	for i := len(s.acquired) - 1; i >= 0; i-- {
		s.acquired[i].Release()
	}
}

// NewConstantVector acquires a vector of n physical constants filled by
// cosmology.Seed. The caller owns the result. A non-positive n fails with
// InvalidArgument; exhaustion fails with OutOfMemory.
func NewConstantVector(pool *resource.Pool, n int) (*resource.Vector, error) {
	if n <= 0 {
		return nil, fault.Newf(fault.InvalidArgument, "constant vector length %d", n)
	}
	vec, err := pool.Vector(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < vec.Len(); i++ {
		vec.Set(i, cosmology.Seed(i))
	}
	return vec, nil
}

// CreateWorld runs the genesis sequence: constant vector, spacetime buffer,
// matter, energy, then the scalar fields from g with CreatedAt = now. If any
// stage fails, every acquisition from the prior stages is released before
// the error returns; the caller sees a whole world or nothing.
func CreateWorld(pool *resource.Pool, g Genesis, now time.Time) (w *World, err error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	var st stage
	defer func() {
		if err != nil {
			st.unwind()
		}
	}()

	constants, err := NewConstantVector(pool, g.ConstantCount)
	if err != nil {
		return nil, fmt.Errorf("world constants: %w", err)
	}
	st.track(constants)

	spacetime, err := pool.Vector(cosmology.SpacetimeDimensions)
	if err != nil {
		return nil, fmt.Errorf("spacetime buffer: %w", err)
	}
	st.track(spacetime)

	matter, err := pool.Scalar(cosmology.PrimordialUnit)
	if err != nil {
		return nil, fmt.Errorf("matter scalar: %w", err)
	}
	st.track(matter)

	energy, err := pool.Scalar(cosmology.PrimordialUnit)
	if err != nil {
		return nil, fmt.Errorf("energy scalar: %w", err)
	}
	st.track(energy)

	return &World{
		Constants:         constants,
		Spacetime:         spacetime,
		Matter:            matter,
		Energy:            energy,
		CreatedAt:         now,
		TotalLifespanDays: g.LifespanDays,
		EntropyLevel:      g.EntropyLevel,
		MaxEntropy:        g.MaxEntropy,
		pool:              pool,
	}, nil
}

// Destroy releases everything the world owns: the spacetime buffer, matter,
// energy, the constant vector, every entity's name and scalars, and the
// collection block. Teardown is never partial. A world is destroyed exactly
// once; a second call panics.
func (w *World) Destroy() {
	if w.destroyed {
		panic("cosmos: world destroyed twice")
	}
	w.destroyed = true

	w.Spacetime.Release()
	w.Matter.Release()
	w.Energy.Release()
	w.Constants.Release()
	for _, e := range w.Entities {
		e.release()
	}
	if w.slab != nil {
		w.slab.Release()
	}
	w.Entities = nil
}
