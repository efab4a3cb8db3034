package cosmos

import (
	"fmt"

	"github.com/veradun/demiurge/internal/cosmology"
	"github.com/veradun/demiurge/internal/fault"
	"github.com/veradun/demiurge/internal/resource"
)

// MaxNameLength bounds entity names in bytes, exclusive.
const MaxNameLength = 256

// Entity is one inhabitant of a world. It owns its name and its two
// scalars, and is exclusively owned by the world that created it: no entity
// outlives its world or is shared between worlds.
type Entity struct {
	ID            int
	Name          *resource.Str
	Consciousness *resource.Scalar
	FreeWill      *resource.Scalar
}

// AddEntity appends one inhabitant: consciousness scalar, free-will scalar,
// an owned copy of name, then the collection grown by one slot. IDs count
// from 1 in creation order. On any failure this call's acquisitions are
// released and the world, including every existing entity, is untouched.
func (w *World) AddEntity(name string) (e *Entity, err error) {
	if name == "" {
		return nil, fault.New(fault.InvalidArgument, "entity name is empty")
	}
	if len(name) >= MaxNameLength {
		return nil, fault.Newf(fault.InvalidArgument, "entity name is %d bytes, limit %d", len(name), MaxNameLength-1)
	}

	var st stage
	defer func() {
		if err != nil {
			st.unwind()
		}
	}()

	consciousness, err := w.pool.Scalar(cosmology.PrimordialUnit)
	if err != nil {
		return nil, fmt.Errorf("consciousness scalar: %w", err)
	}
	st.track(consciousness)

	freeWill, err := w.pool.Scalar(cosmology.PrimordialUnit)
	if err != nil {
		return nil, fmt.Errorf("free-will scalar: %w", err)
	}
	st.track(freeWill)

	owned, err := w.pool.Str(name)
	if err != nil {
		return nil, fmt.Errorf("name copy: %w", err)
	}
	st.track(owned)

	id := len(w.Entities) + 1

	slab, err := w.pool.Regrow(w.slab, id)
	if err != nil {
		return nil, fmt.Errorf("entity collection growth: %w", err)
	}
	w.slab = slab

	e = &Entity{ID: id, Name: owned, Consciousness: consciousness, FreeWill: freeWill}
	w.Entities = append(w.Entities, e)
	return e, nil
}

// owns reports whether e is one of w's entities.
func (w *World) owns(e *Entity) bool {
	for _, have := range w.Entities {
		if have == e {
			return true
		}
	}
	return false
}

func (e *Entity) release() {
	e.Name.Release()
	e.Consciousness.Release()
	e.FreeWill.Release()
}
