package cosmos

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/veradun/demiurge/internal/cosmology"
	"github.com/veradun/demiurge/internal/fault"
	"github.com/veradun/demiurge/internal/resource"
)

var genesisTime = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func newTestWorld(t *testing.T) (*World, *resource.Pool) {
	t.Helper()
	pool := resource.NewPool()
	w, err := CreateWorld(pool, DefaultGenesis(), genesisTime)
	if err != nil {
		t.Fatalf("CreateWorld: %v", err)
	}
	return w, pool
}

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("no panic, want one containing %q", want)
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, want) {
			t.Fatalf("panic = %v, want one containing %q", r, want)
		}
	}()
	fn()
}

func TestCreateWorldGenesisState(t *testing.T) {
	w, pool := newTestWorld(t)

	if got := w.Constants.Len(); got != cosmology.ConstantCount {
		t.Fatalf("constants length = %d, want %d", got, cosmology.ConstantCount)
	}
	for i := 0; i < w.Constants.Len(); i++ {
		if got, want := w.Constants.At(i), cosmology.Seed(i); got != want {
			t.Fatalf("constants[%d] = %g, want %g", i, got, want)
		}
	}

	if got := w.Spacetime.Len(); got != cosmology.SpacetimeDimensions {
		t.Fatalf("spacetime length = %d, want %d", got, cosmology.SpacetimeDimensions)
	}
	for i := 0; i < w.Spacetime.Len(); i++ {
		if got := w.Spacetime.At(i); got != 0 {
			t.Fatalf("spacetime[%d] = %g, want 0", i, got)
		}
	}

	if got := w.Matter.Value(); got != cosmology.PrimordialUnit {
		t.Fatalf("matter = %g, want %g", got, float64(cosmology.PrimordialUnit))
	}
	if got := w.Energy.Value(); got != cosmology.PrimordialUnit {
		t.Fatalf("energy = %g, want %g", got, float64(cosmology.PrimordialUnit))
	}

	if !w.CreatedAt.Equal(genesisTime) {
		t.Fatalf("createdAt = %v, want %v", w.CreatedAt, genesisTime)
	}
	if w.TotalLifespanDays != cosmology.LifespanDays {
		t.Fatalf("lifespan = %d, want %d", w.TotalLifespanDays, int64(cosmology.LifespanDays))
	}
	if w.EntropyLevel != cosmology.GenesisEntropy {
		t.Fatalf("entropy = %g, want %g", w.EntropyLevel, float64(cosmology.GenesisEntropy))
	}
	if w.MaxEntropy != cosmology.EntropyCeiling {
		t.Fatalf("entropy ceiling = %g, want %g", w.MaxEntropy, float64(cosmology.EntropyCeiling))
	}
	if len(w.Entities) != 0 {
		t.Fatalf("entities = %d, want 0", len(w.Entities))
	}

	// Constants, spacetime, matter, energy.
	if got := pool.Live(); got != 4 {
		t.Fatalf("live acquisitions = %d, want 4", got)
	}
}

func TestCreateWorldStageFailureLeavesNothing(t *testing.T) {
	// Creation acquires in four stages: constant vector, spacetime buffer,
	// matter, energy. Refusing any one of them must leave no residue.
	for k := 1; k <= 4; k++ {
		t.Run(fmt.Sprintf("stage_%d", k), func(t *testing.T) {
			pool := resource.NewPool()
			pool.FailOn = resource.FailAt(k)

			w, err := CreateWorld(pool, DefaultGenesis(), genesisTime)
			if w != nil {
				t.Fatal("got a world despite an injected stage failure")
			}
			if !errors.Is(err, fault.ErrOutOfMemory) {
				t.Fatalf("err = %v, want OutOfMemory", err)
			}
			if got := pool.Live(); got != 0 {
				t.Fatalf("live acquisitions = %d after stage %d failure, want 0", got, k)
			}
		})
	}
}

func TestCreateWorldValidatesGenesis(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Genesis)
	}{
		{"zero constants", func(g *Genesis) { g.ConstantCount = 0 }},
		{"negative constants", func(g *Genesis) { g.ConstantCount = -5 }},
		{"negative lifespan", func(g *Genesis) { g.LifespanDays = -1 }},
		{"zero ceiling", func(g *Genesis) { g.MaxEntropy = 0 }},
		{"negative entropy", func(g *Genesis) { g.EntropyLevel = -0.1 }},
		{"entropy above ceiling", func(g *Genesis) { g.EntropyLevel = 1.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pool := resource.NewPool()
			g := DefaultGenesis()
			tc.mutate(&g)

			if _, err := CreateWorld(pool, g, genesisTime); !errors.Is(err, fault.ErrInvalidArgument) {
				t.Fatalf("err = %v, want InvalidArgument", err)
			}
			if got := pool.Live(); got != 0 {
				t.Fatalf("live acquisitions = %d, want 0 (validation precedes acquisition)", got)
			}
		})
	}
}

func TestNewConstantVector(t *testing.T) {
	pool := resource.NewPool()

	vec, err := NewConstantVector(pool, 12)
	if err != nil {
		t.Fatalf("NewConstantVector: %v", err)
	}
	for i := 0; i < vec.Len(); i++ {
		if got, want := vec.At(i), cosmology.Seed(i); got != want {
			t.Fatalf("vec[%d] = %g, want %g", i, got, want)
		}
	}
	vec.Release()
	if got := pool.Live(); got != 0 {
		t.Fatalf("live acquisitions = %d after release, want 0", got)
	}

	for _, n := range []int{0, -1} {
		if _, err := NewConstantVector(pool, n); !errors.Is(err, fault.ErrInvalidArgument) {
			t.Fatalf("NewConstantVector(%d) err = %v, want InvalidArgument", n, err)
		}
	}
}

func TestDestroyReleasesEverything(t *testing.T) {
	w, pool := newTestWorld(t)
	if _, err := w.AddEntity("Adam"); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}
	if _, err := w.AddEntity("Eve"); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}

	// World core (4) + three resources per entity (6) + the collection block.
	if got := pool.Live(); got != 11 {
		t.Fatalf("live acquisitions = %d, want 11", got)
	}

	w.Destroy()
	if got := pool.Live(); got != 0 {
		t.Fatalf("live acquisitions = %d after destroy, want 0", got)
	}
}

func TestDestroyTwicePanics(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Destroy()
	mustPanic(t, "destroyed twice", func() { w.Destroy() })
}

func TestDestroyWithoutEntities(t *testing.T) {
	w, pool := newTestWorld(t)
	w.Destroy()
	if got := pool.Live(); got != 0 {
		t.Fatalf("live acquisitions = %d, want 0", got)
	}
}
