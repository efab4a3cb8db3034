package resource

import "github.com/veradun/demiurge/internal/fault"

// released marks a resource whose ledger entry is gone. Any further use
// panics: the single-owner contract forbids touching a released value.
const released = -1

// Scalar is one owned floating-point value.
type Scalar struct {
	pool *Pool
	id   int
	val  float64
}

// Scalar acquires one owned value holding initial.
func (p *Pool) Scalar(initial float64) (*Scalar, error) {
	id, err := p.admit(KindScalar)
	if err != nil {
		return nil, err
	}
	return &Scalar{pool: p, id: id, val: initial}, nil
}

func (s *Scalar) Value() float64 {
	s.guard()
	return s.val
}

func (s *Scalar) Set(v float64) {
	s.guard()
	s.val = v
}

// Release returns the scalar to the ledger. Releasing twice panics.
func (s *Scalar) Release() {
	if s.id == released {
		panic("resource: scalar released twice")
	}
	s.pool.discharge(s.id, KindScalar)
	s.id = released
}

func (s *Scalar) guard() {
	if s.id == released {
		panic("resource: scalar used after release")
	}
}

// Vector is an owned fixed-length array of floats. The whole vector is one
// ledger entry regardless of length.
type Vector struct {
	pool *Pool
	id   int
	vals []float64
}

// Vector acquires an owned zero-filled array of n values. n must be
// positive; n <= 0 fails with InvalidArgument before touching the ledger.
func (p *Pool) Vector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, fault.Newf(fault.InvalidArgument, "vector length %d", n)
	}
	id, err := p.admit(KindVector)
	if err != nil {
		return nil, err
	}
	return &Vector{pool: p, id: id, vals: make([]float64, n)}, nil
}

func (v *Vector) Len() int {
	v.guard()
	return len(v.vals)
}

func (v *Vector) At(i int) float64 {
	v.guard()
	return v.vals[i]
}

func (v *Vector) Set(i int, x float64) {
	v.guard()
	v.vals[i] = x
}

// Values exposes the backing storage. Mutations are visible to the owner;
// copies must go through a fresh acquisition, never by aliasing this slice.
func (v *Vector) Values() []float64 {
	v.guard()
	return v.vals
}

// Release returns the vector to the ledger. Releasing twice panics.
func (v *Vector) Release() {
	if v.id == released {
		panic("resource: vector released twice")
	}
	v.pool.discharge(v.id, KindVector)
	v.id = released
}

func (v *Vector) guard() {
	if v.id == released {
		panic("resource: vector used after release")
	}
}

// Str is an owned copy of a string.
type Str struct {
	pool *Pool
	id   int
	val  string
}

// Str acquires an owned copy of s.
func (p *Pool) Str(s string) (*Str, error) {
	id, err := p.admit(KindString)
	if err != nil {
		return nil, err
	}
	return &Str{pool: p, id: id, val: s}, nil
}

// String returns the owned text.
func (s *Str) String() string {
	if s.id == released {
		panic("resource: string used after release")
	}
	return s.val
}

// Release returns the string to the ledger. Releasing twice panics.
func (s *Str) Release() {
	if s.id == released {
		panic("resource: string released twice")
	}
	s.pool.discharge(s.id, KindString)
	s.id = released
}

// Block is an accounting token for a collection's backing storage, so that
// growing the collection is a first-class acquisition with its own failure
// point and ledger entry.
type Block struct {
	pool  *Pool
	id    int
	slots int
}

// Regrow acquires a block of n slots to replace b, with realloc semantics:
// on success the old block's ledger entry is retired and the new block
// returned; on failure b is untouched and still live. A nil b performs the
// initial acquisition.
func (p *Pool) Regrow(b *Block, n int) (*Block, error) {
	if n <= 0 {
		return nil, fault.Newf(fault.InvalidArgument, "block slots %d", n)
	}
	id, err := p.admit(KindBlock)
	if err != nil {
		return nil, err
	}
	grown := &Block{pool: p, id: id, slots: n}
	if b != nil {
		b.Release()
	}
	return grown, nil
}

func (b *Block) Slots() int {
	if b.id == released {
		panic("resource: block used after release")
	}
	return b.slots
}

// Release retires the block's ledger entry. Releasing twice panics.
func (b *Block) Release() {
	if b.id == released {
		panic("resource: block released twice")
	}
	b.pool.discharge(b.id, KindBlock)
	b.id = released
}
