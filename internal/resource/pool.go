// Package resource provides the owned-value primitives the world graph is
// built from. Every acquisition registers in a Pool ledger and stays there
// until released, so leaks, double releases, and use after release surface
// as observable failures instead of silent ones. A Pool's FailOn hook lets
// tests refuse any single acquisition to drive the rollback paths.
package resource

import (
	"fmt"

	"github.com/veradun/demiurge/internal/fault"
)

// Kind classifies an acquisition in the ledger.
type Kind uint8

const (
	KindScalar Kind = iota
	KindVector
	KindString
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindString:
		return "string"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Pool is the acquisition ledger. Acquisitions are numbered from 1 in call
// order; the number is what FailOn sees, so a test can refuse exactly the
// nth attempt. A Pool and the resources it issues are single-owner values;
// nothing here is safe for concurrent use.
type Pool struct {
	// FailOn, when non-nil, is consulted before every acquisition. Returning
	// true makes that acquisition fail with an OutOfMemory fault and leaves
	// the ledger untouched.
	FailOn func(seq int, kind Kind) bool

	seq  int
	live map[int]Kind
}

// NewPool returns an empty ledger.
func NewPool() *Pool {
	return &Pool{live: make(map[int]Kind)}
}

// Live returns the number of acquisitions not yet released.
func (p *Pool) Live() int {
	return len(p.live)
}

// Acquisitions returns the total number of acquisition attempts so far,
// including refused ones. Tests use it to aim FailOn at a stage relative to
// the current position.
func (p *Pool) Acquisitions() int {
	return p.seq
}

// FailAt returns a FailOn hook that refuses exactly the nth acquisition
// attempt, counted from 1 over the pool's lifetime.
func FailAt(n int) func(seq int, kind Kind) bool {
	return func(seq int, _ Kind) bool { return seq == n }
}

func (p *Pool) admit(k Kind) (int, error) {
	p.seq++
	if p.FailOn != nil && p.FailOn(p.seq, k) {
		return 0, fault.Newf(fault.OutOfMemory, "%s acquisition %d refused", k, p.seq)
	}
	p.live[p.seq] = k
	return p.seq, nil
}

func (p *Pool) discharge(id int, k Kind) {
	if _, ok := p.live[id]; !ok {
		panic(fmt.Sprintf("resource: %s %d is not in the ledger", k, id))
	}
	delete(p.live, id)
}
