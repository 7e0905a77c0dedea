package gen

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Gen is the generation context for a single test case. It owns the RNG,
// the iteration counter identifying the current draw, and the recursion
// depth bookkeeping. A Gen is built once per case and discarded after it.
type Gen struct {
	rng            *rand.Rand
	iteration      int
	depth          int
	recursionLimit int
}

// New returns a context with an unbounded recursion limit.
func New(rng *rand.Rand) *Gen {
	return NewWithLimit(rng, math.MaxInt)
}

// NewWithLimit returns a context that refuses to recurse deeper than
// recursionLimit nested Recurse calls.
func NewWithLimit(rng *rand.Rand, recursionLimit int) *Gen {
	return &Gen{
		rng:            rng,
		recursionLimit: recursionLimit,
	}
}

// Rand exposes the owned randomness source. Every draw mutates it.
func (g *Gen) Rand() *rand.Rand { return g.rng }

// Iteration reports the current case-local iteration number.
func (g *Gen) Iteration() int { return g.iteration }

// Depth reports the current nested-recursion depth.
func (g *Gen) Depth() int { return g.depth }

// AdvanceIteration moves to the next iteration number. Accept and Reject
// deliberately do not advance it themselves, so multiple sub-draws within
// one logical case share an iteration number unless the caller steps it.
func (g *Gen) AdvanceIteration() { g.iteration++ }

// Accept wraps value in an accepted outcome stamped with the context's
// current counters.
func Accept[T any](g *Gen, value T) Outcome[T] {
	return Outcome[T]{
		Status:    StatusAccepted,
		Iteration: g.iteration,
		Depth:     g.depth,
		Value:     value,
	}
}

// Reject wraps value in a rejected outcome stamped with the context's
// current counters. The caller must retry generation; a rejected value is
// never handed to a property body.
func Reject[T any](g *Gen, value T) Outcome[T] {
	return Outcome[T]{
		Status:    StatusRejected,
		Iteration: g.iteration,
		Depth:     g.depth,
		Value:     value,
	}
}

// Recurse runs f in a scope one recursion level deeper. It panics when the
// configured limit is already reached: a runaway recursive strategy must
// crash loudly rather than hang or exhaust memory. The depth counter is
// restored on every exit path, including a panic inside f.
func (g *Gen) Recurse(f func(*Gen)) {
	if g.depth >= g.recursionLimit {
		panic(fmt.Sprintf("falsify: strategy recursion exceeded limit of %d", g.recursionLimit))
	}
	g.depth++
	defer func() { g.depth-- }()
	f(g)
}
