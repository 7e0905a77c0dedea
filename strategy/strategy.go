package strategy

import (
	"github.com/syssam/falsify/gen"
)

// MaxStrategyAttempts bounds retry loops that absorb rejections or
// uniqueness collisions during generation. Exceeding a derived bound is
// surfaced loudly rather than looping forever.
const MaxStrategyAttempts = 64

// ValueTree is a shrinkable handle over one generated value.
//
// Current never panics and has no side effects. Simplify attempts to move
// to a strictly simpler candidate and reports whether it advanced,
// regardless of whether the property still fails with the new candidate.
// Complicate backtracks the most recent simplification and reports whether
// further alternatives remain from this node.
//
// Every reachable state of a tree satisfies the domain constraints that
// held for the originally generated value: length floors, uniqueness,
// ordering. Shrinking never escapes the domain.
type ValueTree[T any] interface {
	Current() T
	Simplify() bool
	Complicate() bool
}

// Strategy is a factory of ValueTree instances over one domain. Repeated
// NewTree calls may return different trees (fresh randomness) but always
// the same kind of tree.
type Strategy[T any] interface {
	NewTree(g *gen.Gen) gen.Outcome[ValueTree[T]]
}

// candidateTree walks a candidate sequence precomputed at construction
// time. It backs the integer, float, rune and UUID trees: Simplify consumes
// the next candidate, Complicate pops the history stack and reports whether
// candidates remain.
type candidateTree[T any] struct {
	current    T
	history    []T
	candidates []T
	next       int
}

// NewCandidateTree returns a tree whose simplification steps are exactly
// the given candidates, in order.
func NewCandidateTree[T any](value T, candidates []T) ValueTree[T] {
	return &candidateTree[T]{current: value, candidates: candidates}
}

func (t *candidateTree[T]) Current() T { return t.current }

func (t *candidateTree[T]) Simplify() bool {
	if t.next >= len(t.candidates) {
		return false
	}
	t.history = append(t.history, t.current)
	t.current = t.candidates[t.next]
	t.next++
	return true
}

func (t *candidateTree[T]) Complicate() bool {
	if len(t.history) == 0 {
		return false
	}
	t.current = t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	return t.next < len(t.candidates)
}
