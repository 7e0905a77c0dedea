package strategy

import (
	"github.com/syssam/falsify/gen"
)

// Pair holds two values drawn from the same domain.
type Pair[T any] struct {
	First  T
	Second T
}

// DistinctPairStrategy draws pairs whose halves differ, rejecting draws
// where the two values collide.
type DistinctPairStrategy[T comparable] struct {
	inner Strategy[T]
}

// DistinctPair returns a strategy producing pairs of unequal values from
// inner. Collisions surface as rejections, so the caller's retry budget
// bounds how narrow the inner domain may be.
func DistinctPair[T comparable](inner Strategy[T]) *DistinctPairStrategy[T] {
	return &DistinctPairStrategy[T]{inner: inner}
}

// NewTree draws both halves and rejects the draw when they are equal.
func (s *DistinctPairStrategy[T]) NewTree(g *gen.Gen) gen.Outcome[ValueTree[Pair[T]]] {
	first := s.inner.NewTree(g)
	if !first.Accepted() {
		return gen.Outcome[ValueTree[Pair[T]]]{
			Status:    gen.StatusRejected,
			Iteration: first.Iteration,
			Depth:     first.Depth,
		}
	}
	second := s.inner.NewTree(g)
	if !second.Accepted() {
		return gen.Outcome[ValueTree[Pair[T]]]{
			Status:    gen.StatusRejected,
			Iteration: second.Iteration,
			Depth:     second.Depth,
		}
	}
	if first.Value.Current() == second.Value.Current() {
		return gen.Reject[ValueTree[Pair[T]]](g, NewDistinctPairTree(first.Value, second.Value))
	}
	return gen.Accept[ValueTree[Pair[T]]](g, NewDistinctPairTree(first.Value, second.Value))
}

// DistinctPairValueTree shrinks its halves left to right and locally
// undoes any step that would make them equal, so every exposed pair stays
// distinct.
type DistinctPairValueTree[T comparable] struct {
	first       ValueTree[T]
	second      ValueTree[T]
	current     Pair[T]
	lastChanged int
}

// NewDistinctPairTree builds a pair tree over two inner trees.
func NewDistinctPairTree[T comparable](first, second ValueTree[T]) *DistinctPairValueTree[T] {
	t := &DistinctPairValueTree[T]{first: first, second: second, lastChanged: -1}
	t.sync()
	return t
}

func (t *DistinctPairValueTree[T]) sync() {
	t.current = Pair[T]{First: t.first.Current(), Second: t.second.Current()}
}

func (t *DistinctPairValueTree[T]) half(i int) ValueTree[T] {
	if i == 0 {
		return t.first
	}
	return t.second
}

func (t *DistinctPairValueTree[T]) Current() Pair[T] { return t.current }

func (t *DistinctPairValueTree[T]) Simplify() bool {
	for i := range 2 {
		tree := t.half(i)
		for tree.Simplify() {
			if t.first.Current() == t.second.Current() {
				if !tree.Complicate() {
					break
				}
				continue
			}
			t.sync()
			t.lastChanged = i
			return true
		}
	}
	return false
}

func (t *DistinctPairValueTree[T]) Complicate() bool {
	if t.lastChanged < 0 {
		return false
	}
	ok := t.half(t.lastChanged).Complicate()
	t.sync()
	if !ok {
		t.lastChanged = -1
	}
	return ok
}
