package strategy

import (
	"fmt"

	"github.com/syssam/falsify/gen"
)

// ArrayStrategy draws fixed-length slices. Length never shrinks; only the
// elements do.
type ArrayStrategy[T any] struct {
	elem Strategy[T]
	size int
}

// ArrayOf returns a strategy producing slices of exactly size elements
// drawn from elem.
func ArrayOf[T any](size int, elem Strategy[T]) *ArrayStrategy[T] {
	if size < 0 {
		panic("falsify: array size must be non-negative")
	}
	return &ArrayStrategy[T]{elem: elem, size: size}
}

// NewTree draws exactly size element trees. Fixed-shape composites have
// no partial result to hand back, so an inner rejection panics.
func (s *ArrayStrategy[T]) NewTree(g *gen.Gen) gen.Outcome[ValueTree[[]T]] {
	trees := make([]ValueTree[T], s.size)
	for i := range trees {
		out := s.elem.NewTree(g)
		if !out.Accepted() {
			panic(fmt.Sprintf("falsify: array element draw rejected (iteration %d, depth %d)", out.Iteration, out.Depth))
		}
		trees[i] = out.Value
	}
	return gen.Accept[ValueTree[[]T]](g, NewArrayTree(trees))
}

// ArrayValueTree shrinks elements left to right, restarting the scan from
// the first element after every accepted step so earlier elements get
// another chance once later ones move.
type ArrayValueTree[T any] struct {
	elems       []ValueTree[T]
	current     []T
	lastChanged int
}

// NewArrayTree builds an array tree over the given element trees.
func NewArrayTree[T any](elems []ValueTree[T]) *ArrayValueTree[T] {
	t := &ArrayValueTree[T]{elems: elems, lastChanged: -1}
	t.syncCurrent()
	return t
}

func (t *ArrayValueTree[T]) syncCurrent() {
	t.current = make([]T, len(t.elems))
	for i, e := range t.elems {
		t.current[i] = e.Current()
	}
}

func (t *ArrayValueTree[T]) Current() []T { return t.current }

func (t *ArrayValueTree[T]) Simplify() bool {
	for i, e := range t.elems {
		if e.Simplify() {
			t.syncCurrent()
			t.lastChanged = i
			return true
		}
	}
	return false
}

func (t *ArrayValueTree[T]) Complicate() bool {
	if t.lastChanged < 0 {
		return false
	}
	ok := t.elems[t.lastChanged].Complicate()
	t.syncCurrent()
	if !ok {
		t.lastChanged = -1
	}
	return ok
}
