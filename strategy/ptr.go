package strategy

import (
	"github.com/syssam/falsify/gen"
)

// PtrStrategy draws optional values as pointers: nil or a pointer to an
// inner value.
type PtrStrategy[T any] struct {
	inner Strategy[T]
}

// PtrOf returns a strategy producing *T, choosing nil and non-nil with
// equal probability.
func PtrOf[T any](inner Strategy[T]) *PtrStrategy[T] {
	return &PtrStrategy[T]{inner: inner}
}

// NewTree flips a coin; on non-nil it draws the inner tree, passing an
// inner rejection through with the partial tree attached.
func (s *PtrStrategy[T]) NewTree(g *gen.Gen) gen.Outcome[ValueTree[*T]] {
	if g.Rand().IntN(2) == 0 {
		return gen.Accept[ValueTree[*T]](g, NewNilPtrTree[T]())
	}
	out := s.inner.NewTree(g)
	if !out.Accepted() {
		return gen.Outcome[ValueTree[*T]]{
			Status:    gen.StatusRejected,
			Iteration: out.Iteration,
			Depth:     out.Depth,
			Value:     NewPtrTree(out.Value),
		}
	}
	return gen.Accept[ValueTree[*T]](g, NewPtrTree(out.Value))
}

// PtrValueTree tries nil as its very first simplification, then falls
// through to the inner tree. Complicate from the nil step restores the
// inner value.
type PtrValueTree[T any] struct {
	inner    ValueTree[T]
	current  *T
	triedNil bool
	atNil    bool
}

// NewPtrTree wraps an inner tree as a non-nil pointer tree.
func NewPtrTree[T any](inner ValueTree[T]) *PtrValueTree[T] {
	v := inner.Current()
	return &PtrValueTree[T]{inner: inner, current: &v}
}

// NewNilPtrTree returns the already-minimal nil pointer tree.
func NewNilPtrTree[T any]() *PtrValueTree[T] {
	return &PtrValueTree[T]{triedNil: true}
}

func (t *PtrValueTree[T]) Current() *T { return t.current }

func (t *PtrValueTree[T]) setInner() {
	v := t.inner.Current()
	t.current = &v
}

func (t *PtrValueTree[T]) Simplify() bool {
	if t.inner == nil {
		return false
	}
	if !t.triedNil {
		t.triedNil = true
		t.atNil = true
		t.current = nil
		return true
	}
	if t.inner.Simplify() {
		t.atNil = false
		t.setInner()
		return true
	}
	return false
}

func (t *PtrValueTree[T]) Complicate() bool {
	if t.inner == nil {
		return false
	}
	if t.atNil {
		t.atNil = false
		t.setInner()
		return true
	}
	if t.inner.Complicate() {
		t.setInner()
		return true
	}
	return false
}
