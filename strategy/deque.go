package strategy

import (
	"slices"

	"github.com/syssam/falsify/gen"
)

// Deque is a slice-backed double-ended queue, the container produced by
// DequeOf.
type Deque[T any] struct {
	items []T
}

// DequeFrom builds a deque holding the given items front to back.
func DequeFrom[T any](items []T) Deque[T] {
	return Deque[T]{items: slices.Clone(items)}
}

// Len reports the number of queued items.
func (d Deque[T]) Len() int { return len(d.items) }

// PushFront prepends v.
func (d *Deque[T]) PushFront(v T) { d.items = slices.Insert(d.items, 0, v) }

// PushBack appends v.
func (d *Deque[T]) PushBack(v T) { d.items = append(d.items, v) }

// PopFront removes and returns the front item.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	v := d.items[0]
	d.items = d.items[1:]
	return v, true
}

// PopBack removes and returns the back item.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	v := d.items[len(d.items)-1]
	d.items = d.items[:len(d.items)-1]
	return v, true
}

// Values returns the queued items front to back.
func (d Deque[T]) Values() []T { return slices.Clone(d.items) }

// DequeStrategy is a thin wrapper over the slice strategy producing
// deques.
type DequeStrategy[T any] struct {
	inner *SliceStrategy[T]
}

// DequeOf returns a strategy producing deques with length sampled from
// hint and elements from elem.
func DequeOf[T any](elem Strategy[T], hint SizeHint) *DequeStrategy[T] {
	return &DequeStrategy[T]{inner: SliceOf(elem, hint)}
}

// NewTree draws the underlying slice tree and wraps it.
func (s *DequeStrategy[T]) NewTree(g *gen.Gen) gen.Outcome[ValueTree[Deque[T]]] {
	return gen.Map(s.inner.NewTree(g), func(tr ValueTree[[]T]) ValueTree[Deque[T]] {
		return &DequeValueTree[T]{inner: tr, current: DequeFrom(tr.Current())}
	})
}

// DequeValueTree delegates shrinking to a slice tree and rebuilds the
// deque on every transition.
type DequeValueTree[T any] struct {
	inner   ValueTree[[]T]
	current Deque[T]
}

func (t *DequeValueTree[T]) Current() Deque[T] { return t.current }

func (t *DequeValueTree[T]) Simplify() bool {
	if !t.inner.Simplify() {
		return false
	}
	t.current = DequeFrom(t.inner.Current())
	return true
}

func (t *DequeValueTree[T]) Complicate() bool {
	ok := t.inner.Complicate()
	t.current = DequeFrom(t.inner.Current())
	return ok
}
