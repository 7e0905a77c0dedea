package strategy

import (
	"cmp"
	"slices"

	"github.com/syssam/falsify/gen"
)

// Heap is a max-heap over an ordered element type, the container produced
// by HeapOf.
type Heap[T cmp.Ordered] struct {
	items []T
}

// HeapFrom builds a heap from the given items.
func HeapFrom[T cmp.Ordered](items []T) Heap[T] {
	h := Heap[T]{items: slices.Clone(items)}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return h
}

// Len reports the number of stored items.
func (h Heap[T]) Len() int { return len(h.items) }

// Peek returns the maximum item without removing it.
func (h Heap[T]) Peek() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	return h.items[0], true
}

// Push inserts v.
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	i := len(h.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent] >= h.items[i] {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

// Pop removes and returns the maximum item.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	h.siftDown(0)
	return top, true
}

// Values returns the stored items in heap order.
func (h Heap[T]) Values() []T { return slices.Clone(h.items) }

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		largest := i
		if l := 2*i + 1; l < n && h.items[l] > h.items[largest] {
			largest = l
		}
		if r := 2*i + 2; r < n && h.items[r] > h.items[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}

// HeapStrategy is a thin wrapper over the slice strategy producing
// max-heaps.
type HeapStrategy[T cmp.Ordered] struct {
	inner *SliceStrategy[T]
}

// HeapOf returns a strategy producing heaps with length sampled from hint
// and elements from elem.
func HeapOf[T cmp.Ordered](elem Strategy[T], hint SizeHint) *HeapStrategy[T] {
	return &HeapStrategy[T]{inner: SliceOf(elem, hint)}
}

// NewTree draws the underlying slice tree and wraps it.
func (s *HeapStrategy[T]) NewTree(g *gen.Gen) gen.Outcome[ValueTree[Heap[T]]] {
	return gen.Map(s.inner.NewTree(g), func(tr ValueTree[[]T]) ValueTree[Heap[T]] {
		return &HeapValueTree[T]{inner: tr, current: HeapFrom(tr.Current())}
	})
}

// HeapValueTree delegates shrinking to a slice tree and re-heapifies the
// derived container on every transition, preserving the heap property
// across all reachable states.
type HeapValueTree[T cmp.Ordered] struct {
	inner   ValueTree[[]T]
	current Heap[T]
}

func (t *HeapValueTree[T]) Current() Heap[T] { return t.current }

func (t *HeapValueTree[T]) Simplify() bool {
	if !t.inner.Simplify() {
		return false
	}
	t.current = HeapFrom(t.inner.Current())
	return true
}

func (t *HeapValueTree[T]) Complicate() bool {
	ok := t.inner.Complicate()
	t.current = HeapFrom(t.inner.Current())
	return ok
}
