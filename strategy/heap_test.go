package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify/strategy"
)

func TestHeapPopsInDescendingOrder(t *testing.T) {
	t.Parallel()

	h := strategy.HeapFrom([]int{3, 9, 1, 7, 5})
	var got []int
	for {
		v, ok := h.Pop()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{9, 7, 5, 3, 1}, got)
}

func TestHeapPushKeepsMaxOnTop(t *testing.T) {
	t.Parallel()

	var h strategy.Heap[int]
	h.Push(4)
	h.Push(10)
	h.Push(7)

	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 10, top)
	assert.Equal(t, 3, h.Len())
}

func TestHeapPeekEmpty(t *testing.T) {
	t.Parallel()

	var h strategy.Heap[int]
	_, ok := h.Peek()
	assert.False(t, ok)
	_, ok = h.Pop()
	assert.False(t, ok)
}

// heapOrdered checks the max-heap invariant over the backing layout.
func heapOrdered(items []int) bool {
	for i := 1; i < len(items); i++ {
		if items[(i-1)/2] < items[i] {
			return false
		}
	}
	return true
}

func TestHeapShrinkPreservesHeapProperty(t *testing.T) {
	t.Parallel()

	s := strategy.HeapOf[int](strategy.IntRange(0, 100), strategy.Between(2, 6))
	out := s.NewTree(seededGen(12))
	require.True(t, out.Accepted())

	tree := out.Value
	assert.True(t, heapOrdered(tree.Current().Values()))
	for tree.Simplify() {
		assert.True(t, heapOrdered(tree.Current().Values()))
		assert.GreaterOrEqual(t, tree.Current().Len(), 2)
	}
}
