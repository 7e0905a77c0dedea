package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify/strategy"
)

func TestDequeOperations(t *testing.T) {
	t.Parallel()

	d := strategy.DequeFrom([]int{2, 3})
	d.PushFront(1)
	d.PushBack(4)
	assert.Equal(t, []int{1, 2, 3, 4}, d.Values())

	front, ok := d.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, front)

	back, ok := d.PopBack()
	require.True(t, ok)
	assert.Equal(t, 4, back)
	assert.Equal(t, 2, d.Len())
}

func TestDequePopEmpty(t *testing.T) {
	t.Parallel()

	var d strategy.Deque[int]
	_, ok := d.PopFront()
	assert.False(t, ok)
	_, ok = d.PopBack()
	assert.False(t, ok)
}

func TestDequeGenerationHonoursLengthRange(t *testing.T) {
	t.Parallel()

	s := strategy.DequeOf[int](strategy.IntRange(0, 9), strategy.Between(2, 5))
	g := newGen()
	for range 50 {
		out := s.NewTree(g)
		require.True(t, out.Accepted())
		n := out.Value.Current().Len()
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 5)
	}
}

func TestDequeShrinkRespectsLengthFloor(t *testing.T) {
	t.Parallel()

	s := strategy.DequeOf[int](strategy.IntRange(0, 9), strategy.Between(2, 5))
	out := s.NewTree(seededGen(8))
	require.True(t, out.Accepted())

	tree := out.Value
	for tree.Simplify() {
		assert.GreaterOrEqual(t, tree.Current().Len(), 2)
	}
}
