package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify/strategy"
)

func TestIntRangeHonoursBounds(t *testing.T) {
	t.Parallel()

	s := strategy.IntRange(3, 17)
	g := newGen()
	for range 200 {
		out := s.NewTree(g)
		require.True(t, out.Accepted())
		v := out.Value.Current()
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 17)
	}
}

func TestIntRangePanicsOnInvertedBounds(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { strategy.IntRange(5, 4) })
}

func TestIntShrinkTerminatesAtZero(t *testing.T) {
	t.Parallel()

	// Any value over a zero-spanning range simplifies all the way to 0.
	s := strategy.IntRange(-10, 10)
	for seed := uint64(1); seed <= 20; seed++ {
		out := s.NewTree(seededGen(seed))
		require.True(t, out.Accepted())
		tree := out.Value
		for tree.Simplify() {
		}
		assert.Equal(t, 0, tree.Current())
	}
}

func TestIntShrinkIsMonotone(t *testing.T) {
	t.Parallel()

	s := strategy.IntRange(0, 1000)
	out := s.NewTree(seededGen(7))
	require.True(t, out.Accepted())

	tree := out.Value
	prev := tree.Current()
	seen := map[int]bool{prev: true}
	for tree.Simplify() {
		cur := tree.Current()
		assert.Less(t, cur, prev, "distance from anchor must strictly decrease")
		assert.False(t, seen[cur], "shrinking must never revisit a value")
		seen[cur] = true
		prev = cur
	}
	assert.Equal(t, 0, prev)
}

func TestIntShrinkPositiveRangeStopsAtLowerBound(t *testing.T) {
	t.Parallel()

	s := strategy.IntRange(5, 10)
	out := s.NewTree(seededGen(3))
	require.True(t, out.Accepted())

	tree := out.Value
	for tree.Simplify() {
	}
	assert.Equal(t, 5, tree.Current())
}

func TestUint64FullRangeDraws(t *testing.T) {
	t.Parallel()

	s := strategy.Uint64()
	g := newGen()
	out := s.NewTree(g)
	require.True(t, out.Accepted())

	tree := out.Value
	for tree.Simplify() {
	}
	assert.Equal(t, uint64(0), tree.Current())
}
