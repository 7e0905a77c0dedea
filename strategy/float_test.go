package strategy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify/strategy"
)

func TestFloatRangeHonoursBounds(t *testing.T) {
	t.Parallel()

	s := strategy.FloatRange(-2.5, 7.5)
	g := newGen()
	for range 200 {
		out := s.NewTree(g)
		require.True(t, out.Accepted())
		v := out.Value.Current()
		assert.GreaterOrEqual(t, v, -2.5)
		assert.LessOrEqual(t, v, 7.5)
	}
}

func TestFloatRangePanicsOnInvertedBounds(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { strategy.FloatRange(1.0, 0.5) })
}

func TestFloatShrinkApproachesZero(t *testing.T) {
	t.Parallel()

	s := strategy.FloatRange(-100.0, 100.0)
	for seed := uint64(1); seed <= 10; seed++ {
		out := s.NewTree(seededGen(seed))
		require.True(t, out.Accepted())

		tree := out.Value
		prev := math.Abs(tree.Current())
		for tree.Simplify() {
			cur := math.Abs(tree.Current())
			assert.Less(t, cur, prev)
			prev = cur
		}
		assert.InDelta(t, 0, tree.Current(), 1e-9)
	}
}

func TestFloatShrinkStaysInRange(t *testing.T) {
	t.Parallel()

	s := strategy.FloatRange(3.0, 9.0)
	out := s.NewTree(seededGen(11))
	require.True(t, out.Accepted())

	tree := out.Value
	for tree.Simplify() {
		assert.GreaterOrEqual(t, tree.Current(), 3.0)
		assert.LessOrEqual(t, tree.Current(), 9.0)
	}
	assert.InDelta(t, 3.0, tree.Current(), 1e-9)
}

func TestFloat32ShrinkTerminates(t *testing.T) {
	t.Parallel()

	out := strategy.Float32().NewTree(seededGen(5))
	require.True(t, out.Accepted())

	tree := out.Value
	steps := 0
	for tree.Simplify() {
		steps++
		require.Less(t, steps, 1000, "float shrinking must terminate")
	}
}
