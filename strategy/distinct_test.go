package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify/strategy"
)

func TestDistinctPairRejectsEqualDraws(t *testing.T) {
	t.Parallel()

	// A single-value domain can only produce equal halves.
	s := strategy.DistinctPair[int](strategy.IntRange(7, 7))
	out := s.NewTree(newGen())
	assert.False(t, out.Accepted())
}

func TestDistinctPairAcceptsUnequalDraws(t *testing.T) {
	t.Parallel()

	s := strategy.DistinctPair[int](strategy.Int())
	g := newGen()
	for range 50 {
		out := s.NewTree(g)
		require.True(t, out.Accepted())
		v := out.Value.Current()
		assert.NotEqual(t, v.First, v.Second)
	}
}

func TestDistinctPairShrinkKeepsHalvesDistinct(t *testing.T) {
	t.Parallel()

	// The first half's only move collides with the second half.
	tree := strategy.NewDistinctPairTree[int](
		strategy.NewCandidateTree(1, []int{0}),
		strategy.NewCandidateTree(0, nil),
	)
	assert.False(t, tree.Simplify())
	assert.Equal(t, strategy.Pair[int]{First: 1, Second: 0}, tree.Current())
}

func TestDistinctPairShrinkAcceptsValidSteps(t *testing.T) {
	t.Parallel()

	tree := strategy.NewDistinctPairTree[int](
		strategy.NewCandidateTree(9, []int{5, 0}),
		strategy.NewCandidateTree(5, nil),
	)

	// 9 -> 5 collides and is undone; the next candidate 0 is distinct.
	require.True(t, tree.Simplify())
	assert.Equal(t, strategy.Pair[int]{First: 0, Second: 5}, tree.Current())
}
