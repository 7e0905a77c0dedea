package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify/strategy"
)

// candidateTrees builds one single-candidate tree per value, shrinking to
// the paired target.
func candidateTrees(pairs [][2]int) []strategy.ValueTree[int] {
	trees := make([]strategy.ValueTree[int], len(pairs))
	for i, p := range pairs {
		trees[i] = strategy.NewCandidateTree(p[0], []int{p[1]})
	}
	return trees
}

func TestSliceGenerationHonoursLengthRange(t *testing.T) {
	t.Parallel()

	s := strategy.SliceOf[uint8](strategy.Uint8(), strategy.Between(3, 5))
	g := newGen()
	for range 100 {
		out := s.NewTree(g)
		require.True(t, out.Accepted())
		n := len(out.Value.Current())
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 5)
	}
}

func TestSliceShrinksLengthBeforeElements(t *testing.T) {
	t.Parallel()

	trees := candidateTrees([][2]int{{9, 0}, {8, 0}, {7, 0}, {6, 0}, {5, 0}})
	tree := strategy.NewSliceTree(trees, 3)

	// The first step must remove a chunk down to the floor, not touch an
	// element.
	require.True(t, tree.Simplify())
	assert.Equal(t, []int{7, 6, 5}, tree.Current())
}

func TestSliceShrinkRespectsLengthFloor(t *testing.T) {
	t.Parallel()

	trees := candidateTrees([][2]int{{9, 0}, {8, 0}, {7, 0}, {6, 0}, {5, 0}})
	tree := strategy.NewSliceTree(trees, 3)
	for tree.Simplify() {
		assert.GreaterOrEqual(t, len(tree.Current()), 3)
	}
	assert.GreaterOrEqual(t, len(tree.Current()), 3)
}

func TestSliceShrinksToEmptyWithoutFloor(t *testing.T) {
	t.Parallel()

	trees := candidateTrees([][2]int{{4, 0}, {3, 0}})
	tree := strategy.NewSliceTree(trees, 0)
	for tree.Simplify() {
	}
	assert.Empty(t, tree.Current())
}

func TestSliceComplicateSplicesChunkBack(t *testing.T) {
	t.Parallel()

	trees := candidateTrees([][2]int{{9, 0}, {8, 0}, {7, 0}, {6, 0}})
	tree := strategy.NewSliceTree(trees, 0)
	original := []int{9, 8, 7, 6}
	assert.Equal(t, original, tree.Current())

	// Drop plan for length 4 starts with a chunk of 2.
	require.True(t, tree.Simplify())
	assert.Equal(t, []int{7, 6}, tree.Current())

	tree.Complicate()
	assert.Equal(t, original, tree.Current(), "removed chunk must be restored verbatim")
}

func TestSliceElementShrinkAfterLengthExhausted(t *testing.T) {
	t.Parallel()

	trees := candidateTrees([][2]int{{9, 1}, {8, 2}})
	tree := strategy.NewSliceTree(trees, 2)

	// Floor equals length, so only element shrinking is available.
	require.True(t, tree.Simplify())
	assert.Equal(t, []int{1, 8}, tree.Current())
	require.True(t, tree.Simplify())
	assert.Equal(t, []int{1, 2}, tree.Current())
	assert.False(t, tree.Simplify())
}

func TestSliceCurrentIsStableAcrossMutation(t *testing.T) {
	t.Parallel()

	trees := candidateTrees([][2]int{{9, 1}, {8, 2}})
	tree := strategy.NewSliceTree(trees, 2)
	before := tree.Current()
	require.True(t, tree.Simplify())
	assert.Equal(t, []int{9, 8}, before, "previously returned slices must not be mutated")
}
