package strategy_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify/gen"
	"github.com/syssam/falsify/strategy"
)

func newGen() *gen.Gen {
	return gen.New(rand.New(rand.NewPCG(1, 2)))
}

func seededGen(seed uint64) *gen.Gen {
	return gen.New(rand.New(rand.NewPCG(seed, seed+1)))
}

func TestCandidateTreeWalksSequence(t *testing.T) {
	t.Parallel()

	tree := strategy.NewCandidateTree(8, []int{4, 2, 1})
	assert.Equal(t, 8, tree.Current())

	require.True(t, tree.Simplify())
	assert.Equal(t, 4, tree.Current())
	require.True(t, tree.Simplify())
	assert.Equal(t, 2, tree.Current())

	// Backing off restores the previous value and reports that untried
	// candidates remain.
	require.True(t, tree.Complicate())
	assert.Equal(t, 4, tree.Current())

	require.True(t, tree.Simplify())
	assert.Equal(t, 1, tree.Current())

	assert.False(t, tree.Complicate())
	assert.Equal(t, 4, tree.Current())
}

func TestCandidateTreeExhausts(t *testing.T) {
	t.Parallel()

	tree := strategy.NewCandidateTree(3, []int{1, 0})
	require.True(t, tree.Simplify())
	require.True(t, tree.Simplify())
	assert.False(t, tree.Simplify())
	assert.Equal(t, 0, tree.Current())
}

func TestCandidateTreeComplicateBeforeSimplify(t *testing.T) {
	t.Parallel()

	tree := strategy.NewCandidateTree(3, []int{1})
	assert.False(t, tree.Complicate())
	assert.Equal(t, 3, tree.Current())
}
