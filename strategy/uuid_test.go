package strategy_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify/strategy"
)

func TestUUIDGenerationStampsVersionAndVariant(t *testing.T) {
	t.Parallel()

	s := strategy.UUID()
	g := newGen()
	for range 50 {
		out := s.NewTree(g)
		require.True(t, out.Accepted())
		id := out.Value.Current()
		assert.Equal(t, uuid.Version(4), id.Version())
		assert.Equal(t, uuid.RFC4122, id.Variant())
	}
}

func TestUUIDShrinksToNil(t *testing.T) {
	t.Parallel()

	out := strategy.UUID().NewTree(seededGen(3))
	require.True(t, out.Accepted())

	tree := out.Value
	for tree.Simplify() {
	}
	assert.Equal(t, uuid.Nil, tree.Current())
}

func TestUUIDComplicateRestoresBytes(t *testing.T) {
	t.Parallel()

	out := strategy.UUID().NewTree(seededGen(3))
	require.True(t, out.Accepted())

	tree := out.Value
	before := tree.Current()
	require.True(t, tree.Simplify())
	tree.Complicate()
	assert.Equal(t, before, tree.Current())
}
