package strategy_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify/strategy"
)

func TestStringGenerationHonoursLengthRange(t *testing.T) {
	t.Parallel()

	s := strategy.StringOf(strategy.RuneRange('a', 'z'), strategy.Between(2, 6))
	g := newGen()
	for range 100 {
		out := s.NewTree(g)
		require.True(t, out.Accepted())
		v := out.Value.Current()
		n := utf8.RuneCountInString(v)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 6)
		for _, r := range v {
			assert.GreaterOrEqual(t, r, 'a')
			assert.LessOrEqual(t, r, 'z')
		}
	}
}

func TestStringShrinkKeepsDomain(t *testing.T) {
	t.Parallel()

	s := strategy.StringOf(strategy.RuneRange('a', 'z'), strategy.Between(2, 6))
	out := s.NewTree(seededGen(6))
	require.True(t, out.Accepted())

	tree := out.Value
	initial := utf8.RuneCountInString(tree.Current())
	for tree.Simplify() {
		v := tree.Current()
		n := utf8.RuneCountInString(v)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, initial)
		for _, r := range v {
			assert.GreaterOrEqual(t, r, 'a')
			assert.LessOrEqual(t, r, 'z')
		}
	}
}

func TestStringComplicateRestoresValue(t *testing.T) {
	t.Parallel()

	s := strategy.String(strategy.Between(3, 8))
	out := s.NewTree(seededGen(2))
	require.True(t, out.Accepted())

	tree := out.Value
	before := tree.Current()
	require.True(t, tree.Simplify())
	tree.Complicate()
	assert.Equal(t, before, tree.Current())
}
