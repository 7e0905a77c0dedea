package strategy_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify/strategy"
)

func TestRuneDrawsValidCodepoints(t *testing.T) {
	t.Parallel()

	s := strategy.Rune()
	g := newGen()
	for range 200 {
		out := s.NewTree(g)
		require.True(t, out.Accepted())
		assert.True(t, utf8.ValidRune(out.Value.Current()))
	}
}

func TestRuneShrinksToSpaceFirst(t *testing.T) {
	t.Parallel()

	out := strategy.Rune().NewTree(seededGen(9))
	require.True(t, out.Accepted())

	tree := out.Value
	if tree.Current() == ' ' {
		t.Skip("drew the preferred character already")
	}
	require.True(t, tree.Simplify())
	assert.Equal(t, ' ', tree.Current())
}

func TestRuneRangeHonoursBounds(t *testing.T) {
	t.Parallel()

	s := strategy.RuneRange('a', 'z')
	g := newGen()
	for range 100 {
		out := s.NewTree(g)
		require.True(t, out.Accepted())
		v := out.Value.Current()
		assert.GreaterOrEqual(t, v, 'a')
		assert.LessOrEqual(t, v, 'z')
	}
}

func TestRuneShrinkStaysInRange(t *testing.T) {
	t.Parallel()

	s := strategy.RuneRange('p', 'z')
	out := s.NewTree(seededGen(4))
	require.True(t, out.Accepted())

	tree := out.Value
	for tree.Simplify() {
		assert.GreaterOrEqual(t, tree.Current(), 'p')
		assert.LessOrEqual(t, tree.Current(), 'z')
	}
}

func TestRuneRangePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { strategy.RuneRange('z', 'a') })
	assert.Panics(t, func() { strategy.RuneRange(0xD800, 0xDFFF) })
}
