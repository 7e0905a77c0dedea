package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/falsify/strategy"
)

func TestSizeHintZeroValueCoversAnyLength(t *testing.T) {
	t.Parallel()

	var h strategy.SizeHint
	assert.Equal(t, 0, h.Min())
	assert.Equal(t, strategy.MaxCollectionLen, h.Max())
}

func TestSizeHintExactly(t *testing.T) {
	t.Parallel()

	h := strategy.Exactly(5)
	assert.Equal(t, 5, h.Min())
	assert.Equal(t, 5, h.Max())
}

func TestSizeHintBetween(t *testing.T) {
	t.Parallel()

	h := strategy.Between(3, 5)
	assert.Equal(t, 3, h.Min())
	assert.Equal(t, 5, h.Max())
}

func TestSizeHintClampsUpperBound(t *testing.T) {
	t.Parallel()

	assert.Equal(t, strategy.MaxCollectionLen, strategy.Between(0, 1000).Max())
	assert.Equal(t, strategy.MaxCollectionLen, strategy.AtMost(1000).Max())
	assert.Equal(t, strategy.MaxCollectionLen, strategy.AtLeast(4).Max())
}

func TestSizeHintPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { strategy.Exactly(-1) })
	assert.Panics(t, func() { strategy.Exactly(strategy.MaxCollectionLen + 1) })
	assert.Panics(t, func() { strategy.Between(5, 3) })
	assert.Panics(t, func() { strategy.Between(-1, 3) })
	assert.Panics(t, func() { strategy.AtLeast(strategy.MaxCollectionLen + 1) })
	assert.Panics(t, func() { strategy.AtMost(-1) })
}
