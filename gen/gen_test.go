package gen_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify/gen"
)

func newGen() *gen.Gen {
	return gen.New(rand.New(rand.NewPCG(1, 2)))
}

func TestCountersStartAtZero(t *testing.T) {
	t.Parallel()

	g := newGen()
	assert.Equal(t, 0, g.Iteration())
	assert.Equal(t, 0, g.Depth())
}

func TestAcceptSnapshotsCounters(t *testing.T) {
	t.Parallel()

	g := newGen()
	g.AdvanceIteration()
	g.AdvanceIteration()

	out := gen.Accept(g, "value")
	require.True(t, out.Accepted())
	assert.Equal(t, 2, out.Iteration)
	assert.Equal(t, 0, out.Depth)
	assert.Equal(t, "value", out.Take())

	// Accept must not advance the iteration counter itself.
	assert.Equal(t, 2, g.Iteration())
}

func TestRejectSnapshotsCounters(t *testing.T) {
	t.Parallel()

	g := newGen()
	out := gen.Reject(g, 42)
	require.False(t, out.Accepted())
	assert.Equal(t, 0, out.Iteration)
	assert.Equal(t, 42, out.Take())
	assert.Equal(t, 0, g.Iteration())
}

func TestRecurseTracksDepth(t *testing.T) {
	t.Parallel()

	g := newGen()
	var inner, innermost int
	g.Recurse(func(g *gen.Gen) {
		inner = g.Depth()
		g.Recurse(func(g *gen.Gen) {
			innermost = g.Depth()
		})
		assert.Equal(t, 1, g.Depth())
	})

	assert.Equal(t, 1, inner)
	assert.Equal(t, 2, innermost)
	assert.Equal(t, 0, g.Depth())
}

func TestRecursePanicsAtLimit(t *testing.T) {
	t.Parallel()

	g := gen.NewWithLimit(rand.New(rand.NewPCG(1, 2)), 2)
	var depthAtPanic int
	assert.PanicsWithValue(t, "falsify: strategy recursion exceeded limit of 2", func() {
		g.Recurse(func(g *gen.Gen) {
			g.Recurse(func(g *gen.Gen) {
				depthAtPanic = g.Depth()
				g.Recurse(func(*gen.Gen) {
					t.Error("recursion beyond the limit must not run")
				})
			})
		})
	})

	assert.Equal(t, 2, depthAtPanic)
	assert.Equal(t, 0, g.Depth(), "depth must unwind through the panic")
}

func TestRecurseRestoresDepthThroughPanic(t *testing.T) {
	t.Parallel()

	g := newGen()
	require.Panics(t, func() {
		g.Recurse(func(g *gen.Gen) {
			g.Recurse(func(*gen.Gen) {
				panic("strategy bug")
			})
		})
	})
	assert.Equal(t, 0, g.Depth())
}

func TestOutcomeMapPreservesStatusAndCounters(t *testing.T) {
	t.Parallel()

	g := newGen()
	g.AdvanceIteration()
	out := gen.Reject(g, 7)

	mapped := gen.Map(out, func(v int) string {
		if v == 7 {
			return "seven"
		}
		return "other"
	})
	assert.False(t, mapped.Accepted())
	assert.Equal(t, 1, mapped.Iteration)
	assert.Equal(t, "seven", mapped.Value)
}
