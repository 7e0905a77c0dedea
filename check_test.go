package falsify_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify"
	"github.com/syssam/falsify/gen"
	"github.com/syssam/falsify/strategy"
)

// recordTB captures harness failures instead of failing the real test.
type recordTB struct {
	testing.TB
	failed  bool
	message string
}

func (r *recordTB) Helper() {}

func (r *recordTB) Fatal(args ...any) {
	r.failed = true
	r.message = fmt.Sprint(args...)
}

func (r *recordTB) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
}

// rejectStrategy refuses every draw.
type rejectStrategy struct{}

func (rejectStrategy) NewTree(g *gen.Gen) gen.Outcome[strategy.ValueTree[int]] {
	return gen.Reject[strategy.ValueTree[int]](g, nil)
}

func TestCheckPassesWhenPropertyHolds(t *testing.T) {
	t.Parallel()

	rec := &recordTB{}
	cfg := falsify.Config{Cases: 200, Seed: 1}
	falsify.CheckConfig(rec, cfg, strategy.IntRange(0, 100), func(v int) error {
		if v < 0 || v > 100 {
			return fmt.Errorf("value %d out of range", v)
		}
		return nil
	})
	assert.False(t, rec.failed, "message: %s", rec.message)
}

func TestCheckShrinksToMinimalCounterexample(t *testing.T) {
	t.Parallel()

	rec := &recordTB{}
	cfg := falsify.Config{Cases: 200, Seed: 42}
	falsify.CheckConfig(rec, cfg, strategy.IntRange(0, 1000), func(v int) error {
		if v != 0 {
			return errors.New("nonzero value")
		}
		return nil
	})

	require.True(t, rec.failed)
	assert.Contains(t, rec.message, "counterexample: 1\n", "the smallest failing value is 1")
	assert.Contains(t, rec.message, "nonzero value")
	assert.Contains(t, rec.message, "seed 42")
}

func TestCheckReportsRejectionLimit(t *testing.T) {
	t.Parallel()

	rec := &recordTB{}
	cfg := falsify.Config{Cases: 5, Seed: 1}
	falsify.CheckConfig(rec, cfg, rejectStrategy{}, func(int) error { return nil })

	require.True(t, rec.failed)
	assert.Contains(t, rec.message, "strategy rejected value after 64 attempts")
	assert.Contains(t, rec.message, "limit 64")
}

func TestCheckHonoursRejectionLimitOverride(t *testing.T) {
	t.Parallel()

	rec := &recordTB{}
	cfg := falsify.Config{Cases: 5, Seed: 1, RejectionLimit: 3}
	falsify.CheckConfig(rec, cfg, rejectStrategy{}, func(int) error { return nil })

	require.True(t, rec.failed)
	assert.Contains(t, rec.message, "after 3 attempts")
}

func TestCheckReportsPanicAsFailure(t *testing.T) {
	t.Parallel()

	rec := &recordTB{}
	cfg := falsify.Config{Cases: 10, Seed: 7}
	falsify.CheckConfig(rec, cfg, strategy.IntRange(0, 50), func(int) error {
		panic("boom")
	})

	require.True(t, rec.failed)
	assert.Contains(t, rec.message, "property panicked: boom")
	assert.Contains(t, rec.message, "counterexample: 0\n", "an always-failing property shrinks to the anchor")
}

func TestCheckRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	rec := &recordTB{}
	cfg := falsify.Config{Cases: -1}
	falsify.CheckConfig(rec, cfg, strategy.Int(), func(int) error { return nil })

	require.True(t, rec.failed)
	assert.Contains(t, rec.message, "invalid configuration")
}

func TestCheckShrinkRespectsCollectionFloor(t *testing.T) {
	t.Parallel()

	rec := &recordTB{}
	cfg := falsify.Config{Cases: 50, Seed: 3}
	s := strategy.SliceOf[int](strategy.IntRange(0, 9), strategy.Between(3, 5))
	falsify.CheckConfig(rec, cfg, s, func(xs []int) error {
		if len(xs) < 3 {
			return fmt.Errorf("floor breached: %v", xs)
		}
		return errors.New("always failing")
	})

	require.True(t, rec.failed)
	// The shrunken counterexample is the always-failing error, never the
	// floor breach.
	assert.Contains(t, rec.message, "always failing")
	assert.False(t, strings.Contains(rec.message, "floor breached"))
}
