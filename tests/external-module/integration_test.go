package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify"
	"github.com/syssam/falsify/strategy"
)

// Exercises the public API the way an importing module would.

func TestCheckOverExportedStrategies(t *testing.T) {
	t.Parallel()

	cfg := falsify.Config{Cases: 500}
	falsify.CheckConfig(t, cfg, strategy.SliceOf[int](strategy.IntRange(-50, 50), strategy.AtMost(20)), func(xs []int) error {
		sorted := slices.Clone(xs)
		slices.Sort(sorted)
		if len(sorted) != len(xs) {
			return fmt.Errorf("sort changed length: %d -> %d", len(xs), len(sorted))
		}
		if !slices.IsSorted(sorted) {
			return fmt.Errorf("not sorted: %v", sorted)
		}
		return nil
	})
}

func TestCheckOverComposites(t *testing.T) {
	t.Parallel()

	cfg := falsify.Config{Cases: 500}
	s := strategy.MapOf[string, int](
		strategy.String(strategy.Between(1, 8)),
		strategy.IntRange(0, 1000),
		strategy.AtMost(10),
	)
	falsify.CheckConfig(t, cfg, s, func(m map[string]int) error {
		if len(m) > 10 {
			return fmt.Errorf("map too large: %d", len(m))
		}
		for k := range m {
			if k == "" {
				return fmt.Errorf("empty key in %v", m)
			}
		}
		return nil
	})
}

func TestSampleProducesValues(t *testing.T) {
	t.Parallel()

	type record struct {
		ID   int
		Name string
		Tags []string
	}
	v := falsify.Sample[record]()
	_ = v
}

func TestConfigFileDrivesHarness(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "falsify.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cases: 100\nseed: 5\n"), 0o644))

	cfg, err := falsify.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Cases)

	falsify.CheckConfig(t, cfg, strategy.Bool(), func(bool) error { return nil })
}
