package falsify

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/syssam/falsify/gen"
	"github.com/syssam/falsify/strategy"
)

// Check runs prop against Config.Cases values drawn from s, shrinking the
// first failing input to a minimal counterexample before reporting it
// through t.
func Check[T any](t testing.TB, s strategy.Strategy[T], prop func(T) error) {
	t.Helper()
	CheckConfig(t, DefaultConfig(), s, prop)
}

// CheckConfig is Check with an explicit configuration.
func CheckConfig[T any](t testing.TB, cfg Config, s strategy.Strategy[T], prop func(T) error) {
	t.Helper()
	if err := cfg.validate(); err != nil {
		t.Fatal(err)
	}
	cfg = cfg.withDefaults()

	seed := cfg.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}

	for caseNum := range cfg.Cases {
		g := gen.NewWithLimit(rand.New(rand.NewPCG(seed, uint64(caseNum))), cfg.RecursionLimit)
		tree, err := draw(g, s, cfg.RejectionLimit)
		if err != nil {
			t.Fatalf("falsify: case %d of %d (seed %d): %v", caseNum+1, cfg.Cases, seed, err)
			return
		}
		perr := runProperty(tree.Current(), prop)
		if perr == nil {
			continue
		}
		value, perr := shrink(tree, prop, perr)
		t.Fatalf("falsify: property failed at case %d of %d (seed %d)\ncounterexample: %#v\n%v",
			caseNum+1, cfg.Cases, seed, value, perr)
		return
	}
}

// draw retries rejected generations up to limit attempts. Every outcome,
// accepted or not, advances the iteration counter so draws within a case
// stay distinguishable in failure reports.
func draw[T any](g *gen.Gen, s strategy.Strategy[T], limit int) (strategy.ValueTree[T], error) {
	attempts := 0
	for {
		out := s.NewTree(g)
		g.AdvanceIteration()
		if out.Accepted() {
			return out.Value, nil
		}
		attempts++
		if attempts >= limit {
			return nil, &RejectionLimitError{
				Attempts:  attempts,
				Iteration: out.Iteration,
				Depth:     out.Depth,
				Limit:     limit,
			}
		}
	}
}

// runProperty reports a property panic as a failure instead of tearing
// down the whole shrink search.
func runProperty[T any](value T, prop func(T) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("falsify: property panicked: %v", r)
		}
	}()
	return prop(value)
}

// shrink drives the simplify/complicate protocol: simplify while the
// property keeps failing, back off with complicate when it passes, and
// stop when the tree has no alternatives left. Returns the smallest value
// observed to fail along with its error.
func shrink[T any](tree strategy.ValueTree[T], prop func(T) error, firstErr error) (T, error) {
	value := tree.Current()
	err := firstErr

	for tree.Simplify() {
		if perr := runProperty(tree.Current(), prop); perr != nil {
			value, err = tree.Current(), perr
			continue
		}
		for {
			if !tree.Complicate() {
				return value, err
			}
			if perr := runProperty(tree.Current(), prop); perr != nil {
				value, err = tree.Current(), perr
				break
			}
		}
	}
	return value, err
}
