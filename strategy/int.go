package strategy

import (
	"fmt"
	"math/rand/v2"

	"github.com/syssam/falsify/gen"
)

// Integer is the constraint shared by all integer strategies.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IntStrategy draws integers uniformly from an inclusive range and shrinks
// them by halving the distance to the range's anchor.
type IntStrategy[T Integer] struct {
	lo, hi T
}

// IntRange returns a strategy over the inclusive range [lo, hi].
func IntRange[T Integer](lo, hi T) *IntStrategy[T] {
	if lo > hi {
		panic(fmt.Sprintf("falsify: integer range %v..%v has start greater than end", lo, hi))
	}
	return &IntStrategy[T]{lo: lo, hi: hi}
}

// NewTree draws one value and precomputes its full shrink sequence.
func (s *IntStrategy[T]) NewTree(g *gen.Gen) gen.Outcome[ValueTree[T]] {
	value := sampleInt(g.Rand(), s.lo, s.hi)
	target := intAnchor(s.lo, s.hi)
	return gen.Accept(g, NewCandidateTree(value, intCandidates(value, target)))
}

// intAnchor picks the value shrinking converges toward: zero when the range
// spans it, otherwise the nearest in-range bound.
func intAnchor[T Integer](lo, hi T) T {
	var zero T
	if lo <= zero && hi >= zero {
		return zero
	}
	if lo > zero {
		return lo
	}
	return hi
}

// intCandidates precomputes the shrink sequence: each entry halves the
// remaining distance to target. The sequence is strictly decreasing in
// distance from target and terminates exactly at target.
func intCandidates[T Integer](value, target T) []T {
	var out []T
	current := value
	for current != target {
		next := halfStep(current, target)
		if next == current {
			break
		}
		out = append(out, next)
		current = next
	}
	return out
}

// halfStep moves current half of the remaining distance toward target, with
// a minimum step of one. Distances are computed in uint64 space so that
// full-width signed ranges cannot overflow.
func halfStep[T Integer](current, target T) T {
	if current > target {
		step := (uint64(current) - uint64(target)) / 2
		if step == 0 {
			step = 1
		}
		return T(uint64(current) - step)
	}
	step := (uint64(target) - uint64(current)) / 2
	if step == 0 {
		step = 1
	}
	return T(uint64(current) + step)
}

// sampleInt draws uniformly from [lo, hi]. The span is computed modulo
// 2^64; a span that wraps to zero means the range covers the full 64-bit
// domain.
func sampleInt[T Integer](rng *rand.Rand, lo, hi T) T {
	if lo == hi {
		return lo
	}
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		return T(rng.Uint64())
	}
	return T(uint64(lo) + rng.Uint64N(span))
}
