package strategy

import (
	"fmt"
	"math/rand/v2"
)

// MaxCollectionLen is the hard ceiling on generated collection lengths.
// Upper bounds above it are clamped; a minimum above it is a configuration
// error.
const MaxCollectionLen = 32

// SizeHint bounds the length of a generated collection. Construct one with
// Exactly, Between, AtLeast or AtMost; the zero value means "any supported
// length".
type SizeHint struct {
	min int
	max int
	set bool
}

// Exactly pins the length to n.
func Exactly(n int) SizeHint {
	if n < 0 {
		panic(fmt.Sprintf("falsify: size hint %d is negative", n))
	}
	if n > MaxCollectionLen {
		panic(fmt.Sprintf("falsify: size hint %d exceeds maximum supported length %d", n, MaxCollectionLen))
	}
	return SizeHint{min: n, max: n, set: true}
}

// Between bounds the length to the inclusive range [lo, hi].
func Between(lo, hi int) SizeHint {
	if lo > hi {
		panic(fmt.Sprintf("falsify: size hint range %d..%d has start greater than end", lo, hi))
	}
	return clamped(lo, hi)
}

// AtLeast bounds the length from below; the upper bound is the hard cap.
func AtLeast(lo int) SizeHint {
	return clamped(lo, MaxCollectionLen)
}

// AtMost bounds the length from above with a minimum of zero.
func AtMost(hi int) SizeHint {
	if hi < 0 {
		panic(fmt.Sprintf("falsify: size hint %d is negative", hi))
	}
	return clamped(0, hi)
}

func clamped(lo, hi int) SizeHint {
	if lo < 0 {
		panic(fmt.Sprintf("falsify: size hint %d is negative", lo))
	}
	if lo > MaxCollectionLen {
		panic(fmt.Sprintf("falsify: size hint minimum %d exceeds maximum supported length %d", lo, MaxCollectionLen))
	}
	if hi > MaxCollectionLen {
		hi = MaxCollectionLen
	}
	return SizeHint{min: lo, max: hi, set: true}
}

// Min returns the effective lower bound.
func (h SizeHint) Min() int {
	if !h.set {
		return 0
	}
	return h.min
}

// Max returns the effective upper bound.
func (h SizeHint) Max() int {
	if !h.set {
		return MaxCollectionLen
	}
	return h.max
}

// pick samples a target length uniformly within the hint's bounds.
func (h SizeHint) pick(rng *rand.Rand) int {
	lo, hi := h.Min(), h.Max()
	if lo == hi {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
