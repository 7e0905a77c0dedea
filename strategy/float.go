package strategy

import (
	"fmt"
	"math"

	"github.com/syssam/falsify/gen"
)

// maxFloatSimplifySteps caps the halving walk so values near the limits of
// representable precision cannot approach the anchor forever.
const maxFloatSimplifySteps = 64

// Float is the constraint shared by the floating-point strategies.
type Float interface {
	~float32 | ~float64
}

// FloatStrategy draws floats uniformly from an inclusive range and shrinks
// them by halving the distance to the range's anchor in float64 arithmetic.
type FloatStrategy[T Float] struct {
	lo, hi T
}

// FloatRange returns a strategy over the inclusive range [lo, hi].
func FloatRange[T Float](lo, hi T) *FloatStrategy[T] {
	if lo > hi {
		panic(fmt.Sprintf("falsify: float range %v..%v has start greater than end", lo, hi))
	}
	return &FloatStrategy[T]{lo: lo, hi: hi}
}

// NewTree draws one value and precomputes its shrink sequence, keeping only
// candidates that remain inside the strategy's range.
func (s *FloatStrategy[T]) NewTree(g *gen.Gen) gen.Outcome[ValueTree[T]] {
	value := canonicalZero(sampleFloat(g.Rand().Float64(), s.lo, s.hi))
	target := floatAnchor(float64(s.lo), float64(s.hi))
	raw := floatCandidates(float64(value), target)
	candidates := make([]T, 0, len(raw))
	for _, c := range raw {
		cv := canonicalZero(T(c))
		if cv >= s.lo && cv <= s.hi {
			candidates = append(candidates, cv)
		}
	}
	return gen.Accept(g, NewCandidateTree(value, candidates))
}

// sampleFloat interpolates between the bounds so that a full-width range
// cannot overflow to infinity.
func sampleFloat[T Float](t float64, lo, hi T) T {
	return T(float64(lo)*(1-t) + float64(hi)*t)
}

// canonicalZero folds -0.0 into 0.0 so shrinking treats them as one value.
func canonicalZero[T Float](v T) T {
	if v == 0 {
		return 0
	}
	return v
}

// floatAnchor picks the shrink target: zero when the range spans it,
// otherwise the nearest in-range bound.
func floatAnchor(lo, hi float64) float64 {
	switch {
	case lo > 0:
		return lo
	case hi < 0:
		return hi
	default:
		return 0
	}
}

// floatEpsilon is the difference between 1.0 and the next representable
// float64.
const floatEpsilon = 2.220446049250313e-16

func floatApproxEq(a, b float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		scale = 1
	}
	return math.Abs(a-b) <= floatEpsilon*scale
}

// floatCandidates precomputes the halving sequence toward target in
// float64. NaN degenerates to a single candidate.
func floatCandidates(value, target float64) []float64 {
	if math.IsNaN(value) {
		if target == 0 {
			return []float64{0}
		}
		return []float64{target}
	}

	var out []float64
	push := func(c float64) {
		if len(out) == 0 || out[len(out)-1] != c {
			out = append(out, c)
		}
	}

	current := value + 0 // +0 folds -0.0 into 0.0
	if floatApproxEq(current, target) {
		return out
	}

	for range maxFloatSimplifySteps {
		next := current - (current-target)/2 + 0
		if floatApproxEq(next, current) {
			break
		}
		push(next)
		current = next
		if floatApproxEq(current, target) {
			break
		}
	}

	if len(out) == 0 || !floatApproxEq(out[len(out)-1], target) {
		push(target)
	}
	return out
}
