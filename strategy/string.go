package strategy

import (
	"github.com/syssam/falsify/gen"
)

// StringStrategy draws strings as rune slices and rebuilds the string
// after every shrink step, so strings inherit the full two-phase
// collection shrink protocol.
type StringStrategy struct {
	runes *RuneStrategy
	hint  SizeHint
}

// String returns a strategy over strings of any rune, with length sampled
// from hint.
func String(hint SizeHint) *StringStrategy {
	return StringOf(Rune(), hint)
}

// StringOf returns a strategy over strings drawn from the given rune
// domain.
func StringOf(runes *RuneStrategy, hint SizeHint) *StringStrategy {
	return &StringStrategy{runes: runes, hint: hint}
}

// NewTree draws the underlying rune-slice tree and wraps it.
func (s *StringStrategy) NewTree(g *gen.Gen) gen.Outcome[ValueTree[string]] {
	inner := SliceOf[rune](s.runes, s.hint).NewTree(g)
	return gen.Map(inner, func(tr ValueTree[[]rune]) ValueTree[string] {
		return &StringValueTree{inner: tr, current: string(tr.Current())}
	})
}

// StringValueTree delegates shrinking to a rune-slice tree and rebuilds
// the derived string on every transition.
type StringValueTree struct {
	inner   ValueTree[[]rune]
	current string
}

func (t *StringValueTree) Current() string { return t.current }

func (t *StringValueTree) Simplify() bool {
	if !t.inner.Simplify() {
		return false
	}
	t.current = string(t.inner.Current())
	return true
}

func (t *StringValueTree) Complicate() bool {
	ok := t.inner.Complicate()
	t.current = string(t.inner.Current())
	return ok
}
