package strategy

import (
	"github.com/syssam/falsify/gen"
)

// BoolStrategy draws booleans. The only simplification is true to false.
type BoolStrategy struct{}

// Bool returns the boolean strategy.
func Bool() *BoolStrategy { return &BoolStrategy{} }

// NewTree draws one boolean.
func (*BoolStrategy) NewTree(g *gen.Gen) gen.Outcome[ValueTree[bool]] {
	value := g.Rand().IntN(2) == 1
	return gen.Accept[ValueTree[bool]](g, NewBoolTree(value))
}

// BoolValueTree has at most one simplify step: true steps to false, false
// is already minimal.
type BoolValueTree struct {
	current       bool
	original      bool
	triedFalse    bool
	canComplicate bool
}

// NewBoolTree returns a boolean tree rooted at value.
func NewBoolTree(value bool) *BoolValueTree {
	return &BoolValueTree{
		current:    value,
		original:   value,
		triedFalse: !value,
	}
}

func (t *BoolValueTree) Current() bool { return t.current }

func (t *BoolValueTree) Simplify() bool {
	if t.triedFalse {
		return false
	}
	t.triedFalse = true
	t.canComplicate = t.original
	if t.original {
		t.current = false
		return true
	}
	return false
}

func (t *BoolValueTree) Complicate() bool {
	if !t.canComplicate {
		return false
	}
	t.current = t.original
	t.canComplicate = false
	return false
}
