package strategy

import (
	"github.com/syssam/falsify/gen"
)

// Result is a two-variant value: either OK carrying Value, or not OK
// carrying Err.
type Result[T, E any] struct {
	OK    bool
	Value T
	Err   E
}

// Ok builds the OK variant.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{OK: true, Value: value}
}

// Err builds the error variant.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{Err: err}
}

// ResultStrategy draws Result values from an OK domain and an error
// domain.
type ResultStrategy[T, E any] struct {
	ok  Strategy[T]
	err Strategy[E]
}

// ResultOf returns a strategy producing Result values, choosing the OK
// and error variants with equal probability.
func ResultOf[T, E any](ok Strategy[T], err Strategy[E]) *ResultStrategy[T, E] {
	return &ResultStrategy[T, E]{ok: ok, err: err}
}

// NewTree draws both inner trees up front so either variant can be
// explored during shrinking. Any inner rejection rejects the composite,
// carrying a tree rooted at whichever variant survived.
func (s *ResultStrategy[T, E]) NewTree(g *gen.Gen) gen.Outcome[ValueTree[Result[T, E]]] {
	okOut := s.ok.NewTree(g)
	errOut := s.err.NewTree(g)

	switch {
	case okOut.Accepted() && errOut.Accepted():
		chooseOK := g.Rand().IntN(2) == 1
		return gen.Accept[ValueTree[Result[T, E]]](g, NewResultTree(okOut.Value, errOut.Value, chooseOK))
	case !okOut.Accepted():
		return gen.Outcome[ValueTree[Result[T, E]]]{
			Status:    gen.StatusRejected,
			Iteration: okOut.Iteration,
			Depth:     okOut.Depth,
			Value:     NewResultTree(okOut.Value, errOut.Value, true),
		}
	default:
		return gen.Outcome[ValueTree[Result[T, E]]]{
			Status:    gen.StatusRejected,
			Iteration: errOut.Iteration,
			Depth:     errOut.Depth,
			Value:     NewResultTree(okOut.Value, errOut.Value, false),
		}
	}
}

// ResultValueTree treats the error variant as simpler than OK: the first
// simplification of an OK root flips to the error variant, and
// complicating from there flips back. Within a variant the inner tree
// shrinks as usual.
type ResultValueTree[T, E any] struct {
	ok              ValueTree[T]
	err             ValueTree[E]
	atOK            bool
	convertedFromOK bool
	current         Result[T, E]
}

// NewResultTree builds a result tree rooted at the chosen variant.
func NewResultTree[T, E any](ok ValueTree[T], err ValueTree[E], chooseOK bool) *ResultValueTree[T, E] {
	t := &ResultValueTree[T, E]{ok: ok, err: err, atOK: chooseOK}
	t.sync()
	return t
}

func (t *ResultValueTree[T, E]) sync() {
	if t.atOK {
		t.current = Ok[T, E](t.ok.Current())
	} else {
		t.current = Err[T](t.err.Current())
	}
}

func (t *ResultValueTree[T, E]) Current() Result[T, E] { return t.current }

func (t *ResultValueTree[T, E]) Simplify() bool {
	if t.atOK {
		if !t.convertedFromOK {
			t.convertedFromOK = true
			t.atOK = false
			t.sync()
			return true
		}
		if t.ok.Simplify() {
			t.sync()
			return true
		}
		return false
	}
	if t.err.Simplify() {
		t.sync()
		return true
	}
	return false
}

func (t *ResultValueTree[T, E]) Complicate() bool {
	if t.atOK {
		if t.ok.Complicate() {
			t.sync()
			return true
		}
		return false
	}
	if t.convertedFromOK {
		t.convertedFromOK = false
		t.atOK = true
		t.sync()
		return true
	}
	if t.err.Complicate() {
		t.sync()
		return true
	}
	return false
}
