package strategy

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/syssam/falsify/gen"
)

// SetStrategy draws sets of unique elements over a comparable element
// domain.
type SetStrategy[T comparable] struct {
	elem Strategy[T]
	hint SizeHint
}

// SetOf returns a strategy producing sets whose cardinality is sampled
// from hint and whose elements come from elem.
func SetOf[T comparable](elem Strategy[T], hint SizeHint) *SetStrategy[T] {
	return &SetStrategy[T]{elem: elem, hint: hint}
}

// NewTree draws element trees until the target cardinality is reached,
// silently discarding duplicate values. The draw budget is
// MaxStrategyAttempts per requested element, so a narrow element domain
// yields a smaller set instead of spinning forever.
func (s *SetStrategy[T]) NewTree(g *gen.Gen) gen.Outcome[ValueTree[mapset.Set[T]]] {
	target := s.hint.pick(g.Rand())
	trees := make([]ValueTree[T], 0, target)
	values := make([]T, 0, target)
	seen := mapset.NewThreadUnsafeSet[T]()

	attempts := MaxStrategyAttempts * max(target, 1)
	for len(trees) < target && attempts > 0 {
		attempts--
		out := s.elem.NewTree(g)
		if !out.Accepted() {
			return gen.Outcome[ValueTree[mapset.Set[T]]]{
				Status:    gen.StatusRejected,
				Iteration: out.Iteration,
				Depth:     out.Depth,
				Value:     NewSetTree(trees, values, s.hint.Min()),
			}
		}
		v := out.Value.Current()
		if seen.Add(v) {
			trees = append(trees, out.Value)
			values = append(values, v)
		}
	}
	return gen.Accept[ValueTree[mapset.Set[T]]](g, NewSetTree(trees, values, s.hint.Min()))
}

// SetValueTree shrinks like a slice tree but guards uniqueness: an
// element simplification that collides with another member is undone on
// the spot and never reported to the caller.
type SetValueTree[T comparable] struct {
	elems    []ValueTree[T]
	values   []T
	current  mapset.Set[T]
	minLen   int
	dropPlan []int
	cursor   stage
	history  []sliceChange[T]
}

// NewSetTree builds a set tree over the given element trees and their
// drawn values.
func NewSetTree[T comparable](elems []ValueTree[T], values []T, minLen int) *SetValueTree[T] {
	t := &SetValueTree[T]{
		elems:    elems,
		values:   values,
		minLen:   minLen,
		dropPlan: buildDropPlan(len(elems)),
	}
	if len(t.dropPlan) == 0 {
		t.cursor = stage{mode: stageElements}
	} else {
		t.cursor = stage{mode: stageLength}
	}
	t.rebuild()
	return t
}

func (t *SetValueTree[T]) rebuild() {
	t.current = mapset.NewThreadUnsafeSet[T](t.values...)
}

func (t *SetValueTree[T]) Current() mapset.Set[T] { return t.current }

func (t *SetValueTree[T]) duplicate(index int, candidate T) bool {
	for i, v := range t.values {
		if i != index && v == candidate {
			return true
		}
	}
	return false
}

func (t *SetValueTree[T]) seekLength(chunkIndex, offset int) (int, int, int, bool) {
	for chunkIndex < len(t.dropPlan) {
		size := t.dropPlan[chunkIndex]
		if size == 0 ||
			len(t.elems) <= t.minLen ||
			size > len(t.elems) ||
			len(t.elems)-size < t.minLen ||
			offset+size > len(t.elems) {
			chunkIndex++
			offset = 0
			continue
		}
		t.cursor = stage{mode: stageLength, chunkIndex: chunkIndex, offset: offset}
		return chunkIndex, offset, size, true
	}
	t.cursor = stage{mode: stageElements}
	return 0, 0, 0, false
}

func (t *SetValueTree[T]) Simplify() bool {
	for {
		switch t.cursor.mode {
		case stageLength:
			ci, off, size, ok := t.seekLength(t.cursor.chunkIndex, t.cursor.offset)
			if !ok {
				continue
			}
			removed := slices.Clone(t.elems[off : off+size])
			t.elems = slices.Delete(t.elems, off, off+size)
			t.values = slices.Delete(t.values, off, off+size)
			t.rebuild()
			t.history = append(t.history, sliceChange[T]{removed: removed, index: off, chunkIndex: ci})
			return true
		default:
			i := t.cursor.index
			if i >= len(t.elems) {
				return false
			}
			if t.elems[i].Simplify() {
				candidate := t.elems[i].Current()
				if t.duplicate(i, candidate) {
					if !t.elems[i].Complicate() {
						t.cursor = stage{mode: stageElements, index: i + 1}
					}
					continue
				}
				t.values[i] = candidate
				t.rebuild()
				t.history = append(t.history, sliceChange[T]{index: i})
				return true
			}
			t.cursor.index++
		}
	}
}

func (t *SetValueTree[T]) Complicate() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]

	if last.removed != nil {
		t.elems = slices.Insert(t.elems, last.index, last.removed...)
		restored := make([]T, len(last.removed))
		for i, e := range last.removed {
			restored[i] = e.Current()
		}
		t.values = slices.Insert(t.values, last.index, restored...)
		t.rebuild()
		if _, _, _, ok := t.seekLength(last.chunkIndex, last.index+1); ok {
			return true
		}
		return len(t.elems) > 0
	}

	i := last.index
	if t.elems[i].Complicate() {
		t.values[i] = t.elems[i].Current()
		t.rebuild()
		t.history = append(t.history, sliceChange[T]{index: i})
		return true
	}
	t.values[i] = t.elems[i].Current()
	t.rebuild()
	if i+1 < len(t.elems) {
		t.cursor = stage{mode: stageElements, index: i + 1}
		return true
	}
	return false
}
