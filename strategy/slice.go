package strategy

import (
	"slices"

	"github.com/syssam/falsify/gen"
)

// SliceStrategy draws variable-length slices over an element domain.
type SliceStrategy[T any] struct {
	elem Strategy[T]
	hint SizeHint
}

// SliceOf returns a strategy producing slices whose length is sampled from
// hint and whose elements come from elem.
func SliceOf[T any](elem Strategy[T], hint SizeHint) *SliceStrategy[T] {
	return &SliceStrategy[T]{elem: elem, hint: hint}
}

// NewTree samples a target length, draws that many element trees, and
// assembles them into a slice tree. A rejected element draw rejects the
// whole composite, carrying the partial tree assembled so far.
func (s *SliceStrategy[T]) NewTree(g *gen.Gen) gen.Outcome[ValueTree[[]T]] {
	length := s.hint.pick(g.Rand())
	trees := make([]ValueTree[T], 0, length)
	for range length {
		out := s.elem.NewTree(g)
		if !out.Accepted() {
			return gen.Outcome[ValueTree[[]T]]{
				Status:    gen.StatusRejected,
				Iteration: out.Iteration,
				Depth:     out.Depth,
				Value:     NewSliceTree(trees, s.hint.Min()),
			}
		}
		trees = append(trees, out.Value)
	}
	return gen.Accept[ValueTree[[]T]](g, NewSliceTree(trees, s.hint.Min()))
}

// sliceChange records one successful simplification so Complicate can undo
// it verbatim: a removed chunk (with its element trees) or an element step.
type sliceChange[T any] struct {
	removed    []ValueTree[T] // nil for an element change
	index      int
	chunkIndex int
}

// SliceValueTree shrinks a slice in two phases: contiguous chunk removal
// following the drop plan, then per-element shrinking, never dropping the
// length below the declared minimum.
type SliceValueTree[T any] struct {
	elems    []ValueTree[T]
	current  []T
	minLen   int
	dropPlan []int
	cursor   stage
	history  []sliceChange[T]
}

// NewSliceTree builds a slice tree over the given element trees with the
// declared minimum length.
func NewSliceTree[T any](elems []ValueTree[T], minLen int) *SliceValueTree[T] {
	t := &SliceValueTree[T]{
		elems:    elems,
		minLen:   minLen,
		dropPlan: buildDropPlan(len(elems)),
	}
	if len(t.dropPlan) == 0 {
		t.cursor = stage{mode: stageElements}
	} else {
		t.cursor = stage{mode: stageLength}
	}
	t.syncCurrent()
	return t
}

// syncCurrent rebuilds the exposed slice from the element trees. A fresh
// slice is allocated every time so values handed out by Current are never
// mutated behind the caller's back.
func (t *SliceValueTree[T]) syncCurrent() {
	t.current = make([]T, len(t.elems))
	for i, e := range t.elems {
		t.current[i] = e.Current()
	}
}

func (t *SliceValueTree[T]) Current() []T { return t.current }

// seekLength advances the cursor to the next chunk the drop plan can
// remove without breaching the minimum length. When the plan is exhausted
// it flips the cursor to the element stage and reports ok=false.
func (t *SliceValueTree[T]) seekLength(chunkIndex, offset int) (int, int, int, bool) {
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

func (t *SliceValueTree[T]) Simplify() bool {
	for {
		switch t.cursor.mode {
		case stageLength:
			ci, off, size, ok := t.seekLength(t.cursor.chunkIndex, t.cursor.offset)
			if !ok {
				continue
			}
			removed := slices.Clone(t.elems[off : off+size])
			t.elems = slices.Delete(t.elems, off, off+size)
			t.syncCurrent()
			t.history = append(t.history, sliceChange[T]{removed: removed, index: off, chunkIndex: ci})
			return true
		default:
			i := t.cursor.index
			if i >= len(t.elems) {
				return false
			}
			if t.elems[i].Simplify() {
				t.syncCurrent()
				t.history = append(t.history, sliceChange[T]{index: i})
				return true
			}
			t.cursor.index++
		}
	}
}

func (t *SliceValueTree[T]) Complicate() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]

	if last.removed != nil {
		t.elems = slices.Insert(t.elems, last.index, last.removed...)
		t.syncCurrent()
		// Resume scanning the drop plan past the restored chunk before
		// falling through to element shrinking.
		if _, _, _, ok := t.seekLength(last.chunkIndex, last.index+1); ok {
			return true
		}
		return len(t.elems) > 0
	}

	i := last.index
	if t.elems[i].Complicate() {
		t.syncCurrent()
		t.history = append(t.history, sliceChange[T]{index: i})
		return true
	}
	t.syncCurrent()
	if i+1 < len(t.elems) {
		t.cursor = stage{mode: stageElements, index: i + 1}
		return true
	}
	return false
}
