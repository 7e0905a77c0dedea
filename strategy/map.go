package strategy

import (
	"slices"

	"github.com/syssam/falsify/gen"
)

// MapStrategy draws maps with unique keys from a key domain and a value
// domain.
type MapStrategy[K comparable, V any] struct {
	key   Strategy[K]
	value Strategy[V]
	hint  SizeHint
}

// MapOf returns a strategy producing maps whose entry count is sampled
// from hint, with keys from key and values from value.
func MapOf[K comparable, V any](key Strategy[K], value Strategy[V], hint SizeHint) *MapStrategy[K, V] {
	return &MapStrategy[K, V]{key: key, value: value, hint: hint}
}

// NewTree draws key/value tree pairs until the target entry count is
// reached. A duplicate key discards the draw without consuming a value
// draw. The budget is MaxStrategyAttempts per requested entry.
func (s *MapStrategy[K, V]) NewTree(g *gen.Gen) gen.Outcome[ValueTree[map[K]V]] {
	target := s.hint.pick(g.Rand())
	entries := make([]mapEntry[K, V], 0, target)
	keys := make([]K, 0, target)
	values := make([]V, 0, target)
	seen := make(map[K]struct{}, target)

	reject := func(out gen.Outcome[ValueTree[map[K]V]], iteration, depth int) gen.Outcome[ValueTree[map[K]V]] {
		out.Status = gen.StatusRejected
		out.Iteration = iteration
		out.Depth = depth
		out.Value = newMapTree(entries, keys, values, s.hint.Min())
		return out
	}

	attempts := MaxStrategyAttempts * max(target, 1)
	for len(entries) < target && attempts > 0 {
		attempts--

		kout := s.key.NewTree(g)
		if !kout.Accepted() {
			return reject(gen.Outcome[ValueTree[map[K]V]]{}, kout.Iteration, kout.Depth)
		}
		k := kout.Value.Current()
		if _, dup := seen[k]; dup {
			continue
		}

		vout := s.value.NewTree(g)
		if !vout.Accepted() {
			return reject(gen.Outcome[ValueTree[map[K]V]]{}, vout.Iteration, vout.Depth)
		}

		seen[k] = struct{}{}
		entries = append(entries, mapEntry[K, V]{key: kout.Value, value: vout.Value})
		keys = append(keys, k)
		values = append(values, vout.Value.Current())
	}
	return gen.Accept[ValueTree[map[K]V]](g, newMapTree(entries, keys, values, s.hint.Min()))
}

type mapEntry[K comparable, V any] struct {
	key   ValueTree[K]
	value ValueTree[V]
}

// mapChange records one successful simplification. A non-nil removed
// slice is an undone chunk removal; otherwise index refers to a key or
// value step depending on keyStep.
type mapChange[K comparable, V any] struct {
	removed    []mapEntry[K, V]
	index      int
	chunkIndex int
	keyStep    bool
}

// MapValueTree shrinks a map in three phases: chunk removal over the
// entry list, then key shrinking with duplicate rejection, then value
// shrinking. Keys finish before any value is touched so the key set is
// stable while values move.
type MapValueTree[K comparable, V any] struct {
	entries  []mapEntry[K, V]
	keys     []K
	values   []V
	current  map[K]V
	minLen   int
	dropPlan []int
	cursor   stage
	history  []mapChange[K, V]
}

// NewMapTree builds a map tree over paired key and value trees. The two
// slices must have equal length; entry i pairs keyTrees[i] with
// valueTrees[i].
func NewMapTree[K comparable, V any](keyTrees []ValueTree[K], valueTrees []ValueTree[V], minLen int) *MapValueTree[K, V] {
	if len(keyTrees) != len(valueTrees) {
		panic("falsify: map tree key and value counts differ")
	}
	entries := make([]mapEntry[K, V], len(keyTrees))
	keys := make([]K, len(keyTrees))
	values := make([]V, len(keyTrees))
	for i := range keyTrees {
		entries[i] = mapEntry[K, V]{key: keyTrees[i], value: valueTrees[i]}
		keys[i] = keyTrees[i].Current()
		values[i] = valueTrees[i].Current()
	}
	return newMapTree(entries, keys, values, minLen)
}

func newMapTree[K comparable, V any](entries []mapEntry[K, V], keys []K, values []V, minLen int) *MapValueTree[K, V] {
	t := &MapValueTree[K, V]{
		entries:  entries,
		keys:     keys,
		values:   values,
		minLen:   minLen,
		dropPlan: buildDropPlan(len(entries)),
	}
	if len(t.dropPlan) == 0 {
		t.cursor = stage{mode: stageKeys}
	} else {
		t.cursor = stage{mode: stageLength}
	}
	t.rebuild()
	return t
}

func (t *MapValueTree[K, V]) rebuild() {
	t.current = make(map[K]V, len(t.entries))
	for i, k := range t.keys {
		t.current[k] = t.values[i]
	}
}

func (t *MapValueTree[K, V]) Current() map[K]V { return t.current }

func (t *MapValueTree[K, V]) keyDuplicate(index int, candidate K) bool {
	for i, k := range t.keys {
		if i != index && k == candidate {
			return true
		}
	}
	return false
}

func (t *MapValueTree[K, V]) seekLength(chunkIndex, offset int) (int, int, int, bool) {
	for chunkIndex < len(t.dropPlan) {
		size := t.dropPlan[chunkIndex]
		if size == 0 ||
			len(t.entries) <= t.minLen ||
			size > len(t.entries) ||
			len(t.entries)-size < t.minLen ||
			offset+size > len(t.entries) {
			chunkIndex++
			offset = 0
			continue
		}
		t.cursor = stage{mode: stageLength, chunkIndex: chunkIndex, offset: offset}
		return chunkIndex, offset, size, true
	}
	t.cursor = stage{mode: stageKeys}
	return 0, 0, 0, false
}

func (t *MapValueTree[K, V]) Simplify() bool {
	for {
		switch t.cursor.mode {
		case stageLength:
			ci, off, size, ok := t.seekLength(t.cursor.chunkIndex, t.cursor.offset)
			if !ok {
				continue
			}
			removed := slices.Clone(t.entries[off : off+size])
			t.entries = slices.Delete(t.entries, off, off+size)
			t.keys = slices.Delete(t.keys, off, off+size)
			t.values = slices.Delete(t.values, off, off+size)
			t.rebuild()
			t.history = append(t.history, mapChange[K, V]{removed: removed, index: off, chunkIndex: ci})
			return true
		case stageKeys:
			i := t.cursor.index
			if i >= len(t.entries) {
				t.cursor = stage{mode: stageValues}
				continue
			}
			if t.entries[i].key.Simplify() {
				candidate := t.entries[i].key.Current()
				if t.keyDuplicate(i, candidate) {
					if !t.entries[i].key.Complicate() {
						t.cursor = stage{mode: stageKeys, index: i + 1}
					}
					continue
				}
				t.keys[i] = candidate
				t.rebuild()
				t.history = append(t.history, mapChange[K, V]{index: i, keyStep: true})
				return true
			}
			t.cursor.index++
		default:
			i := t.cursor.index
			if i >= len(t.entries) {
				return false
			}
			if t.entries[i].value.Simplify() {
				t.values[i] = t.entries[i].value.Current()
				t.rebuild()
				t.history = append(t.history, mapChange[K, V]{index: i})
				return true
			}
			t.cursor.index++
		}
	}
}

func (t *MapValueTree[K, V]) Complicate() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]

	switch {
	case last.removed != nil:
		t.entries = slices.Insert(t.entries, last.index, last.removed...)
		restoredKeys := make([]K, len(last.removed))
		restoredValues := make([]V, len(last.removed))
		for i, e := range last.removed {
			restoredKeys[i] = e.key.Current()
			restoredValues[i] = e.value.Current()
		}
		t.keys = slices.Insert(t.keys, last.index, restoredKeys...)
		t.values = slices.Insert(t.values, last.index, restoredValues...)
		t.rebuild()
		if _, _, _, ok := t.seekLength(last.chunkIndex, last.index+1); ok {
			return true
		}
		t.cursor = stage{mode: stageKeys}
		return len(t.entries) > 0
	case last.keyStep:
		i := last.index
		if t.entries[i].key.Complicate() {
			t.keys[i] = t.entries[i].key.Current()
			t.rebuild()
			t.history = append(t.history, mapChange[K, V]{index: i, keyStep: true})
			return true
		}
		t.keys[i] = t.entries[i].key.Current()
		t.rebuild()
		if i+1 < len(t.entries) {
			t.cursor = stage{mode: stageKeys, index: i + 1}
			return true
		}
		t.cursor = stage{mode: stageValues}
		return len(t.entries) > 0
	default:
		i := last.index
		if t.entries[i].value.Complicate() {
			t.values[i] = t.entries[i].value.Current()
			t.rebuild()
			t.history = append(t.history, mapChange[K, V]{index: i})
			return true
		}
		t.values[i] = t.entries[i].value.Current()
		t.rebuild()
		if i+1 < len(t.entries) {
			t.cursor = stage{mode: stageValues, index: i + 1}
			return true
		}
		return false
	}
}
