package arbitrary_test

import (
	"math/rand/v2"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/falsify/arbitrary"
	"github.com/syssam/falsify/gen"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a := arbitrary.New[int64](rand.New(rand.NewPCG(9, 9)))
	b := arbitrary.New[int64](rand.New(rand.NewPCG(9, 9)))
	assert.Equal(t, a, b)
}

func TestStringsAreBoundedAndValid(t *testing.T) {
	t.Parallel()

	rng := newRand()
	for range 50 {
		s := arbitrary.New[string](rng)
		assert.LessOrEqual(t, utf8.RuneCountInString(s), arbitrary.MaxStringLen)
		assert.True(t, utf8.ValidString(s))
	}
}

func TestCollectionsAreBounded(t *testing.T) {
	t.Parallel()

	rng := newRand()
	for range 50 {
		assert.LessOrEqual(t, len(arbitrary.New[[]uint8](rng)), arbitrary.MaxCollectionLen)
		assert.LessOrEqual(t, len(arbitrary.New[map[int]bool](rng)), arbitrary.MaxCollectionLen)
	}
}

func TestStructFieldsAreFilled(t *testing.T) {
	t.Parallel()

	type inner struct {
		Flag  bool
		Count int
	}
	type outer struct {
		Name   string
		Nested inner
		Tags   []string
		Link   *outer
	}

	rng := newRand()
	var sawName, sawTags bool
	for range 50 {
		v := arbitrary.New[outer](rng)
		if v.Name != "" {
			sawName = true
		}
		if len(v.Tags) > 0 {
			sawTags = true
		}
	}
	assert.True(t, sawName)
	assert.True(t, sawTags)
}

func TestRecursiveTypeTerminates(t *testing.T) {
	t.Parallel()

	type node struct {
		Next *node
		Data []int
	}
	rng := newRand()
	for range 20 {
		v := arbitrary.New[node](rng)
		depth := 0
		for n := &v; n != nil; n = n.Next {
			depth++
			require.LessOrEqual(t, depth, 64)
		}
	}
}

func TestUUIDHasVersionAndVariantBits(t *testing.T) {
	t.Parallel()

	rng := newRand()
	for range 50 {
		id := arbitrary.New[uuid.UUID](rng)
		assert.Equal(t, uuid.Version(4), id.Version())
		assert.Equal(t, uuid.RFC4122, id.Variant())
	}
}

func TestGenerateNeverRejects(t *testing.T) {
	t.Parallel()

	g := gen.New(newRand())
	for range 50 {
		out := arbitrary.Generate[uint32](g)
		assert.True(t, out.Accepted())
	}
}

func TestUnsupportedKindPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { arbitrary.New[func()](newRand()) })
	assert.Panics(t, func() { arbitrary.New[chan int](newRand()) })
}
