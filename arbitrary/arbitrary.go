package arbitrary

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/syssam/falsify/gen"
)

// Bounds keeping generation total on recursive and collection-valued
// types.
const (
	MaxStringLen     = 128
	MaxCollectionLen = 32
	maxDepth         = 8
)

var uuidType = reflect.TypeOf(uuid.UUID{})

// Value builds a random T from a fresh random source.
func Value[T any]() T {
	return New[T](rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// New builds a random T from rng. Struct fields, slice elements, map
// entries and pointer targets are filled recursively; unexported struct
// fields are left at their zero value.
func New[T any](rng *rand.Rand) T {
	var value T
	fill(reflect.ValueOf(&value).Elem(), rng, 0)
	return value
}

// Generate draws a value through a generation context so fallback types
// can participate in strategy-driven draws. Generation never rejects.
func Generate[T any](g *gen.Gen) gen.Outcome[T] {
	return gen.Accept(g, New[T](g.Rand()))
}

func fill(v reflect.Value, rng *rand.Rand, depth int) {
	if !v.CanSet() {
		return
	}
	if v.Type() == uuidType {
		var id uuid.UUID
		for i := range id {
			id[i] = byte(rng.Uint64())
		}
		id[6] = (id[6] & 0x0f) | 0x40
		id[8] = (id[8] & 0x3f) | 0x80
		v.Set(reflect.ValueOf(id))
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		v.SetBool(rng.IntN(2) == 1)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(rng.Uint64()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(rng.Uint64())
	case reflect.Float32, reflect.Float64:
		v.SetFloat(rng.NormFloat64())
	case reflect.Complex64, reflect.Complex128:
		v.SetComplex(complex(rng.NormFloat64(), rng.NormFloat64()))
	case reflect.String:
		v.SetString(randomString(rng))
	case reflect.Slice:
		if depth >= maxDepth {
			return
		}
		n := rng.IntN(MaxCollectionLen + 1)
		s := reflect.MakeSlice(v.Type(), n, n)
		for i := range n {
			fill(s.Index(i), rng, depth+1)
		}
		v.Set(s)
	case reflect.Array:
		if depth >= maxDepth {
			return
		}
		for i := range v.Len() {
			fill(v.Index(i), rng, depth+1)
		}
	case reflect.Map:
		if depth >= maxDepth {
			return
		}
		n := rng.IntN(MaxCollectionLen + 1)
		m := reflect.MakeMapWithSize(v.Type(), n)
		for range n {
			key := reflect.New(v.Type().Key()).Elem()
			val := reflect.New(v.Type().Elem()).Elem()
			fill(key, rng, depth+1)
			fill(val, rng, depth+1)
			m.SetMapIndex(key, val)
		}
		v.Set(m)
	case reflect.Ptr:
		if depth >= maxDepth {
			return
		}
		if rng.IntN(2) == 0 {
			return
		}
		p := reflect.New(v.Type().Elem())
		fill(p.Elem(), rng, depth+1)
		v.Set(p)
	case reflect.Struct:
		if depth >= maxDepth {
			return
		}
		for i := range v.NumField() {
			fill(v.Field(i), rng, depth+1)
		}
	case reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		panic(fmt.Sprintf("falsify: cannot build arbitrary value of kind %s", v.Kind()))
	}
}

// randomString draws up to MaxStringLen random valid runes.
func randomString(rng *rand.Rand) string {
	n := rng.IntN(MaxStringLen + 1)
	runes := make([]rune, 0, n)
	for len(runes) < n {
		r := rune(rng.Uint64() % (utf8.MaxRune + 1))
		if utf8.ValidRune(r) {
			runes = append(runes, r)
		}
	}
	return string(runes)
}
