package falsify

import (
	"github.com/syssam/falsify/arbitrary"
)

// Sample builds one random T with no shrink tree, the unstructured
// fallback path for types that never need a counterexample search.
func Sample[T any]() T {
	return arbitrary.Value[T]()
}
