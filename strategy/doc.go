// Package strategy implements shrinkable search spaces for property-based
// testing.
//
// A Strategy describes a constrained domain of values. Calling NewTree draws
// one random value from the domain and returns it wrapped in a ValueTree: a
// stateful handle that can step to strictly simpler candidates (Simplify)
// and undo the most recent step (Complicate). The case runner in the root
// package drives these two operations in lockstep with the property under
// test to find a minimal counterexample.
//
// # Primitives
//
//	strategy.Bool()
//	strategy.Int()                      // and Int8 ... Uint64, see numeric.go
//	strategy.IntRange[int32](-10, 10)
//	strategy.Float64()
//	strategy.Rune()
//	strategy.String(strategy.Between(0, 16))
//
// Numeric domains shrink by repeatedly halving the distance to an anchor:
// zero when the range spans zero, otherwise the nearest in-range bound.
//
// # Collections
//
//	strategy.SliceOf(strategy.Uint8(), strategy.Between(3, 5))
//	strategy.SetOf(strategy.Int(), strategy.Between(1, 8))
//	strategy.MapOf(strategy.Int32(), strategy.String(strategy.AtMost(4)), strategy.Between(2, 6))
//
// Variable-length collections shrink in two phases: first a precomputed
// drop plan removes contiguous chunks of halving sizes down to the declared
// minimum length, then elements shrink one index at a time. Containers with
// uniqueness constraints reject element simplifications that would collide
// with the rest of the collection, undoing them locally instead of ever
// exposing an invalid value.
//
// # Sum types and fixed shapes
//
//	strategy.PtrOf(strategy.Int())              // nil first, then inner
//	strategy.ResultOf(okStrategy, errStrategy)  // Ok converts to Err first
//	strategy.ArrayOf(4, strategy.Uint8())       // fixed length, element-only
//	strategy.TupleOf2(a, b)                     // and TupleOf3, TupleOf4
package strategy

//go:generate go run ./internal/gencmd
