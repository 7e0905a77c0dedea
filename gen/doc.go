// Package gen provides the generation context shared by every strategy draw.
//
// A Gen owns the randomness source for one test case together with the
// counters that identify a draw: a monotonically increasing iteration number
// and the current recursion depth. Strategies never construct a Gen
// themselves; the case runner builds one per case and threads it through
// every NewTree call:
//
//	g := gen.NewWithLimit(rand.New(rand.NewPCG(1, 2)), 32)
//	out := gen.Accept(g, value)
//
// Recursive strategies must wrap their self-referential draws in Recurse,
// which enforces the configured recursion limit and restores the depth
// counter on every exit path, including panics.
package gen
