// Package arbitrary builds random values of (almost) any Go type without
// a shrink tree. It is the fallback path for types that only need random
// construction: generation is total, never rejects, and bounds string
// length, collection length and recursion depth so it always terminates.
package arbitrary
