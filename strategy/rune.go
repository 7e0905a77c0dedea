package strategy

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/syssam/falsify/gen"
)

// RuneStrategy draws runes uniformly from an inclusive codepoint range,
// skipping the surrogate block. Shrinking favours human-readable output:
// a preferred character first, then digits, then lowercase letters, then a
// halving walk toward the preferred target's codepoint.
type RuneStrategy struct {
	lo, hi rune
}

// Rune returns a strategy over all valid codepoints.
func Rune() *RuneStrategy { return RuneRange(0, unicode.MaxRune) }

// RuneRange returns a strategy over the inclusive range [lo, hi].
func RuneRange(lo, hi rune) *RuneStrategy {
	if lo > hi {
		panic(fmt.Sprintf("falsify: rune range %q..%q has start greater than end", lo, hi))
	}
	if lo >= 0xD800 && hi <= 0xDFFF {
		panic(fmt.Sprintf("falsify: rune range %#x..%#x contains no valid codepoints", lo, hi))
	}
	return &RuneStrategy{lo: lo, hi: hi}
}

// NewTree draws one rune and precomputes its candidate ordering.
func (s *RuneStrategy) NewTree(g *gen.Gen) gen.Outcome[ValueTree[rune]] {
	value := sampleInt(g.Rand(), s.lo, s.hi)
	for !utf8.ValidRune(value) {
		value = sampleInt(g.Rand(), s.lo, s.hi)
	}
	return gen.Accept(g, NewCandidateTree(value, runeCandidates(value, s.lo, s.hi)))
}

// preferredRune picks the character shrinking converges toward, in priority
// order: space, '0', 'a', falling back to the range's lower bound.
func preferredRune(lo, hi rune) rune {
	for _, c := range []rune{' ', '0', 'a'} {
		if c >= lo && c <= hi {
			return c
		}
	}
	return lo
}

func runeCandidates(value, lo, hi rune) []rune {
	var out []rune
	contains := func(c rune) bool {
		for _, have := range out {
			if have == c {
				return true
			}
		}
		return false
	}
	push := func(c rune) {
		if c != value && c >= lo && c <= hi && utf8.ValidRune(c) && !contains(c) {
			out = append(out, c)
		}
	}

	target := preferredRune(lo, hi)
	push(target)
	for c := '0'; c <= '9'; c++ {
		push(c)
	}
	for c := 'a'; c <= 'z'; c++ {
		push(c)
	}
	for _, c := range intCandidates(value, target) {
		push(c)
	}
	return out
}
