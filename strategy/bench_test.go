package strategy_test

import (
	"testing"

	"github.com/syssam/falsify/strategy"
)

func BenchmarkIntTree(b *testing.B) {
	s := strategy.IntRange(0, 1<<30)
	g := newGen()
	for b.Loop() {
		s.NewTree(g)
	}
}

func BenchmarkIntShrink(b *testing.B) {
	s := strategy.IntRange(0, 1<<30)
	g := newGen()
	for b.Loop() {
		out := s.NewTree(g)
		tree := out.Value
		for tree.Simplify() {
		}
	}
}

func BenchmarkSliceShrink(b *testing.B) {
	s := strategy.SliceOf[int](strategy.IntRange(0, 1000), strategy.Between(0, 64))
	g := newGen()
	for b.Loop() {
		out := s.NewTree(g)
		tree := out.Value
		for tree.Simplify() {
		}
	}
}

func BenchmarkStringTree(b *testing.B) {
	s := strategy.String(strategy.AtMost(64))
	g := newGen()
	for b.Loop() {
		s.NewTree(g)
	}
}
