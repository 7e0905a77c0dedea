// Package falsify is a property-based testing engine. Strategies describe
// a domain of values, the harness draws random values from them and runs
// a property against each draw, and when the property fails the engine
// searches for a smaller counterexample by driving the value tree's
// simplify/complicate protocol.
//
// A property is checked from a regular Go test:
//
//	func TestReverse(t *testing.T) {
//		falsify.Check(t, strategy.SliceOf(strategy.Int(), strategy.AtMost(16)), func(xs []int) error {
//			if !slices.Equal(reverse(reverse(xs)), xs) {
//				return errors.New("double reverse changed the slice")
//			}
//			return nil
//		})
//	}
//
// Domains compose: strategy.MapOf, strategy.SetOf, strategy.Tuple2Of and
// friends wrap inner strategies and shrink without ever violating the
// inner domains' constraints. Types that only need random construction
// without shrinking can use the arbitrary package instead.
package falsify
