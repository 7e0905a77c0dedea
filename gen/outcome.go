package gen

// Status discriminates the two outcome variants.
type Status int

const (
	// StatusAccepted marks a value the caller may hand to a property body.
	StatusAccepted Status = iota
	// StatusRejected marks a value the caller must discard and regenerate.
	StatusRejected
)

// Outcome is the uniform currency every generation step produces: a value
// tagged accepted or rejected together with the context counters at the
// time of production.
type Outcome[T any] struct {
	Status    Status
	Iteration int
	Depth     int
	Value     T
}

// Accepted reports whether the outcome carries a usable value.
func (o Outcome[T]) Accepted() bool { return o.Status == StatusAccepted }

// Take returns the wrapped value regardless of status.
func (o Outcome[T]) Take() T { return o.Value }

// Map converts the wrapped value while preserving status and counters.
// Wrapper trees use it to re-wrap an inner tree without touching the
// accept/reject decision.
func Map[T, U any](o Outcome[T], f func(T) U) Outcome[U] {
	return Outcome[U]{
		Status:    o.Status,
		Iteration: o.Iteration,
		Depth:     o.Depth,
		Value:     f(o.Value),
	}
}
