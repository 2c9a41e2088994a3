package piecewise

import (
	"github.com/born-ml/piecewise/internal/autodiff/forward"
	"github.com/born-ml/piecewise/internal/scalar"
)

// Step returns a function that is low up to the split and high after it.
// Both branches are flat, so the smoothed derivative is the jump correction
// alone: (high-low)/b1 · (1 - tanh²(x/b1)).
func Step[T scalar.Float](low, high T, opts ...Option[T]) (*Piecewise[T], error) {
	return New[T](Const(low), Const(high), opts...)
}

// Hinge returns the ReLU-like function max(0, x - split), continuous at the
// split with a kink smoothed over width b2. A WithSplit option is ignored.
func Hinge[T scalar.Float](split T, opts ...Option[T]) (*Piecewise[T], error) {
	opts = append(opts[:len(opts):len(opts)], WithSplit(split))
	return New[T](Const[T](0), forward.Linear(1, -split), opts...)
}
