package piecewise

import "github.com/born-ml/piecewise/internal/scalar"

// Option configures a Piecewise at construction.
type Option[T scalar.Float] func(*options[T])

type options[T scalar.Float] struct {
	split     T
	width     T // b1, jump smoothing
	diffWidth T // b2, derivative smoothing
	diffSet   bool
	centered  bool
}

func defaultOptions[T scalar.Float]() *options[T] {
	return &options[T]{
		split: 0,
		width: 1,
	}
}

// WithSplit sets the split point (default 0).
func WithSplit[T scalar.Float](x T) Option[T] {
	return func(o *options[T]) {
		o.split = x
	}
}

// WithWidth sets b1, the width over which a jump in value is smoothed into
// the derivative (default 1). Unless WithDiffWidth is also given, b2 follows b1.
func WithWidth[T scalar.Float](b1 T) Option[T] {
	return func(o *options[T]) {
		o.width = b1
	}
}

// WithDiffWidth sets b2, the width over which the two branch derivatives are
// blended (default b1).
func WithDiffWidth[T scalar.Float](b2 T) Option[T] {
	return func(o *options[T]) {
		o.diffWidth = b2
		o.diffSet = true
	}
}

// WithCenteredCorrection centres the jump correction on the split point
// instead of the origin. The two agree when the split is 0.
func WithCenteredCorrection[T scalar.Float]() Option[T] {
	return func(o *options[T]) {
		o.centered = true
	}
}

func (o *options[T]) resolve() {
	if !o.diffSet {
		o.diffWidth = o.width
	}
}
