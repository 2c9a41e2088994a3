// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package piecewise provides two-branch functions with smoothed derivatives.
//
// The value switches branches at a split point; the derivative blends the
// two branches near the split so gradient-based consumers see a continuous
// derivative. A Piecewise implements the autodiff protocol and can be nested,
// lifted into forward-mode code, or recorded on a gradient tape.
//
// Example:
//
//	import (
//	    "github.com/born-ml/piecewise/autodiff"
//	    "github.com/born-ml/piecewise/piecewise"
//	)
//
//	func main() {
//	    relu, _ := piecewise.Hinge(1.0)
//	    relu.Eval(1.5)               // 0.5
//	    relu.SmoothedDerivative(1.0) // 0.5
//
//	    tape := autodiff.NewGradientTape[float64]()
//	    tape.StartRecording()
//	    x := tape.Variable(2.0)
//	    y := tape.Apply(relu, x)
//	    grads := tape.Backward(y, 1)
//	    fmt.Println(grads[x]) // relu.SmoothedDerivative(2.0)
//	}
package piecewise

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/born-ml/piecewise/internal/autodiff"
	"github.com/born-ml/piecewise/internal/piecewise"
	"github.com/born-ml/piecewise/internal/scalar"
)

// Piecewise is an immutable two-branch function with a smoothed derivative.
type Piecewise[T scalar.Float] = piecewise.Piecewise[T]

// Constant is a branch that ignores its input.
type Constant[T scalar.Float] = piecewise.Constant[T]

// Option configures a Piecewise at construction.
type Option[T scalar.Float] = piecewise.Option[T]

// Errors returned by New.
var (
	ErrInvalidParameter  = piecewise.ErrInvalidParameter
	ErrNotDifferentiable = piecewise.ErrNotDifferentiable
	ErrNilBranch         = piecewise.ErrNilBranch
)

// New creates a Piecewise. Defaults: split 0, b1 = 1, b2 = b1.
func New[T scalar.Float](left, right autodiff.Differentiable[T], opts ...Option[T]) (*Piecewise[T], error) {
	return piecewise.New(left, right, opts...)
}

// MustNew is like New but panics on error.
func MustNew[T scalar.Float](left, right autodiff.Differentiable[T], opts ...Option[T]) *Piecewise[T] {
	return piecewise.MustNew(left, right, opts...)
}

// Const wraps v as a constant branch.
func Const[T scalar.Float](v T) Constant[T] {
	return piecewise.Const(v)
}

// Step returns a function that is low up to the split and high after it.
func Step[T scalar.Float](low, high T, opts ...Option[T]) (*Piecewise[T], error) {
	return piecewise.Step(low, high, opts...)
}

// Hinge returns max(0, x - split) with a smoothed kink.
func Hinge[T scalar.Float](split T, opts ...Option[T]) (*Piecewise[T], error) {
	return piecewise.Hinge(split, opts...)
}

// WithSplit sets the split point.
func WithSplit[T scalar.Float](x T) Option[T] {
	return piecewise.WithSplit(x)
}

// WithWidth sets b1, the jump smoothing width. b2 follows unless set.
func WithWidth[T scalar.Float](b1 T) Option[T] {
	return piecewise.WithWidth(b1)
}

// WithDiffWidth sets b2, the derivative smoothing width.
func WithDiffWidth[T scalar.Float](b2 T) Option[T] {
	return piecewise.WithDiffWidth(b2)
}

// WithCenteredCorrection centres the jump correction on the split.
func WithCenteredCorrection[T scalar.Float]() Option[T] {
	return piecewise.WithCenteredCorrection[T]()
}

// ApplyNumber propagates a gonum dual number through p.
func ApplyNumber(p *Piecewise[float64], x dual.Number) dual.Number {
	return piecewise.ApplyNumber(p, x)
}
