// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the scalar differentiation protocol and engines.
//
// Forward mode propagates dual numbers (value plus tangent); reverse mode
// records operations on a gradient tape and walks it backwards. Any type
// with Eval and Derivative methods plugs into both.
//
// Example:
//
//	import (
//	    "github.com/born-ml/piecewise/autodiff"
//	)
//
//	func main() {
//	    tape := autodiff.NewGradientTape[float64]()
//	    tape.StartRecording()
//
//	    x := tape.Variable(2.0)
//	    y := tape.Mul(x, tape.Tanh(x))
//
//	    grads := tape.Backward(y, 1)
//	    fmt.Println(grads[x])
//	}
package autodiff

import (
	"github.com/born-ml/piecewise/internal/autodiff"
	"github.com/born-ml/piecewise/internal/autodiff/forward"
	"github.com/born-ml/piecewise/internal/autodiff/ops"
	"github.com/born-ml/piecewise/internal/scalar"
)

// Float is the set of supported scalar types.
type Float = scalar.Float

// Differentiable is a real function that reports its own derivative.
type Differentiable[T Float] = autodiff.Differentiable[T]

// DualApplier is implemented by functions that propagate dual numbers.
type DualApplier[T Float] = autodiff.DualApplier[T]

// ForwardRule is implemented by functions with their own directional derivative.
type ForwardRule[T Float] = autodiff.ForwardRule[T]

// ReverseRule is implemented by functions with their own pullback.
type ReverseRule[T Float] = autodiff.ReverseRule[T]

// Pullback maps an output sensitivity to parameter and input sensitivities.
type Pullback[T Float] = autodiff.Pullback[T]

// NoTangent marks a sensitivity that does not exist.
type NoTangent = autodiff.NoTangent

// Dual is a value paired with a tangent coefficient.
type Dual[T Float] = forward.Dual[T]

// Func is a function written over dual numbers.
type Func[T Float] = forward.Func[T]

// GonumFunc adapts a function over gonum dual numbers.
type GonumFunc = autodiff.GonumFunc

// NumericFunc adapts a plain function, differentiated by finite differences.
type NumericFunc = autodiff.NumericFunc

// GradientTape records operations for reverse-mode differentiation.
type GradientTape[T Float] = autodiff.GradientTape[T]

// Node is a scalar in a recorded computation.
type Node[T Float] = ops.Node[T]

// NewGradientTape creates a new gradient tape.
func NewGradientTape[T Float]() *GradientTape[T] {
	return autodiff.NewGradientTape[T]()
}

// Variable returns x seeded with a unit tangent.
func Variable[T Float](x T) Dual[T] {
	return forward.Variable(x)
}

// Derivative returns f'(x).
func Derivative[T Float](f Differentiable[T], x T) T {
	return autodiff.Derivative(f, x)
}

// Lift turns f into a Func usable inside forward-mode computations.
func Lift[T Float](f Differentiable[T]) Func[T] {
	return autodiff.Lift(f)
}

// Frule returns f(x) and f'(x)·dx.
func Frule[T Float](f Differentiable[T], x, dx T) (y, dy T) {
	return autodiff.Frule(f, x, dx)
}

// Rrule returns f(x) and a pullback.
func Rrule[T Float](f Differentiable[T], x T) (y T, pullback Pullback[T]) {
	return autodiff.Rrule(f, x)
}
