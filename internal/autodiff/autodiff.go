// Package autodiff implements the differentiation protocol shared by every
// composable scalar function in this module.
//
// Architecture:
//   - Differentiable: the minimal capability {Eval, Derivative}
//   - DualApplier: forward-mode hook, propagates a dual number
//   - ForwardRule / ReverseRule: functions that supply their own
//     directional derivative or pullback
//   - GradientTape: records operations during the forward pass and
//     computes gradients with reverse-mode AD
//
// The dispatchers (Derivative, Lift, Frule, Rrule) pick the most specific
// hook a function implements and fall back to Derivative otherwise, so a
// function that implements the protocol nests inside both forward-mode and
// reverse-mode computations.
//
// Usage:
//
//	sq := forward.Func[float64](func(x forward.Dual[float64]) forward.Dual[float64] {
//	    return forward.Mul(x, x)
//	})
//	autodiff.Derivative(sq, 3.0) // 6
package autodiff

import (
	"github.com/born-ml/piecewise/internal/autodiff/forward"
	"github.com/born-ml/piecewise/internal/scalar"
)

// Differentiable is a real function of one real variable that can report its
// own derivative.
type Differentiable[T scalar.Float] interface {
	// Eval returns f(x).
	Eval(x T) T

	// Derivative returns f'(x).
	Derivative(x T) T
}

// DualApplier is implemented by functions that can propagate a dual number
// directly (forward mode).
type DualApplier[T scalar.Float] interface {
	ApplyDual(x forward.Dual[T]) forward.Dual[T]
}

// ForwardRule is implemented by functions that compute the value and the
// directional derivative f'(x)·dx in one call.
type ForwardRule[T scalar.Float] interface {
	Frule(x, dx T) (y, dy T)
}

// NoTangent marks a sensitivity that does not exist, such as the gradient
// with respect to a function's fixed parameters.
type NoTangent struct{}

// Pullback maps an output sensitivity dy back to the sensitivities of the
// function's parameters and of its input.
type Pullback[T scalar.Float] func(dy T) (NoTangent, T)

// ReverseRule is implemented by functions that supply their own reverse-mode
// rule: the value at x and a deferred pullback.
type ReverseRule[T scalar.Float] interface {
	Rrule(x T) (y T, pullback Pullback[T])
}

// Derivative returns f'(x). Functions that propagate dual numbers are
// differentiated by seeding a unit tangent; everything else reports its own
// derivative.
func Derivative[T scalar.Float](f Differentiable[T], x T) T {
	if d, ok := f.(DualApplier[T]); ok {
		return d.ApplyDual(forward.Variable(x)).Tangent
	}
	return f.Derivative(x)
}

// Lift turns f into a forward.Func so it can be used inside a larger
// forward-mode computation.
func Lift[T scalar.Float](f Differentiable[T]) forward.Func[T] {
	if d, ok := f.(DualApplier[T]); ok {
		return d.ApplyDual
	}
	return func(x forward.Dual[T]) forward.Dual[T] {
		return forward.Dual[T]{
			Value:   f.Eval(x.Value),
			Tangent: f.Derivative(x.Value) * x.Tangent,
		}
	}
}

// Frule returns f(x) and the directional derivative f'(x)·dx.
func Frule[T scalar.Float](f Differentiable[T], x, dx T) (y, dy T) {
	if r, ok := f.(ForwardRule[T]); ok {
		return r.Frule(x, dx)
	}
	d := Lift(f)(forward.Dual[T]{Value: x, Tangent: dx})
	return d.Value, d.Tangent
}

// Rrule returns f(x) and a pullback that maps an output sensitivity to the
// input sensitivity. Functions without their own rule get a pullback built
// from Derivative, evaluated eagerly at x.
func Rrule[T scalar.Float](f Differentiable[T], x T) (y T, pullback Pullback[T]) {
	if r, ok := f.(ReverseRule[T]); ok {
		return r.Rrule(x)
	}
	y = f.Eval(x)
	d := Derivative(f, x)
	return y, func(dy T) (NoTangent, T) {
		return NoTangent{}, d * dy
	}
}
