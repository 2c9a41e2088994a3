package piecewise

import (
	"github.com/born-ml/piecewise/internal/autodiff/forward"
	"github.com/born-ml/piecewise/internal/scalar"
)

// Constant is a branch that ignores its input. Plain values become branches
// by wrapping them with Const; functions already satisfy
// autodiff.Differentiable and are used as they are.
type Constant[T scalar.Float] struct {
	value T
}

// Const wraps v as a constant function.
func Const[T scalar.Float](v T) Constant[T] {
	return Constant[T]{value: v}
}

// Value returns the wrapped constant.
func (c Constant[T]) Value() T {
	return c.value
}

// Eval returns the constant for any x.
func (c Constant[T]) Eval(T) T {
	return c.value
}

// Derivative returns zero for any x.
func (c Constant[T]) Derivative(T) T {
	return 0
}

// ApplyDual returns the constant with a zero tangent.
func (c Constant[T]) ApplyDual(forward.Dual[T]) forward.Dual[T] {
	return forward.Constant(c.value)
}
