package forward

import "github.com/born-ml/piecewise/internal/scalar"

// Func is a real function written over dual numbers. Any Func is
// differentiable at every point where its arithmetic is defined.
type Func[T scalar.Float] func(Dual[T]) Dual[T]

// Eval returns f(x).
func (f Func[T]) Eval(x T) T {
	return f(Constant(x)).Value
}

// Derivative returns f'(x).
func (f Func[T]) Derivative(x T) T {
	return f(Variable(x)).Tangent
}

// ApplyDual propagates x through f.
func (f Func[T]) ApplyDual(x Dual[T]) Dual[T] {
	return f(x)
}

// Identity returns the function x ↦ x.
func Identity[T scalar.Float]() Func[T] {
	return func(x Dual[T]) Dual[T] { return x }
}

// Linear returns the function x ↦ slope·x + offset.
func Linear[T scalar.Float](slope, offset T) Func[T] {
	return func(x Dual[T]) Dual[T] {
		return AddConst(Scale(slope, x), offset)
	}
}
