// Package forward implements forward-mode automatic differentiation with
// dual numbers.
//
// A dual number carries a value together with the tangent (the coefficient of
// the infinitesimal ϵ, ϵ² = 0). Evaluating a function on Variable(x) yields
// f(x) in Value and f'(x) in Tangent.
//
// Usage:
//
//	f := forward.Func[float64](func(x forward.Dual[float64]) forward.Dual[float64] {
//	    return forward.Mul(x, forward.Exp(x)) // x·eˣ
//	})
//	d := f(forward.Variable(1.0))
//	fmt.Println(d.Value, d.Tangent) // e, 2e
package forward

import (
	"fmt"

	"github.com/born-ml/piecewise/internal/scalar"
)

// Dual is a value paired with a tangent (perturbation) coefficient.
type Dual[T scalar.Float] struct {
	Value   T
	Tangent T
}

// Variable returns the dual number x + 1ϵ, the seed for differentiating at x.
func Variable[T scalar.Float](x T) Dual[T] {
	return Dual[T]{Value: x, Tangent: 1}
}

// Constant returns the dual number x + 0ϵ.
func Constant[T scalar.Float](x T) Dual[T] {
	return Dual[T]{Value: x}
}

// String formats d as (value+tangentϵ).
func (d Dual[T]) String() string {
	return fmt.Sprintf("(%v%+vϵ)", d.Value, d.Tangent)
}

// Add returns x + y.
func Add[T scalar.Float](x, y Dual[T]) Dual[T] {
	return Dual[T]{Value: x.Value + y.Value, Tangent: x.Tangent + y.Tangent}
}

// Sub returns x - y.
func Sub[T scalar.Float](x, y Dual[T]) Dual[T] {
	return Dual[T]{Value: x.Value - y.Value, Tangent: x.Tangent - y.Tangent}
}

// Mul returns x * y.
//
// Product rule: (a + bϵ)(c + dϵ) = ac + (ad + bc)ϵ.
func Mul[T scalar.Float](x, y Dual[T]) Dual[T] {
	return Dual[T]{
		Value:   x.Value * y.Value,
		Tangent: x.Value*y.Tangent + x.Tangent*y.Value,
	}
}

// Scale returns k * x for a real k.
func Scale[T scalar.Float](k T, x Dual[T]) Dual[T] {
	return Dual[T]{Value: k * x.Value, Tangent: k * x.Tangent}
}

// AddConst returns x + c for a real c.
func AddConst[T scalar.Float](x Dual[T], c T) Dual[T] {
	return Dual[T]{Value: x.Value + c, Tangent: x.Tangent}
}

// Neg returns -x.
func Neg[T scalar.Float](x Dual[T]) Dual[T] {
	return Dual[T]{Value: -x.Value, Tangent: -x.Tangent}
}

// Exp returns e**x.
//
// d(exp(x))/dx = exp(x).
func Exp[T scalar.Float](x Dual[T]) Dual[T] {
	e := scalar.Exp(x.Value)
	return Dual[T]{Value: e, Tangent: e * x.Tangent}
}

// Tanh returns the hyperbolic tangent of x.
//
// d(tanh(x))/dx = 1 - tanh²(x).
func Tanh[T scalar.Float](x Dual[T]) Dual[T] {
	th := scalar.Tanh(x.Value)
	return Dual[T]{Value: th, Tangent: (1 - th*th) * x.Tangent}
}

// Abs returns |x|. The tangent at zero is taken from the right (sign +1).
func Abs[T scalar.Float](x Dual[T]) Dual[T] {
	if x.Value < 0 {
		return Neg(x)
	}
	return x
}
