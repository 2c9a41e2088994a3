package piecewise

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/born-ml/piecewise/internal/autodiff"
	"github.com/born-ml/piecewise/internal/autodiff/forward"
)

// ApplyDual is the forward-mode hook: the value is Eval(x.Value) and the
// tangent is the smoothed derivative scaled by x.Tangent.
func (p *Piecewise[T]) ApplyDual(x forward.Dual[T]) forward.Dual[T] {
	return forward.Dual[T]{
		Value:   p.Eval(x.Value),
		Tangent: p.SmoothedDerivative(x.Value) * x.Tangent,
	}
}

// Frule returns the value at x and the directional derivative for the input
// perturbation dx.
func (p *Piecewise[T]) Frule(x, dx T) (y, dy T) {
	return p.Eval(x), p.SmoothedDerivative(x) * dx
}

// Rrule returns the value at x and a pullback. The pullback reports no
// sensitivity for the function's own parameters; they are constants.
func (p *Piecewise[T]) Rrule(x T) (y T, pullback autodiff.Pullback[T]) {
	y = p.Eval(x)
	return y, func(dy T) (autodiff.NoTangent, T) {
		return autodiff.NoTangent{}, p.SmoothedDerivative(x) * dy
	}
}

// ApplyNumber propagates a gonum dual number through p.
func ApplyNumber(p *Piecewise[float64], x dual.Number) dual.Number {
	return autodiff.ToNumber(p.ApplyDual(autodiff.FromNumber(x)))
}
