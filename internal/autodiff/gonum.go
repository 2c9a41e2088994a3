package autodiff

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/num/dual"

	"github.com/born-ml/piecewise/internal/autodiff/forward"
)

// GonumFunc adapts a function written over gonum dual numbers.
//
// Example:
//
//	f := autodiff.GonumFunc(func(x dual.Number) dual.Number {
//	    return dual.Mul(x, dual.Sin(x))
//	})
type GonumFunc func(dual.Number) dual.Number

// Eval returns f(x).
func (f GonumFunc) Eval(x float64) float64 {
	return f(dual.Number{Real: x}).Real
}

// Derivative returns f'(x).
func (f GonumFunc) Derivative(x float64) float64 {
	return f(dual.Number{Real: x, Emag: 1}).Emag
}

// ApplyDual propagates x through f.
func (f GonumFunc) ApplyDual(x forward.Dual[float64]) forward.Dual[float64] {
	return FromNumber(f(ToNumber(x)))
}

// ToNumber converts a dual number to its gonum representation.
func ToNumber(x forward.Dual[float64]) dual.Number {
	return dual.Number{Real: x.Value, Emag: x.Tangent}
}

// FromNumber converts a gonum dual number.
func FromNumber(x dual.Number) forward.Dual[float64] {
	return forward.Dual[float64]{Value: x.Real, Tangent: x.Emag}
}

// NumericFunc adapts a plain function with no derivative information. Its
// derivative is estimated by central finite differences, so it is only as
// accurate as the step allows (about 1e-8 relative for smooth functions).
type NumericFunc func(float64) float64

// Eval returns f(x).
func (f NumericFunc) Eval(x float64) float64 {
	return f(x)
}

// Derivative returns a finite-difference estimate of f'(x).
func (f NumericFunc) Derivative(x float64) float64 {
	return fd.Derivative(f, x, &fd.Settings{Formula: fd.Central})
}
