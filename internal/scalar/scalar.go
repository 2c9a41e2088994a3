// Package scalar defines the numeric types accepted by the differentiation
// engine and the elementary functions it needs on them.
//
// All transcendental functions are computed in float64 and converted back,
// so float32 instantiations see the same rounding as math.* followed by a
// narrowing conversion.
package scalar

import "math"

// Float is the set of real scalar types a piecewise function can be built over.
type Float interface {
	~float32 | ~float64
}

// Exp returns e**x.
func Exp[T Float](x T) T {
	return T(math.Exp(float64(x)))
}

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Float](x T) T {
	return T(math.Tanh(float64(x)))
}

// Abs returns |x|.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// IsNaN reports whether x is NaN.
func IsNaN[T Float](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity of either sign.
func IsInf[T Float](x T) bool {
	return math.IsInf(float64(x), 0)
}

// IsFinitePositive reports whether x is a finite value strictly greater than zero.
func IsFinitePositive[T Float](x T) bool {
	return x > 0 && !IsInf(x)
}
