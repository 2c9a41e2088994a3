// Package piecewise implements a real function made of two branches joined at
// a split point, with a smoothed derivative.
//
// The value is branch-exact: x > split selects the right branch, anything
// else (including x == split) the left one. The derivative is blended so
// that it stays continuous across the split:
//
//	w      = 0.5 * exp(-|x - split| / b2)
//	dMixed = dOther*w + dActive(x)*(1 - w)
//	d(x)   = amplitude/b1 * (1 - tanh²(x/b1)) + dMixed
//
// where dOther is the derivative of the inactive branch at the split and
// amplitude is the jump right(split) - left(split). The tanh term spreads the
// jump in value over a region of width b1 around the origin.
//
// A Piecewise implements the autodiff protocol (Eval, Derivative, ApplyDual,
// Frule, Rrule), so it can be used as a branch of another Piecewise, lifted
// into forward-mode computations, or recorded on a GradientTape.
//
// Example:
//
//	step := piecewise.MustNew[float64](piecewise.Const(0.0), piecewise.Const(1.0))
//	step.Eval(0.1)       // 1
//	step.Derivative(0.0) // 1
package piecewise

import (
	"fmt"

	"github.com/born-ml/piecewise/internal/autodiff"
	"github.com/born-ml/piecewise/internal/scalar"
)

// Piecewise is an immutable two-branch function with a smoothed derivative.
// It is safe for concurrent use provided its branches are.
type Piecewise[T scalar.Float] struct {
	left  autodiff.Differentiable[T]
	right autodiff.Differentiable[T]
	split T

	// Cached at construction.
	amplitude T // right(split) - left(split)
	dyLeft    T // left'(split)
	dyRight   T // right'(split)

	betaAmplitude T // 1/b1
	betaDiff      T // 1/b2
	centered      bool
}

// New creates a Piecewise from two branches. Defaults: split 0, b1 = 1, b2 = b1.
//
// Returns ErrNilBranch if a branch is nil, ErrInvalidParameter if b1 or b2
// is not finite and strictly positive, and ErrNotDifferentiable if a branch
// derivative at the split is NaN.
func New[T scalar.Float](left, right autodiff.Differentiable[T], opts ...Option[T]) (*Piecewise[T], error) {
	if left == nil || right == nil {
		return nil, ErrNilBranch
	}

	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(o)
	}
	o.resolve()

	if !scalar.IsFinitePositive(o.width) {
		return nil, fmt.Errorf("width b1=%v: %w", o.width, ErrInvalidParameter)
	}
	if !scalar.IsFinitePositive(o.diffWidth) {
		return nil, fmt.Errorf("width b2=%v: %w", o.diffWidth, ErrInvalidParameter)
	}

	dyLeft := autodiff.Derivative(left, o.split)
	if scalar.IsNaN(dyLeft) {
		return nil, fmt.Errorf("left at %v: %w", o.split, ErrNotDifferentiable)
	}
	dyRight := autodiff.Derivative(right, o.split)
	if scalar.IsNaN(dyRight) {
		return nil, fmt.Errorf("right at %v: %w", o.split, ErrNotDifferentiable)
	}

	return &Piecewise[T]{
		left:          left,
		right:         right,
		split:         o.split,
		amplitude:     right.Eval(o.split) - left.Eval(o.split),
		dyLeft:        dyLeft,
		dyRight:       dyRight,
		betaAmplitude: 1 / o.width,
		betaDiff:      1 / o.diffWidth,
		centered:      o.centered,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew[T scalar.Float](left, right autodiff.Differentiable[T], opts ...Option[T]) *Piecewise[T] {
	p, err := New(left, right, opts...)
	if err != nil {
		panic(fmt.Sprintf("piecewise: %v", err))
	}
	return p
}

// Eval returns right(x) if x > split, otherwise left(x).
func (p *Piecewise[T]) Eval(x T) T {
	return p.active(x).Eval(x)
}

// Derivative returns the smoothed derivative at x.
func (p *Piecewise[T]) Derivative(x T) T {
	return p.SmoothedDerivative(x)
}

// SmoothedDerivative blends the active branch's derivative at x with the
// cached derivative of the other branch at the split, and adds the jump
// correction. At the split the blend is the average of both branch
// derivatives; far from it the active branch's own derivative dominates.
func (p *Piecewise[T]) SmoothedDerivative(x T) T {
	var dOther T
	if x > p.split {
		dOther = p.dyLeft
	} else {
		dOther = p.dyRight
	}
	dAtX := autodiff.Derivative(p.active(x), x)

	w := 0.5 * scalar.Exp(-scalar.Abs(x-p.split)*p.betaDiff)
	dMixed := dOther*w + dAtX*(1-w)

	return p.correction(x) + dMixed
}

// correction is the derivative of amplitude*tanh(betaAmplitude*u), u = x by
// default and x - split when centred.
func (p *Piecewise[T]) correction(x T) T {
	u := x
	if p.centered {
		u = x - p.split
	}
	th := scalar.Tanh(p.betaAmplitude * u)
	return p.amplitude * p.betaAmplitude * (1 - th*th)
}

func (p *Piecewise[T]) active(x T) autodiff.Differentiable[T] {
	if x > p.split {
		return p.right
	}
	return p.left
}

// Left returns the branch used for x <= split.
func (p *Piecewise[T]) Left() autodiff.Differentiable[T] { return p.left }

// Right returns the branch used for x > split.
func (p *Piecewise[T]) Right() autodiff.Differentiable[T] { return p.right }

// Split returns the split point.
func (p *Piecewise[T]) Split() T { return p.split }

// Amplitude returns the jump right(split) - left(split).
func (p *Piecewise[T]) Amplitude() T { return p.amplitude }

// LeftDerivative returns left'(split).
func (p *Piecewise[T]) LeftDerivative() T { return p.dyLeft }

// RightDerivative returns right'(split).
func (p *Piecewise[T]) RightDerivative() T { return p.dyRight }

// BetaAmplitude returns 1/b1.
func (p *Piecewise[T]) BetaAmplitude() T { return p.betaAmplitude }

// BetaDiff returns 1/b2.
func (p *Piecewise[T]) BetaDiff() T { return p.betaDiff }

// Centered reports whether the jump correction is centred on the split.
func (p *Piecewise[T]) Centered() bool { return p.centered }

// String implements fmt.Stringer.
func (p *Piecewise[T]) String() string {
	return fmt.Sprintf("Piecewise(split=%v, amplitude=%v, dy=[%v %v], b1=%v, b2=%v)",
		p.split, p.amplitude, p.dyLeft, p.dyRight, 1/p.betaAmplitude, 1/p.betaDiff)
}
