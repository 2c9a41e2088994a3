package piecewise

import "errors"

var (
	// ErrInvalidParameter is returned when a smoothing width is not a finite,
	// strictly positive number.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotDifferentiable is returned when a branch has no derivative at the split.
	ErrNotDifferentiable = errors.New("branch not differentiable at split")

	// ErrNilBranch is returned when a branch function is nil.
	ErrNilBranch = errors.New("nil branch")
)
