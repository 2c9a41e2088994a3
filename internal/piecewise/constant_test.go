package piecewise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/piecewise/internal/autodiff"
	"github.com/born-ml/piecewise/internal/autodiff/forward"
	"github.com/born-ml/piecewise/internal/piecewise"
)

func TestConst_IgnoresInput(t *testing.T) {
	c := piecewise.Const(2.5)

	assert.Equal(t, 2.5, c.Value())
	for _, x := range []float64{-1e9, -1, 0, 3, 1e9} {
		assert.Equal(t, 2.5, c.Eval(x))
		assert.Equal(t, 0.0, c.Derivative(x))
	}
}

func TestConst_ZeroOfSameType(t *testing.T) {
	c := piecewise.Const(float32(7))

	var d float32 = c.Derivative(1)
	assert.Equal(t, float32(0), d)
	assert.Equal(t, float32(0), autodiff.Derivative[float32](c, 3))
}

func TestConst_ApplyDual(t *testing.T) {
	c := piecewise.Const(4.0)

	d := c.ApplyDual(forward.Dual[float64]{Value: 1, Tangent: 9})
	assert.Equal(t, forward.Dual[float64]{Value: 4, Tangent: 0}, d)
}

func TestConst_CallablesPassThrough(t *testing.T) {
	// Constants and callables satisfy the same interface and mix freely.
	branches := []autodiff.Differentiable[float64]{
		piecewise.Const(1.0),
		forward.Linear(2.0, 0.0),
		piecewise.MustNew[float64](piecewise.Const(0.0), piecewise.Const(1.0)),
	}
	for _, b := range branches {
		_, err := piecewise.New(b, piecewise.Const(0.0))
		assert.NoError(t, err)
	}
}
