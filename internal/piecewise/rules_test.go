package piecewise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/dual"

	"github.com/born-ml/piecewise/internal/autodiff"
	"github.com/born-ml/piecewise/internal/autodiff/forward"
	"github.com/born-ml/piecewise/internal/piecewise"
)

var probePoints = []float64{-3, -0.5, 0, 0.25, 1, 1.5, 4}

func newRelu(t *testing.T) *piecewise.Piecewise[float64] {
	t.Helper()
	p, err := piecewise.Hinge(1.0, piecewise.WithWidth(0.5))
	require.NoError(t, err)
	return p
}

func TestApplyDual_UnitTangent(t *testing.T) {
	p := newRelu(t)

	for _, x := range probePoints {
		d := p.ApplyDual(forward.Variable(x))
		assert.Equal(t, p.Eval(x), d.Value, "x=%v", x)
		assert.Equal(t, p.SmoothedDerivative(x), d.Tangent, "x=%v", x)
	}
}

func TestApplyDual_ScalesTangent(t *testing.T) {
	p := newRelu(t)

	d := p.ApplyDual(forward.Dual[float64]{Value: 2, Tangent: -3})
	assert.Equal(t, p.SmoothedDerivative(2)*-3, d.Tangent)
}

func TestApplyDual_Composes(t *testing.T) {
	step := piecewise.MustNew[float64](piecewise.Const(0.0), piecewise.Const(1.0))

	// g(x) = step(2x)·exp(x); g'(x) = 2·step'(2x)·exp(x) + step(2x)·exp(x)
	g := func(x forward.Dual[float64]) forward.Dual[float64] {
		return forward.Mul(step.ApplyDual(forward.Scale(2.0, x)), forward.Exp(x))
	}

	x := 0.3
	d := g(forward.Variable(x))
	want := 2*step.SmoothedDerivative(2*x)*math.Exp(x) + step.Eval(2*x)*math.Exp(x)
	assert.InDelta(t, want, d.Tangent, 1e-14)
}

func TestApplyNumber_Gonum(t *testing.T) {
	p := newRelu(t)

	for _, x := range probePoints {
		n := piecewise.ApplyNumber(p, dual.Number{Real: x, Emag: 1})
		assert.Equal(t, p.Eval(x), n.Real, "x=%v", x)
		assert.Equal(t, p.SmoothedDerivative(x), n.Emag, "x=%v", x)
	}

	// Nested inside a gonum expression: sin(p(x)).
	x := 2.0
	n := dual.Sin(piecewise.ApplyNumber(p, dual.Number{Real: x, Emag: 1}))
	assert.InDelta(t, math.Cos(p.Eval(x))*p.SmoothedDerivative(x), n.Emag, 1e-15)
}

func TestFrule(t *testing.T) {
	p := newRelu(t)

	for _, x := range probePoints {
		y, dy := p.Frule(x, 0.5)
		assert.Equal(t, p.Eval(x), y)
		assert.Equal(t, p.SmoothedDerivative(x)*0.5, dy)
	}

	y, dy := autodiff.Frule[float64](p, 1.5, 1)
	assert.Equal(t, p.Eval(1.5), y)
	assert.Equal(t, p.SmoothedDerivative(1.5), dy)
}

func TestRrule_Pullback(t *testing.T) {
	p := newRelu(t)

	for _, x := range probePoints {
		y, pullback := p.Rrule(x)
		assert.Equal(t, p.Eval(x), y)

		self, dx := pullback(1)
		assert.Equal(t, autodiff.NoTangent{}, self)
		assert.Equal(t, p.SmoothedDerivative(x), dx, "x=%v", x)

		_, dx = pullback(-2)
		assert.Equal(t, p.SmoothedDerivative(x)*-2, dx)
	}
}

func TestRrule_OnTape(t *testing.T) {
	p := newRelu(t)
	tape := autodiff.NewGradientTape[float64]()
	tape.StartRecording()

	// loss = tanh(p(x)·w)
	x := tape.Variable(1.2)
	w := tape.Variable(0.7)
	h := tape.Apply(p, x)
	loss := tape.Tanh(tape.Mul(h, w))

	grads := tape.Backward(loss, 1)

	th := math.Tanh(p.Eval(1.2) * 0.7)
	assert.InDelta(t, (1-th*th)*0.7*p.SmoothedDerivative(1.2), grads[x], 1e-15)
	assert.InDelta(t, (1-th*th)*p.Eval(1.2), grads[w], 1e-15)
}

func TestRrule_Float32(t *testing.T) {
	p, err := piecewise.Step[float32](0, 1)
	require.NoError(t, err)

	_, pullback := p.Rrule(0)
	_, dx := pullback(1)
	assert.Equal(t, float32(1), dx)
}
