package config

import (
	"fmt"

	"gonum.org/v1/gonum/num/dual"

	"github.com/born-ml/piecewise/internal/autodiff"
	"github.com/born-ml/piecewise/internal/piecewise"
)

// Branch kinds.
const (
	KindConstant = "constant" // value
	KindLinear   = "linear"   // slope·x + offset
	KindTanh     = "tanh"     // tanh(scale·x)
	KindExp      = "exp"      // exp(scale·x)
	KindSin      = "sin"      // sin(scale·x)
)

// Branch describes one branch function. Scale defaults to 1 when zero.
type Branch struct {
	Kind   string  `yaml:"kind"`
	Value  float64 `yaml:"value"`
	Slope  float64 `yaml:"slope"`
	Offset float64 `yaml:"offset"`
	Scale  float64 `yaml:"scale"`
}

func (b Branch) validate() error {
	switch b.Kind {
	case KindConstant, KindLinear, KindTanh, KindExp, KindSin:
		return nil
	case "":
		return fmt.Errorf("missing kind")
	default:
		return fmt.Errorf("unknown kind %q", b.Kind)
	}
}

func (b Branch) scale() float64 {
	if b.Scale == 0 {
		return 1
	}
	return b.Scale
}

// Func returns the branch as a differentiable function. Non-constant kinds
// are expressed over gonum dual numbers. An unknown kind yields nil.
func (b Branch) Func() autodiff.Differentiable[float64] {
	k := b.scale()
	switch b.Kind {
	case KindConstant:
		return piecewise.Const(b.Value)
	case KindLinear:
		slope, offset := b.Slope, b.Offset
		return autodiff.GonumFunc(func(x dual.Number) dual.Number {
			y := dual.Scale(slope, x)
			y.Real += offset
			return y
		})
	case KindTanh:
		return autodiff.GonumFunc(func(x dual.Number) dual.Number {
			return dual.Tanh(dual.Scale(k, x))
		})
	case KindExp:
		return autodiff.GonumFunc(func(x dual.Number) dual.Number {
			return dual.Exp(dual.Scale(k, x))
		})
	case KindSin:
		return autodiff.GonumFunc(func(x dual.Number) dual.Number {
			return dual.Sin(dual.Scale(k, x))
		})
	}
	return nil
}
