package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/piecewise/internal/config"
	"github.com/born-ml/piecewise/internal/logger"
	"github.com/born-ml/piecewise/internal/piecewise"
)

// Presets selectable with --preset.
const (
	presetStep  = "step"
	presetHinge = "hinge"
)

// functionFlags selects the function a command works on: either a preset
// or a named entry of a YAML config file.
type functionFlags struct {
	preset   string
	path     string
	name     string
	split    float64
	b1       float64
	b2       float64
	low      float64
	high     float64
	centered bool
}

func (f *functionFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.preset, "preset", "p", "", "preset function: step or hinge")
	c.Flags().StringVarP(&f.path, "config", "c", "", "YAML file with function definitions")
	c.Flags().StringVarP(&f.name, "name", "n", "", "function name in the config file")
	c.Flags().Float64Var(&f.split, "split", 0, "split point (presets only)")
	c.Flags().Float64Var(&f.b1, "b1", 1, "jump smoothing width (presets only)")
	c.Flags().Float64Var(&f.b2, "b2", 0, "derivative smoothing width, defaults to b1 (presets only)")
	c.Flags().Float64Var(&f.low, "low", 0, "left value of the step preset")
	c.Flags().Float64Var(&f.high, "high", 1, "right value of the step preset")
	c.Flags().BoolVar(&f.centered, "centered", false, "centre the jump correction on the split (presets only)")

	c.MarkFlagsMutuallyExclusive("preset", "config")
	c.MarkFlagsRequiredTogether("config", "name")
}

func (f *functionFlags) resolve() (*piecewise.Piecewise[float64], error) {
	switch {
	case f.path != "":
		file, err := config.Load(f.path)
		if err != nil {
			return nil, err
		}
		return file.Build(f.name)
	case f.preset != "":
		return f.buildPreset()
	default:
		return nil, errors.New("one of --preset or --config is required")
	}
}

func (f *functionFlags) buildPreset() (*piecewise.Piecewise[float64], error) {
	opts := []piecewise.Option[float64]{piecewise.WithWidth(f.b1)}
	if f.b2 != 0 {
		opts = append(opts, piecewise.WithDiffWidth(f.b2))
	}
	if f.centered {
		opts = append(opts, piecewise.WithCenteredCorrection[float64]())
	}

	logger.L().Debug("preset.build", "preset", f.preset, "split", f.split, "b1", f.b1, "b2", f.b2)

	switch f.preset {
	case presetStep:
		opts = append(opts, piecewise.WithSplit(f.split))
		return piecewise.Step(f.low, f.high, opts...)
	case presetHinge:
		return piecewise.Hinge(f.split, opts...)
	default:
		return nil, fmt.Errorf("unknown preset %q (want %s or %s)", f.preset, presetStep, presetHinge)
	}
}

// grid returns steps evenly spaced points from a to b inclusive.
func grid(a, b float64, steps int) ([]float64, error) {
	if steps < 2 {
		return nil, fmt.Errorf("steps must be at least 2, got %d", steps)
	}
	if !(b > a) {
		return nil, fmt.Errorf("empty range [%v, %v]", a, b)
	}
	xs := make([]float64, steps)
	h := (b - a) / float64(steps-1)
	for i := range xs {
		xs[i] = a + float64(i)*h
	}
	xs[steps-1] = b
	return xs, nil
}
