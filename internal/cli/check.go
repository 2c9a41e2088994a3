package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/piecewise/internal/logger"
	"github.com/born-ml/piecewise/internal/parallel"
	"github.com/born-ml/piecewise/internal/piecewise"
)

// checkResult summarises a comparison against finite differences.
type checkResult struct {
	points  int
	skipped int
	maxErr  float64
	worstX  float64
}

func checkCmd() *cobra.Command {
	var fn functionFlags
	var from, to, margin, tol float64
	var steps, workers int

	c := &cobra.Command{
		Use:   "check",
		Short: "Compare the smoothed derivative with finite differences away from the split",
		Long: "Outside the smoothing region the smoothed derivative must match the\n" +
			"derivative of the value. Points closer than margin·max(b1, b2) to the\n" +
			"split or to the origin are skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := fn.resolve()
			if err != nil {
				return err
			}
			xs, err := grid(from, to, steps)
			if err != nil {
				return err
			}

			res := compare(p, xs, margin, workerConfig(workers))
			if res.points == 0 {
				return fmt.Errorf("all %d points fall inside the smoothing region", res.skipped)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "points=%d skipped=%d max_abs_err=%.3g at x=%.6g\n",
				res.points, res.skipped, res.maxErr, res.worstX)
			if !(res.maxErr <= tol) {
				return fmt.Errorf("max error %.3g exceeds tolerance %.3g", res.maxErr, tol)
			}
			return nil
		},
	}

	fn.register(c)
	c.Flags().Float64Var(&from, "from", -50, "first x")
	c.Flags().Float64Var(&to, "to", 50, "last x")
	c.Flags().IntVar(&steps, "steps", 101, "number of points")
	c.Flags().Float64Var(&margin, "margin", 20, "skip radius around split and origin, in widths")
	c.Flags().Float64Var(&tol, "tol", 1e-6, "maximum allowed absolute error")
	c.Flags().IntVar(&workers, "workers", 0, "evaluation goroutines (0 = one per CPU)")
	return c
}

func compare(p *piecewise.Piecewise[float64], xs []float64, margin float64, cfg parallel.Config) checkResult {
	width := math.Max(1/p.BetaAmplitude(), 1/p.BetaDiff())
	radius := margin * width

	// -1 marks a skipped point.
	errs := parallel.Map(xs, func(x float64) float64 {
		if math.Abs(x-p.Split()) < radius || math.Abs(x) < radius {
			return -1
		}
		numerical := fd.Derivative(p.Eval, x, &fd.Settings{Formula: fd.Central})
		return math.Abs(numerical - p.SmoothedDerivative(x))
	}, cfg)

	var res checkResult
	for i, e := range errs {
		if e < 0 {
			res.skipped++
			continue
		}
		logger.L().Debug("check.point", "x", xs[i], "abs_err", e)

		res.points++
		if res.points == 1 || e > res.maxErr || math.IsNaN(e) {
			res.maxErr, res.worstX = e, xs[i]
		}
	}
	return res
}
