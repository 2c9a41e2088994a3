package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/piecewise/internal/logger"
	"github.com/born-ml/piecewise/internal/parallel"
)

type row struct {
	x, value, derivative float64
}

func tableCmd() *cobra.Command {
	var fn functionFlags
	var from, to float64
	var steps, workers int

	c := &cobra.Command{
		Use:   "table",
		Short: "Print value and smoothed derivative over a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := fn.resolve()
			if err != nil {
				return err
			}
			xs, err := grid(from, to, steps)
			if err != nil {
				return err
			}

			logger.L().Debug("table.start", "function", p.String(), "points", len(xs))

			rows := parallel.Map(xs, func(x float64) row {
				return row{x: x, value: p.Eval(x), derivative: p.SmoothedDerivative(x)}
			}, workerConfig(workers))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%12s %16s %16s\n", "x", "value", "derivative")
			for _, r := range rows {
				fmt.Fprintf(out, "%12.6g %16.9g %16.9g\n", r.x, r.value, r.derivative)
			}
			return nil
		},
	}

	fn.register(c)
	c.Flags().Float64Var(&from, "from", -2, "first x")
	c.Flags().Float64Var(&to, "to", 2, "last x")
	c.Flags().IntVar(&steps, "steps", 9, "number of points")
	c.Flags().IntVar(&workers, "workers", 0, "evaluation goroutines (0 = one per CPU)")
	return c
}

// workerConfig maps a --workers value to a parallel.Config.
func workerConfig(workers int) parallel.Config {
	cfg := parallel.DefaultConfig()
	if workers > 0 {
		cfg.NumWorkers = workers
		cfg.Enabled = workers > 1
	}
	return cfg
}
