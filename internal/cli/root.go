// Package cli implements the piecewise command-line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/born-ml/piecewise/internal/logger"
)

const version = "v0.1.0-dev"

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var jsonLogs bool

	cmd := &cobra.Command{
		Use:          "piecewise",
		Short:        "Inspect two-branch functions with smoothed derivatives",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Setup(logger.Config{
				Output: cmd.ErrOrStderr(),
				Debug:  debug,
				JSON:   jsonLogs,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "log as JSON instead of text")

	cmd.AddCommand(tableCmd())
	cmd.AddCommand(checkCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "piecewise %s\n", version)
		},
	}
}
