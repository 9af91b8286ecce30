package report

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
)

// MetricsCmd returns the metrics command
func MetricsCmd(open cli.Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Dump the process metrics in prometheus text format",
		Long: `Dump the counters collected while opening the dashboard: mutations,
saves and load fallbacks. Useful to check a data directory for records
that had to be replaced by sample data.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runMetrics(cmd))
		},
	}
}

func runMetrics(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		return c.App.Metrics.WriteText(cmd.OutOrStdout())
	}
}
