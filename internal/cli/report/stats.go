package report

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
)

// StatsCmd returns the stats command
func StatsCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize projects and the team",
		Long: `Print the dashboard statistics: project totals and average progress,
team size and tenure, the team score and the status, role and department
breakdowns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runStats)
		},
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runStats(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
	dashboard, err := c.App.Dashboard(ctx)
	if err != nil {
		return err
	}
	return f.Success(newStatsReport(dashboard))
}
