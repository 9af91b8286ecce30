package report

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	"github.com/thenoetrevino/huddle/internal/render"
)

// ProductivityCmd returns the productivity calculator command
func ProductivityCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "productivity",
		Short: "Score tasks completed per hour worked",
		Long: `Score productivity on a 0-10 scale from the hours worked and the tasks
completed. Two tasks per hour or more is a perfect score.

Examples:
  huddle productivity --hours=8 --tasks=20
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runProductivity(cmd))
		},
	}

	cmd.Flags().Float64("hours", 0, "Hours worked (required)")
	cmd.Flags().Int("tasks", 0, "Tasks completed")
	if err := cmd.MarkFlagRequired("hours"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runProductivity(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		hours, _ := cmd.Flags().GetFloat64("hours")
		tasks, _ := cmd.Flags().GetInt("tasks")

		report := newProductivityReport(hours, tasks)
		if f.JSON || f.Quiet || !cli.IsTerminal(cmd.OutOrStdout()) {
			return f.Success(report)
		}

		panel := render.New(c.Config.ColorScheme).ProductivityPanel(report.result())
		_, err := fmt.Fprintln(cmd.OutOrStdout(), panel)
		return err
	}
}
