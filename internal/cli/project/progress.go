package project

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/types"
)

// ProgressCmd returns the project progress subcommand
func ProgressCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Move a project's progress",
		Long: `Add --delta percentage points to a project's progress. The result is
clamped to 0-100 and the status follows the new value.

Examples:
  huddle project progress --id=1            # +10%
  huddle project progress --id=1 --delta=-10
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runProgress(cmd))
		},
	}

	idFlag(cmd)
	cmd.Flags().Int("delta", models.ProgressStep, "Percentage points to add (negative to subtract)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runProgress(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		id, _ := cmd.Flags().GetInt("id")
		delta, _ := cmd.Flags().GetInt("delta")

		project, err := c.App.ProjectService.UpdateProgress(ctx, types.ProjectID(id), delta)
		if err != nil {
			return err
		}
		return f.Success(projectResult{Project: project, verb: "updated"})
	}
}
