package project

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	"github.com/thenoetrevino/huddle/internal/types"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a project",
		Long:  "Delete a project by ID (asks for confirmation unless --yes). Members lose the assignment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runDelete(cmd))
		},
	}

	idFlag(cmd)

	// Optional flags
	cmd.Flags().Bool("yes", false, "Skip confirmation")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		id, _ := cmd.Flags().GetInt("id")
		yes, _ := cmd.Flags().GetBool("yes")

		project, err := c.App.ProjectService.GetProject(ctx, types.ProjectID(id))
		if err != nil {
			return err
		}

		token, err := c.App.ProjectService.RequestDelete(ctx, project.ID)
		if err != nil {
			return err
		}

		// Ask for confirmation unless --yes
		if !yes {
			prompt := fmt.Sprintf("Delete project #%d: '%s'? (y/N): ", project.ID, project.Name)
			if !cli.Confirm(cmd, prompt) {
				c.App.ProjectService.CancelDelete(token)
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
		}

		deleted, err := c.App.ProjectService.ConfirmDelete(ctx, token)
		if err != nil {
			return err
		}
		return f.Success(projectResult{Project: deleted, verb: "deleted"})
	}
}
