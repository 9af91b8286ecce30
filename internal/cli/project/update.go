package project

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	projectservice "github.com/thenoetrevino/huddle/internal/services/project"
	"github.com/thenoetrevino/huddle/internal/types"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit a project's name, description or priority",
		Long: `Edit a project. Only the flags given are changed.

Examples:
  huddle project update --id=2 --priority=High
  huddle project update --id=2 --name="Mobile Storefront"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runUpdate(cmd))
		},
	}

	idFlag(cmd)
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("priority", "", "New priority: Low, Medium or High")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		id, _ := cmd.Flags().GetInt("id")

		req := projectservice.UpdateProjectRequest{
			ID:          types.ProjectID(id),
			Name:        cli.StringFlagIfChanged(cmd, "name"),
			Description: cli.StringFlagIfChanged(cmd, "description"),
			Priority:    cli.StringFlagIfChanged(cmd, "priority"),
		}
		if req.Name == nil && req.Description == nil && req.Priority == nil {
			return cli.Usage("nothing to update: pass --name, --description or --priority")
		}

		project, err := c.App.ProjectService.UpdateProject(ctx, req)
		if err != nil {
			return err
		}
		return f.Success(projectResult{Project: project, verb: "updated"})
	}
}
