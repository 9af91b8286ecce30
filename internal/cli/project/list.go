package project

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
)

// ListCmd returns the project list subcommand
func ListCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long:  "List all projects, newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runList)
		},
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
	projects, err := c.App.ProjectService.ListProjects(ctx)
	if err != nil {
		return err
	}
	return f.Success(projectList(projects))
}
