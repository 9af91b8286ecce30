package project

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	projectservice "github.com/thenoetrevino/huddle/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project. New projects start at 0% in Planning.

Examples:
  # Simple project (human-readable output)
  huddle project create --name="Backend API" --description="REST API for the mobile app"

  # JSON output for agents
  huddle project create --name="Backend API" --description="REST API for the mobile app" --json

  # Quiet mode for bash capture
  PROJECT_ID=$(huddle project create --name="Backend API" --description="REST API for the mobile app" --quiet)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runCreate(cmd))
		},
	}

	// Required flags
	cmd.Flags().String("name", "", "Project name, 3-100 characters (required)")
	cmd.Flags().String("description", "", "Project description, 10-500 characters (required)")
	for _, name := range []string{"name", "description"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	// Optional flags
	cmd.Flags().String("priority", "Medium", "Priority: Low, Medium or High")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		priority, _ := cmd.Flags().GetString("priority")

		project, err := c.App.ProjectService.CreateProject(ctx, projectservice.CreateProjectRequest{
			Name:        name,
			Description: description,
			Priority:    priority,
		})
		if err != nil {
			return err
		}

		return f.Success(projectResult{Project: project, verb: "created"})
	}
}
