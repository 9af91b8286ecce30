package project

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/render"
	"github.com/thenoetrevino/huddle/internal/types"
)

// ShowCmd returns the project show subcommand
func ShowCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a project with its team",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runShow(cmd))
		},
	}

	idFlag(cmd)
	cmd.Flags().Int("width", 80, "Wrap width of the rendered detail")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

// showResult is a project together with the members assigned to it
type showResult struct {
	Project models.Project  `json:"project"`
	Members []models.Member `json:"members"`
}

func (r showResult) GetID() int {
	return r.Project.ID.ToInt()
}

func runShow(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		id, _ := cmd.Flags().GetInt("id")
		width, _ := cmd.Flags().GetInt("width")

		project, err := c.App.ProjectService.GetProject(ctx, types.ProjectID(id))
		if err != nil {
			return err
		}
		members, err := c.App.ProjectService.AssignedMembers(ctx, project.ID)
		if err != nil {
			return err
		}

		if f.Quiet || f.JSON {
			return f.Success(showResult{Project: project, Members: members})
		}

		r := render.New(c.Config.ColorScheme, render.WithMarkdownStyle(cli.MarkdownStyle(cmd.OutOrStdout())))
		detail, err := r.ProjectDetail(render.NewProjectCard(project, members), width)
		if err != nil {
			return fmt.Errorf("failed to render project: %w", err)
		}
		_, err = io.WriteString(cmd.OutOrStdout(), detail)
		return err
	}
}
