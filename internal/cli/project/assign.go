package project

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	"github.com/thenoetrevino/huddle/internal/types"
)

// AssignCmd returns the project assign subcommand
func AssignCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Set the members assigned to a project",
		Long: `Replace the project's assignment list with --members. Unknown IDs are
ignored and duplicates collapse; the member side is kept in sync.

Examples:
  huddle project assign --id=1 --members=1,3
  huddle project assign --id=1 --members=""    # unassign everyone
  huddle project assign --id=1 --add=4         # add a single member
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runAssign(cmd))
		},
	}

	idFlag(cmd)
	cmd.Flags().String("members", "", "Comma separated member IDs")
	cmd.Flags().Int("add", 0, "Add one member without touching the others")
	cmd.MarkFlagsMutuallyExclusive("members", "add")
	cmd.MarkFlagsOneRequired("members", "add")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAssign(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		id, _ := cmd.Flags().GetInt("id")
		projectID := types.ProjectID(id)

		if cmd.Flags().Changed("add") {
			memberID, _ := cmd.Flags().GetInt("add")
			if err := c.App.ProjectService.AddMember(ctx, projectID, types.MemberID(memberID)); err != nil {
				return err
			}
		} else {
			raw, _ := cmd.Flags().GetString("members")
			ids, err := cli.ParseIDList(raw)
			if err != nil {
				return cli.Usage("%v", err)
			}
			if _, err := c.App.ProjectService.Assign(ctx, projectID, ids); err != nil {
				return err
			}
		}

		project, err := c.App.ProjectService.GetProject(ctx, projectID)
		if err != nil {
			return err
		}
		return f.Success(projectResult{Project: project, verb: "assigned"})
	}
}

// UnassignCmd returns the project unassign subcommand
func UnassignCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unassign",
		Short: "Remove one member from a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runUnassign(cmd))
		},
	}

	idFlag(cmd)
	cmd.Flags().Int("member", 0, "Member ID (required)")
	if err := cmd.MarkFlagRequired("member"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUnassign(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		id, _ := cmd.Flags().GetInt("id")
		memberID, _ := cmd.Flags().GetInt("member")

		if err := c.App.ProjectService.RemoveMember(ctx, types.ProjectID(id), types.MemberID(memberID)); err != nil {
			return err
		}

		project, err := c.App.ProjectService.GetProject(ctx, types.ProjectID(id))
		if err != nil {
			return err
		}
		return f.Success(projectResult{Project: project, verb: fmt.Sprintf("no longer has member %d", memberID)})
	}
}
