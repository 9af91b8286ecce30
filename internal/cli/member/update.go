package member

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	memberservice "github.com/thenoetrevino/huddle/internal/services/member"
	"github.com/thenoetrevino/huddle/internal/types"
)

// UpdateCmd returns the member update subcommand
func UpdateCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit a team member",
		Long: `Edit a team member. Fields without a flag keep their current value;
assignments and the join date never change here.

Examples:
  huddle member update --id=4 --status=Active
  huddle member update --id=2 --role=Manager --department=Marketing
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runUpdate(cmd))
		},
	}

	idFlag(cmd)
	formFlags(cmd)

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		id, _ := cmd.Flags().GetInt("id")

		current, err := c.App.MemberService.GetMember(ctx, types.MemberID(id))
		if err != nil {
			return err
		}

		req := memberservice.UpdateMemberRequest{ID: current.ID, CreateMemberRequest: requestFrom(current)}
		applyForm(cmd, &req.CreateMemberRequest)

		member, err := c.App.MemberService.UpdateMember(ctx, req)
		if err != nil {
			return err
		}
		return f.Success(memberResult{Member: member, verb: "updated"})
	}
}
