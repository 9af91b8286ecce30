package member

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	memberservice "github.com/thenoetrevino/huddle/internal/services/member"
)

// ListCmd returns the member list subcommand
func ListCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List team members",
		Long: `List team members, optionally filtered.

Examples:
  huddle member list --query=react        # name, email or skill
  huddle member list --role=developer --department=IT
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runList(cmd))
		},
	}

	cmd.Flags().String("query", "", "Match name, email or skill (case insensitive)")
	cmd.Flags().String("role", "", "Only members with this role")
	cmd.Flags().String("department", "", "Only members of this department")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		query, _ := cmd.Flags().GetString("query")
		role, _ := cmd.Flags().GetString("role")
		department, _ := cmd.Flags().GetString("department")

		members, err := c.App.MemberService.ListMembers(ctx, memberservice.Filter{
			Query:      query,
			Role:       role,
			Department: department,
		})
		if err != nil {
			return err
		}
		return f.Success(memberList(members))
	}
}
