package member

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	memberservice "github.com/thenoetrevino/huddle/internal/services/member"
)

// CreateCmd returns the member create subcommand
func CreateCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a team member",
		Long: `Add a team member. The avatar is derived from the name's initials.

Examples:
  huddle member create --name="Lucía Torres" --email=lucia@empresa.com --role=Analyst --department=Finance
  huddle member create --name="Lucía Torres" --email=lucia@empresa.com --role=QA --department=IT \
    --skills="Cypress, Playwright" --salary=52000 --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runCreate(cmd))
		},
	}

	formFlags(cmd)
	for _, name := range []string{"name", "email", "role", "department"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		req := memberservice.CreateMemberRequest{}
		applyForm(cmd, &req)

		member, err := c.App.MemberService.CreateMember(ctx, req)
		if err != nil {
			return err
		}
		return f.Success(memberResult{Member: member, verb: "created"})
	}
}
