package member

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	"github.com/thenoetrevino/huddle/internal/types"
)

// DeleteCmd returns the member delete subcommand
func DeleteCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a team member",
		Long:  "Remove a team member by ID (asks for confirmation unless --yes). The member is dropped from every project.",
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

		member, err := c.App.MemberService.GetMember(ctx, types.MemberID(id))
		if err != nil {
			return err
		}

		token, err := c.App.MemberService.RequestDelete(ctx, member.ID)
		if err != nil {
			return err
		}

		if !yes {
			prompt := fmt.Sprintf("Remove member #%d: '%s'? (y/N): ", member.ID, member.Name)
			if !cli.Confirm(cmd, prompt) {
				c.App.MemberService.CancelDelete(token)
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
		}

		deleted, err := c.App.MemberService.ConfirmDelete(ctx, token)
		if err != nil {
			return err
		}
		return f.Success(memberResult{Member: deleted, verb: "deleted"})
	}
}
