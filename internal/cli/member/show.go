package member

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/render"
	"github.com/thenoetrevino/huddle/internal/types"
)

// ShowCmd returns the member show subcommand
func ShowCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a team member with their projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, open, runShow(cmd))
		},
	}

	idFlag(cmd)

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

// showResult is a member together with the projects they work on
type showResult struct {
	Member   models.Member    `json:"member"`
	Projects []models.Project `json:"projects"`
}

func (r showResult) GetID() int {
	return r.Member.ID.ToInt()
}

func (r showResult) String() string {
	card := render.NewMemberCard(r.Member, r.Projects)

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s (ID: %d)\n", card.Avatar, card.Name, card.ID)
	fmt.Fprintf(&b, "  Email:      %s\n", card.Email)
	fmt.Fprintf(&b, "  Role:       %s\n", card.Role)
	fmt.Fprintf(&b, "  Department: %s\n", card.Department)
	if card.Location != "" {
		fmt.Fprintf(&b, "  Location:   %s\n", card.Location)
	}
	fmt.Fprintf(&b, "  Status:     %s\n", card.Status)
	fmt.Fprintf(&b, "  Joined:     %s\n", card.JoinDate.Format("2006-01-02"))
	if len(card.Skills) > 0 {
		fmt.Fprintf(&b, "  Skills:     %s\n", strings.Join(card.Skills, ", "))
	}

	if len(card.Projects) == 0 {
		b.WriteString("\nNo projects assigned\n")
		return b.String()
	}
	b.WriteString("\nProjects:\n")
	for _, name := range card.Projects {
		fmt.Fprintf(&b, "  - %s\n", name)
	}
	return b.String()
}

func runShow(cmd *cobra.Command) cli.RunFunc {
	return func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		id, _ := cmd.Flags().GetInt("id")

		member, err := c.App.MemberService.GetMember(ctx, types.MemberID(id))
		if err != nil {
			return err
		}
		projects, err := c.App.MemberService.Projects(ctx, member.ID)
		if err != nil {
			return err
		}
		return f.Success(showResult{Member: member, Projects: projects})
	}
}
