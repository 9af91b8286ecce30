// Package member holds all cli commands related to team members
//
// e.g., huddle member ...
package member

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	"github.com/thenoetrevino/huddle/internal/models"
	memberservice "github.com/thenoetrevino/huddle/internal/services/member"
)

// MemberCmd returns the member parent command
func MemberCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "member",
		Aliases: []string{"team"},
		Short:   "Manage team members",
	}

	cmd.AddCommand(CreateCmd(open))
	cmd.AddCommand(ListCmd(open))
	cmd.AddCommand(ShowCmd(open))
	cmd.AddCommand(UpdateCmd(open))
	cmd.AddCommand(DeleteCmd(open))

	return cmd
}

// memberResult is the output of commands that return a single member
type memberResult struct {
	models.Member
	verb string
}

func (r memberResult) GetID() int {
	return r.ID.ToInt()
}

func (r memberResult) String() string {
	return fmt.Sprintf("✓ Member '%s' %s (ID: %d)\n  %s · %s · %s\n",
		r.Name, r.verb, r.ID, r.Role, r.Department, r.Status)
}

// memberList is the output of member list
type memberList []models.Member

func (l memberList) GetIDs() []int {
	ids := make([]int, 0, len(l))
	for _, m := range l {
		ids = append(ids, m.ID.ToInt())
	}
	return ids
}

func (l memberList) String() string {
	if len(l) == 0 {
		return "No members found\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d members:\n\n", len(l))
	for _, m := range l {
		fmt.Fprintf(&b, "  [%d] %s <%s>  %s  %s  %s\n",
			m.ID, m.Name, m.Email, m.Role, m.Department, m.Status)
	}
	return b.String()
}

func idFlag(cmd *cobra.Command) {
	cmd.Flags().Int("id", 0, "Member ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
}

// formFlags registers the member form fields shared by create and update
func formFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Full name, 2-100 characters")
	cmd.Flags().String("email", "", "Email address, unique across the team")
	cmd.Flags().String("role", "", "Role: Developer, Designer, Manager, Analyst or QA")
	cmd.Flags().String("department", "", "Department, e.g. IT or Marketing")
	cmd.Flags().String("phone", "", "Phone number, at least 10 characters")
	cmd.Flags().String("location", "", "City or office")
	cmd.Flags().String("status", "Active", "Availability: Active, Inactive or Vacation")
	cmd.Flags().Float64("salary", 0, "Yearly salary")
	cmd.Flags().String("skills", "", "Comma separated skills")
}

// applyForm copies every changed form flag onto req
func applyForm(cmd *cobra.Command, req *memberservice.CreateMemberRequest) {
	fields := map[string]*string{
		"name":       &req.Name,
		"email":      &req.Email,
		"role":       &req.Role,
		"department": &req.Department,
		"phone":      &req.Phone,
		"location":   &req.Location,
		"status":     &req.Status,
		"skills":     &req.Skills,
	}
	for name, dst := range fields {
		if v := cli.StringFlagIfChanged(cmd, name); v != nil {
			*dst = *v
		}
	}
	if cmd.Flags().Changed("salary") {
		salary, _ := cmd.Flags().GetFloat64("salary")
		req.Salary = &salary
	}
}

// requestFrom turns an existing member back into a form, the starting point of an update
func requestFrom(m models.Member) memberservice.CreateMemberRequest {
	return memberservice.CreateMemberRequest{
		Name:       m.Name,
		Email:      m.Email,
		Role:       string(m.Role),
		Department: m.Department,
		Phone:      m.Phone,
		Location:   m.Location,
		Status:     string(m.Status),
		Salary:     m.Salary,
		Skills:     strings.Join(m.Skills, ", "),
	}
}
