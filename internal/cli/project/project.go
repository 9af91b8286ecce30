// Package project holds all cli commands related to projects
//
// e.g., huddle project ...
package project

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/cli"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/render"
)

// ProjectCmd returns the project parent command
func ProjectCmd(open cli.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(CreateCmd(open))
	cmd.AddCommand(ListCmd(open))
	cmd.AddCommand(ShowCmd(open))
	cmd.AddCommand(ProgressCmd(open))
	cmd.AddCommand(UpdateCmd(open))
	cmd.AddCommand(AssignCmd(open))
	cmd.AddCommand(UnassignCmd(open))
	cmd.AddCommand(DeleteCmd(open))

	return cmd
}

// projectResult is the output of commands that return a single project
type projectResult struct {
	models.Project
	verb string
}

func (r projectResult) GetID() int {
	return r.ID.ToInt()
}

func (r projectResult) String() string {
	return fmt.Sprintf("✓ Project '%s' %s (ID: %d)\n  Progress: %d%% (%s)  Priority: %s\n",
		r.Name, r.verb, r.ID, r.Progress, render.StatusLabel(r.Status), r.Priority)
}

// projectList is the output of project list
type projectList []models.Project

func (l projectList) GetIDs() []int {
	ids := make([]int, 0, len(l))
	for _, p := range l {
		ids = append(ids, p.ID.ToInt())
	}
	return ids
}

func (l projectList) String() string {
	if len(l) == 0 {
		return "No projects found\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d projects:\n\n", len(l))
	for _, p := range l {
		fmt.Fprintf(&b, "  [%d] %s  %s %3d%%  %s  %s\n",
			p.ID, p.Name, render.ProgressBar(p.Progress, 10), p.Progress,
			render.StatusLabel(p.Status), p.Priority)
	}
	return b.String()
}

func idFlag(cmd *cobra.Command) {
	cmd.Flags().Int("id", 0, "Project ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
}
