// Package render turns projects, members and statistics into the plain view
// models the dashboard shows, and draws them with lipgloss and glamour.
package render

import (
	"time"

	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/stats"
	"github.com/thenoetrevino/huddle/internal/types"
)

// ProjectCard is the display form of a project
type ProjectCard struct {
	ID          types.ProjectID
	Name        string
	Description string
	Progress    int
	Status      models.ProjectStatus
	Priority    models.Priority
	// Members holds the names of the assigned members that still exist
	Members   []string
	UpdatedAt time.Time
}

// MemberCard is the display form of a team member
type MemberCard struct {
	ID         types.MemberID
	Name       string
	Avatar     string
	Email      string
	Role       models.Role
	Department string
	Location   string
	Status     models.MemberStatus
	Skills     []string
	// Projects holds the names of the assigned projects that still exist
	Projects []string
	JoinDate time.Time
}

// Bar is one labelled value of a chart
type Bar struct {
	Label string
	Value int
}

// Chart is a titled list of bars drawn horizontally
type Chart struct {
	Title string
	Bars  []Bar
}

// Total sums every bar of the chart
func (c Chart) Total() int {
	total := 0
	for _, b := range c.Bars {
		total += b.Value
	}
	return total
}

// NewProjectCard builds the card of p, resolving member names from members
func NewProjectCard(p models.Project, members []models.Member) ProjectCard {
	byID := make(map[types.MemberID]string, len(members))
	for _, m := range members {
		byID[m.ID] = m.Name
	}

	names := []string{}
	for _, id := range p.AssignedMemberIDs {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}

	return ProjectCard{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Progress:    p.Progress,
		Status:      p.Status,
		Priority:    p.Priority,
		Members:     names,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProjectCards builds one card per project, keeping the collection order
func ProjectCards(ps []models.Project, members []models.Member) []ProjectCard {
	cards := make([]ProjectCard, 0, len(ps))
	for _, p := range ps {
		cards = append(cards, NewProjectCard(p, members))
	}
	return cards
}

// NewMemberCard builds the card of m, resolving project names from projects
func NewMemberCard(m models.Member, projects []models.Project) MemberCard {
	byID := make(map[types.ProjectID]string, len(projects))
	for _, p := range projects {
		byID[p.ID] = p.Name
	}

	names := []string{}
	for _, id := range m.AssignedProjectIDs {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}

	avatar := m.Avatar
	if avatar == "" {
		avatar = models.Initials(m.Name)
	}

	return MemberCard{
		ID:         m.ID,
		Name:       m.Name,
		Avatar:     avatar,
		Email:      m.Email,
		Role:       m.Role,
		Department: m.Department,
		Location:   m.Location,
		Status:     m.Status,
		Skills:     append([]string{}, m.Skills...),
		Projects:   names,
		JoinDate:   m.JoinDate,
	}
}

// MemberCards builds one card per member, keeping the collection order
func MemberCards(ms []models.Member, projects []models.Project) []MemberCard {
	cards := make([]MemberCard, 0, len(ms))
	for _, m := range ms {
		cards = append(cards, NewMemberCard(m, projects))
	}
	return cards
}

// StatusChart lists the project count per status in lifecycle order.
// Statuses nobody is in are left out.
func StatusChart(s stats.ProjectStats) Chart {
	chart := Chart{Title: "Projects by status"}
	for _, status := range models.ProjectStatuses {
		if n := s.ByStatus[status]; n > 0 {
			chart.Bars = append(chart.Bars, Bar{Label: StatusLabel(status), Value: n})
		}
	}
	return chart
}

// RoleChart lists the member count per role
func RoleChart(s stats.MemberStats) Chart {
	chart := Chart{Title: "Team by role"}
	for _, role := range models.Roles {
		if n := s.ByRole[role]; n > 0 {
			chart.Bars = append(chart.Bars, Bar{Label: string(role), Value: n})
		}
	}
	return chart
}

// DepartmentChart lists the member count per department, sorted by name
func DepartmentChart(s stats.MemberStats) Chart {
	chart := Chart{Title: "Team by department"}
	for _, dept := range s.Departments {
		chart.Bars = append(chart.Bars, Bar{Label: dept, Value: s.ByDepartment[dept]})
	}
	return chart
}

// StatusLabel is the human readable form of a project status
func StatusLabel(s models.ProjectStatus) string {
	switch s {
	case models.StatusPlanning:
		return "Planning"
	case models.StatusDesign:
		return "Design"
	case models.StatusDevelopment:
		return "Development"
	case models.StatusInDevelopment:
		return "In development"
	case models.StatusTesting:
		return "Testing"
	case models.StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
