// Package report holds the read-only cli commands that summarize the dashboard
//
// e.g., huddle stats, huddle productivity, huddle metrics
package report

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/huddle/internal/app"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/render"
	"github.com/thenoetrevino/huddle/internal/stats"
)

// chartWidth is the bar width of the plain text charts
const chartWidth = 30

// statsReport is the output of huddle stats
type statsReport struct {
	Projects  projectSummary `json:"projects"`
	Members   memberSummary  `json:"members"`
	TeamScore int            `json:"teamScore"`

	charts []render.Chart
}

type projectSummary struct {
	Total           int                          `json:"total"`
	Completed       int                          `json:"completed"`
	AverageProgress int                          `json:"averageProgress"`
	ByStatus        map[models.ProjectStatus]int `json:"byStatus"`
}

type memberSummary struct {
	Total               int                 `json:"total"`
	Active              int                 `json:"active"`
	AverageTenureMonths int                 `json:"averageTenureMonths"`
	ByRole              map[models.Role]int `json:"byRole"`
	ByDepartment        map[string]int      `json:"byDepartment"`
}

func newStatsReport(d app.Dashboard) statsReport {
	return statsReport{
		Projects: projectSummary{
			Total:           d.ProjectStats.Total,
			Completed:       d.ProjectStats.Completed,
			AverageProgress: d.ProjectStats.AverageProgress,
			ByStatus:        d.ProjectStats.ByStatus,
		},
		Members: memberSummary{
			Total:               d.MemberStats.Total,
			Active:              d.MemberStats.Active,
			AverageTenureMonths: d.MemberStats.AverageTenureMonths,
			ByRole:              d.MemberStats.ByRole,
			ByDepartment:        d.MemberStats.ByDepartment,
		},
		TeamScore: d.TeamScore,
		charts: []render.Chart{
			render.StatusChart(d.ProjectStats),
			render.RoleChart(d.MemberStats),
			render.DepartmentChart(d.MemberStats),
		},
	}
}

// String renders the summary lines followed by the three charts
func (r statsReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Projects:     %d (%d completed, average progress %d%%)\n",
		r.Projects.Total, r.Projects.Completed, r.Projects.AverageProgress)
	fmt.Fprintf(&b, "Members:      %d (%d active, average tenure %d months)\n",
		r.Members.Total, r.Members.Active, r.Members.AverageTenureMonths)
	fmt.Fprintf(&b, "Team score:   %d/100\n", r.TeamScore)

	for _, chart := range r.charts {
		b.WriteString("\n")
		b.WriteString(render.ChartText(chart, chartWidth))
	}
	return b.String()
}

// productivityReport is the output of huddle productivity
type productivityReport struct {
	Hours        float64    `json:"hours"`
	Tasks        int        `json:"tasks"`
	TasksPerHour float64    `json:"tasksPerHour"`
	Score        float64    `json:"score"`
	Efficiency   int        `json:"efficiency"`
	Tier         stats.Tier `json:"tier"`
	Label        string     `json:"label"`
}

func newProductivityReport(hours float64, tasks int) productivityReport {
	res := stats.Productivity(hours, tasks)
	return productivityReport{
		Hours:        hours,
		Tasks:        tasks,
		TasksPerHour: res.TasksPerHour,
		Score:        res.Score,
		Efficiency:   res.Efficiency,
		Tier:         res.Tier,
		Label:        res.Tier.Label(),
	}
}

func (r productivityReport) result() stats.ProductivityResult {
	return stats.ProductivityResult{
		TasksPerHour: r.TasksPerHour,
		Score:        r.Score,
		Tier:         r.Tier,
		Efficiency:   r.Efficiency,
	}
}

func (r productivityReport) String() string {
	if r.Tier == stats.TierInsufficientInput {
		return r.Label + "\n"
	}
	return fmt.Sprintf("Tasks per hour: %.2f\nScore:          %.1f/10\nEfficiency:     %s %d%%\n%s\n",
		r.TasksPerHour, r.Score, render.ProgressBar(r.Efficiency, 20), r.Efficiency, r.Label)
}
