// Package stats derives dashboard aggregates from the current projects and
// members. Everything here is a pure function of its arguments.
package stats

import (
	"maps"
	"slices"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/thenoetrevino/huddle/internal/models"
)

// ProjectStats summarizes the project collection
type ProjectStats struct {
	Total           int
	ByStatus        map[models.ProjectStatus]int
	AverageProgress int
	Completed       int
}

// MemberStats summarizes the team
type MemberStats struct {
	Total               int
	ByRole              map[models.Role]int
	ByDepartment        map[string]int
	Active              int
	AverageTenureMonths int
	// Departments lists the departments present, sorted by name
	Departments []string
}

// Projects computes the project aggregates
func Projects(ps []models.Project) ProjectStats {
	out := ProjectStats{
		Total:    len(ps),
		ByStatus: make(map[models.ProjectStatus]int),
	}
	progress := make(stats.Float64Data, 0, len(ps))
	for _, p := range ps {
		out.ByStatus[p.Status]++
		if p.Status == models.StatusCompleted {
			out.Completed++
		}
		progress = append(progress, float64(p.Progress))
	}
	out.AverageProgress = roundedMean(progress)
	return out
}

// Members computes the member aggregates. Tenure is measured up to now.
func Members(ms []models.Member, now time.Time) MemberStats {
	out := MemberStats{
		Total:        len(ms),
		ByRole:       make(map[models.Role]int),
		ByDepartment: make(map[string]int),
	}
	tenure := make(stats.Float64Data, 0, len(ms))
	for _, m := range ms {
		out.ByRole[m.Role]++
		out.ByDepartment[m.Department]++
		if m.Status == models.MemberActive {
			out.Active++
		}
		tenure = append(tenure, float64(MonthsBetween(now, m.JoinDate)))
	}
	out.AverageTenureMonths = roundedMean(tenure)
	out.Departments = slices.Sorted(maps.Keys(out.ByDepartment))
	return out
}

// MonthsBetween counts the whole calendar months from join to now. A month is
// complete once the day of month reaches the join day. Never negative.
func MonthsBetween(now, join time.Time) int {
	if now.Before(join) {
		return 0
	}
	months := (now.Year()-join.Year())*12 + int(now.Month()) - int(join.Month())
	if now.Day() < join.Day() {
		months--
	}
	return max(months, 0)
}

// Percentage returns round(value/total*100), or 0 when total is 0
func Percentage(value, total float64) int {
	if total == 0 {
		return 0
	}
	return round(value / total * 100)
}

// TeamScore is the 0-100 dashboard health score: up to 40 points for average
// progress, 30 for the share of active members and 30 for how evenly projects
// are spread over the team. Zero when either collection is empty.
func TeamScore(ps []models.Project, ms []models.Member) int {
	if len(ps) == 0 || len(ms) == 0 {
		return 0
	}

	progress := make(stats.Float64Data, 0, len(ps))
	for _, p := range ps {
		progress = append(progress, float64(p.Progress))
	}
	avg, _ := progress.Mean()

	active := 0
	for _, m := range ms {
		if m.Status == models.MemberActive {
			active++
		}
	}

	perMember := float64(len(ps)) / float64(len(ms))
	distribution := 0.5
	switch {
	case perMember <= 2:
		distribution = 1
	case perMember <= 4:
		distribution = 0.8
	}

	score := avg/100*40 + float64(active)/float64(len(ms))*30 + distribution*30
	return round(score)
}

func roundedMean(data stats.Float64Data) int {
	if data.Len() == 0 {
		return 0
	}
	mean, err := data.Mean()
	if err != nil {
		return 0
	}
	return round(mean)
}

func round(x float64) int {
	r, err := stats.Round(x, 0)
	if err != nil {
		return 0
	}
	return int(r)
}
