package models

import (
	"strings"
	"time"

	"github.com/thenoetrevino/huddle/internal/types"
)

// Project is a tracked piece of work with a progress bar and an assigned crew.
// Projects are the top-level unit shown on the dashboard.
type Project struct {
	ID                types.ProjectID  `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Progress          int              `json:"progress"`
	Status            ProjectStatus    `json:"status"`
	Priority          Priority         `json:"priority"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
	AssignedMemberIDs []types.MemberID `json:"assignedMemberIds"`
}

// ProjectStatus is the lifecycle stage of a project
type ProjectStatus string

const (
	StatusPlanning      ProjectStatus = "Planning"
	StatusDesign        ProjectStatus = "Design"
	StatusDevelopment   ProjectStatus = "Development"
	StatusInDevelopment ProjectStatus = "InDevelopment"
	StatusTesting       ProjectStatus = "Testing"
	StatusCompleted     ProjectStatus = "Completed"
)

// ProjectStatuses lists every status in lifecycle order
var ProjectStatuses = []ProjectStatus{
	StatusPlanning,
	StatusDesign,
	StatusDevelopment,
	StatusInDevelopment,
	StatusTesting,
	StatusCompleted,
}

// Valid reports whether s is one of the known statuses
func (s ProjectStatus) Valid() bool {
	for _, known := range ProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// StatusForProgress maps a progress percentage to the status the project must carry.
// Design is never produced here; it only exists on seeded or imported data.
func StatusForProgress(progress int) ProjectStatus {
	switch {
	case progress >= MaxProgress:
		return StatusCompleted
	case progress >= 80:
		return StatusTesting
	case progress >= 20:
		return StatusInDevelopment
	case progress > 0:
		return StatusDevelopment
	default:
		return StatusPlanning
	}
}

// ClampProgress bounds p to [MinProgress, MaxProgress]
func ClampProgress(p int) int {
	return max(MinProgress, min(MaxProgress, p))
}

// Priority is the urgency of a project
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the priorities from least to most urgent
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority resolves a user supplied priority, ignoring case
func ParsePriority(s string) (Priority, bool) {
	s = strings.TrimSpace(s)
	for _, p := range Priorities {
		if strings.EqualFold(s, string(p)) {
			return p, true
		}
	}
	return "", false
}

// HasMember reports whether the member is assigned to the project
func (p *Project) HasMember(id types.MemberID) bool {
	for _, m := range p.AssignedMemberIDs {
		if m == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never share the assignment slice
func (p Project) Clone() Project {
	p.AssignedMemberIDs = append([]types.MemberID{}, p.AssignedMemberIDs...)
	return p
}
