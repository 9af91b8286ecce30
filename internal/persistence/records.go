package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/types"
)

// Record keys in the key-value store
const (
	ProjectsKey = "dashboard_projects"
	MembersKey  = "dashboard_team_members"
)

type projectsRecord struct {
	Projects  []models.Project `json:"projects"`
	NextID    types.ProjectID  `json:"nextId"`
	LastSaved time.Time        `json:"lastSaved"`
}

type membersRecord struct {
	Members   []models.Member `json:"members"`
	NextID    types.MemberID  `json:"nextId"`
	LastSaved time.Time       `json:"lastSaved"`
}

// decodeProjects accepts the current record shape and the bare array written by
// older versions of the dashboard.
func decodeProjects(data []byte) (projectsRecord, error) {
	var rec projectsRecord
	if isBareArray(data) {
		if err := json.Unmarshal(data, &rec.Projects); err != nil {
			return rec, err
		}
	} else if err := json.Unmarshal(data, &rec); err != nil {
		return rec, err
	}
	if rec.Projects == nil {
		return rec, fmt.Errorf("record has no projects array")
	}

	seen := make(map[types.ProjectID]bool, len(rec.Projects))
	for i := range rec.Projects {
		p := &rec.Projects[i]
		if p.ID <= 0 || seen[p.ID] {
			return rec, fmt.Errorf("invalid or duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
		p.Progress = models.ClampProgress(p.Progress)
		if !p.Status.Valid() {
			p.Status = models.StatusForProgress(p.Progress)
		}
		if priority, ok := models.ParsePriority(string(p.Priority)); ok {
			p.Priority = priority
		} else {
			p.Priority = models.PriorityMedium
		}
		if p.AssignedMemberIDs == nil {
			p.AssignedMemberIDs = []types.MemberID{}
		}
	}
	return rec, nil
}

func decodeMembers(data []byte) (membersRecord, error) {
	var rec membersRecord
	if isBareArray(data) {
		if err := json.Unmarshal(data, &rec.Members); err != nil {
			return rec, err
		}
	} else if err := json.Unmarshal(data, &rec); err != nil {
		return rec, err
	}
	if rec.Members == nil {
		return rec, fmt.Errorf("record has no members array")
	}

	seen := make(map[types.MemberID]bool, len(rec.Members))
	for i := range rec.Members {
		m := &rec.Members[i]
		if m.ID <= 0 || seen[m.ID] {
			return rec, fmt.Errorf("invalid or duplicate member id %d", m.ID)
		}
		seen[m.ID] = true
		if status, ok := models.ParseMemberStatus(string(m.Status)); ok {
			m.Status = status
		} else {
			m.Status = models.MemberActive
		}
		if role, ok := models.ParseRole(string(m.Role)); ok {
			m.Role = role
		}
		if m.Skills == nil {
			m.Skills = []string{}
		}
		if m.AssignedProjectIDs == nil {
			m.AssignedProjectIDs = []types.ProjectID{}
		}
	}
	return rec, nil
}

func isBareArray(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}
