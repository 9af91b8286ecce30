package models

import (
	"strings"
	"time"

	"github.com/thenoetrevino/huddle/internal/types"
)

// Member is a person on the team who can be assigned to projects
type Member struct {
	ID                 types.MemberID    `json:"id"`
	Name               string            `json:"name"`
	Email              string            `json:"email"`
	Role               Role              `json:"role"`
	Department         string            `json:"department"`
	Phone              string            `json:"phone,omitempty"`
	Location           string            `json:"location,omitempty"`
	Status             MemberStatus      `json:"status"`
	Skills             []string          `json:"skills"`
	Salary             *float64          `json:"salary,omitempty"`
	Avatar             string            `json:"avatar"`
	JoinDate           time.Time         `json:"joinDate"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
	AssignedProjectIDs []types.ProjectID `json:"assignedProjectIds"`
}

// Role is the job function of a member
type Role string

const (
	RoleDeveloper Role = "Developer"
	RoleDesigner  Role = "Designer"
	RoleManager   Role = "Manager"
	RoleAnalyst   Role = "Analyst"
	RoleQA        Role = "QA"
)

// Roles lists every known role
var Roles = []Role{RoleDeveloper, RoleDesigner, RoleManager, RoleAnalyst, RoleQA}

// ParseRole resolves a user supplied role, ignoring case.
// "Tester" is accepted as an alias of QA.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "tester") {
		return RoleQA, true
	}
	for _, r := range Roles {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

// MemberStatus is the availability of a member
type MemberStatus string

const (
	MemberActive   MemberStatus = "Active"
	MemberInactive MemberStatus = "Inactive"
	MemberVacation MemberStatus = "Vacation"
)

// MemberStatuses lists every availability state
var MemberStatuses = []MemberStatus{MemberActive, MemberInactive, MemberVacation}

// ParseMemberStatus resolves a user supplied status. Empty input means Active.
func ParseMemberStatus(s string) (MemberStatus, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MemberActive, true
	}
	for _, st := range MemberStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Departments are the well-known departments offered by the UI.
// Department is free-form, so this list is a suggestion only.
var Departments = []string{"IT", "Marketing", "Sales", "HR", "Finance"}

// HasProject reports whether the member is assigned to the project
func (m *Member) HasProject(id types.ProjectID) bool {
	for _, p := range m.AssignedProjectIDs {
		if p == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the member
func (m Member) Clone() Member {
	m.Skills = append([]string{}, m.Skills...)
	m.AssignedProjectIDs = append([]types.ProjectID{}, m.AssignedProjectIDs...)
	if m.Salary != nil {
		salary := *m.Salary
		m.Salary = &salary
	}
	return m
}

// Initials derives the avatar text from the first letter of each name token
func Initials(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(name) {
		r := []rune(token)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// ParseSkills splits comma separated skills, trimming blanks and dropping empties
func ParseSkills(raw string) []string {
	skills := []string{}
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
