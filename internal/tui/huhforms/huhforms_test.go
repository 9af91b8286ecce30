package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/services/member"
	"github.com/thenoetrevino/huddle/internal/services/project"
	"github.com/thenoetrevino/huddle/internal/types"
)

func TestInline_StripsCategory(t *testing.T) {
	assert.EqualError(t, inline(member.ErrInvalidEmail), "email address is not valid")
	assert.EqualError(t, inline(member.ErrDuplicateEmail), "a member with this email already exists")
	assert.NoError(t, inline(nil))
}

func TestTrimmed_ChecksWhatTheServiceSees(t *testing.T) {
	validate := trimmed(project.ValidateName)

	assert.NoError(t, validate("  Billing  "))
	err := validate("  AB  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project name must be between")
	assert.NotContains(t, err.Error(), "validation error")
}

func TestProjectValues_Requests(t *testing.T) {
	v := NewProjectValues()
	assert.Equal(t, "Medium", v.Priority)
	assert.True(t, v.Confirm)

	v.Name = " Billing Service "
	v.Description = " Invoices and reminders "
	create := v.CreateRequest()
	assert.Equal(t, "Billing Service", create.Name)
	assert.Equal(t, "Invoices and reminders", create.Description)

	update := v.UpdateRequest(7)
	assert.Equal(t, types.ProjectID(7), update.ID)
	require.NotNil(t, update.Name)
	require.NotNil(t, update.Priority)
	assert.Equal(t, "Billing Service", *update.Name)
	assert.Equal(t, "Medium", *update.Priority)
}

func TestMemberValuesFrom_RoundTripsIntoUpdate(t *testing.T) {
	salary := 52000.5
	m := models.Member{
		ID:         3,
		Name:       "María Rodríguez",
		Email:      "maria.rodriguez@empresa.com",
		Role:       models.RoleDesigner,
		Department: "Marketing",
		Status:     models.MemberActive,
		Salary:     &salary,
		Skills:     []string{"Figma", "UX"},
	}

	v := MemberValuesFrom(m)
	assert.Equal(t, "Figma, UX", v.Skills)
	assert.Equal(t, "52000.5", v.Salary)

	req, err := v.UpdateRequest(m.ID)
	require.NoError(t, err)
	assert.Equal(t, types.MemberID(3), req.ID)
	assert.Equal(t, "Designer", req.Role)
	require.NotNil(t, req.Salary)
	assert.Equal(t, salary, *req.Salary)
}

func TestMemberValues_SalaryErrors(t *testing.T) {
	v := NewMemberValues()

	v.Salary = ""
	req, err := v.CreateRequest()
	require.NoError(t, err)
	assert.Nil(t, req.Salary)

	v.Salary = "lots"
	_, err = v.CreateRequest()
	assert.ErrorIs(t, err, member.ErrInvalidSalary)

	v.Salary = "-5"
	_, err = v.UpdateRequest(1)
	assert.ErrorIs(t, err, member.ErrNegativeSalary)
}

func TestAssignValuesFrom_CopiesAssignments(t *testing.T) {
	p := models.Project{ID: 1, AssignedMemberIDs: []types.MemberID{1, 2}}

	v := AssignValuesFrom(p)
	v.MemberIDs[0] = 4

	assert.Equal(t, []types.MemberID{1, 2}, p.AssignedMemberIDs)
}

func TestForms_Build(t *testing.T) {
	assert.NotNil(t, ProjectForm(NewProjectValues(), false))
	assert.NotNil(t, MemberForm(NewMemberValues(), true, nil))

	team := []models.Member{{ID: 1, Name: "Ana García", Role: models.RoleDeveloper, Department: "IT"}}
	assert.NotNil(t, AssignForm(&AssignValues{}, models.Project{ID: 1, Name: "Billing"}, team))
}
