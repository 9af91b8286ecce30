package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/notify"
	"github.com/thenoetrevino/huddle/internal/types"
)

func lastNotification(t *testing.T, queue *notify.Queue) notify.Notification {
	t.Helper()
	items := queue.All()
	require.NotEmpty(t, items)
	return items[len(items)-1]
}

// ============================================================================
// PROJECT FORMS
// ============================================================================

func TestProjectForm_CreateOnSave(t *testing.T) {
	m, a, queue := setupModel(t)

	m = press(m, "n")
	require.Equal(t, formMode, m.mode)
	require.Equal(t, createProjectForm, m.forms.kind)
	assert.Equal(t, "Medium", m.forms.projectValues.Priority)

	m.forms.projectValues.Name = "  Billing Service "
	m.forms.projectValues.Description = "Invoices and payment reminders"
	m.forms.projectValues.Priority = "High"
	m = press(m, "ctrl+s")

	assert.Equal(t, normalMode, m.mode)
	assert.Nil(t, m.forms)
	require.Len(t, m.dashboard.Projects, 5)
	created := m.dashboard.Projects[0]
	assert.Equal(t, "Billing Service", created.Name)
	assert.Equal(t, models.PriorityHigh, created.Priority)
	assert.Equal(t, 0, m.selectedProject)

	got, err := a.ProjectService.GetProject(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Billing Service", got.Name)
	assert.Equal(t, "Project 'Billing Service' created", lastNotification(t, queue).Message)
}

func TestProjectForm_RejectedSubmitKeepsValues(t *testing.T) {
	m, _, queue := setupModel(t)

	m = press(m, "n")
	m.forms.projectValues.Name = "AB"
	m.forms.projectValues.Description = "Invoices and payment reminders"
	m = press(m, "ctrl+s")

	require.Equal(t, formMode, m.mode, "the form stays open")
	assert.Equal(t, "AB", m.forms.projectValues.Name)
	note := lastNotification(t, queue)
	assert.Equal(t, notify.LevelError, note.Level)
	assert.Contains(t, note.Message, "project name must be between 3 and 100 characters")
	assert.Len(t, m.dashboard.Projects, 4)
}

func TestProjectForm_EditPrefillsAndUpdates(t *testing.T) {
	m, a, _ := setupModel(t)
	selected, ok := m.currentProject()
	require.True(t, ok)

	m = press(m, "e")
	require.Equal(t, editProjectForm, m.forms.kind)
	assert.Equal(t, selected.Name, m.forms.projectValues.Name)
	assert.Equal(t, selected.Description, m.forms.projectValues.Description)
	assert.Equal(t, string(selected.Priority), m.forms.projectValues.Priority)

	m.forms.projectValues.Priority = "Low"
	m = press(m, "ctrl+s")

	assert.Equal(t, normalMode, m.mode)
	got, err := a.ProjectService.GetProject(context.Background(), selected.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityLow, got.Priority)
	assert.Equal(t, selected.Name, got.Name)
	assert.Equal(t, selected.Progress, got.Progress, "editing never moves progress")
}

func TestForm_EscClosesWithoutSaving(t *testing.T) {
	m, _, _ := setupModel(t)

	m = press(m, "n")
	m.forms.projectValues.Name = "Billing Service"
	m = press(m, "esc")

	assert.Equal(t, normalMode, m.mode)
	assert.Nil(t, m.forms)
	assert.Len(t, m.dashboard.Projects, 4)
}

func TestForm_NewIgnoredOnStatsTab(t *testing.T) {
	m, _, _ := setupModel(t)

	m = press(m, "tab", "tab", "n")

	assert.Equal(t, normalMode, m.mode)
	assert.Nil(t, m.forms)
}

// ============================================================================
// MEMBER FORMS
// ============================================================================

func TestMemberForm_CreateOnSave(t *testing.T) {
	m, a, _ := setupModel(t)

	m = press(m, "tab", "n")
	require.Equal(t, createMemberForm, m.forms.kind)

	v := m.forms.memberValues
	v.Name = "Lucía Torres"
	v.Email = "lucia.torres@empresa.com"
	v.Role = "QA"
	v.Department = "IT"
	v.Salary = "48000"
	v.Skills = "Cypress, Go"
	m = press(m, "ctrl+s")

	assert.Equal(t, normalMode, m.mode)
	require.Len(t, m.members, 5)
	created := m.members[0]
	assert.Equal(t, "LT", created.Avatar)
	assert.Equal(t, []string{"Cypress", "Go"}, created.Skills)
	require.NotNil(t, created.Salary)
	assert.Equal(t, 48000.0, *created.Salary)

	_, err := a.MemberService.GetMember(context.Background(), created.ID)
	require.NoError(t, err)
}

func TestMemberForm_DuplicateEmailReopens(t *testing.T) {
	m, _, queue := setupModel(t)

	m = press(m, "tab", "n")
	v := m.forms.memberValues
	v.Name = "Ana Clone"
	v.Email = "ANA.GARCIA@empresa.com"
	v.Department = "IT"
	m = press(m, "ctrl+s")

	require.Equal(t, formMode, m.mode)
	note := lastNotification(t, queue)
	assert.Equal(t, notify.LevelError, note.Level)
	assert.Contains(t, note.Message, "a member with this email already exists")
	assert.Len(t, m.members, 4)
}

func TestMemberForm_BadSalaryReopens(t *testing.T) {
	m, _, queue := setupModel(t)

	m = press(m, "tab", "n")
	v := m.forms.memberValues
	v.Name = "Lucía Torres"
	v.Email = "lucia.torres@empresa.com"
	v.Department = "IT"
	v.Salary = "lots"
	m = press(m, "ctrl+s")

	require.Equal(t, formMode, m.mode)
	assert.Contains(t, lastNotification(t, queue).Message, "salary must be a number")
}

func TestMemberForm_EditKeepsAssignments(t *testing.T) {
	m, a, _ := setupModel(t)
	m = press(m, "tab")
	selected, ok := m.currentMember()
	require.True(t, ok)

	m = press(m, "e")
	require.Equal(t, editMemberForm, m.forms.kind)
	assert.Equal(t, selected.Email, m.forms.memberValues.Email)

	m.forms.memberValues.Location = "Valencia"
	m = press(m, "ctrl+s")

	assert.Equal(t, normalMode, m.mode)
	got, err := a.MemberService.GetMember(context.Background(), selected.ID)
	require.NoError(t, err)
	assert.Equal(t, "Valencia", got.Location)
	assert.Equal(t, selected.Email, got.Email, "own email is not a duplicate")
	assert.Equal(t, selected.AssignedProjectIDs, got.AssignedProjectIDs)
}

// ============================================================================
// ASSIGN PICKER
// ============================================================================

func TestAssignForm_ReplacesAssignments(t *testing.T) {
	m, a, queue := setupModel(t)
	selected, ok := m.currentProject()
	require.True(t, ok)

	m = press(m, "a")
	require.Equal(t, assignMembersForm, m.forms.kind)
	assert.Equal(t, selected.AssignedMemberIDs, m.forms.assignValues.MemberIDs)

	m.forms.assignValues.MemberIDs = []types.MemberID{4}
	m = press(m, "ctrl+s")

	assert.Equal(t, normalMode, m.mode)
	got, err := a.ProjectService.GetProject(context.Background(), selected.ID)
	require.NoError(t, err)
	assert.Equal(t, []types.MemberID{4}, got.AssignedMemberIDs)

	projects, err := a.MemberService.Projects(context.Background(), 4)
	require.NoError(t, err)
	var ids []types.ProjectID
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, selected.ID, "the member side follows")
	assert.Equal(t, notify.LevelSuccess, lastNotification(t, queue).Level)
}

func TestAssignForm_OnlyOnProjectsTab(t *testing.T) {
	m, _, _ := setupModel(t)

	m = press(m, "tab", "a")

	assert.Equal(t, normalMode, m.mode)
	assert.Nil(t, m.forms)
}
