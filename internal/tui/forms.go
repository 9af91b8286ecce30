package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/notify"
	"github.com/thenoetrevino/huddle/internal/tui/huhforms"
	"github.com/thenoetrevino/huddle/internal/types"
)

type formKind int

const (
	noForm formKind = iota
	createProjectForm
	editProjectForm
	createMemberForm
	editMemberForm
	assignMembersForm
)

// formState is the open huh form and the values it edits in place. Values
// outlive the form so a rejected submit can reopen with what was typed.
type formState struct {
	kind    formKind
	form    *huh.Form
	project types.ProjectID
	member  types.MemberID

	projectValues *huhforms.ProjectValues
	memberValues  *huhforms.MemberValues
	assignValues  *huhforms.AssignValues
}

// ============================================================================
// OPENING FORMS
// ============================================================================

// handleNew opens the create form of the current tab
func (m Model) handleNew() (tea.Model, tea.Cmd) {
	switch m.tab {
	case projectsTab:
		m.forms = &formState{kind: createProjectForm, projectValues: huhforms.NewProjectValues()}
	case teamTab:
		m.forms = &formState{kind: createMemberForm, memberValues: huhforms.NewMemberValues()}
	default:
		return m, nil
	}
	return m.openForm()
}

// handleEdit opens the edit form of the selected card
func (m Model) handleEdit() (tea.Model, tea.Cmd) {
	switch m.tab {
	case projectsTab:
		p, ok := m.currentProject()
		if !ok {
			return m, nil
		}
		m.forms = &formState{kind: editProjectForm, project: p.ID, projectValues: huhforms.ProjectValuesFrom(p)}
	case teamTab:
		mem, ok := m.currentMember()
		if !ok {
			return m, nil
		}
		m.forms = &formState{kind: editMemberForm, member: mem.ID, memberValues: huhforms.MemberValuesFrom(mem)}
	default:
		return m, nil
	}
	return m.openForm()
}

// handleAssign opens the member picker for the selected project
func (m Model) handleAssign() (tea.Model, tea.Cmd) {
	if m.tab != projectsTab {
		return m, nil
	}
	p, ok := m.currentProject()
	if !ok {
		return m, nil
	}
	if len(m.dashboard.Members) == 0 {
		m.notifications.Notify(notify.LevelWarning, "No team members to assign")
		return m, nil
	}
	m.forms = &formState{kind: assignMembersForm, project: p.ID, assignValues: huhforms.AssignValuesFrom(p)}
	return m.openForm()
}

// openForm builds the huh form for m.forms and switches to form mode
func (m Model) openForm() (tea.Model, tea.Cmd) {
	fs := m.forms
	switch fs.kind {
	case createProjectForm, editProjectForm:
		fs.form = huhforms.ProjectForm(fs.projectValues, fs.kind == editProjectForm)
	case createMemberForm, editMemberForm:
		except := fs.member
		fs.form = huhforms.MemberForm(fs.memberValues, fs.kind == editMemberForm, func(email string) bool {
			return m.app.MemberService.EmailInUse(m.ctx, email, except)
		})
	case assignMembersForm:
		p, err := m.app.ProjectService.GetProject(m.ctx, fs.project)
		if err != nil {
			m.notifications.Notify(notify.LevelError, err.Error())
			return m.closeForm()
		}
		fs.form = huhforms.AssignForm(fs.assignValues, p, m.dashboard.Members)
	default:
		return m.closeForm()
	}

	fs.form = fs.form.
		WithTheme(huhforms.CreateHuddleTheme(m.renderer.Scheme())).
		WithWidth(m.formWidth())
	m.mode = formMode
	return m, fs.form.Init()
}

func (m Model) closeForm() (tea.Model, tea.Cmd) {
	m.forms = nil
	m.mode = normalMode
	return m, nil
}

func (m Model) formWidth() int {
	return max(min(m.width-8, 72), 20)
}

// ============================================================================
// FORM MODE HANDLERS
// ============================================================================

// updateForm handles all messages when a form is open.
// Forms need every message, not just key presses, to blink and validate.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.forms == nil || m.forms.form == nil {
		return m.closeForm()
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.CloseForm):
			return m.closeForm()
		case key.Matches(keyMsg, m.keys.SaveForm):
			m.forms.confirm()
			return m.submitForm()
		}
	}

	model, cmd := m.forms.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.forms.form = f
	}

	switch m.forms.form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		return m.closeForm()
	}
	return m, cmd
}

// confirm answers the form's final question with yes, for the save shortcut
func (fs *formState) confirm() {
	switch {
	case fs.projectValues != nil:
		fs.projectValues.Confirm = true
	case fs.memberValues != nil:
		fs.memberValues.Confirm = true
	}
}

// submitForm sends the form values to the services. A rejected submit keeps
// the values and reopens the form with the service error on screen.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	fs := m.forms

	var (
		done string
		err  error
	)
	switch fs.kind {
	case createProjectForm:
		if !fs.projectValues.Confirm {
			return m.closeForm()
		}
		var p models.Project
		p, err = m.app.ProjectService.CreateProject(m.ctx, fs.projectValues.CreateRequest())
		if err == nil {
			done = fmt.Sprintf("Project '%s' created", p.Name)
			m.selectedProject = 0
		}

	case editProjectForm:
		if !fs.projectValues.Confirm {
			return m.closeForm()
		}
		var p models.Project
		p, err = m.app.ProjectService.UpdateProject(m.ctx, fs.projectValues.UpdateRequest(fs.project))
		if err == nil {
			done = fmt.Sprintf("Project '%s' updated", p.Name)
		}

	case createMemberForm:
		if !fs.memberValues.Confirm {
			return m.closeForm()
		}
		var mem models.Member
		req, reqErr := fs.memberValues.CreateRequest()
		if err = reqErr; err == nil {
			mem, err = m.app.MemberService.CreateMember(m.ctx, req)
		}
		if err == nil {
			done = fmt.Sprintf("%s joined the team", mem.Name)
			m.search.SetValue("")
			m.selectedMember = 0
		}

	case editMemberForm:
		if !fs.memberValues.Confirm {
			return m.closeForm()
		}
		var mem models.Member
		req, reqErr := fs.memberValues.UpdateRequest(fs.member)
		if err = reqErr; err == nil {
			mem, err = m.app.MemberService.UpdateMember(m.ctx, req)
		}
		if err == nil {
			done = fmt.Sprintf("%s updated", mem.Name)
		}

	case assignMembersForm:
		var p models.Project
		p, err = m.app.ProjectService.Assign(m.ctx, fs.project, fs.assignValues.MemberIDs)
		if err == nil {
			done = fmt.Sprintf("%s now has %d member(s)", p.Name, len(p.AssignedMemberIDs))
		}

	default:
		return m.closeForm()
	}

	if err != nil {
		m.notifications.Notify(notify.LevelError, err.Error())
		return m.openForm()
	}

	m.notifications.Notify(notify.LevelSuccess, done)
	m.reload()
	return m.closeForm()
}
