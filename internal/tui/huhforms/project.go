package huhforms

import (
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/services/project"
	"github.com/thenoetrevino/huddle/internal/types"
)

// ProjectValues are the fields the project form edits in place
type ProjectValues struct {
	Name        string
	Description string
	Priority    string
	Confirm     bool
}

// NewProjectValues returns the values of an empty create form
func NewProjectValues() *ProjectValues {
	return &ProjectValues{Priority: string(models.PriorityMedium), Confirm: true}
}

// ProjectValuesFrom prefills the form with an existing project
func ProjectValuesFrom(p models.Project) *ProjectValues {
	return &ProjectValues{
		Name:        p.Name,
		Description: p.Description,
		Priority:    string(p.Priority),
		Confirm:     true,
	}
}

// CreateRequest turns the submitted values into a create request
func (v ProjectValues) CreateRequest() project.CreateProjectRequest {
	return project.CreateProjectRequest{
		Name:        strings.TrimSpace(v.Name),
		Description: strings.TrimSpace(v.Description),
		Priority:    v.Priority,
	}
}

// UpdateRequest turns the submitted values into an update of every editable field
func (v ProjectValues) UpdateRequest(id types.ProjectID) project.UpdateProjectRequest {
	req := v.CreateRequest()
	return project.UpdateProjectRequest{
		ID:          id,
		Name:        &req.Name,
		Description: &req.Description,
		Priority:    &req.Priority,
	}
}

// ProjectForm creates a huh form for adding or editing a project. Each field
// is checked with the project service's own validators as it is typed.
func ProjectForm(values *ProjectValues, editing bool) *huh.Form {
	priorities := make([]string, 0, len(models.Priorities))
	for _, p := range models.Priorities {
		priorities = append(priorities, string(p))
	}

	confirmTitle := "Create this project?"
	if editing {
		confirmTitle = "Save changes?"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Project Name").
			Placeholder("Enter project name...").
			CharLimit(models.ProjectNameMax).
			Validate(trimmed(project.ValidateName)).
			Value(&values.Name),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("What is this project about?").
			CharLimit(models.ProjectDescriptionMax).
			Lines(3).
			Validate(trimmed(project.ValidateDescription)).
			Value(&values.Description),

		huh.NewSelect[string]().
			Key("priority").
			Title("Priority").
			Options(huh.NewOptions(priorities...)...).
			Validate(trimmed(project.ValidatePriority)).
			Value(&values.Priority),

		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(&values.Confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter())
}
