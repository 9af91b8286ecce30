package huhforms

import (
	"strconv"
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/services/member"
	"github.com/thenoetrevino/huddle/internal/types"
)

// MemberValues are the fields the member form edits in place. Salary is kept
// as typed and parsed on submit.
type MemberValues struct {
	Name       string
	Email      string
	Role       string
	Department string
	Phone      string
	Location   string
	Status     string
	Salary     string
	Skills     string
	Confirm    bool
}

// NewMemberValues returns the values of an empty create form
func NewMemberValues() *MemberValues {
	return &MemberValues{
		Role:    string(models.RoleDeveloper),
		Status:  string(models.MemberActive),
		Confirm: true,
	}
}

// MemberValuesFrom prefills the form with an existing member
func MemberValuesFrom(m models.Member) *MemberValues {
	v := &MemberValues{
		Name:       m.Name,
		Email:      m.Email,
		Role:       string(m.Role),
		Department: m.Department,
		Phone:      m.Phone,
		Location:   m.Location,
		Status:     string(m.Status),
		Skills:     strings.Join(m.Skills, ", "),
		Confirm:    true,
	}
	if m.Salary != nil {
		v.Salary = strconv.FormatFloat(*m.Salary, 'f', -1, 64)
	}
	return v
}

// CreateRequest turns the submitted values into a create request
func (v MemberValues) CreateRequest() (member.CreateMemberRequest, error) {
	salary, err := member.ParseSalary(v.Salary)
	if err != nil {
		return member.CreateMemberRequest{}, err
	}
	return member.CreateMemberRequest{
		Name:       v.Name,
		Email:      v.Email,
		Role:       v.Role,
		Department: v.Department,
		Phone:      v.Phone,
		Location:   v.Location,
		Status:     v.Status,
		Salary:     salary,
		Skills:     v.Skills,
	}, nil
}

// UpdateRequest turns the submitted values into a full update of member id
func (v MemberValues) UpdateRequest(id types.MemberID) (member.UpdateMemberRequest, error) {
	req, err := v.CreateRequest()
	if err != nil {
		return member.UpdateMemberRequest{}, err
	}
	return member.UpdateMemberRequest{ID: id, CreateMemberRequest: req}, nil
}

// MemberForm creates a huh form for adding or editing a team member.
// emailInUse reports addresses already taken by someone else; nil skips the
// uniqueness check.
func MemberForm(values *MemberValues, editing bool, emailInUse func(email string) bool) *huh.Form {
	roles := make([]string, 0, len(models.Roles))
	for _, r := range models.Roles {
		roles = append(roles, string(r))
	}
	statuses := make([]string, 0, len(models.MemberStatuses))
	for _, s := range models.MemberStatuses {
		statuses = append(statuses, string(s))
	}

	confirmTitle := "Add this member?"
	if editing {
		confirmTitle = "Save changes?"
	}

	validateEmail := func(s string) error {
		email := strings.TrimSpace(s)
		if err := member.ValidateEmail(email); err != nil {
			return inline(err)
		}
		if emailInUse != nil && emailInUse(email) {
			return inline(member.ErrDuplicateEmail)
		}
		return nil
	}

	profile := huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("Full name").
			CharLimit(models.MemberNameMax).
			Validate(trimmed(member.ValidateName)).
			Value(&values.Name),

		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("name@company.com").
			Validate(validateEmail).
			Value(&values.Email),

		huh.NewSelect[string]().
			Key("role").
			Title("Role").
			Options(huh.NewOptions(roles...)...).
			Value(&values.Role),

		huh.NewInput().
			Key("department").
			Title("Department").
			Placeholder("IT, Marketing, Sales...").
			Suggestions(models.Departments).
			Validate(trimmed(member.ValidateDepartment)).
			Value(&values.Department),

		huh.NewSelect[string]().
			Key("status").
			Title("Status").
			Options(huh.NewOptions(statuses...)...).
			Value(&values.Status),
	)

	details := huh.NewGroup(
		huh.NewInput().
			Key("phone").
			Title("Phone (optional)").
			Placeholder("+1 555 0100 200").
			Validate(trimmed(member.ValidatePhone)).
			Value(&values.Phone),

		huh.NewInput().
			Key("location").
			Title("Location (optional)").
			Value(&values.Location),

		huh.NewInput().
			Key("salary").
			Title("Salary (optional)").
			Validate(func(s string) error {
				_, err := member.ParseSalary(s)
				return inline(err)
			}).
			Value(&values.Salary),

		huh.NewInput().
			Key("skills").
			Title("Skills (comma separated)").
			Placeholder("Go, SQL, Figma").
			Value(&values.Skills),

		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(&values.Confirm),
	)

	return huh.NewForm(profile, details).WithKeyMap(CreateKeyMapWithShiftEnter())
}
