package huhforms

import (
	"fmt"
	"slices"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/types"
)

// AssignValues holds the members picked for a project
type AssignValues struct {
	MemberIDs []types.MemberID
}

// AssignValuesFrom starts the picker from the project's current assignments
func AssignValuesFrom(p models.Project) *AssignValues {
	return &AssignValues{MemberIDs: slices.Clone(p.AssignedMemberIDs)}
}

// AssignForm creates the member picker for a project. Every team member is
// listed; the ones already assigned start checked.
func AssignForm(values *AssignValues, p models.Project, team []models.Member) *huh.Form {
	options := make([]huh.Option[types.MemberID], 0, len(team))
	for _, m := range team {
		label := fmt.Sprintf("%s · %s · %s", m.Name, m.Role, m.Department)
		options = append(options,
			huh.NewOption(label, m.ID).Selected(slices.Contains(values.MemberIDs, m.ID)))
	}

	picker := huh.NewMultiSelect[types.MemberID]().
		Key("members").
		Title(fmt.Sprintf("Assign members to %s", p.Name)).
		Description("space to toggle, enter to save").
		Options(options...).
		Filterable(true).
		Height(min(len(options)+2, 12)).
		Value(&values.MemberIDs)

	return huh.NewForm(huh.NewGroup(picker)).WithKeyMap(CreateKeyMapWithShiftEnter())
}
