package types

import "strconv"

// ID type aliases provide semantic meaning and reduce repetitive int conversions.
// These aliases document what each integer represents in the domain model.

// ProjectID identifies a unique project in the dashboard
type ProjectID int

// MemberID identifies a unique team member in the dashboard
type MemberID int

// ToInt converts type alias back to int
func (id ProjectID) ToInt() int {
	return int(id)
}

func (id MemberID) ToInt() int {
	return int(id)
}

func (id ProjectID) String() string {
	return strconv.Itoa(int(id))
}

func (id MemberID) String() string {
	return strconv.Itoa(int(id))
}

// ParseProjectID parses a decimal project id as typed on the command line
func ParseProjectID(s string) (ProjectID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return ProjectID(n), nil
}

// ParseMemberID parses a decimal member id as typed on the command line
func ParseMemberID(s string) (MemberID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return MemberID(n), nil
}
