package member

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/thenoetrevino/huddle/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// fields is a validated and normalized member form
type fields struct {
	name       string
	email      string
	role       models.Role
	department string
	phone      string
	location   string
	status     models.MemberStatus
	salary     *float64
	skills     []string
}

func validate(req CreateMemberRequest) (fields, error) {
	f := fields{
		name:       strings.TrimSpace(req.Name),
		email:      strings.TrimSpace(req.Email),
		department: strings.TrimSpace(req.Department),
		phone:      strings.TrimSpace(req.Phone),
		location:   strings.TrimSpace(req.Location),
		skills:     models.ParseSkills(req.Skills),
	}

	if err := ValidateName(f.name); err != nil {
		return f, err
	}
	if err := ValidateEmail(f.email); err != nil {
		return f, err
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		return f, fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}
	f.role = role

	if err := ValidateDepartment(f.department); err != nil {
		return f, err
	}
	if err := ValidatePhone(f.phone); err != nil {
		return f, err
	}
	if req.Salary != nil {
		if *req.Salary < 0 {
			return f, ErrNegativeSalary
		}
		salary := *req.Salary
		f.salary = &salary
	}

	status, ok := models.ParseMemberStatus(req.Status)
	if !ok {
		return f, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}
	f.status = status

	return f, nil
}

// ValidateName checks a trimmed member name against the length limits
func ValidateName(name string) error {
	if n := utf8.RuneCountInString(name); n < models.MemberNameMin || n > models.MemberNameMax {
		return ErrNameLength
	}
	return nil
}

// ValidateEmail checks the address shape only; uniqueness is EmailInUse
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

// ValidateDepartment requires a non-blank department
func ValidateDepartment(department string) error {
	if department == "" {
		return ErrEmptyDepartment
	}
	return nil
}

// ValidatePhone accepts an empty phone or one of at least MemberPhoneMin characters
func ValidatePhone(phone string) error {
	if phone != "" && utf8.RuneCountInString(phone) < models.MemberPhoneMin {
		return ErrPhoneTooShort
	}
	return nil
}

// ParseSalary reads a salary typed as text. Blank means no salary.
func ParseSalary(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	salary, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSalary, raw)
	}
	if salary < 0 {
		return nil, ErrNegativeSalary
	}
	return &salary, nil
}

// foldEmail returns the comparison key for email uniqueness
func foldEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// contains reports whether needle occurs in haystack ignoring case
func contains(haystack, needle string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(haystack), fold.String(needle))
}
