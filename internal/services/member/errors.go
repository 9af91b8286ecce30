package member

import (
	"fmt"

	"github.com/thenoetrevino/huddle/internal/models"
)

// Domain errors for member service. Each wraps a models category.
var (
	// Validation errors
	ErrNameLength = fmt.Errorf("%w: name must be between %d and %d characters",
		models.ErrValidation, models.MemberNameMin, models.MemberNameMax)
	ErrInvalidEmail    = fmt.Errorf("%w: email address is not valid", models.ErrValidation)
	ErrInvalidRole     = fmt.Errorf("%w: role must be one of Developer, Designer, Manager, Analyst, QA", models.ErrValidation)
	ErrEmptyDepartment = fmt.Errorf("%w: department is required", models.ErrValidation)
	ErrPhoneTooShort   = fmt.Errorf("%w: phone must have at least %d characters", models.ErrValidation, models.MemberPhoneMin)
	ErrNegativeSalary  = fmt.Errorf("%w: salary cannot be negative", models.ErrValidation)
	ErrInvalidSalary   = fmt.Errorf("%w: salary must be a number", models.ErrValidation)
	ErrInvalidStatus   = fmt.Errorf("%w: status must be one of Active, Inactive, Vacation", models.ErrValidation)
	ErrInvalidMemberID = fmt.Errorf("%w: invalid member ID", models.ErrValidation)

	// Business logic errors
	ErrMemberNotFound = fmt.Errorf("member %w", models.ErrNotFound)
	ErrDuplicateEmail = fmt.Errorf("%w: a member with this email already exists", models.ErrConflict)
)
