package project

import (
	"fmt"

	"github.com/thenoetrevino/huddle/internal/models"
)

// Domain errors for project service. Each wraps a models category.
var (
	// Validation errors
	ErrNameLength = fmt.Errorf("%w: project name must be between %d and %d characters",
		models.ErrValidation, models.ProjectNameMin, models.ProjectNameMax)
	ErrDescriptionLength = fmt.Errorf("%w: project description must be between %d and %d characters",
		models.ErrValidation, models.ProjectDescriptionMin, models.ProjectDescriptionMax)
	ErrInvalidPriority  = fmt.Errorf("%w: priority must be one of Low, Medium, High", models.ErrValidation)
	ErrInvalidProjectID = fmt.Errorf("%w: invalid project ID", models.ErrValidation)

	// Business logic errors
	ErrProjectNotFound = fmt.Errorf("project %w", models.ErrNotFound)
	ErrMemberNotFound  = fmt.Errorf("member %w", models.ErrNotFound)
	ErrAlreadyAssigned = fmt.Errorf("%w: member is already assigned to this project", models.ErrConflict)
)
