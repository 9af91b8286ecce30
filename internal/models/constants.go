package models

// ============================================================================
// PROJECT CONSTANTS
// ============================================================================

const (
	MinProgress = 0
	MaxProgress = 100

	// ProgressStep is the increment used by the +/- progress controls
	ProgressStep = 10

	ProjectNameMin        = 3
	ProjectNameMax        = 100
	ProjectDescriptionMin = 10
	ProjectDescriptionMax = 500
)

// ============================================================================
// MEMBER CONSTANTS
// ============================================================================

const (
	MemberNameMin  = 2
	MemberNameMax  = 100
	MemberPhoneMin = 10
)
