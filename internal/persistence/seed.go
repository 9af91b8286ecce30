package persistence

import (
	"time"

	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/types"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// SeedProjects returns the demo projects shown on a fresh install
func SeedProjects(now time.Time) []models.Project {
	return []models.Project{
		{
			ID:                1,
			Name:              "Advanced Inventory System",
			Description:       "Complete inventory management system with real-time reports",
			Progress:          75,
			Status:            models.StatusInDevelopment,
			Priority:          models.PriorityHigh,
			CreatedAt:         day(2024, time.January, 15),
			UpdatedAt:         now,
			AssignedMemberIDs: []types.MemberID{1, 2},
		},
		{
			ID:                2,
			Name:              "E-commerce Mobile App",
			Description:       "Mobile storefront application with a shopping cart",
			Progress:          45,
			Status:            models.StatusDesign,
			Priority:          models.PriorityMedium,
			CreatedAt:         day(2024, time.February, 1),
			UpdatedAt:         now,
			AssignedMemberIDs: []types.MemberID{3, 4},
		},
		{
			ID:                3,
			Name:              "Analytics Dashboard",
			Description:       "Control panel with business metrics and data analysis",
			Progress:          90,
			Status:            models.StatusTesting,
			Priority:          models.PriorityHigh,
			CreatedAt:         day(2024, time.January, 20),
			UpdatedAt:         now,
			AssignedMemberIDs: []types.MemberID{1, 3},
		},
		{
			ID:                4,
			Name:              "Users REST API",
			Description:       "User management API with JWT authentication",
			Progress:          60,
			Status:            models.StatusDevelopment,
			Priority:          models.PriorityMedium,
			CreatedAt:         day(2024, time.February, 10),
			UpdatedAt:         now,
			AssignedMemberIDs: []types.MemberID{2},
		},
	}
}

// SeedMembers returns the demo team matching SeedProjects' assignments
func SeedMembers(now time.Time) []models.Member {
	return []models.Member{
		{
			ID:                 1,
			Name:               "Ana García",
			Email:              "ana.garcia@empresa.com",
			Role:               models.RoleDeveloper,
			Department:         "IT",
			Phone:              "+52 555 1234567",
			Location:           "Ciudad de México, México",
			Status:             models.MemberActive,
			Skills:             []string{"JavaScript", "React", "Node.js", "MongoDB"},
			Avatar:             "AG",
			JoinDate:           day(2024, time.January, 10),
			CreatedAt:          day(2024, time.January, 10),
			UpdatedAt:          now,
			AssignedProjectIDs: []types.ProjectID{1, 3},
		},
		{
			ID:                 2,
			Name:               "Carlos López",
			Email:              "carlos.lopez@empresa.com",
			Role:               models.RoleDesigner,
			Department:         "IT",
			Phone:              "+52 555 2345678",
			Location:           "Guadalajara, México",
			Status:             models.MemberActive,
			Skills:             []string{"Figma", "Adobe XD", "Illustrator", "UI/UX"},
			Avatar:             "CL",
			JoinDate:           day(2024, time.January, 20),
			CreatedAt:          day(2024, time.January, 20),
			UpdatedAt:          now,
			AssignedProjectIDs: []types.ProjectID{1, 4},
		},
		{
			ID:                 3,
			Name:               "María Rodríguez",
			Email:              "maria.rodriguez@empresa.com",
			Role:               models.RoleManager,
			Department:         "Marketing",
			Phone:              "+52 555 3456789",
			Location:           "Monterrey, México",
			Status:             models.MemberActive,
			Skills:             []string{"Project Management", "Scrum", "Leadership"},
			Avatar:             "MR",
			JoinDate:           day(2024, time.February, 1),
			CreatedAt:          day(2024, time.February, 1),
			UpdatedAt:          now,
			AssignedProjectIDs: []types.ProjectID{2, 3},
		},
		{
			ID:                 4,
			Name:               "Juan Pérez",
			Email:              "juan.perez@empresa.com",
			Role:               models.RoleDeveloper,
			Department:         "IT",
			Phone:              "+52 555 4567890",
			Location:           "Puebla, México",
			Status:             models.MemberVacation,
			Skills:             []string{"Python", "Django", "PostgreSQL", "Docker"},
			Avatar:             "JP",
			JoinDate:           day(2024, time.January, 15),
			CreatedAt:          day(2024, time.January, 15),
			UpdatedAt:          now,
			AssignedProjectIDs: []types.ProjectID{2},
		},
	}
}
