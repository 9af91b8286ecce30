package testutil

import (
	"testing"

	"github.com/thenoetrevino/huddle/internal/persistence"
	"github.com/thenoetrevino/huddle/internal/store"
)

// SeededStore returns a store holding the demo dataset, stamped with ReferenceTime
func SeededStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.FromSnapshot(store.Snapshot{
		Projects: persistence.SeedProjects(ReferenceTime),
		Members:  persistence.SeedMembers(ReferenceTime),
	})
	if err := s.CheckLinks(); err != nil {
		t.Fatalf("seed data has inconsistent links: %v", err)
	}
	return s
}
