package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	err := s.Write(func(tx *Tx) error {
		for _, name := range []string{"Alpha", "Beta"} {
			tx.PrependProject(models.Project{ID: tx.AllocProjectID(), Name: name, Status: models.StatusPlanning})
		}
		for _, name := range []string{"Ana", "Luis"} {
			tx.PrependMember(models.Member{ID: tx.AllocMemberID(), Name: name})
		}
		return nil
	})
	require.NoError(t, err)
	return s
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestNewStoreCountersStartAtOne(t *testing.T) {
	s := New()
	assert.Equal(t, types.ProjectID(1), s.NextProjectID())
	assert.Equal(t, types.MemberID(1), s.NextMemberID())
	assert.Empty(t, s.ListProjects())
	assert.Empty(t, s.ListMembers())
}

func TestPrependKeepsNewestFirst(t *testing.T) {
	s := seededStore(t)

	projects := s.ListProjects()
	require.Len(t, projects, 2)
	assert.Equal(t, "Beta", projects[0].Name)
	assert.Equal(t, "Alpha", projects[1].Name)
	assert.Equal(t, types.ProjectID(3), s.NextProjectID())
}

func TestReadsReturnCopies(t *testing.T) {
	s := seededStore(t)
	require.NoError(t, s.Write(func(tx *Tx) error {
		tx.Link(1, 1)
		return nil
	}))

	p, ok := s.GetProject(1)
	require.True(t, ok)
	p.AssignedMemberIDs[0] = 99
	p.Name = "mutated"

	fresh, _ := s.GetProject(1)
	assert.Equal(t, "Alpha", fresh.Name)
	assert.Equal(t, []types.MemberID{1}, fresh.AssignedMemberIDs)
}

func TestLinkAndUnlinkMirrorBothSides(t *testing.T) {
	s := seededStore(t)

	require.NoError(t, s.Write(func(tx *Tx) error {
		assert.True(t, tx.Link(1, 2))
		assert.False(t, tx.Link(1, 2), "second link is a no-op")
		assert.False(t, tx.Link(1, 42), "unknown member is ignored")
		return nil
	}))
	require.NoError(t, s.CheckLinks())

	m, _ := s.GetMember(2)
	assert.Equal(t, []types.ProjectID{1}, m.AssignedProjectIDs)

	require.NoError(t, s.Write(func(tx *Tx) error {
		assert.True(t, tx.Unlink(1, 2))
		return nil
	}))
	require.NoError(t, s.CheckLinks())

	p, _ := s.GetProject(1)
	assert.Empty(t, p.AssignedMemberIDs)
}

func TestRemoveScrubsReverseReferences(t *testing.T) {
	s := seededStore(t)
	require.NoError(t, s.Write(func(tx *Tx) error {
		tx.Link(1, 1)
		tx.Link(2, 1)
		tx.Link(1, 2)
		return nil
	}))

	require.NoError(t, s.Write(func(tx *Tx) error {
		assert.True(t, tx.RemoveMember(1))
		assert.True(t, tx.RemoveProject(2))
		assert.False(t, tx.RemoveProject(2))
		return nil
	}))
	require.NoError(t, s.CheckLinks())

	p, _ := s.GetProject(1)
	assert.Equal(t, []types.MemberID{2}, p.AssignedMemberIDs)
	m, _ := s.GetMember(2)
	assert.Equal(t, []types.ProjectID{1}, m.AssignedProjectIDs)
}

func TestRestoreRaisesCounters(t *testing.T) {
	s := FromSnapshot(Snapshot{
		Projects:      []models.Project{{ID: 7}},
		Members:       []models.Member{{ID: 3}},
		NextProjectID: 2,
	})

	assert.Equal(t, types.ProjectID(8), s.NextProjectID())
	assert.Equal(t, types.MemberID(4), s.NextMemberID())
}

func TestReconcileRepairsHalfLinks(t *testing.T) {
	s := FromSnapshot(Snapshot{
		Projects: []models.Project{
			{ID: 1, AssignedMemberIDs: []types.MemberID{1, 1, 9}},
			{ID: 2},
		},
		Members: []models.Member{
			{ID: 1},
			{ID: 2, AssignedProjectIDs: []types.ProjectID{2, 5}},
		},
	})
	require.Error(t, s.CheckLinks())

	repairs := s.Reconcile(TrustBoth)
	assert.Equal(t, 5, repairs)
	require.NoError(t, s.CheckLinks())

	p2, _ := s.GetProject(2)
	assert.Equal(t, []types.MemberID{2}, p2.AssignedMemberIDs)
	m1, _ := s.GetMember(1)
	assert.Equal(t, []types.ProjectID{1}, m1.AssignedProjectIDs)
}

func TestReconcileDropsUntrustedHalfLinks(t *testing.T) {
	snap := Snapshot{
		Projects: []models.Project{
			{ID: 1},
			{ID: 2, AssignedMemberIDs: []types.MemberID{2}},
		},
		Members: []models.Member{
			{ID: 1, AssignedProjectIDs: []types.ProjectID{1}},
			{ID: 2},
		},
	}

	tests := []struct {
		name      string
		authority LinkAuthority
		project1  []types.MemberID
		project2  []types.MemberID
		member1   []types.ProjectID
		member2   []types.ProjectID
	}{
		{"projects win", TrustProjects, []types.MemberID{}, []types.MemberID{2}, []types.ProjectID{}, []types.ProjectID{2}},
		{"members win", TrustMembers, []types.MemberID{1}, []types.MemberID{}, []types.ProjectID{1}, []types.ProjectID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromSnapshot(snap)

			assert.Equal(t, 2, s.Reconcile(tt.authority))
			require.NoError(t, s.CheckLinks())

			p1, _ := s.GetProject(1)
			p2, _ := s.GetProject(2)
			m1, _ := s.GetMember(1)
			m2, _ := s.GetMember(2)
			assert.Equal(t, tt.project1, p1.AssignedMemberIDs)
			assert.Equal(t, tt.project2, p2.AssignedMemberIDs)
			assert.Equal(t, tt.member1, m1.AssignedProjectIDs)
			assert.Equal(t, tt.member2, m2.AssignedProjectIDs)
		})
	}
}
