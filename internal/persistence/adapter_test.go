package persistence

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/huddle/internal/kv/core"
	"github.com/thenoetrevino/huddle/internal/kv/memory"
	"github.com/thenoetrevino/huddle/internal/metrics"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/store"
	"github.com/thenoetrevino/huddle/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var fixedNow = time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

func newTestAdapter(t *testing.T) (*Adapter, *memory.Store, *metrics.Metrics) {
	t.Helper()
	kv := memory.New()
	m := metrics.New()
	a := NewAdapter(kv, WithMetrics(m), WithClock(func() time.Time { return fixedNow }))
	return a, kv, m
}

func metricsText(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	return buf.String()
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestLoad_EmptyStoreUsesSeed(t *testing.T) {
	a, _, m := newTestAdapter(t)

	snap, report := a.Load(context.Background())

	assert.True(t, report.UsedSeed())
	assert.Equal(t, SourceSeed, report.Projects.Source)
	assert.Equal(t, SourceSeed, report.Members.Source)
	assert.NoError(t, report.Projects.Err, "a missing record is not an error")
	assert.Zero(t, report.Repairs)

	require.Len(t, snap.Projects, 4)
	require.Len(t, snap.Members, 4)
	assert.Equal(t, types.ProjectID(5), snap.NextProjectID)
	assert.Equal(t, types.MemberID(5), snap.NextMemberID)
	assert.Equal(t, fixedNow, snap.Projects[0].UpdatedAt)

	require.NoError(t, store.FromSnapshot(snap).CheckLinks())

	out := metricsText(t, m)
	assert.Contains(t, out, `huddle_persistence_load_fallbacks_total{record="dashboard_projects"} 1`)
	assert.Contains(t, out, `huddle_persistence_load_fallbacks_total{record="dashboard_team_members"} 1`)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	a, _, _ := newTestAdapter(t)
	ctx := context.Background()

	salary := 52000.0
	original := store.Snapshot{
		Projects: []models.Project{{
			ID:                7,
			Name:              "Inventory System",
			Description:       "Tracks stock across warehouses",
			Progress:          85,
			Status:            models.StatusTesting,
			Priority:          models.PriorityHigh,
			CreatedAt:         fixedNow.Add(-48 * time.Hour),
			UpdatedAt:         fixedNow,
			AssignedMemberIDs: []types.MemberID{3},
		}},
		Members: []models.Member{{
			ID:                 3,
			Name:               "Ana Garcia",
			Email:              "ana@example.com",
			Role:               models.RoleQA,
			Department:         "IT",
			Status:             models.MemberVacation,
			Skills:             []string{"Go", "SQL"},
			Salary:             &salary,
			Avatar:             "AG",
			JoinDate:           fixedNow.AddDate(0, -3, 0),
			CreatedAt:          fixedNow.AddDate(0, -3, 0),
			UpdatedAt:          fixedNow,
			AssignedProjectIDs: []types.ProjectID{7},
		}},
		NextProjectID: 12,
		NextMemberID:  4,
	}

	require.NoError(t, a.Save(ctx, original))

	loaded, report := a.Load(ctx)
	assert.False(t, report.UsedSeed())
	assert.Zero(t, report.Repairs)
	assert.Equal(t, original, loaded)
}

func TestLoad_CorruptRecordFallsBackPerCollection(t *testing.T) {
	a, kv, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, ProjectsKey, []byte("{not json")))
	require.NoError(t, kv.Put(ctx, MembersKey, []byte(`{"members":[{"id":9,"name":"Solo","email":"solo@example.com","role":"Tester","department":"QA","status":"active","assignedProjectIds":[1,99]}],"nextId":3}`)))

	snap, report := a.Load(ctx)

	assert.Equal(t, SourceSeed, report.Projects.Source)
	assert.Error(t, report.Projects.Err)
	assert.Equal(t, SourceStored, report.Members.Source)

	require.Len(t, snap.Projects, 4)
	require.Len(t, snap.Members, 1)
	solo := snap.Members[0]
	assert.Equal(t, models.RoleQA, solo.Role)
	assert.Equal(t, models.MemberActive, solo.Status)
	assert.Equal(t, []string{}, solo.Skills)
	assert.Equal(t, types.MemberID(10), snap.NextMemberID)

	// the stored members win: project 99 does not exist, project 1 gains the
	// mirrored link and the seed projects drop links to seed members
	assert.Equal(t, []types.ProjectID{1}, solo.AssignedProjectIDs)
	for _, p := range snap.Projects {
		if p.ID == 1 {
			assert.Equal(t, []types.MemberID{9}, p.AssignedMemberIDs)
		} else {
			assert.Empty(t, p.AssignedMemberIDs)
		}
	}
	assert.Positive(t, report.Repairs)
	require.NoError(t, store.FromSnapshot(snap).CheckLinks())
}

func TestLoad_SeedMembersDoNotJoinStoredProjects(t *testing.T) {
	a, kv, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, ProjectsKey, []byte(`{"projects":[{"id":1,"name":"Client Portal","description":"Self service portal","progress":20,"priority":"Low","assignedMemberIds":[]}],"nextId":2}`)))
	require.NoError(t, kv.Put(ctx, MembersKey, []byte("{corrupt")))

	snap, report := a.Load(ctx)

	assert.Equal(t, SourceStored, report.Projects.Source)
	assert.Equal(t, SourceSeed, report.Members.Source)

	require.Len(t, snap.Projects, 1)
	assert.Empty(t, snap.Projects[0].AssignedMemberIDs)

	require.Len(t, snap.Members, 4)
	for _, m := range snap.Members {
		assert.Empty(t, m.AssignedProjectIDs, "member %d", m.ID)
	}

	// seed members 1 and 2 pointed at project 1; the other seed links dangle
	assert.Equal(t, 7, report.Repairs)
	require.NoError(t, store.FromSnapshot(snap).CheckLinks())
}

func TestLoad_RejectsDuplicateIDs(t *testing.T) {
	a, kv, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, ProjectsKey, []byte(`{"projects":[{"id":1,"name":"a"},{"id":1,"name":"b"}],"nextId":2}`)))

	snap, report := a.Load(ctx)
	assert.Equal(t, SourceSeed, report.Projects.Source)
	assert.Len(t, snap.Projects, 4)
}

func TestLoad_NormalizesStoredProjects(t *testing.T) {
	a, kv, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, ProjectsKey, []byte(`[{"id":2,"name":"Legacy","progress":140,"status":"En desarrollo","priority":"high"}]`)))
	require.NoError(t, kv.Put(ctx, MembersKey, []byte(`{"members":[],"nextId":1}`)))

	snap, report := a.Load(ctx)
	assert.False(t, report.UsedSeed())

	require.Len(t, snap.Projects, 1)
	p := snap.Projects[0]
	assert.Equal(t, 100, p.Progress)
	assert.Equal(t, models.StatusCompleted, p.Status)
	assert.Equal(t, models.PriorityHigh, p.Priority)
	assert.Equal(t, []types.MemberID{}, p.AssignedMemberIDs)
	assert.Equal(t, types.ProjectID(3), snap.NextProjectID)
	assert.Empty(t, snap.Members)
}

func TestSave_FailureWrapsPersistenceError(t *testing.T) {
	a, kv, m := newTestAdapter(t)
	kv.FailPuts(errors.New("quota exceeded"))

	err := a.Save(context.Background(), store.New().Snapshot())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrPersistence)
	assert.Contains(t, err.Error(), "quota exceeded")

	assert.Contains(t, metricsText(t, m), `huddle_persistence_saves_total{result="error"} 1`)
}

func TestAutoSaver_PersistsCurrentStore(t *testing.T) {
	a, kv, _ := newTestAdapter(t)
	ctx := context.Background()

	s := store.New()
	require.NoError(t, s.Write(func(tx *store.Tx) error {
		tx.PrependProject(models.Project{ID: tx.AllocProjectID(), Name: "Alpha", Status: models.StatusPlanning, Priority: models.PriorityLow})
		return nil
	}))

	require.NoError(t, NewAutoSaver(a, s).Persist(ctx))

	data, err := kv.Get(ctx, ProjectsKey)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"nextId": 2`)
	assert.Contains(t, string(data), `"lastSaved": "2024-06-15T09:30:00Z"`)

	_, err = kv.Get(ctx, MembersKey)
	assert.NotErrorIs(t, err, core.ErrNotFound)
}
