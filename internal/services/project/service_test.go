package project

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/huddle/internal/events"
	"github.com/thenoetrevino/huddle/internal/kv/memory"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/notify"
	"github.com/thenoetrevino/huddle/internal/persistence"
	"github.com/thenoetrevino/huddle/internal/services/confirm"
	"github.com/thenoetrevino/huddle/internal/store"
	"github.com/thenoetrevino/huddle/internal/testutil"
	"github.com/thenoetrevino/huddle/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type harness struct {
	svc    Service
	store  *store.Store
	kv     *memory.Store
	events *testutil.EventRecorder
	notes  *testutil.NotifyRecorder
	clock  *testutil.Clock
}

func newHarness(t *testing.T, st *store.Store) *harness {
	t.Helper()
	kv := memory.New()
	clock := testutil.NewClock(testutil.ReferenceTime)
	h := &harness{
		store:  st,
		kv:     kv,
		events: testutil.NewEventRecorder(),
		notes:  &testutil.NotifyRecorder{},
		clock:  clock,
	}
	adapter := persistence.NewAdapter(kv, persistence.WithClock(clock.Now))
	h.svc = NewService(Deps{
		Store:    st,
		Saver:    persistence.NewAutoSaver(adapter, st),
		Events:   h.events,
		Notifier: h.notes,
		Clock:    clock.Now,
	})
	return h
}

func createProject(t *testing.T, h *harness, name string) models.Project {
	t.Helper()
	p, err := h.svc.CreateProject(context.Background(), CreateProjectRequest{
		Name:        name,
		Description: "A project used by the service tests",
		Priority:    "medium",
	})
	require.NoError(t, err)
	return p
}

func ptr(s string) *string { return &s }

// ============================================================================
// CREATE
// ============================================================================

func TestCreateProject(t *testing.T) {
	h := newHarness(t, testutil.SeededStore(t))
	ctx := context.Background()

	p, err := h.svc.CreateProject(ctx, CreateProjectRequest{
		Name:        "  Inventory System  ",
		Description: "Tracks stock levels across warehouses",
		Priority:    "high",
	})
	require.NoError(t, err)

	assert.Equal(t, types.ProjectID(5), p.ID)
	assert.Equal(t, "Inventory System", p.Name)
	assert.Equal(t, 0, p.Progress)
	assert.Equal(t, models.StatusPlanning, p.Status)
	assert.Equal(t, models.PriorityHigh, p.Priority)
	assert.Empty(t, p.AssignedMemberIDs)
	assert.Equal(t, testutil.ReferenceTime, p.CreatedAt)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	all, err := h.svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, p.ID, all[0].ID, "new projects are listed first")

	_, err = h.kv.Get(ctx, persistence.ProjectsKey)
	require.NoError(t, err, "create persists")
	assert.Equal(t, []events.EventType{events.EventProjectsChanged}, h.events.Types())
}

func TestCreateProject_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateProjectRequest
		wantErr error
	}{
		{"short name", CreateProjectRequest{Name: "ab", Description: "long enough text", Priority: "Low"}, ErrNameLength},
		{"blank name", CreateProjectRequest{Name: "     ", Description: "long enough text", Priority: "Low"}, ErrNameLength},
		{"short description", CreateProjectRequest{Name: "Valid", Description: "too short", Priority: "Low"}, ErrDescriptionLength},
		{"unknown priority", CreateProjectRequest{Name: "Valid", Description: "long enough text", Priority: "urgent"}, ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, store.New())

			_, err := h.svc.CreateProject(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrValidation)

			assert.Empty(t, h.store.ListProjects(), "no mutation on validation failure")
			assert.Equal(t, types.ProjectID(1), h.store.NextProjectID(), "no id consumed")
			assert.Empty(t, h.events.Events())
		})
	}
}

func TestFieldValidators(t *testing.T) {
	assert.ErrorIs(t, ValidateName("ab"), ErrNameLength)
	assert.NoError(t, ValidateName("abc"))
	assert.ErrorIs(t, ValidateDescription("too short"), ErrDescriptionLength)
	assert.NoError(t, ValidateDescription("long enough text"))
	assert.ErrorIs(t, ValidatePriority("urgent"), ErrInvalidPriority)
	assert.NoError(t, ValidatePriority("high"))
}

// ============================================================================
// PROGRESS
// ============================================================================

func TestUpdateProgress_SeventyPlusFifteen(t *testing.T) {
	h := newHarness(t, store.New())
	ctx := context.Background()
	p := createProject(t, h, "Progress")

	p, err := h.svc.UpdateProgress(ctx, p.ID, 70)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInDevelopment, p.Status)

	h.clock.Advance(1000)
	p, err = h.svc.UpdateProgress(ctx, p.ID, 15)
	require.NoError(t, err)
	assert.Equal(t, 85, p.Progress)
	assert.Equal(t, models.StatusTesting, p.Status)
	assert.True(t, p.UpdatedAt.After(p.CreatedAt))
}

func TestUpdateProgress_Clamps(t *testing.T) {
	tests := []struct {
		start, delta int
		want         int
		status       models.ProjectStatus
	}{
		{0, -10, 0, models.StatusPlanning},
		{95, 10, 100, models.StatusCompleted},
		{10, 10, 20, models.StatusInDevelopment},
		{50, -45, 5, models.StatusDevelopment},
		{30, 500, 100, models.StatusCompleted},
		{100, -20, 80, models.StatusTesting},
	}

	for _, tt := range tests {
		h := newHarness(t, store.New())
		ctx := context.Background()
		p := createProject(t, h, "Clamp")

		if tt.start > 0 {
			_, err := h.svc.UpdateProgress(ctx, p.ID, tt.start)
			require.NoError(t, err)
		}

		got, err := h.svc.UpdateProgress(ctx, p.ID, tt.delta)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Progress, "start %d delta %d", tt.start, tt.delta)
		assert.Equal(t, tt.status, got.Status, "start %d delta %d", tt.start, tt.delta)
	}
}

func TestUpdateProgress_NotFound(t *testing.T) {
	h := newHarness(t, store.New())

	_, err := h.svc.UpdateProgress(context.Background(), 42, 10)
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, h.events.Events())
}

func TestUpdateProgress_SaveFailureStillApplies(t *testing.T) {
	h := newHarness(t, store.New())
	p := createProject(t, h, "Unsaved")

	h.kv.FailPuts(errors.New("disk full"))

	got, err := h.svc.UpdateProgress(context.Background(), p.ID, 30)
	require.NoError(t, err, "persistence failures do not fail the mutation")
	assert.Equal(t, 30, got.Progress)

	stored, ok := h.store.GetProject(p.ID)
	require.True(t, ok)
	assert.Equal(t, 30, stored.Progress)
	assert.Equal(t, 1, h.notes.Count(notify.LevelWarning))
}

// ============================================================================
// UPDATE
// ============================================================================

func TestUpdateProject(t *testing.T) {
	h := newHarness(t, testutil.SeededStore(t))
	ctx := context.Background()

	got, err := h.svc.UpdateProject(ctx, UpdateProjectRequest{ID: 2, Name: ptr("Storefront App"), Priority: ptr("LOW")})
	require.NoError(t, err)
	assert.Equal(t, "Storefront App", got.Name)
	assert.Equal(t, models.PriorityLow, got.Priority)
	assert.Equal(t, "Mobile storefront application with a shopping cart", got.Description)
	assert.Equal(t, 45, got.Progress, "progress is untouched")
}

func TestUpdateProject_ValidationBeforeNotFound(t *testing.T) {
	h := newHarness(t, store.New())

	_, err := h.svc.UpdateProject(context.Background(), UpdateProjectRequest{ID: 99, Description: ptr("short")})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = h.svc.UpdateProject(context.Background(), UpdateProjectRequest{ID: 99, Name: ptr("Long enough")})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// ============================================================================
// ASSIGNMENTS
// ============================================================================

func TestAssign_SetSemanticsAndMirroring(t *testing.T) {
	h := newHarness(t, testutil.SeededStore(t))
	ctx := context.Background()

	got, err := h.svc.Assign(ctx, 1, []types.MemberID{3, 3, 99, 1})
	require.NoError(t, err)
	assert.Equal(t, []types.MemberID{3, 1}, got.AssignedMemberIDs)

	m2, _ := h.store.GetMember(2)
	assert.NotContains(t, m2.AssignedProjectIDs, types.ProjectID(1), "lost member is unlinked")
	m3, _ := h.store.GetMember(3)
	assert.Contains(t, m3.AssignedProjectIDs, types.ProjectID(1), "gained member is linked")

	require.NoError(t, h.store.CheckLinks())
	assert.Equal(t, []events.EventType{events.EventLinksChanged}, h.events.Types())
}

func TestAssign_EmptyClearsAssignments(t *testing.T) {
	h := newHarness(t, testutil.SeededStore(t))

	got, err := h.svc.Assign(context.Background(), 3, nil)
	require.NoError(t, err)
	assert.Empty(t, got.AssignedMemberIDs)

	for _, m := range h.store.ListMembers() {
		assert.NotContains(t, m.AssignedProjectIDs, types.ProjectID(3))
	}
	require.NoError(t, h.store.CheckLinks())
}

func TestAssign_UnknownProject(t *testing.T) {
	h := newHarness(t, testutil.SeededStore(t))

	_, err := h.svc.Assign(context.Background(), 77, []types.MemberID{1})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddAndRemoveMember(t *testing.T) {
	h := newHarness(t, testutil.SeededStore(t))
	ctx := context.Background()

	require.NoError(t, h.svc.AddMember(ctx, 4, 1))
	err := h.svc.AddMember(ctx, 4, 1)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	assert.ErrorIs(t, err, models.ErrConflict)

	assert.ErrorIs(t, h.svc.AddMember(ctx, 4, 50), ErrMemberNotFound)
	assert.ErrorIs(t, h.svc.AddMember(ctx, 50, 1), ErrProjectNotFound)

	members, err := h.svc.AssignedMembers(ctx, 4)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, types.MemberID(2), members[0].ID)
	assert.Equal(t, types.MemberID(1), members[1].ID)

	require.NoError(t, h.svc.RemoveMember(ctx, 4, 1))
	require.NoError(t, h.svc.RemoveMember(ctx, 4, 1), "removing twice is a no-op")
	require.NoError(t, h.store.CheckLinks())

	assert.Len(t, h.events.Events(), 2, "the no-op removal publishes nothing")
}

// ============================================================================
// DELETE
// ============================================================================

func TestDelete_TwoStepScrubsMembers(t *testing.T) {
	h := newHarness(t, testutil.SeededStore(t))
	ctx := context.Background()

	token, err := h.svc.RequestDelete(ctx, 1)
	require.NoError(t, err)

	_, ok := h.store.GetProject(1)
	assert.True(t, ok, "requesting does not delete")

	deleted, err := h.svc.ConfirmDelete(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Advanced Inventory System", deleted.Name)

	_, ok = h.store.GetProject(1)
	assert.False(t, ok)
	for _, m := range h.store.ListMembers() {
		assert.NotContains(t, m.AssignedProjectIDs, types.ProjectID(1))
	}
	require.NoError(t, h.store.CheckLinks())

	_, err = h.svc.ConfirmDelete(ctx, token)
	assert.ErrorIs(t, err, confirm.ErrUnknownToken)
}

func TestDelete_Cancel(t *testing.T) {
	h := newHarness(t, testutil.SeededStore(t))
	ctx := context.Background()

	token, err := h.svc.RequestDelete(ctx, 2)
	require.NoError(t, err)
	h.svc.CancelDelete(token)

	_, err = h.svc.ConfirmDelete(ctx, token)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, ok := h.store.GetProject(2)
	assert.True(t, ok)
}

func TestRequestDelete_UnknownProject(t *testing.T) {
	h := newHarness(t, store.New())

	_, err := h.svc.RequestDelete(context.Background(), 3)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetProject_InvalidID(t *testing.T) {
	h := newHarness(t, store.New())

	_, err := h.svc.GetProject(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidProjectID)
}
