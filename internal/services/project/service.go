package project

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/huddle/internal/events"
	"github.com/thenoetrevino/huddle/internal/metrics"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/notify"
	"github.com/thenoetrevino/huddle/internal/persistence"
	"github.com/thenoetrevino/huddle/internal/services/confirm"
	"github.com/thenoetrevino/huddle/internal/store"
	"github.com/thenoetrevino/huddle/internal/types"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id types.ProjectID) (models.Project, error)
	AssignedMembers(ctx context.Context, id types.ProjectID) ([]models.Member, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (models.Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (models.Project, error)
	UpdateProgress(ctx context.Context, id types.ProjectID, delta int) (models.Project, error)
	Assign(ctx context.Context, id types.ProjectID, memberIDs []types.MemberID) (models.Project, error)
	AddMember(ctx context.Context, id types.ProjectID, memberID types.MemberID) error
	RemoveMember(ctx context.Context, id types.ProjectID, memberID types.MemberID) error

	// Two-step delete
	RequestDelete(ctx context.Context, id types.ProjectID) (confirm.Token, error)
	ConfirmDelete(ctx context.Context, token confirm.Token) (models.Project, error)
	CancelDelete(token confirm.Token)
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name        string
	Description string
	Priority    string
}

// UpdateProjectRequest encapsulates data for updating a project.
// Nil fields are left unchanged.
type UpdateProjectRequest struct {
	ID          types.ProjectID
	Name        *string
	Description *string
	Priority    *string
}

// Deps are the collaborators of the project service. Store is required.
type Deps struct {
	Store    *store.Store
	Saver    persistence.Saver
	Events   events.EventPublisher
	Notifier notify.Notifier
	Confirm  *confirm.Registry
	Metrics  *metrics.Metrics
	Clock    func() time.Time
}

// service implements Service interface
type service struct {
	store    *store.Store
	saver    persistence.Saver
	events   events.EventPublisher
	notifier notify.Notifier
	confirm  *confirm.Registry
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewService creates a new project service
func NewService(deps Deps) Service {
	s := &service{
		store:    deps.Store,
		saver:    deps.Saver,
		events:   deps.Events,
		notifier: deps.Notifier,
		confirm:  deps.Confirm,
		metrics:  deps.Metrics,
		now:      deps.Clock,
	}
	if s.notifier == nil {
		s.notifier = notify.Nop{}
	}
	if s.confirm == nil {
		s.confirm = confirm.NewRegistry()
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	return s
}

// ListProjects returns every project, newest first
func (s *service) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.store.ListProjects(), nil
}

// GetProject retrieves a specific project
func (s *service) GetProject(ctx context.Context, id types.ProjectID) (models.Project, error) {
	if id <= 0 {
		return models.Project{}, ErrInvalidProjectID
	}
	p, ok := s.store.GetProject(id)
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %d", ErrProjectNotFound, id)
	}
	return p, nil
}

// AssignedMembers resolves the project's assignments in assignment order
func (s *service) AssignedMembers(ctx context.Context, id types.ProjectID) ([]models.Member, error) {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	members := make([]models.Member, 0, len(p.AssignedMemberIDs))
	for _, mid := range p.AssignedMemberIDs {
		if m, ok := s.store.GetMember(mid); ok {
			members = append(members, m)
		}
	}
	return members, nil
}

// CreateProject validates the request and adds a new project at the head of the list.
// New projects start at 0% in Planning with no assignments.
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (models.Project, error) {
	name, description := strings.TrimSpace(req.Name), strings.TrimSpace(req.Description)
	if err := ValidateName(name); err != nil {
		return models.Project{}, err
	}
	if err := ValidateDescription(description); err != nil {
		return models.Project{}, err
	}
	priority, ok := models.ParsePriority(req.Priority)
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %q", ErrInvalidPriority, req.Priority)
	}

	var created models.Project
	err := s.store.Write(func(tx *store.Tx) error {
		now := s.now()
		p := tx.PrependProject(models.Project{
			ID:                tx.AllocProjectID(),
			Name:              name,
			Description:       description,
			Progress:          models.MinProgress,
			Status:            models.StatusForProgress(models.MinProgress),
			Priority:          priority,
			CreatedAt:         now,
			UpdatedAt:         now,
			AssignedMemberIDs: []types.MemberID{},
		})
		created = p.Clone()
		return nil
	})
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	s.commit(ctx, "create", events.Event{Type: events.EventProjectsChanged, ProjectID: created.ID.ToInt()})
	return created, nil
}

// UpdateProject edits name, description and priority. Progress and status only
// change through UpdateProgress.
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (models.Project, error) {
	if req.ID <= 0 {
		return models.Project{}, ErrInvalidProjectID
	}

	var name, description *string
	if req.Name != nil {
		v := strings.TrimSpace(*req.Name)
		if err := ValidateName(v); err != nil {
			return models.Project{}, err
		}
		name = &v
	}
	if req.Description != nil {
		v := strings.TrimSpace(*req.Description)
		if err := ValidateDescription(v); err != nil {
			return models.Project{}, err
		}
		description = &v
	}
	var priority *models.Priority
	if req.Priority != nil {
		v, ok := models.ParsePriority(*req.Priority)
		if !ok {
			return models.Project{}, fmt.Errorf("%w: %q", ErrInvalidPriority, *req.Priority)
		}
		priority = &v
	}

	var updated models.Project
	err := s.store.Write(func(tx *store.Tx) error {
		p := tx.Project(req.ID)
		if p == nil {
			return fmt.Errorf("%w: %d", ErrProjectNotFound, req.ID)
		}
		if name != nil {
			p.Name = *name
		}
		if description != nil {
			p.Description = *description
		}
		if priority != nil {
			p.Priority = *priority
		}
		p.UpdatedAt = s.now()
		updated = p.Clone()
		return nil
	})
	if err != nil {
		return models.Project{}, err
	}

	s.commit(ctx, "update", events.Event{Type: events.EventProjectsChanged, ProjectID: req.ID.ToInt()})
	return updated, nil
}

// UpdateProgress adds delta to the project's progress, clamps the result to
// [0,100] and recomputes the status from it.
func (s *service) UpdateProgress(ctx context.Context, id types.ProjectID, delta int) (models.Project, error) {
	var updated models.Project
	err := s.store.Write(func(tx *store.Tx) error {
		p := tx.Project(id)
		if p == nil {
			return fmt.Errorf("%w: %d", ErrProjectNotFound, id)
		}
		p.Progress = models.ClampProgress(p.Progress + delta)
		p.Status = models.StatusForProgress(p.Progress)
		p.UpdatedAt = s.now()
		updated = p.Clone()
		return nil
	})
	if err != nil {
		return models.Project{}, err
	}

	s.commit(ctx, "progress", events.Event{Type: events.EventProjectsChanged, ProjectID: id.ToInt()})
	return updated, nil
}

// Assign replaces the project's assignments with memberIDs. Duplicates and
// unknown members are dropped; input order is kept. Members gaining or losing
// the project are updated in the same write.
func (s *service) Assign(ctx context.Context, id types.ProjectID, memberIDs []types.MemberID) (models.Project, error) {
	var updated models.Project
	err := s.store.Write(func(tx *store.Tx) error {
		p := tx.Project(id)
		if p == nil {
			return fmt.Errorf("%w: %d", ErrProjectNotFound, id)
		}

		desired := make([]types.MemberID, 0, len(memberIDs))
		for _, mid := range memberIDs {
			if tx.Member(mid) == nil || slices.Contains(desired, mid) {
				continue
			}
			desired = append(desired, mid)
		}

		for _, mid := range slices.Clone(p.AssignedMemberIDs) {
			if !slices.Contains(desired, mid) {
				tx.Unlink(id, mid)
			}
		}
		p.AssignedMemberIDs = desired
		for _, mid := range desired {
			if m := tx.Member(mid); !m.HasProject(id) {
				m.AssignedProjectIDs = append(m.AssignedProjectIDs, id)
			}
		}

		p.UpdatedAt = s.now()
		updated = p.Clone()
		return nil
	})
	if err != nil {
		return models.Project{}, err
	}

	s.commit(ctx, "assign", events.Event{Type: events.EventLinksChanged, ProjectID: id.ToInt()})
	return updated, nil
}

// AddMember assigns a single member to the project
func (s *service) AddMember(ctx context.Context, id types.ProjectID, memberID types.MemberID) error {
	err := s.store.Write(func(tx *store.Tx) error {
		p := tx.Project(id)
		if p == nil {
			return fmt.Errorf("%w: %d", ErrProjectNotFound, id)
		}
		if tx.Member(memberID) == nil {
			return fmt.Errorf("%w: %d", ErrMemberNotFound, memberID)
		}
		if p.HasMember(memberID) {
			return ErrAlreadyAssigned
		}
		tx.Link(id, memberID)
		p.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return err
	}

	s.commit(ctx, "add_member", events.Event{Type: events.EventLinksChanged, ProjectID: id.ToInt(), MemberID: memberID.ToInt()})
	return nil
}

// RemoveMember drops a single assignment. Removing a member that is not
// assigned is a no-op.
func (s *service) RemoveMember(ctx context.Context, id types.ProjectID, memberID types.MemberID) error {
	removed := false
	err := s.store.Write(func(tx *store.Tx) error {
		p := tx.Project(id)
		if p == nil {
			return fmt.Errorf("%w: %d", ErrProjectNotFound, id)
		}
		if tx.Member(memberID) == nil {
			return fmt.Errorf("%w: %d", ErrMemberNotFound, memberID)
		}
		if removed = tx.Unlink(id, memberID); removed {
			p.UpdatedAt = s.now()
		}
		return nil
	})
	if err != nil || !removed {
		return err
	}

	s.commit(ctx, "remove_member", events.Event{Type: events.EventLinksChanged, ProjectID: id.ToInt(), MemberID: memberID.ToInt()})
	return nil
}

// RequestDelete issues a confirmation token for deleting the project
func (s *service) RequestDelete(ctx context.Context, id types.ProjectID) (confirm.Token, error) {
	if _, err := s.GetProject(ctx, id); err != nil {
		return "", err
	}
	return s.confirm.Issue(confirm.KindProject, id.ToInt()), nil
}

// ConfirmDelete redeems the token, deletes the project and scrubs it from every
// member's assignments. It returns the deleted project.
func (s *service) ConfirmDelete(ctx context.Context, token confirm.Token) (models.Project, error) {
	raw, err := s.confirm.Redeem(token, confirm.KindProject)
	if err != nil {
		return models.Project{}, err
	}
	id := types.ProjectID(raw)

	var deleted models.Project
	err = s.store.Write(func(tx *store.Tx) error {
		p := tx.Project(id)
		if p == nil {
			return fmt.Errorf("%w: %d", ErrProjectNotFound, id)
		}
		deleted = p.Clone()
		tx.RemoveProject(id)
		return nil
	})
	if err != nil {
		return models.Project{}, err
	}

	s.commit(ctx, "delete", events.Event{Type: events.EventProjectsChanged, ProjectID: id.ToInt()})
	return deleted, nil
}

// CancelDelete abandons a pending delete
func (s *service) CancelDelete(token confirm.Token) {
	s.confirm.Cancel(token)
}

// commit runs the post-mutation steps: count, persist, publish.
// A failed save leaves the in-memory change in place and warns the user.
func (s *service) commit(ctx context.Context, op string, ev events.Event) {
	s.metrics.Mutation("project", op)

	if s.saver != nil {
		if err := s.saver.Persist(ctx); err != nil {
			slog.Error("failed to persist project change", "op", op, "project_id", ev.ProjectID, "error", err)
			s.notifier.Notify(notify.LevelWarning, "Changes could not be saved: "+err.Error())
		}
	}

	ev.Timestamp = s.now()
	_ = events.Publish(s.events, ev)
}

// ValidateName checks a trimmed project name against the length limits
func ValidateName(name string) error {
	if n := utf8.RuneCountInString(name); n < models.ProjectNameMin || n > models.ProjectNameMax {
		return ErrNameLength
	}
	return nil
}

// ValidateDescription checks a trimmed description against the length limits
func ValidateDescription(description string) error {
	if n := utf8.RuneCountInString(description); n < models.ProjectDescriptionMin || n > models.ProjectDescriptionMax {
		return ErrDescriptionLength
	}
	return nil
}

// ValidatePriority checks that priority names Low, Medium or High
func ValidatePriority(priority string) error {
	if _, ok := models.ParsePriority(priority); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}
	return nil
}
