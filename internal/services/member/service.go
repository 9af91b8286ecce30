package member

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/huddle/internal/events"
	"github.com/thenoetrevino/huddle/internal/metrics"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/notify"
	"github.com/thenoetrevino/huddle/internal/persistence"
	"github.com/thenoetrevino/huddle/internal/services/confirm"
	"github.com/thenoetrevino/huddle/internal/store"
	"github.com/thenoetrevino/huddle/internal/types"
)

// Service defines all team member business operations
type Service interface {
	// Read operations
	ListMembers(ctx context.Context, filter Filter) ([]models.Member, error)
	GetMember(ctx context.Context, id types.MemberID) (models.Member, error)
	Projects(ctx context.Context, id types.MemberID) ([]models.Project, error)
	EmailInUse(ctx context.Context, email string, except types.MemberID) bool

	// Write operations
	CreateMember(ctx context.Context, req CreateMemberRequest) (models.Member, error)
	UpdateMember(ctx context.Context, req UpdateMemberRequest) (models.Member, error)

	// Two-step delete
	RequestDelete(ctx context.Context, id types.MemberID) (confirm.Token, error)
	ConfirmDelete(ctx context.Context, token confirm.Token) (models.Member, error)
	CancelDelete(token confirm.Token)
}

// CreateMemberRequest encapsulates the member form. Role, Status and Skills are
// raw user input; Skills is comma separated.
type CreateMemberRequest struct {
	Name       string
	Email      string
	Role       string
	Department string
	Phone      string
	Location   string
	Status     string
	Salary     *float64
	Skills     string
}

// UpdateMemberRequest replaces every mutable field of member ID
type UpdateMemberRequest struct {
	ID types.MemberID
	CreateMemberRequest
}

// Filter narrows ListMembers. Empty fields match everything.
type Filter struct {
	// Query matches name, email or any skill, ignoring case
	Query      string
	Role       string
	Department string
}

// Deps are the collaborators of the member service. Store is required.
type Deps struct {
	Store    *store.Store
	Saver    persistence.Saver
	Events   events.EventPublisher
	Notifier notify.Notifier
	Confirm  *confirm.Registry
	Metrics  *metrics.Metrics
	Clock    func() time.Time
}

type service struct {
	store    *store.Store
	saver    persistence.Saver
	events   events.EventPublisher
	notifier notify.Notifier
	confirm  *confirm.Registry
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewService creates a new member service
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

// ListMembers returns the members matching filter, newest first
func (s *service) ListMembers(ctx context.Context, filter Filter) ([]models.Member, error) {
	var role models.Role
	if strings.TrimSpace(filter.Role) != "" {
		r, ok := models.ParseRole(filter.Role)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRole, filter.Role)
		}
		role = r
	}
	query := strings.TrimSpace(filter.Query)
	department := strings.TrimSpace(filter.Department)

	all := s.store.ListMembers()
	out := make([]models.Member, 0, len(all))
	for _, m := range all {
		if role != "" && m.Role != role {
			continue
		}
		if department != "" && !strings.EqualFold(m.Department, department) {
			continue
		}
		if query != "" && !matchesQuery(m, query) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func matchesQuery(m models.Member, query string) bool {
	if contains(m.Name, query) || contains(m.Email, query) {
		return true
	}
	for _, skill := range m.Skills {
		if contains(skill, query) {
			return true
		}
	}
	return false
}

// GetMember retrieves a specific member
func (s *service) GetMember(ctx context.Context, id types.MemberID) (models.Member, error) {
	if id <= 0 {
		return models.Member{}, ErrInvalidMemberID
	}
	m, ok := s.store.GetMember(id)
	if !ok {
		return models.Member{}, fmt.Errorf("%w: %d", ErrMemberNotFound, id)
	}
	return m, nil
}

// Projects resolves the projects the member is assigned to
func (s *service) Projects(ctx context.Context, id types.MemberID) ([]models.Project, error) {
	m, err := s.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}
	projects := make([]models.Project, 0, len(m.AssignedProjectIDs))
	for _, pid := range m.AssignedProjectIDs {
		if p, ok := s.store.GetProject(pid); ok {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

// EmailInUse reports whether another member than except already has email,
// ignoring case
func (s *service) EmailInUse(ctx context.Context, email string, except types.MemberID) bool {
	key := foldEmail(email)
	for _, m := range s.store.ListMembers() {
		if m.ID != except && foldEmail(m.Email) == key {
			return true
		}
	}
	return false
}

// CreateMember validates the form and adds the member at the head of the list
func (s *service) CreateMember(ctx context.Context, req CreateMemberRequest) (models.Member, error) {
	f, err := validate(req)
	if err != nil {
		return models.Member{}, err
	}

	var created models.Member
	err = s.store.Write(func(tx *store.Tx) error {
		if emailTaken(tx, f.email, 0) {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, f.email)
		}
		now := s.now()
		m := tx.PrependMember(models.Member{
			ID:                 tx.AllocMemberID(),
			Name:               f.name,
			Email:              f.email,
			Role:               f.role,
			Department:         f.department,
			Phone:              f.phone,
			Location:           f.location,
			Status:             f.status,
			Skills:             f.skills,
			Salary:             f.salary,
			Avatar:             models.Initials(f.name),
			JoinDate:           now,
			CreatedAt:          now,
			UpdatedAt:          now,
			AssignedProjectIDs: []types.ProjectID{},
		})
		created = m.Clone()
		return nil
	})
	if err != nil {
		return models.Member{}, err
	}

	s.commit(ctx, "create", created.ID)
	return created, nil
}

// UpdateMember overwrites the member's mutable fields. Assignments, join date
// and creation time are kept.
func (s *service) UpdateMember(ctx context.Context, req UpdateMemberRequest) (models.Member, error) {
	if req.ID <= 0 {
		return models.Member{}, ErrInvalidMemberID
	}
	f, err := validate(req.CreateMemberRequest)
	if err != nil {
		return models.Member{}, err
	}

	var updated models.Member
	err = s.store.Write(func(tx *store.Tx) error {
		m := tx.Member(req.ID)
		if m == nil {
			return fmt.Errorf("%w: %d", ErrMemberNotFound, req.ID)
		}
		if emailTaken(tx, f.email, req.ID) {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, f.email)
		}
		m.Name = f.name
		m.Email = f.email
		m.Role = f.role
		m.Department = f.department
		m.Phone = f.phone
		m.Location = f.location
		m.Status = f.status
		m.Skills = f.skills
		m.Salary = f.salary
		m.Avatar = models.Initials(f.name)
		m.UpdatedAt = s.now()
		updated = m.Clone()
		return nil
	})
	if err != nil {
		return models.Member{}, err
	}

	s.commit(ctx, "update", req.ID)
	return updated, nil
}

func emailTaken(tx *store.Tx, email string, except types.MemberID) bool {
	key := foldEmail(email)
	for _, m := range tx.Members() {
		if m.ID != except && foldEmail(m.Email) == key {
			return true
		}
	}
	return false
}

// RequestDelete issues a confirmation token for removing the member
func (s *service) RequestDelete(ctx context.Context, id types.MemberID) (confirm.Token, error) {
	if _, err := s.GetMember(ctx, id); err != nil {
		return "", err
	}
	return s.confirm.Issue(confirm.KindMember, id.ToInt()), nil
}

// ConfirmDelete redeems the token, removes the member and scrubs it from every
// project's assignments. It returns the removed member.
func (s *service) ConfirmDelete(ctx context.Context, token confirm.Token) (models.Member, error) {
	raw, err := s.confirm.Redeem(token, confirm.KindMember)
	if err != nil {
		return models.Member{}, err
	}
	id := types.MemberID(raw)

	var deleted models.Member
	err = s.store.Write(func(tx *store.Tx) error {
		m := tx.Member(id)
		if m == nil {
			return fmt.Errorf("%w: %d", ErrMemberNotFound, id)
		}
		deleted = m.Clone()
		tx.RemoveMember(id)
		return nil
	})
	if err != nil {
		return models.Member{}, err
	}

	s.commit(ctx, "delete", id)
	return deleted, nil
}

// CancelDelete abandons a pending delete
func (s *service) CancelDelete(token confirm.Token) {
	s.confirm.Cancel(token)
}

func (s *service) commit(ctx context.Context, op string, id types.MemberID) {
	s.metrics.Mutation("member", op)

	if s.saver != nil {
		if err := s.saver.Persist(ctx); err != nil {
			slog.Error("failed to persist member change", "op", op, "member_id", id, "error", err)
			s.notifier.Notify(notify.LevelWarning, "Changes could not be saved: "+err.Error())
		}
	}

	_ = events.Publish(s.events, events.Event{
		Type:      events.EventMembersChanged,
		MemberID:  id.ToInt(),
		Timestamp: s.now(),
	})
}
