// Package store holds the authoritative in-memory collections of projects and
// team members together with their id counters.
package store

import (
	"slices"
	"sync"

	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/types"
)

// Snapshot is a detached copy of the store contents, used for persistence
type Snapshot struct {
	Projects      []models.Project
	Members       []models.Member
	NextProjectID types.ProjectID
	NextMemberID  types.MemberID
}

// Store owns the canonical collections. Reads return copies; every mutation goes
// through Write so the services are the only writers.
type Store struct {
	mu            sync.RWMutex
	projects      []*models.Project
	members       []*models.Member
	nextProjectID types.ProjectID
	nextMemberID  types.MemberID
}

// New creates an empty store whose counters start at 1
func New() *Store {
	return &Store{nextProjectID: 1, nextMemberID: 1}
}

// FromSnapshot creates a store pre-populated with snap
func FromSnapshot(snap Snapshot) *Store {
	s := New()
	s.Restore(snap)
	return s
}

// ListProjects returns all projects, newest first
func (s *Store) ListProjects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p.Clone())
	}
	return out
}

// ListMembers returns all members, newest first
func (s *Store) ListMembers() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Member, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, m.Clone())
	}
	return out
}

// GetProject returns a copy of the project with the given id
func (s *Store) GetProject(id types.ProjectID) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Project{}, false
}

// GetMember returns a copy of the member with the given id
func (s *Store) GetMember(id types.MemberID) (models.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.members {
		if m.ID == id {
			return m.Clone(), true
		}
	}
	return models.Member{}, false
}

// NextProjectID returns the id the next created project will receive
func (s *Store) NextProjectID() types.ProjectID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextProjectID
}

// NextMemberID returns the id the next created member will receive
func (s *Store) NextMemberID() types.MemberID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextMemberID
}

// Write runs fn with exclusive access to the collections.
// fn must validate before it mutates: there is no rollback.
func (s *Store) Write(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s})
}

// Snapshot returns a deep copy of the store contents
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Projects:      make([]models.Project, 0, len(s.projects)),
		Members:       make([]models.Member, 0, len(s.members)),
		NextProjectID: s.nextProjectID,
		NextMemberID:  s.nextMemberID,
	}
	for _, p := range s.projects {
		snap.Projects = append(snap.Projects, p.Clone())
	}
	for _, m := range s.members {
		snap.Members = append(snap.Members, m.Clone())
	}
	return snap
}

// Restore replaces the store contents with snap.
// Counters are raised so they never hand out an id already in use.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = make([]*models.Project, 0, len(snap.Projects))
	s.members = make([]*models.Member, 0, len(snap.Members))
	s.nextProjectID = max(snap.NextProjectID, 1)
	s.nextMemberID = max(snap.NextMemberID, 1)

	for _, p := range snap.Projects {
		c := p.Clone()
		s.projects = append(s.projects, &c)
		s.nextProjectID = max(s.nextProjectID, p.ID+1)
	}
	for _, m := range snap.Members {
		c := m.Clone()
		s.members = append(s.members, &c)
		s.nextMemberID = max(s.nextMemberID, m.ID+1)
	}
}

// Tx is the mutable view handed to Write callbacks. It is only valid inside the
// callback.
type Tx struct {
	s *Store
}

// Project returns the live project record, or nil
func (tx *Tx) Project(id types.ProjectID) *models.Project {
	for _, p := range tx.s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Member returns the live member record, or nil
func (tx *Tx) Member(id types.MemberID) *models.Member {
	for _, m := range tx.s.members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Projects returns the live project records
func (tx *Tx) Projects() []*models.Project {
	return tx.s.projects
}

// Members returns the live member records
func (tx *Tx) Members() []*models.Member {
	return tx.s.members
}

// AllocProjectID consumes and returns the next project id
func (tx *Tx) AllocProjectID() types.ProjectID {
	id := tx.s.nextProjectID
	tx.s.nextProjectID++
	return id
}

// AllocMemberID consumes and returns the next member id
func (tx *Tx) AllocMemberID() types.MemberID {
	id := tx.s.nextMemberID
	tx.s.nextMemberID++
	return id
}

// PrependProject inserts p at the head of the collection
func (tx *Tx) PrependProject(p models.Project) *models.Project {
	c := p.Clone()
	tx.s.projects = append([]*models.Project{&c}, tx.s.projects...)
	return &c
}

// PrependMember inserts m at the head of the collection
func (tx *Tx) PrependMember(m models.Member) *models.Member {
	c := m.Clone()
	tx.s.members = append([]*models.Member{&c}, tx.s.members...)
	return &c
}

// RemoveProject deletes the project and scrubs it from every member
func (tx *Tx) RemoveProject(id types.ProjectID) bool {
	idx := slices.IndexFunc(tx.s.projects, func(p *models.Project) bool { return p.ID == id })
	if idx < 0 {
		return false
	}
	tx.s.projects = slices.Delete(tx.s.projects, idx, idx+1)
	for _, m := range tx.s.members {
		m.AssignedProjectIDs = slices.DeleteFunc(m.AssignedProjectIDs, func(pid types.ProjectID) bool { return pid == id })
	}
	return true
}

// RemoveMember deletes the member and scrubs it from every project
func (tx *Tx) RemoveMember(id types.MemberID) bool {
	idx := slices.IndexFunc(tx.s.members, func(m *models.Member) bool { return m.ID == id })
	if idx < 0 {
		return false
	}
	tx.s.members = slices.Delete(tx.s.members, idx, idx+1)
	for _, p := range tx.s.projects {
		p.AssignedMemberIDs = slices.DeleteFunc(p.AssignedMemberIDs, func(mid types.MemberID) bool { return mid == id })
	}
	return true
}

// Link adds the assignment on both sides. It is a no-op for unknown ids and
// reports whether a new link was created.
func (tx *Tx) Link(projectID types.ProjectID, memberID types.MemberID) bool {
	p, m := tx.Project(projectID), tx.Member(memberID)
	if p == nil || m == nil {
		return false
	}
	created := false
	if !p.HasMember(memberID) {
		p.AssignedMemberIDs = append(p.AssignedMemberIDs, memberID)
		created = true
	}
	if !m.HasProject(projectID) {
		m.AssignedProjectIDs = append(m.AssignedProjectIDs, projectID)
		created = true
	}
	return created
}

// Unlink removes the assignment on both sides and reports whether one existed
func (tx *Tx) Unlink(projectID types.ProjectID, memberID types.MemberID) bool {
	removed := false
	if p := tx.Project(projectID); p != nil && p.HasMember(memberID) {
		p.AssignedMemberIDs = slices.DeleteFunc(p.AssignedMemberIDs, func(id types.MemberID) bool { return id == memberID })
		removed = true
	}
	if m := tx.Member(memberID); m != nil && m.HasProject(projectID) {
		m.AssignedProjectIDs = slices.DeleteFunc(m.AssignedProjectIDs, func(id types.ProjectID) bool { return id == projectID })
		removed = true
	}
	return removed
}
