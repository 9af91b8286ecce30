package store

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/types"
)

// CheckLinks verifies that every assignment appears on both sides and points at
// an existing record. It returns the first violation found.
func (s *Store) CheckLinks() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make(map[types.MemberID]*models.Member, len(s.members))
	for _, m := range s.members {
		members[m.ID] = m
	}
	projects := make(map[types.ProjectID]*models.Project, len(s.projects))
	for _, p := range s.projects {
		projects[p.ID] = p
	}

	for _, p := range s.projects {
		for _, mid := range p.AssignedMemberIDs {
			m, ok := members[mid]
			if !ok {
				return fmt.Errorf("project %d references missing member %d", p.ID, mid)
			}
			if !m.HasProject(p.ID) {
				return fmt.Errorf("project %d lists member %d but not the reverse", p.ID, mid)
			}
		}
	}
	for _, m := range s.members {
		for _, pid := range m.AssignedProjectIDs {
			p, ok := projects[pid]
			if !ok {
				return fmt.Errorf("member %d references missing project %d", m.ID, pid)
			}
			if !p.HasMember(m.ID) {
				return fmt.Errorf("member %d lists project %d but not the reverse", m.ID, pid)
			}
		}
	}
	return nil
}

// LinkAuthority says which side of the assignment links is trusted when
// Reconcile finds a link recorded on one side only
type LinkAuthority int

const (
	// TrustBoth mirrors every half link onto the other side
	TrustBoth LinkAuthority = iota
	// TrustProjects mirrors project-side half links and drops member-side ones
	TrustProjects
	// TrustMembers mirrors member-side half links and drops project-side ones
	TrustMembers
)

// Reconcile repairs assignment links on loaded data: dangling ids and duplicates
// are dropped and half links are mirrored from a trusted side or dropped from
// an untrusted one. It returns the number of repairs.
func (s *Store) Reconcile(authority LinkAuthority) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	repairs := 0
	tx := &Tx{s: s}

	for _, p := range s.projects {
		kept := make([]types.MemberID, 0, len(p.AssignedMemberIDs))
		for _, mid := range p.AssignedMemberIDs {
			if tx.Member(mid) == nil || slices.Contains(kept, mid) {
				repairs++
				continue
			}
			kept = append(kept, mid)
		}
		p.AssignedMemberIDs = kept
	}
	for _, m := range s.members {
		kept := make([]types.ProjectID, 0, len(m.AssignedProjectIDs))
		for _, pid := range m.AssignedProjectIDs {
			if tx.Project(pid) == nil || slices.Contains(kept, pid) {
				repairs++
				continue
			}
			kept = append(kept, pid)
		}
		m.AssignedProjectIDs = kept
	}

	// Drop the untrusted side first so its half links are never mirrored
	switch authority {
	case TrustProjects:
		for _, m := range s.members {
			before := len(m.AssignedProjectIDs)
			m.AssignedProjectIDs = slices.DeleteFunc(m.AssignedProjectIDs, func(pid types.ProjectID) bool {
				return !tx.Project(pid).HasMember(m.ID)
			})
			repairs += before - len(m.AssignedProjectIDs)
		}
	case TrustMembers:
		for _, p := range s.projects {
			before := len(p.AssignedMemberIDs)
			p.AssignedMemberIDs = slices.DeleteFunc(p.AssignedMemberIDs, func(mid types.MemberID) bool {
				return !tx.Member(mid).HasProject(p.ID)
			})
			repairs += before - len(p.AssignedMemberIDs)
		}
	}

	for _, p := range s.projects {
		for _, mid := range p.AssignedMemberIDs {
			if m := tx.Member(mid); !m.HasProject(p.ID) {
				m.AssignedProjectIDs = append(m.AssignedProjectIDs, p.ID)
				repairs++
			}
		}
	}
	for _, m := range s.members {
		for _, pid := range m.AssignedProjectIDs {
			if p := tx.Project(pid); !p.HasMember(m.ID) {
				p.AssignedMemberIDs = append(p.AssignedMemberIDs, m.ID)
				repairs++
			}
		}
	}
	return repairs
}
