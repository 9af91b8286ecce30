// Package persistence saves and restores the store contents as two JSON records
// in a key-value byte store.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/huddle/internal/kv/core"
	"github.com/thenoetrevino/huddle/internal/metrics"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/store"
)

// Source says where a collection came from at load time
type Source string

const (
	SourceStored Source = "stored"
	SourceSeed   Source = "seed"
)

// RecordReport describes how one record was loaded
type RecordReport struct {
	Key    string
	Source Source
	// Err is why the stored record was rejected; nil when it was simply missing
	Err error
}

// LoadReport describes a Load
type LoadReport struct {
	Projects RecordReport
	Members  RecordReport
	// Repairs counts assignment links fixed while reconciling the loaded data
	Repairs int
}

// UsedSeed reports whether either collection fell back to the demo dataset
func (r LoadReport) UsedSeed() bool {
	return r.Projects.Source == SourceSeed || r.Members.Source == SourceSeed
}

// linkAuthority trusts the stored side of a mixed load, so demo links on
// seeded records never leak into the user's data
func (r LoadReport) linkAuthority() store.LinkAuthority {
	switch {
	case r.Projects.Source == SourceStored && r.Members.Source == SourceSeed:
		return store.TrustProjects
	case r.Members.Source == SourceStored && r.Projects.Source == SourceSeed:
		return store.TrustMembers
	default:
		return store.TrustBoth
	}
}

// Adapter reads and writes the dashboard records
type Adapter struct {
	kv      core.Store
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures an Adapter
type Option func(*Adapter)

// WithMetrics records saves and load fallbacks on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Adapter) { a.metrics = m }
}

// WithLogger sets the logger for load and save diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) { a.logger = logger }
}

// WithClock overrides the time source used for lastSaved and seed timestamps
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) { a.now = now }
}

// NewAdapter creates an adapter over kv
func NewAdapter(kv core.Store, opts ...Option) *Adapter {
	a := &Adapter{
		kv:     kv,
		logger: slog.Default(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load reads both records. A missing or unreadable record is replaced by the
// seed dataset for that collection, so Load never fails. The result has
// consistent assignment links and counters above every id in use.
func (a *Adapter) Load(ctx context.Context) (store.Snapshot, LoadReport) {
	now := a.now()
	var snap store.Snapshot
	report := LoadReport{
		Projects: RecordReport{Key: ProjectsKey, Source: SourceStored},
		Members:  RecordReport{Key: MembersKey, Source: SourceStored},
	}

	rec, err := a.readProjects(ctx)
	if err != nil {
		a.fallback(&report.Projects, err)
		snap.Projects = SeedProjects(now)
	} else {
		snap.Projects = rec.Projects
		snap.NextProjectID = rec.NextID
	}

	mrec, err := a.readMembers(ctx)
	if err != nil {
		a.fallback(&report.Members, err)
		snap.Members = SeedMembers(now)
	} else {
		snap.Members = mrec.Members
		snap.NextMemberID = mrec.NextID
	}

	// Restore raises the counters to max(id)+1; Reconcile fixes links that a
	// mixed stored/seed load or a hand-edited record left inconsistent
	s := store.FromSnapshot(snap)
	report.Repairs = s.Reconcile(report.linkAuthority())
	if report.Repairs > 0 {
		a.logger.Warn("repaired assignment links on load", "repairs", report.Repairs)
	}

	a.logger.Info("dashboard data loaded",
		"projects", len(snap.Projects),
		"members", len(snap.Members),
		"projects_source", report.Projects.Source,
		"members_source", report.Members.Source)

	return s.Snapshot(), report
}

func (a *Adapter) fallback(r *RecordReport, err error) {
	r.Source = SourceSeed
	if !errors.Is(err, core.ErrNotFound) {
		r.Err = err
		a.logger.Warn("stored record unreadable, using seed data", "key", r.Key, "error", err)
	} else {
		a.logger.Info("no stored record, using seed data", "key", r.Key)
	}
	a.metrics.LoadFallback(r.Key)
}

func (a *Adapter) readProjects(ctx context.Context) (projectsRecord, error) {
	data, err := a.kv.Get(ctx, ProjectsKey)
	if err != nil {
		return projectsRecord{}, err
	}
	return decodeProjects(data)
}

func (a *Adapter) readMembers(ctx context.Context) (membersRecord, error) {
	data, err := a.kv.Get(ctx, MembersKey)
	if err != nil {
		return membersRecord{}, err
	}
	return decodeMembers(data)
}

// Save writes both records. Both writes are attempted even if the first fails.
// Errors wrap models.ErrPersistence.
func (a *Adapter) Save(ctx context.Context, snap store.Snapshot) error {
	savedAt := a.now()

	errs := []error{
		a.put(ctx, ProjectsKey, projectsRecord{Projects: snap.Projects, NextID: snap.NextProjectID, LastSaved: savedAt}),
		a.put(ctx, MembersKey, membersRecord{Members: snap.Members, NextID: snap.NextMemberID, LastSaved: savedAt}),
	}
	err := errors.Join(errs...)
	a.metrics.Save(err)
	if err != nil {
		a.logger.Error("failed to save dashboard data", "error", err)
		return fmt.Errorf("%w: %w", models.ErrPersistence, err)
	}
	a.logger.Debug("dashboard data saved", "projects", len(snap.Projects), "members", len(snap.Members))
	return nil
}

func (a *Adapter) put(ctx context.Context, key string, record any) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := a.kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
