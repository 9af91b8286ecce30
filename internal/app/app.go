package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/huddle/internal/config"
	"github.com/thenoetrevino/huddle/internal/events"
	"github.com/thenoetrevino/huddle/internal/kv"
	"github.com/thenoetrevino/huddle/internal/metrics"
	"github.com/thenoetrevino/huddle/internal/models"
	"github.com/thenoetrevino/huddle/internal/notify"
	"github.com/thenoetrevino/huddle/internal/persistence"
	"github.com/thenoetrevino/huddle/internal/services/confirm"
	"github.com/thenoetrevino/huddle/internal/services/member"
	"github.com/thenoetrevino/huddle/internal/services/project"
	"github.com/thenoetrevino/huddle/internal/stats"
	"github.com/thenoetrevino/huddle/internal/store"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Storage
	kv      kv.Store
	adapter *persistence.Adapter
	store   *store.Store

	// Event system for live updates
	eventClient events.EventPublisher

	logger *slog.Logger
	now    func() time.Time

	Metrics    *metrics.Metrics
	Notifier   notify.Notifier
	LoadReport persistence.LoadReport

	// Service layer (business logic)
	ProjectService project.Service
	MemberService  member.Service
}

// New opens the configured key-value store and builds the container on top of it
func New(ctx context.Context, cfg config.Storage, opts ...Option) (*App, error) {
	kvStore, err := kv.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return NewWithStore(ctx, kvStore, opts...)
}

// NewWithStore builds the container on an already opened key-value store.
// The dashboard is loaded immediately; the App owns kvStore from here on.
func NewWithStore(ctx context.Context, kvStore kv.Store, opts ...Option) (*App, error) {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.notifier == nil {
		cfg.notifier = notify.Nop{}
	}
	if cfg.metrics == nil {
		cfg.metrics = metrics.New()
	}
	if cfg.clock == nil {
		cfg.clock = func() time.Time { return time.Now().UTC() }
	}
	if cfg.eventClient == nil {
		cfg.eventClient = events.NewBus()
	}

	adapter := persistence.NewAdapter(kvStore,
		persistence.WithMetrics(cfg.metrics),
		persistence.WithLogger(cfg.logger),
		persistence.WithClock(cfg.clock),
	)

	snap, report := adapter.Load(ctx)
	s := store.FromSnapshot(snap)
	saver := persistence.NewAutoSaver(adapter, s)
	registry := confirm.NewRegistry()

	a := &App{
		kv:          kvStore,
		adapter:     adapter,
		store:       s,
		eventClient: cfg.eventClient,
		logger:      cfg.logger,
		now:         cfg.clock,
		Metrics:     cfg.metrics,
		Notifier:    cfg.notifier,
		LoadReport:  report,
		ProjectService: project.NewService(project.Deps{
			Store:    s,
			Saver:    saver,
			Events:   cfg.eventClient,
			Notifier: cfg.notifier,
			Confirm:  registry,
			Metrics:  cfg.metrics,
			Clock:    cfg.clock,
		}),
		MemberService: member.NewService(member.Deps{
			Store:    s,
			Saver:    saver,
			Events:   cfg.eventClient,
			Notifier: cfg.notifier,
			Confirm:  registry,
			Metrics:  cfg.metrics,
			Clock:    cfg.clock,
		}),
	}

	// Write the demo data back so the records exist on the next start
	if report.UsedSeed() || report.Repairs > 0 {
		if err := a.Save(ctx); err != nil {
			cfg.notifier.Notify(notify.LevelWarning, "Changes could not be saved: "+err.Error())
		}
	}

	if err := events.Publish(a.eventClient, events.Event{Type: events.EventDataLoaded}); err != nil {
		a.logger.Warn("failed to publish load event", "error", err)
	}

	return a, nil
}

// Events returns the publisher services report changes to
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Now returns the current time of the application clock
func (a *App) Now() time.Time {
	return a.now()
}

// Save writes the current dashboard to storage
func (a *App) Save(ctx context.Context) error {
	return a.adapter.Save(ctx, a.store.Snapshot())
}

// Dashboard is a consistent read of everything the presentation layer shows
type Dashboard struct {
	Projects     []models.Project
	Members      []models.Member
	ProjectStats stats.ProjectStats
	MemberStats  stats.MemberStats
	TeamScore    int
}

// Dashboard reads both collections and derives the statistics
func (a *App) Dashboard(ctx context.Context) (Dashboard, error) {
	projects, err := a.ProjectService.ListProjects(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	members, err := a.MemberService.ListMembers(ctx, member.Filter{})
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		Projects:     projects,
		Members:      members,
		ProjectStats: stats.Projects(projects),
		MemberStats:  stats.Members(members, a.now()),
		TeamScore:    stats.TeamScore(projects, members),
	}, nil
}

// Close performs the final save and releases storage and the event bus
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if err := a.Save(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to save dashboard: %w", err))
	}
	if err := a.eventClient.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close event bus: %w", err))
	}
	if err := a.kv.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close storage: %w", err))
	}
	return errors.Join(errs...)
}
