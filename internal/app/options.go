package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/huddle/internal/events"
	"github.com/thenoetrevino/huddle/internal/metrics"
	"github.com/thenoetrevino/huddle/internal/notify"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	notifier    notify.Notifier
	metrics     *metrics.Metrics
	clock       func() time.Time
}

// WithEventPublisher sets the event publisher for the application.
// Defaults to an in-process bus.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithNotifier sets where user facing notifications go
func WithNotifier(n notify.Notifier) Option {
	return func(cfg *appConfig) {
		cfg.notifier = n
	}
}

// WithMetrics sets the metrics the services and adapter record to
func WithMetrics(m *metrics.Metrics) Option {
	return func(cfg *appConfig) {
		cfg.metrics = m
	}
}

// WithClock sets the time source used for timestamps and statistics
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = now
	}
}
