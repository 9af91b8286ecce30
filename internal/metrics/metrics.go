// Package metrics counts mutations and persistence outcomes on a private
// prometheus registry.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const namespace = "huddle"

// Save results
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the application counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	mutations     *prometheus.CounterVec
	saves         *prometheus.CounterVec
	loadFallbacks *prometheus.CounterVec
}

// New creates the counters and registers them on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Successful store mutations by entity and operation.",
		}, []string{"entity", "op"}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_saves_total",
			Help:      "Persistence save attempts by result.",
		}, []string{"result"}),
		loadFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_load_fallbacks_total",
			Help:      "Records replaced by the seed dataset at load time.",
		}, []string{"record"}),
	}
	m.registry.MustRegister(m.mutations, m.saves, m.loadFallbacks)
	return m
}

// Mutation counts one successful mutation
func (m *Metrics) Mutation(entity, op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(entity, op).Inc()
}

// Save counts a save attempt, classified by err
func (m *Metrics) Save(err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.saves.WithLabelValues(result).Inc()
}

// LoadFallback counts a record that was missing or unreadable at load time
func (m *Metrics) LoadFallback(record string) {
	if m == nil {
		return
	}
	m.loadFallbacks.WithLabelValues(record).Inc()
}

// Registry exposes the underlying registry, e.g. for promhttp or tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText writes every family in the prometheus text exposition format
func (m *Metrics) WriteText(w io.Writer) error {
	if m == nil {
		return nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if err := writeFamily(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func writeFamily(w io.Writer, mf *dto.MetricFamily) error {
	if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
		return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
	}
	return nil
}
