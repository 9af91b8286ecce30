package metrics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.Mutation("project", "create")
	m.Mutation("project", "create")
	m.Mutation("member", "delete")
	m.Save(nil)
	m.Save(errors.New("disk full"))
	m.LoadFallback("dashboard_projects")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.mutations.WithLabelValues("project", "create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("member", "delete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.saves.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.saves.WithLabelValues(ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loadFallbacks.WithLabelValues("dashboard_projects")))
}

func TestMetrics_WriteText(t *testing.T) {
	m := New()
	m.Mutation("project", "progress")

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE huddle_mutations_total counter")
	assert.Contains(t, out, `huddle_mutations_total{entity="project",op="progress"} 1`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.Mutation("project", "create")
	m.Save(nil)
	m.LoadFallback("x")

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	assert.Empty(t, buf.String())
}
