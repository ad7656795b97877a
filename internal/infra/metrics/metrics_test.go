package metrics

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"civic/config"
	"civic/internal/domain/entity"
	"civic/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeedMetrics_Counts(t *testing.T) {
	m := NewSeedMetrics(discardLogger())

	m.RecordSeeded(service.RecordKindUser)
	m.RecordSeeded(service.RecordKindUser)
	m.RecordSeeded(service.KindOf(entity.ActionCategoryCall))
	m.RecordFailed(service.KindOf(entity.ActionCategoryEvent))

	assert.InDelta(t, 2, testutil.ToFloat64(m.seeded.WithLabelValues("user")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.seeded.WithLabelValues("call_action")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.failed.WithLabelValues("event_action")), 0)

	expected := `
# HELP civic_seed_failures_total Fixture records that could not be built or stored, by kind.
# TYPE civic_seed_failures_total counter
civic_seed_failures_total{kind="event_action"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "civic_seed_failures_total"))
}

func TestSeedMetrics_PushDisabled(t *testing.T) {
	m := New(Params{Config: &config.Config{}, Logger: discardLogger()})

	assert.False(t, m.Enabled())
	require.NoError(t, m.Push(context.Background()))
}

func TestSeedMetrics_Push(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{Metrics: &config.MetricsConfig{PushgatewayURL: server.URL, Job: "civic_seed"}}
	m := New(Params{Config: cfg, Logger: discardLogger()})
	m.RecordSeeded(service.RecordKindUser)

	require.NoError(t, m.Push(context.Background()))
	assert.Equal(t, "/metrics/job/civic_seed", gotPath)
}

func TestSeedMetrics_PushFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := &config.Config{Metrics: &config.MetricsConfig{PushgatewayURL: server.URL, Job: "civic_seed"}}
	m := New(Params{Config: cfg, Logger: discardLogger()})

	err := m.Push(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to push metrics")
}
