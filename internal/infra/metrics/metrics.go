// Package metrics counts seeded records with Prometheus and pushes them to a Pushgateway.
// The seeder is a batch job with no scrape endpoint, so counters are pushed once a run finishes.
package metrics

import (
	"context"
	"log/slog"

	"civic/config"
	"civic/internal/domain/service"
	"civic/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/fx"
)

const namespace = "civic"

// SeedMetrics holds the seeding counters on a private registry.
type SeedMetrics struct {
	registry *prometheus.Registry
	seeded   *prometheus.CounterVec
	failed   *prometheus.CounterVec

	pushURL string
	job     string
	logger  *slog.Logger
}

// Params defines the parameters required for the metrics
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the counters. Pushing is disabled when no Pushgateway URL is configured.
func New(params Params) *SeedMetrics {
	m := NewSeedMetrics(params.Logger)
	if params.Config.Metrics != nil {
		m.pushURL = params.Config.Metrics.PushgatewayURL
		m.job = params.Config.Metrics.Job
	}

	return m
}

// NewSeedMetrics registers the counters without push settings.
func NewSeedMetrics(logger *slog.Logger) *SeedMetrics {
	registry := prometheus.NewRegistry()

	m := &SeedMetrics{
		registry: registry,
		seeded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seed_records_total",
			Help:      "Fixture records stored, by kind.",
		}, []string{"kind"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seed_failures_total",
			Help:      "Fixture records that could not be built or stored, by kind.",
		}, []string{"kind"}),
		logger: logger,
	}
	registry.MustRegister(m.seeded, m.failed)

	return m
}

// AsSeedMetrics exposes the counters through the domain interface.
func AsSeedMetrics(m *SeedMetrics) service.SeedMetrics {
	return m
}

func (m *SeedMetrics) RecordSeeded(kind string) {
	m.seeded.WithLabelValues(kind).Inc()
}

func (m *SeedMetrics) RecordFailed(kind string) {
	m.failed.WithLabelValues(kind).Inc()
}

// Registry returns the registry holding the seeding counters.
func (m *SeedMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Enabled reports whether Push will contact a Pushgateway.
func (m *SeedMetrics) Enabled() bool {
	return m.pushURL != ""
}

// Push replaces the job's metrics on the Pushgateway. It does nothing when pushing is disabled.
func (m *SeedMetrics) Push(ctx context.Context) error {
	if !m.Enabled() {
		return nil
	}

	err := push.New(m.pushURL, m.job).
		Gatherer(m.registry).
		PushContext(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to push metrics to %s", m.pushURL)
	}

	if m.logger != nil {
		m.logger.Debug("Pushed seed metrics", slog.String("url", m.pushURL), slog.String("job", m.job))
	}

	return nil
}
