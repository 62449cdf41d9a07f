package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tooldex/internal/pkg/config"
)

// WorkerMetrics provides Prometheus metrics for the sweeper worker.
// It embeds the standard ConfigMetrics for configuration monitoring and adds
// sweep-specific metrics for cron job execution tracking.
//
// Embedded metrics (from ConfigMetrics):
//   - worker_config_load_timestamp: Unix timestamp of last configuration load
//   - worker_config_validation_errors_total: Total validation errors by field
//   - worker_config_fallbacks_total: Total fallback operations by field
//   - worker_config_fallback_active: 1 if any fallback active, 0 otherwise
//
// Sweep-specific metrics:
//   - worker_sweep_runs_total: Total sweep runs by status (success/failure)
//   - worker_sweep_duration_seconds: Duration histogram of sweep execution
//   - worker_sponsorships_deactivated_total: Total sponsorships deactivated
//   - worker_sweep_last_success_timestamp: Unix timestamp of last successful run
type WorkerMetrics struct {
	*config.ConfigMetrics

	// SweepRunsTotal counts sweep runs.
	// Labels: status (started, success, failure)
	SweepRunsTotal *prometheus.CounterVec

	// SweepDurationSeconds measures the duration of sweep execution.
	// Buckets cover 100ms to about 50s; a sweep is a single UPDATE so
	// anything past a few seconds indicates contention.
	SweepDurationSeconds prometheus.Histogram

	// SponsorshipsDeactivatedTotal counts sponsorships moved to the
	// inactive state across all sweep runs.
	SponsorshipsDeactivatedTotal prometheus.Counter

	// SweepLastSuccessTimestamp records the Unix timestamp of the last
	// successful run. Alert when this goes stale.
	SweepLastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics creates a WorkerMetrics instance with all metrics
// initialized and registered with the default Prometheus registry.
func NewWorkerMetrics() *WorkerMetrics {
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetrics("worker"),

		SweepRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_sweep_runs_total",
			Help: "Total number of sponsorship sweep runs by status",
		}, []string{"status"}),

		SweepDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_sweep_duration_seconds",
			Help:    "Duration of sponsorship sweep execution in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}),

		SponsorshipsDeactivatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_sponsorships_deactivated_total",
			Help: "Total number of sponsorships deactivated across all sweep runs",
		}),

		SweepLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_sweep_last_success_timestamp",
			Help: "Unix timestamp of the last successful sweep run",
		}),
	}
}

// MustRegister is a no-op kept for API symmetry: metrics are registered
// automatically via promauto when created in NewWorkerMetrics.
func (m *WorkerMetrics) MustRegister() {}

// RecordJobRun increments the sweep run counter for the given status.
// Status should be "started", "success", or "failure".
func (m *WorkerMetrics) RecordJobRun(status string) {
	m.SweepRunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes the duration of a sweep run in seconds.
func (m *WorkerMetrics) RecordJobDuration(seconds float64) {
	m.SweepDurationSeconds.Observe(seconds)
}

// RecordDeactivated adds the number of sponsorships deactivated by a run.
func (m *WorkerMetrics) RecordDeactivated(count int64) {
	m.SponsorshipsDeactivatedTotal.Add(float64(count))
}

// RecordLastSuccess records the current time as the last successful run.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.SweepLastSuccessTimestamp.SetToCurrentTime()
}
