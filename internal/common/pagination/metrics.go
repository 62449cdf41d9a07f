package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts paginated list requests.
	// Labels: entity (tools, categories, ...), sort_by (effective sort key)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cursor_pagination_requests_total",
			Help: "Total number of cursor-paginated list requests",
		},
		[]string{"entity", "sort_by"},
	)

	// InvalidCursorTotal counts continuation tokens rejected by the codec.
	// The API silently serves page one in every case; this counter is the
	// only place where expired, tampered, and sort-mismatched cursors stay
	// distinguishable for operators.
	// Labels: reason (malformed, signature, expired, sort_mismatch)
	InvalidCursorTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cursor_invalid_total",
			Help: "Total number of rejected continuation tokens",
		},
		[]string{"reason"},
	)

	// DurationSeconds tracks page-fetch duration distribution.
	// Labels: operation (handler, repository)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cursor_pagination_duration_seconds",
			Help:    "Page fetch duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (database, timeout)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cursor_pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records one paginated list request.
func RecordRequest(entity, sortBy string) {
	RequestsTotal.WithLabelValues(entity, sortBy).Inc()
}

// RecordInvalidCursor records a rejected continuation token.
// reason should be one of: "malformed", "signature", "expired", "sort_mismatch".
func RecordInvalidCursor(reason string) {
	InvalidCursorTotal.WithLabelValues(reason).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, duration float64) {
	DurationSeconds.WithLabelValues(operation).Observe(duration)
}

// RecordError records an error metric.
// errorType should be one of: "database", "timeout".
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}
