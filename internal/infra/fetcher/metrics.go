package fetcher

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metadataFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_fetch_total",
			Help: "Total number of website metadata fetch attempts",
		},
		[]string{"status"},
	)

	metadataFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "metadata_fetch_duration_seconds",
			Help:    "Time taken to fetch metadata from a tool's website",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
	)
)

// recordFetch records the outcome and duration of one metadata fetch
// attempt, including attempts short-circuited by the breaker.
func recordFetch(start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	metadataFetchTotal.WithLabelValues(status).Inc()
	metadataFetchDuration.Observe(time.Since(start).Seconds())
}
