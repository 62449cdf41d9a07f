package http

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"tooldex/internal/observability/slo"
)

// maxSLOSamples caps the per-window latency sample buffer. At typical
// traffic the window drains well before the cap; under a burst we keep the
// first N samples, which is good enough for a gauge refreshed every minute.
const maxSLOSamples = 16384

// sloTracker accumulates request outcomes between reporter ticks.
// MetricsMiddleware feeds it; the reporter drains it.
type sloTracker struct {
	mu        sync.Mutex
	total     int64
	serverErr int64
	durations []float64
}

var sloWindow = &sloTracker{}

func (t *sloTracker) observe(status int, seconds float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.total++
	if status >= 500 {
		t.serverErr++
	}
	if len(t.durations) < maxSLOSamples {
		t.durations = append(t.durations, seconds)
	}
}

// drain returns the accumulated window and resets it.
func (t *sloTracker) drain() (total, serverErr int64, durations []float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	total, serverErr = t.total, t.serverErr
	durations = t.durations
	t.total, t.serverErr = 0, 0
	t.durations = nil
	return total, serverErr, durations
}

// quantile returns the q-th quantile of the sorted samples using
// nearest-rank. Samples must be sorted ascending.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(q*float64(len(sorted))+0.5) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// StartSLOReporter launches a goroutine that periodically publishes the SLO
// gauges (availability, error rate, p95/p99 latency) from the requests
// observed since the previous tick. Windows with no traffic are skipped so
// the gauges hold their last value instead of snapping to zero.
func StartSLOReporter(ctx context.Context, logger *slog.Logger, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("slo reporter stopped")
				return
			case <-ticker.C:
				reportSLOWindow()
			}
		}
	}()
	logger.Info("slo reporter started", slog.Duration("interval", interval))
}

func reportSLOWindow() {
	total, serverErr, durations := sloWindow.drain()
	if total == 0 {
		return
	}

	slo.UpdateAvailability(float64(total-serverErr) / float64(total))
	slo.UpdateErrorRate(float64(serverErr) / float64(total))

	sort.Float64s(durations)
	slo.UpdateLatencyP95(quantile(durations, 0.95))
	slo.UpdateLatencyP99(quantile(durations, 0.99))
}
