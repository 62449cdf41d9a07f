// Package observability provides production-grade observability infrastructure
// including structured logging, Prometheus metrics, and OpenTelemetry tracing.
//
// This package centralizes observability concerns to enable:
//   - Request tracing across service boundaries
//   - Structured logging with context propagation
//   - Prometheus metrics for monitoring
//   - Performance profiling and debugging
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Catalogue-level Prometheus gauges and recorders
//   - tracing: OpenTelemetry tracing integration
//   - slo: Service level objective targets and tracking gauges
//
// Example usage:
//
//	import (
//	    "tooldex/internal/observability/logging"
//	    "tooldex/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.UpdateCatalogueTotals(12, 48, 30)
//	}
package observability
