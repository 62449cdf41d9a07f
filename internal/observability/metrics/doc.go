// Package metrics provides catalogue-level Prometheus gauges.
//
// Per-request metrics live next to the HTTP handlers; this package holds the
// slow-moving inventory gauges that a periodic collector refreshes from the
// database:
//   - Catalogue totals (categories, tags, affiliate links)
//   - Database connection pool statistics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "tooldex/internal/observability/metrics"
//
//	func refreshStats(db *sql.DB) {
//	    metrics.UpdateCatalogueTotals(12, 48, 30)
//	    metrics.UpdateDBPoolStats(db.Stats())
//	}
package metrics
