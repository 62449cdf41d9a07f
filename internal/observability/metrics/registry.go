// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Catalogue inventory gauges, refreshed by the periodic stats collector
var (
	// CategoriesTotal tracks the total number of categories in the catalogue
	CategoriesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "categories_total",
			Help: "Total number of categories in the catalogue",
		},
	)

	// TagsTotal tracks the total number of tags in the catalogue
	TagsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tags_total",
			Help: "Total number of tags in the catalogue",
		},
	)

	// AffiliateLinksTotal tracks the total number of affiliate links
	AffiliateLinksTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "affiliate_links_total",
			Help: "Total number of affiliate links in the catalogue",
		},
	)
)

// Database connection pool gauges
var (
	// DBConnectionsOpen tracks open database connections
	DBConnectionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		},
	)

	// DBConnectionsActive tracks in-use database connections
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of database connections currently in use",
		},
	)

	// DBConnectionsIdle tracks idle database connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// DBConnectionWaitTotal counts waits for a free connection
	DBConnectionWaitTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connection_wait_total",
			Help: "Cumulative number of waits for a database connection",
		},
	)
)
