package metrics

import (
	"database/sql"
)

// CatalogueTotals is a snapshot of the slow-moving inventory counts.
type CatalogueTotals struct {
	Categories     int
	Tags           int
	AffiliateLinks int
}

// UpdateCatalogueTotals updates the catalogue inventory gauges.
// Call this periodically from the stats collector.
func UpdateCatalogueTotals(categories, tags, affiliateLinks int) {
	CategoriesTotal.Set(float64(categories))
	TagsTotal.Set(float64(tags))
	AffiliateLinksTotal.Set(float64(affiliateLinks))
}

// UpdateDBPoolStats publishes the database connection pool state.
// Call this periodically with db.Stats().
func UpdateDBPoolStats(stats sql.DBStats) {
	DBConnectionsOpen.Set(float64(stats.OpenConnections))
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
	DBConnectionWaitTotal.Set(float64(stats.WaitCount))
}
