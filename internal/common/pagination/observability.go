package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs a cursor-paginated request with structured fields.
func LogRequest(logger *slog.Logger, requestID, entity string, params Params) {
	logger.Info("Paginated request",
		"request_id", requestID,
		"entity", entity,
		"limit", params.Limit,
		"sort_by", params.SortBy,
		"has_cursor", params.Cursor != "")
}

// LogResponse logs a cursor-paginated response with duration and status.
func LogResponse(logger *slog.Logger, requestID, entity string, returnedCount int, hasMore bool, duration time.Duration, statusCode int) {
	logger.Info("Paginated response",
		"request_id", requestID,
		"entity", entity,
		"returned_count", returnedCount,
		"has_more", hasMore,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)
}

// LogError logs a pagination error with structured fields.
func LogError(logger *slog.Logger, requestID, entity string, err error, errorType string) {
	logger.Error("Pagination error",
		"request_id", requestID,
		"entity", entity,
		"error", err.Error(),
		"error_type", errorType)
}
