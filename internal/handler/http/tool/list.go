package tool

import (
	"log/slog"
	"net/http"
	"time"

	"tooldex/internal/common/pagination"
	"tooldex/internal/domain/entity"
	"tooldex/internal/handler/http/requestid"
	"tooldex/internal/handler/http/respond"
	"tooldex/internal/observability/logging"
	"tooldex/internal/repository"
	toolUC "tooldex/internal/usecase/tool"
)

type ListHandler struct {
	Svc           *toolUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP serves the public tool listing.
// @Summary      List tools (cursor pagination)
// @Description  Returns one page of tools under the requested filters and sort key. Pass the nextCursor from a previous response to continue. Without a status filter only active tools are returned.
// @Tags         tools
// @Produce      json
// @Param        limit      query  int     false  "Items per page"  default(20)  minimum(1)  maximum(100)
// @Param        cursor     query  string  false  "Continuation token from a previous response"
// @Param        sortBy     query  string  false  "Sort key"  Enums(name, newest, popular, relevance)  default(newest)
// @Param        sortOrder  query  string  false  "Sort direction"  Enums(asc, desc)
// @Param        category   query  []string  false  "Restrict to these category IDs (repeatable)"
// @Param        tag        query  string  false  "Restrict to tools carrying this tag slug"
// @Param        featured   query  bool    false  "Featured flag, explicit false honored"
// @Param        status     query  string  false  "Lifecycle status"  Enums(active, pending, archived)
// @Param        q          query  string  false  "Free-text search term"
// @Success      200 {object} pagination.Page[DTO] "One page of tools"
// @Failure      500 {string} string "Internal server error"
// @Router       /tools [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params := pagination.ParseQueryParams(r, h.PaginationCfg)
	filters := parseFilters(r)

	sortKey := params.SortBy
	if sortKey == "" {
		sortKey = "newest"
	}
	pagination.RecordRequest("tool", sortKey)
	pagination.LogRequest(logger, reqID, "tool", params)

	result, err := h.Svc.List(ctx, toolUC.ListInput{Filters: filters, Params: params})
	if err != nil {
		pagination.LogError(logger, reqID, "tool", err, "database")
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Items))
	for _, item := range result.Items {
		dtos = append(dtos, fromListItem(item))
	}
	response := pagination.Page[DTO]{
		Items:      dtos,
		NextCursor: result.NextCursor,
		HasMore:    result.HasMore,
	}

	duration := time.Since(startTime)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.LogResponse(logger, reqID, "tool", len(dtos), result.HasMore, duration, http.StatusOK)

	respond.JSON(w, http.StatusOK, response)
}

// parseFilters reads the listing filters from the query string. Requests
// without an explicit status see active tools only; pending and archived
// entries stay out of the public listing.
func parseFilters(r *http.Request) repository.ToolListFilters {
	q := r.URL.Query()

	filters := repository.ToolListFilters{
		CategoryIDs: q["category"],
		Search:      q.Get("q"),
	}

	if tag := q.Get("tag"); tag != "" {
		filters.TagSlug = &tag
	}
	switch q.Get("featured") {
	case "true":
		v := true
		filters.Featured = &v
	case "false":
		v := false
		filters.Featured = &v
	}

	status := q.Get("status")
	if status == "" {
		status = entity.ToolStatusActive
	}
	filters.Status = &status

	return filters
}
