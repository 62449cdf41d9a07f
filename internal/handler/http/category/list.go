package category

import (
	"log/slog"
	"net/http"
	"time"

	"tooldex/internal/common/pagination"
	"tooldex/internal/handler/http/requestid"
	"tooldex/internal/handler/http/respond"
	"tooldex/internal/observability/logging"
	catUC "tooldex/internal/usecase/category"
)

type ListHandler struct {
	Svc           *catUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP serves the category listing.
// @Summary      List categories (cursor pagination)
// @Description  Returns one page of categories ordered by name. Pass the nextCursor from a previous response to continue.
// @Tags         categories
// @Produce      json
// @Param        limit   query  int     false  "Items per page"  default(20)  minimum(1)  maximum(100)
// @Param        cursor  query  string  false  "Continuation token from a previous response"
// @Success      200 {object} pagination.Page[DTO] "One page of categories"
// @Failure      500 {string} string "Internal server error"
// @Router       /categories [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params := pagination.ParseQueryParams(r, h.PaginationCfg)
	pagination.RecordRequest("category", "name")
	pagination.LogRequest(logger, reqID, "category", params)

	result, err := h.Svc.List(ctx, params)
	if err != nil {
		pagination.LogError(logger, reqID, "category", err, "database")
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Items))
	for _, c := range result.Items {
		dtos = append(dtos, fromEntity(c))
	}
	response := pagination.Page[DTO]{
		Items:      dtos,
		NextCursor: result.NextCursor,
		HasMore:    result.HasMore,
	}

	duration := time.Since(startTime)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.LogResponse(logger, reqID, "category", len(dtos), result.HasMore, duration, http.StatusOK)

	respond.JSON(w, http.StatusOK, response)
}
