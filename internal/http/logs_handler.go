package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/i18n"
	"github.com/guttosm/carton-service/internal/service"
)

// LogsHandler provides HTTP handlers for packing run log queries.
type LogsHandler struct {
	loggingService service.LoggingService
}

// NewLogsHandler creates a new LogsHandler instance.
func NewLogsHandler(loggingService service.LoggingService) *LogsHandler {
	return &LogsHandler{
		loggingService: loggingService,
	}
}

// QueryRunLogs handles GET /api/runs/logs requests.
//
// @Summary      Query packing run logs
// @Description  Returns persisted log lines, filterable by run id, record id, level and time range
// @Tags         Runs
// @Accept       json
// @Produce      json
// @Param        run_id query string false "Filter by run id"
// @Param        record_id query string false "Filter by record id"
// @Param        level query string false "Filter by log level (info, warn, error)"
// @Param        start query string false "Start of time range (RFC 3339)"
// @Param        end query string false "End of time range (RFC 3339)"
// @Param        limit query int false "Limit number of results (default 100)"
// @Param        skip query int false "Skip results for pagination"
// @Success      200 {object} dto.SuccessResponse "Matching log entries"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid time range"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/runs/logs [get]
func (h *LogsHandler) QueryRunLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts := model.LogQueryOptions{
		RunID:    c.Query("run_id"),
		RecordID: c.Query("record_id"),
		Level:    c.Query("level"),
		Limit:    100,
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			opts.Limit = l
		}
	}
	if skipStr := c.Query("skip"); skipStr != "" {
		if s, err := strconv.Atoi(skipStr); err == nil && s > 0 {
			opts.Skip = s
		}
	}

	if startStr := c.Query("start"); startStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			builder.ErrorWithMessage(http.StatusBadRequest, "start: must be an RFC 3339 timestamp", err)
			return
		}
		opts.StartTime = &start
	}
	if endStr := c.Query("end"); endStr != "" {
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			builder.ErrorWithMessage(http.StatusBadRequest, "end: must be an RFC 3339 timestamp", err)
			return
		}
		opts.EndTime = &end
	}

	entries, err := h.loggingService.QueryLogs(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	total, err := h.loggingService.CountLogs(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"entries": entries,
		"total":   total,
	})
}
