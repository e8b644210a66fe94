package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/carton-service/config"
	"github.com/guttosm/carton-service/internal/domain/dto"
	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/i18n"
	"github.com/guttosm/carton-service/internal/metrics"
	"github.com/guttosm/carton-service/internal/middleware"
	"github.com/guttosm/carton-service/internal/service"
)

// Handler provides HTTP handlers for carton arrangement and packing routes.
type Handler struct {
	solver   service.Solver
	packer   service.Packer
	defaults config.PackingConfig
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithPackingDefaults sets the server-side defaults applied when a packing
// run request omits buffers or material.
func WithPackingDefaults(defaults config.PackingConfig) HandlerOption {
	return func(h *Handler) {
		h.defaults = defaults
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(solver service.Solver, packer service.Packer, opts ...HandlerOption) *Handler {
	h := &Handler{
		solver: solver,
		packer: packer,
		defaults: config.PackingConfig{
			InnerBufferUnit:  string(model.LengthUnitInch),
			MasterBufferUnit: string(model.LengthUnitInch),
			InnerMaterial:    string(model.MaterialBox),
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Arrange handles POST /api/arrange requests.
//
// @Summary      Calculate carton arrangement
// @Description  Finds the minimum-volume rectangular arrangement for a quantity of identical units. Counts on each axis multiply to exactly the requested quantity; the buffer is added once per axis. Supports idempotency via Idempotency-Key header.
// @Tags         Cartons
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.ArrangeRequest true "Unit quantity and dimensions"
// @Success      200 {object} dto.SuccessResponse "Successful calculation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      422 {object} dto.ErrorResponse "No suitable arrangement"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/arrange [post]
func (h *Handler) Arrange(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ArrangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			metrics.RecordArrangement(0, "validation_error")
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	unit := req.LengthUnit()
	dims := model.Dimensions{
		Width:  service.ToInches(req.Width, unit),
		Depth:  service.ToInches(req.Depth, unit),
		Height: service.ToInches(req.Height, unit),
	}
	buffer := service.ToInches(req.Buffer, unit)

	start := time.Now()
	arrangement := h.solver.Solve(req.Quantity, dims, buffer)
	duration := time.Since(start)

	if arrangement == nil {
		metrics.RecordArrangement(duration, "not_found")
		builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyNoArrangement, nil)
		return
	}

	metrics.RecordArrangement(duration, "success")
	builder.SuccessOK(arrangement)
}

// Pack handles POST /api/pack requests.
//
// @Summary      Run the packing cascade
// @Description  Runs the two-stage packing cascade over the selected records, writing inner and master carton dimensions and weights back to each record. Records are processed independently; a failure on one record never aborts the rest. Supports idempotency via Idempotency-Key header.
// @Tags         Cartons
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.PackRunRequest true "Run selection and overrides"
// @Success      200 {object} dto.SuccessResponse "Run summary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - record store not configured"
// @Security     ApiKeyAuth
// @Router       /api/pack [post]
func (h *Handler) Pack(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PackRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	if h.packer == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, nil)
		return
	}

	opts := h.runOptions(&req)

	// Change log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.ChangeLog(ls, c, "pack_run", "Packing run requested", map[string]interface{}{
				"record_count": len(opts.RecordIDs),
				"force_all":    opts.ForceAll,
			})
		}
	}

	summary, err := h.packer.ProcessRecords(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(summary)
}

// runOptions merges request overrides with server defaults.
func (h *Handler) runOptions(req *dto.PackRunRequest) model.RunOptions {
	opts := model.RunOptions{
		ForceAll:         req.ForceAll,
		RecordIDs:        req.RecordIDs,
		InnerBuffer:      h.defaults.InnerBuffer,
		InnerBufferUnit:  parseUnit(h.defaults.InnerBufferUnit),
		MasterBuffer:     h.defaults.MasterBuffer,
		MasterBufferUnit: parseUnit(h.defaults.MasterBufferUnit),
		InnerMaterial:    parseMaterial(h.defaults.InnerMaterial),
	}

	if req.InnerBuffer != nil {
		opts.InnerBuffer = *req.InnerBuffer
		opts.InnerBufferUnit = parseUnit(req.InnerBufferUnit)
	}
	if req.MasterBuffer != nil {
		opts.MasterBuffer = *req.MasterBuffer
		opts.MasterBufferUnit = parseUnit(req.MasterBufferUnit)
	}
	if req.InnerMaterial != "" {
		opts.InnerMaterial = req.Material()
	}
	return opts
}

func parseUnit(unit string) model.LengthUnit {
	if unit == string(model.LengthUnitCentimeter) {
		return model.LengthUnitCentimeter
	}
	return model.LengthUnitInch
}

func parseMaterial(material string) model.Material {
	if material == string(model.MaterialPolyBag) {
		return model.MaterialPolyBag
	}
	return model.MaterialBox
}
