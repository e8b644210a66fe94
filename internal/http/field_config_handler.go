package http

import (
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/carton-service/internal/domain/dto"
	"github.com/guttosm/carton-service/internal/i18n"
	"github.com/guttosm/carton-service/internal/middleware"
	"github.com/guttosm/carton-service/internal/repository"
	"github.com/guttosm/carton-service/internal/service"
)

// fieldConfigCache provides thread-safe caching of the active field configuration.
type fieldConfigCache struct {
	config    atomic.Value // holds *repository.FieldConfig
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newFieldConfigCache creates a new field config cache with the given TTL.
func newFieldConfigCache(ttl time.Duration) *fieldConfigCache {
	c := &fieldConfigCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached config if valid, or nil if cache is expired/empty.
func (c *fieldConfigCache) get() *repository.FieldConfig {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if config := c.config.Load(); config != nil {
				if fc, ok := config.(*repository.FieldConfig); ok {
					return fc
				}
			}
		}
	}
	return nil
}

// set stores the config in the cache with TTL.
func (c *fieldConfigCache) set(config *repository.FieldConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.config.Store(config)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *fieldConfigCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// FieldConfigHandler provides HTTP handlers for field configuration routes.
type FieldConfigHandler struct {
	fieldConfigService service.FieldConfigService
	cache              *fieldConfigCache
}

// FieldConfigHandlerOption configures a FieldConfigHandler.
type FieldConfigHandlerOption func(*FieldConfigHandler)

// WithFieldConfigCacheTTL sets the TTL for active field config caching.
func WithFieldConfigCacheTTL(ttl time.Duration) FieldConfigHandlerOption {
	return func(h *FieldConfigHandler) {
		h.cache = newFieldConfigCache(ttl)
	}
}

// NewFieldConfigHandler creates a new FieldConfigHandler instance.
func NewFieldConfigHandler(fieldConfigService service.FieldConfigService, opts ...FieldConfigHandlerOption) *FieldConfigHandler {
	h := &FieldConfigHandler{
		fieldConfigService: fieldConfigService,
		cache:              newFieldConfigCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// activeConfig retrieves the active configuration from cache or store.
func (h *FieldConfigHandler) activeConfig(c *gin.Context) (*repository.FieldConfig, error) {
	if config := h.cache.get(); config != nil {
		return config, nil
	}

	config, err := h.fieldConfigService.GetActive(c.Request.Context())
	if err != nil || config == nil {
		return config, err
	}

	h.cache.set(config)
	return config, nil
}

// InvalidateFieldConfigCache invalidates the active field config cache.
// Call this when the field configuration is updated.
func (h *FieldConfigHandler) InvalidateFieldConfigCache() {
	h.cache.invalidate()
}

// GetActiveFieldConfig handles GET /api/field-config requests.
//
// @Summary      Get active field configuration
// @Description  Returns the currently active field mapping configuration
// @Tags         Field Config
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active field configuration"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "No active field configuration found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/field-config [get]
func (h *FieldConfigHandler) GetActiveFieldConfig(c *gin.Context) {
	builder := NewResponseBuilder(c)

	config, err := h.activeConfig(c)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if config == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"mapping":    config.Mapping,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdateFieldConfig handles PUT /api/field-config requests.
//
// @Summary      Update field configuration
// @Description  Creates a new active field mapping configuration
// @Tags         Field Config
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateFieldConfigRequest true "Field mapping configuration"
// @Success      200 {object} dto.SuccessResponse "Updated field configuration"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/field-config [put]
func (h *FieldConfigHandler) UpdateFieldConfig(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateFieldConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	config, err := h.fieldConfigService.Create(c.Request.Context(), req.Mapping, req.CreatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.cache.invalidate()

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.ChangeLog(ls, c, "update_field_config", "Field configuration updated", map[string]interface{}{
				"mapped_keys": len(req.Mapping),
				"version":     config.Version,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{
		"mapping":    config.Mapping,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListFieldConfigs handles GET /api/field-config/history requests.
//
// @Summary      List field configuration history
// @Description  Returns all field mapping configurations, newest first
// @Tags         Field Config
// @Accept       json
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Field configuration history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/field-config/history [get]
func (h *FieldConfigHandler) ListFieldConfigs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.fieldConfigService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}
