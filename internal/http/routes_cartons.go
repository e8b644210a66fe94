package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/carton-service/internal/service"
)

// CartonRoutes handles carton-related route registration.
type CartonRoutes struct {
	handler            *Handler
	fieldConfigHandler *FieldConfigHandler
	logsHandler        *LogsHandler
}

// NewCartonRoutes creates a new CartonRoutes instance.
func NewCartonRoutes(handler *Handler, fieldConfigService service.FieldConfigService, loggingService service.LoggingService) *CartonRoutes {
	var fieldConfigHandler *FieldConfigHandler
	if fieldConfigService != nil {
		fieldConfigHandler = NewFieldConfigHandler(fieldConfigService)
	}

	var logsHandler *LogsHandler
	if loggingService != nil {
		logsHandler = NewLogsHandler(loggingService)
	}

	return &CartonRoutes{
		handler:            handler,
		fieldConfigHandler: fieldConfigHandler,
		logsHandler:        logsHandler,
	}
}

// RegisterRoutes registers the carton API routes.
func (r *CartonRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	if r.handler != nil {
		rg.POST("/arrange", r.handler.Arrange)
		rg.POST("/pack", r.handler.Pack)
	}

	if r.fieldConfigHandler != nil {
		rg.GET("/field-config", r.fieldConfigHandler.GetActiveFieldConfig)
		rg.PUT("/field-config", r.fieldConfigHandler.UpdateFieldConfig)
		rg.GET("/field-config/history", r.fieldConfigHandler.ListFieldConfigs)
	}

	if r.logsHandler != nil {
		rg.GET("/runs/logs", r.logsHandler.QueryRunLogs)
	}
}

// GetHandler returns the underlying carton handler.
func (r *CartonRoutes) GetHandler() *Handler {
	return r.handler
}
