// Package app provides router configuration.
package app

import (
	"github.com/guttosm/carton-service/config"
	"github.com/guttosm/carton-service/internal/http"
	"github.com/guttosm/carton-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	solver service.Solver,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var fieldConfigService service.FieldConfigService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		fieldConfigService = dbComponents.FieldConfigService
	}

	// Initialize the packing cascade when a record store is available
	var packer service.Packer
	if dbComponents != nil && dbComponents.RecordsRepo != nil {
		packer = service.NewPackingService(
			dbComponents.RecordsRepo,
			solver,
			service.WithNotifierFactory(service.NewRunNotifier(loggingService)),
		)
	}

	handler := http.NewHandler(solver, packer, http.WithPackingDefaults(cfg.Packing))
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.FieldConfigCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_field_configs", dbComponents.FieldConfigCircuitBreaker)
		}
		if dbComponents.RecordsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_products", dbComponents.RecordsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:          cfg.Server.RateLimit,
		RateWindow:         cfg.Server.RateWindow,
		EnableAuth:         cfg.Auth.Enabled,
		APIKeys:            cfg.Auth.APIKeys,
		EnableIdempotency:  true,
		CORSOrigins:        cfg.Server.CORSOrigins,
		SwaggerUser:        cfg.Server.SwaggerUser,
		SwaggerPass:        cfg.Server.SwaggerPass,
		LoggingService:     loggingService,
		FieldConfigService: fieldConfigService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
