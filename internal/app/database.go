// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/carton-service/config"
	"github.com/guttosm/carton-service/internal/circuitbreaker"
	"github.com/guttosm/carton-service/internal/repository"
	"github.com/guttosm/carton-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	FieldConfigRepo           repository.FieldConfigRepositoryInterface
	FieldConfigService        service.FieldConfigService
	RecordsRepo               repository.RecordsRepositoryInterface
	LoggingService            service.LoggingService
	FieldConfigCircuitBreaker *circuitbreaker.CircuitBreaker
	RecordsCircuitBreaker     *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker        *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	fieldConfigCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-field-configs",
	})

	recordsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-products",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	fieldConfigRepo := repository.NewFieldConfigRepository(db)
	fieldConfigRepoWithCB := repository.NewFieldConfigRepositoryWithCircuitBreaker(fieldConfigRepo, fieldConfigCB)
	fieldConfigService := service.NewFieldConfigService(fieldConfigRepoWithCB)

	recordsRepo := repository.NewProductRecordsRepository(db, fieldConfigService)
	recordsRepoWithCB := repository.NewRecordsRepositoryWithCircuitBreaker(recordsRepo, recordsCB)

	// Initialize default field mapping if none exists
	if err := initializeDefaultFieldConfig(fieldConfigRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default field configuration")
	}

	return &DatabaseComponents{
		FieldConfigRepo:           fieldConfigRepoWithCB,
		FieldConfigService:        fieldConfigService,
		RecordsRepo:               recordsRepoWithCB,
		LoggingService:            loggingService,
		FieldConfigCircuitBreaker: fieldConfigCB,
		RecordsCircuitBreaker:     recordsCB,
		LogsCircuitBreaker:        logsCB,
	}
}

// initializeDefaultFieldConfig creates an identity field mapping if none exists.
func initializeDefaultFieldConfig(repo repository.FieldConfigRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		// No active config, create default
		mapping := service.DefaultFieldMapping()
		_, err := repo.Create(ctx, mapping, "system")
		if err != nil {
			return err
		}
		log.Info().Int("mapped_keys", len(mapping)).Msg("Created default field configuration")
	}

	return nil
}
