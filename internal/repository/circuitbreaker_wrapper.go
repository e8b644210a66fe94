// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/carton-service/internal/circuitbreaker"
	"github.com/guttosm/carton-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldConfigRepositoryWithCircuitBreaker wraps FieldConfigRepository with circuit breaker protection.
type FieldConfigRepositoryWithCircuitBreaker struct {
	repo           *FieldConfigRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewFieldConfigRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewFieldConfigRepositoryWithCircuitBreaker(repo *FieldConfigRepository, cb *circuitbreaker.CircuitBreaker) *FieldConfigRepositoryWithCircuitBreaker {
	return &FieldConfigRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active field configuration with circuit breaker protection.
func (r *FieldConfigRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*FieldConfig, error) {
	var result *FieldConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - return nil to fall back to the default mapping
		return nil, nil
	}
	return result, err
}

// Create creates a new field configuration with circuit breaker protection.
func (r *FieldConfigRepositoryWithCircuitBreaker) Create(ctx context.Context, mapping map[string]string, createdBy string) (*FieldConfig, error) {
	var result *FieldConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, mapping, createdBy)
		return cbErr
	})
	return result, err
}

// Update updates an existing field configuration with circuit breaker protection.
func (r *FieldConfigRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, mapping map[string]string, updatedBy string) (*FieldConfig, error) {
	var result *FieldConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, mapping, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns all field configurations with circuit breaker protection.
func (r *FieldConfigRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]FieldConfig, error) {
	var result []FieldConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *FieldConfigRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// RecordsRepositoryWithCircuitBreaker wraps ProductRecordsRepository with circuit breaker protection.
type RecordsRepositoryWithCircuitBreaker struct {
	repo           *ProductRecordsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRecordsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRecordsRepositoryWithCircuitBreaker(repo *ProductRecordsRepository, cb *circuitbreaker.CircuitBreaker) *RecordsRepositoryWithCircuitBreaker {
	return &RecordsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// VisibleRecordIDs lists record ids with circuit breaker protection.
func (r *RecordsRepositoryWithCircuitBreaker) VisibleRecordIDs(ctx context.Context) ([]string, error) {
	var result []string
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.VisibleRecordIDs(ctx)
		return cbErr
	})
	return result, err
}

// Fetch returns a record snapshot with circuit breaker protection.
func (r *RecordsRepositoryWithCircuitBreaker) Fetch(ctx context.Context, id string) (*model.RecordSnapshot, error) {
	var result *model.RecordSnapshot
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Fetch(ctx, id)
		return cbErr
	})
	return result, err
}

// SetField writes a field value with circuit breaker protection.
func (r *RecordsRepositoryWithCircuitBreaker) SetField(ctx context.Context, id string, key model.FieldKey, value *float64) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SetField(ctx, id, key, value)
	})
}

// Upsert inserts or replaces a record with circuit breaker protection.
func (r *RecordsRepositoryWithCircuitBreaker) Upsert(ctx context.Context, doc ProductDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, doc)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RecordsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
