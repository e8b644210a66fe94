// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/carton-service/internal/domain/model"
)

// FieldConfigRepositoryInterface defines the interface for field configuration repository operations.
type FieldConfigRepositoryInterface interface {
	GetActive(ctx context.Context) (*FieldConfig, error)
	Create(ctx context.Context, mapping map[string]string, createdBy string) (*FieldConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, mapping map[string]string, updatedBy string) (*FieldConfig, error)
	List(ctx context.Context, limit int) ([]FieldConfig, error)
}

// RecordsRepositoryInterface defines the interface for product record operations.
type RecordsRepositoryInterface interface {
	VisibleRecordIDs(ctx context.Context) ([]string, error)
	Fetch(ctx context.Context, id string) (*model.RecordSnapshot, error)
	SetField(ctx context.Context, id string, key model.FieldKey, value *float64) error
	Upsert(ctx context.Context, doc ProductDocument) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
