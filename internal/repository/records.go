// Package repository provides data access for product records.
package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/carton-service/internal/domain/model"
)

// ProductDocument represents a product record. Fields holds the raw,
// heterogeneous field values keyed by field id; the active field
// configuration decides which ids the packing cascade reads and writes.
type ProductDocument struct {
	ID       string `bson:"_id" json:"id"`
	Label    string `bson:"label" json:"label"`
	Position int    `bson:"position" json:"position"`
	Fields   bson.M `bson:"fields" json:"fields"`
}

// FieldMappingProvider resolves the active logical-key to field-id mapping.
type FieldMappingProvider interface {
	ActiveMapping(ctx context.Context) (map[model.FieldKey]string, error)
}

// ProductRecordsRepository provides record access for the packing cascade.
// Keys without a mapped field id read as absent and write as a no-op.
type ProductRecordsRepository struct {
	collection *mongo.Collection
	mapping    FieldMappingProvider
}

// NewProductRecordsRepository creates a new product records repository.
func NewProductRecordsRepository(db *MongoDB, mapping FieldMappingProvider) *ProductRecordsRepository {
	return &ProductRecordsRepository{
		collection: db.Products,
		mapping:    mapping,
	}
}

// VisibleRecordIDs returns every product id in view order.
func (r *ProductRecordsRepository) VisibleRecordIDs(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetSort(bson.M{"position": 1}).
		SetProjection(bson.M{"_id": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

// Fetch returns a snapshot of one product's mapped field values.
func (r *ProductRecordsRepository) Fetch(ctx context.Context, id string) (*model.RecordSnapshot, error) {
	var doc ProductDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("product %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", id, err)
	}

	mapping, err := r.mapping.ActiveMapping(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve field mapping: %w", err)
	}

	snap := &model.RecordSnapshot{
		ID:     doc.ID,
		Label:  doc.Label,
		Fields: make(map[model.FieldKey]interface{}, len(mapping)),
	}
	for key, fieldID := range mapping {
		if raw, ok := doc.Fields[fieldID]; ok {
			snap.Fields[key] = raw
		}
	}
	return snap, nil
}

// SetField writes a numeric field value. A nil value clears the field. A key
// without a mapped field id is silently ignored.
func (r *ProductRecordsRepository) SetField(ctx context.Context, id string, key model.FieldKey, value *float64) error {
	mapping, err := r.mapping.ActiveMapping(ctx)
	if err != nil {
		return fmt.Errorf("resolve field mapping: %w", err)
	}
	fieldID, ok := mapping[key]
	if !ok || fieldID == "" {
		return nil
	}

	path := "fields." + fieldID
	var update bson.M
	if value == nil {
		update = bson.M{"$unset": bson.M{path: ""}}
	} else {
		update = bson.M{"$set": bson.M{path: *value}}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update product %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("product %s not found", id)
	}
	return nil
}

// Upsert inserts or replaces a product record.
func (r *ProductRecordsRepository) Upsert(ctx context.Context, doc ProductDocument) error {
	if doc.Fields == nil {
		doc.Fields = bson.M{}
	}
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": doc.ID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}
