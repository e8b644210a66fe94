// Package repository provides data access for field configurations.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FieldConfig represents a field-mapping configuration document. Mapping
// resolves logical field keys to record-store field ids.
type FieldConfig struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Mapping   map[string]string      `bson:"mapping" json:"mapping"`
	Active    bool                   `bson:"active" json:"active"`
	Version   int                    `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// FieldConfigRepository provides methods for field configuration operations.
type FieldConfigRepository struct {
	collection *mongo.Collection
}

// NewFieldConfigRepository creates a new field configuration repository.
func NewFieldConfigRepository(db *MongoDB) *FieldConfigRepository {
	return &FieldConfigRepository{
		collection: db.FieldConfigs,
	}
}

// GetActive returns the active field configuration.
func (r *FieldConfigRepository) GetActive(ctx context.Context) (*FieldConfig, error) {
	var config FieldConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active config found
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create creates a new field configuration and deactivates any previous one.
func (r *FieldConfigRepository) Create(ctx context.Context, mapping map[string]string, createdBy string) (*FieldConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := FieldConfig{
		ID:        primitive.NewObjectID(),
		Mapping:   mapping,
		Active:    true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
		Metadata:  make(map[string]interface{}),
	}

	_, err = r.collection.InsertOne(ctx, config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Update updates an existing field configuration.
func (r *FieldConfigRepository) Update(ctx context.Context, id primitive.ObjectID, mapping map[string]string, updatedBy string) (*FieldConfig, error) {
	var current FieldConfig
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"mapping":    mapping,
			"updated_at": time.Now(),
			"version":    current.Version + 1,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var config FieldConfig
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns field configurations, newest first.
func (r *FieldConfigRepository) List(ctx context.Context, limit int) ([]FieldConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []FieldConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
