// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/carton-service/internal/repository"
)

type MockFieldConfigRepositoryInterface struct {
	mock.Mock
}

func (m *MockFieldConfigRepositoryInterface) GetActive(ctx context.Context) (*repository.FieldConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.FieldConfig), args.Error(1)
}

func (m *MockFieldConfigRepositoryInterface) Create(ctx context.Context, mapping map[string]string, createdBy string) (*repository.FieldConfig, error) {
	args := m.Called(ctx, mapping, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.FieldConfig), args.Error(1)
}

func (m *MockFieldConfigRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, mapping map[string]string, updatedBy string) (*repository.FieldConfig, error) {
	args := m.Called(ctx, id, mapping, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.FieldConfig), args.Error(1)
}

func (m *MockFieldConfigRepositoryInterface) List(ctx context.Context, limit int) ([]repository.FieldConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FieldConfig), args.Error(1)
}
