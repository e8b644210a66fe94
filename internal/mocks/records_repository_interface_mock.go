// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/repository"
)

type MockRecordsRepositoryInterface struct {
	mock.Mock
}

func (m *MockRecordsRepositoryInterface) VisibleRecordIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRecordsRepositoryInterface) Fetch(ctx context.Context, id string) (*model.RecordSnapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RecordSnapshot), args.Error(1)
}

func (m *MockRecordsRepositoryInterface) SetField(ctx context.Context, id string, key model.FieldKey, value *float64) error {
	args := m.Called(ctx, id, key, value)
	return args.Error(0)
}

func (m *MockRecordsRepositoryInterface) Upsert(ctx context.Context, doc repository.ProductDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
