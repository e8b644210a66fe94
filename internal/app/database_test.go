//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/carton-service/internal/mocks"
	"github.com/guttosm/carton-service/internal/repository"
	"github.com/guttosm/carton-service/internal/service"
)

func TestInitializeDefaultFieldConfig(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockFieldConfigRepositoryInterface)
		wantError bool
	}{
		{
			name: "no active config creates identity mapping",
			setupMock: func(m *mocks.MockFieldConfigRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, nil).Once()
				config := &repository.FieldConfig{
					ID:      primitive.NewObjectID(),
					Mapping: service.DefaultFieldMapping(),
					Active:  true,
				}
				m.On("Create", mock.Anything, service.DefaultFieldMapping(), "system").Return(config, nil).Once()
			},
			wantError: false,
		},
		{
			name: "active config exists skips creation",
			setupMock: func(m *mocks.MockFieldConfigRepositoryInterface) {
				activeConfig := &repository.FieldConfig{
					ID:      primitive.NewObjectID(),
					Mapping: map[string]string{"unit_width": "field-101"},
					Active:  true,
				}
				m.On("GetActive", mock.Anything).Return(activeConfig, nil).Once()
			},
			wantError: false,
		},
		{
			name: "get active error",
			setupMock: func(m *mocks.MockFieldConfigRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
		{
			name: "create error",
			setupMock: func(m *mocks.MockFieldConfigRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, nil).Once()
				m.On("Create", mock.Anything, mock.Anything, "system").Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockFieldConfigRepositoryInterface)
			mockRepo.Test(t)
			tt.setupMock(mockRepo)

			err := initializeDefaultFieldConfig(mockRepo)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
