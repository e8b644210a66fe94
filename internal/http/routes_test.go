package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/mocks"
	"github.com/guttosm/carton-service/internal/service"
)

func TestNewCartonRoutes(t *testing.T) {
	handler := NewHandler(service.NewArrangementSolver(), nil)

	t.Run("with field config and logging services", func(t *testing.T) {
		fieldConfigService := service.NewFieldConfigService(new(mocks.MockFieldConfigRepositoryInterface))
		loggingService := new(mocks.MockLoggingService)

		routes := NewCartonRoutes(handler, fieldConfigService, loggingService)

		assert.NotNil(t, routes)
		assert.NotNil(t, routes.handler)
		assert.NotNil(t, routes.fieldConfigHandler)
		assert.NotNil(t, routes.logsHandler)
	})

	t.Run("without optional services", func(t *testing.T) {
		routes := NewCartonRoutes(handler, nil, nil)

		assert.NotNil(t, routes)
		assert.NotNil(t, routes.handler)
		assert.Nil(t, routes.fieldConfigHandler)
		assert.Nil(t, routes.logsHandler)
	})
}

func TestCartonRoutes_RegisterRoutes(t *testing.T) {
	handler := NewHandler(service.NewArrangementSolver(), nil)

	fieldConfigRepo := new(mocks.MockFieldConfigRepositoryInterface)
	fieldConfigRepo.On("GetActive", mock.Anything).Return(nil, nil).Maybe()
	fieldConfigRepo.On("List", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	fieldConfigService := service.NewFieldConfigService(fieldConfigRepo)

	loggingService := new(mocks.MockLoggingService)
	loggingService.On("QueryLogs", mock.Anything, mock.Anything).Return([]model.LogEntry{}, nil).Maybe()
	loggingService.On("CountLogs", mock.Anything, mock.Anything).Return(int64(0), nil).Maybe()

	routes := NewCartonRoutes(handler, fieldConfigService, loggingService)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterRoutes(api)

	// Verify routes are registered by checking if they respond
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/arrange"},
		{http.MethodPost, "/api/pack"},
		{http.MethodGet, "/api/field-config"},
		{http.MethodPut, "/api/field-config"},
		{http.MethodGet, "/api/field-config/history"},
		{http.MethodGet, "/api/runs/logs"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Should not return 404 - route exists
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestCartonRoutes_RegisterRoutes_WithoutOptionalServices(t *testing.T) {
	handler := NewHandler(service.NewArrangementSolver(), nil)
	routes := NewCartonRoutes(handler, nil, nil)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterRoutes(api)

	// Arrange route should exist
	req := httptest.NewRequest(http.MethodPost, "/api/arrange", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusNotFound, w.Code)

	// Field config routes should NOT exist
	req2 := httptest.NewRequest(http.MethodGet, "/api/field-config", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusNotFound, w2.Code)

	// Run log routes should NOT exist
	req3 := httptest.NewRequest(http.MethodGet, "/api/runs/logs", nil)
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req3)
	assert.Equal(t, http.StatusNotFound, w3.Code)
}

func TestCartonRoutes_GetHandler(t *testing.T) {
	handler := NewHandler(service.NewArrangementSolver(), nil)
	routes := NewCartonRoutes(handler, nil, nil)

	assert.NotNil(t, routes.GetHandler())
	assert.Equal(t, routes.handler, routes.GetHandler())
}
