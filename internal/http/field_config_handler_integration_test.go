//go:build integration

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/carton-service/internal/circuitbreaker"
	"github.com/guttosm/carton-service/internal/repository"
	"github.com/guttosm/carton-service/internal/service"
)

func setupFieldConfigIntegrationRouter(dbName string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	uri := getSharedContainerURI()
	db, err := repository.NewMongoDB(uri, dbName)
	if err != nil {
		panic(err)
	}

	solver := service.NewArrangementSolver()
	logsRepo := repository.NewLogsRepository(db)
	logsCB := circuitbreaker.New(circuitbreaker.DefaultConfig())
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	fieldConfigRepo := repository.NewFieldConfigRepository(db)
	fieldConfigCB := circuitbreaker.New(circuitbreaker.DefaultConfig())
	fieldConfigRepoWithCB := repository.NewFieldConfigRepositoryWithCircuitBreaker(fieldConfigRepo, fieldConfigCB)
	fieldConfigService := service.NewFieldConfigService(fieldConfigRepoWithCB)

	handler := NewHandler(solver, nil)
	healthHandler := NewHealthHandler()
	healthHandler.RegisterCircuitBreaker("mongodb_field_config", fieldConfigCB)
	healthHandler.RegisterCircuitBreaker("mongodb_logs", logsCB)

	cfg := RouterConfig{
		RateLimit:          100,
		RateWindow:         time.Minute,
		EnableAuth:         false,
		LoggingService:     loggingService,
		FieldConfigService: fieldConfigService,
	}

	router := NewRouter(handler, healthHandler, cfg)

	return router
}

func TestFieldConfigHandler_Integration(t *testing.T) {
	t.Parallel()

	// Use shared container with unique database name
	dbName := sanitizeDBNameForHTTP(t.Name())
	router := setupFieldConfigIntegrationRouter(dbName)

	t.Run("get active field config when none exists", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/field-config", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("create field config via repository then get", func(t *testing.T) {
		ctx := context.Background()
		uri := getSharedContainerURI()
		// Use the same database name as the router
		testDBName := sanitizeDBNameForHTTP(t.Name() + "_get")
		db, err := repository.NewMongoDB(uri, testDBName)
		require.NoError(t, err)
		defer func() {
			_ = db.Close(ctx)
		}()

		repo := repository.NewFieldConfigRepository(db)
		_, createErr := repo.Create(ctx, map[string]string{
			"unit_width": "field-101",
			"unit_depth": "field-102",
		}, "test")
		require.NoError(t, createErr)

		// Create a router with the same database where we created the config
		testRouter := setupFieldConfigIntegrationRouter(testDBName)

		// Now get via API
		req := httptest.NewRequest(http.MethodGet, "/api/field-config", nil)
		w := httptest.NewRecorder()

		testRouter.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err = json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		data, ok := response["data"].(map[string]interface{})
		require.True(t, ok, "Response data should be a map")
		mapping := data["mapping"].(map[string]interface{})
		assert.Equal(t, 2, len(mapping))
		assert.Equal(t, "field-101", mapping["unit_width"])
	})

	t.Run("update field config", func(t *testing.T) {
		ctx := context.Background()
		uri := getSharedContainerURI()
		testDBName := sanitizeDBNameForHTTP(t.Name() + "_update")
		db, err := repository.NewMongoDB(uri, testDBName)
		require.NoError(t, err)
		defer func() {
			_ = db.Close(ctx)
		}()

		// First create an initial configuration
		repo := repository.NewFieldConfigRepository(db)
		_, createErr := repo.Create(ctx, map[string]string{"unit_width": "field-1"}, "test-user-init")
		require.NoError(t, createErr)

		// Create router with the same database
		testRouter := setupFieldConfigIntegrationRouter(testDBName)

		updateBody := map[string]interface{}{
			"mapping": map[string]string{
				"unit_width":  "field-201",
				"unit_depth":  "field-202",
				"unit_height": "field-203",
			},
			"created_by": "test-user",
		}
		bodyBytes, _ := json.Marshal(updateBody)

		req := httptest.NewRequest(http.MethodPut, "/api/field-config", bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		testRouter.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err = json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		data, ok := response["data"].(map[string]interface{})
		require.True(t, ok, "Response data should be a map")
		mapping := data["mapping"].(map[string]interface{})
		assert.Equal(t, 3, len(mapping))
		assert.Equal(t, float64(2), data["version"])
	})

	t.Run("list field config history", func(t *testing.T) {
		ctx := context.Background()
		uri := getSharedContainerURI()
		dbName := sanitizeDBNameForHTTP(t.Name() + "_history")
		db, err := repository.NewMongoDB(uri, dbName)
		require.NoError(t, err)
		defer func() {
			_ = db.Close(ctx)
		}()

		repo := repository.NewFieldConfigRepository(db)
		_, createErr := repo.Create(ctx, map[string]string{"unit_width": "field-1"}, "test-user-1")
		require.NoError(t, createErr)
		_, createErr = repo.Create(ctx, map[string]string{"unit_width": "field-2"}, "test-user-2")
		require.NoError(t, createErr)

		// Create a router with the same database where we created the configs
		historyRouter := setupFieldConfigIntegrationRouter(dbName)

		req := httptest.NewRequest(http.MethodGet, "/api/field-config/history", nil)
		w := httptest.NewRecorder()

		historyRouter.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err = json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err, "Response should be valid JSON: %s", w.Body.String())

		data, ok := response["data"].([]interface{})
		require.True(t, ok, "Response data should be an array")
		assert.GreaterOrEqual(t, len(data), 2, "Should have the full configuration history")
	})
}

func TestHealthCheckWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()

	// Use shared container with unique database name
	dbName := sanitizeDBNameForHTTP(t.Name())
	router := setupFieldConfigIntegrationRouter(dbName)

	t.Run("health check includes circuit breaker status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		checks := response["checks"].(map[string]interface{})
		assert.Contains(t, checks, "mongodb_field_config_circuit")
		assert.Contains(t, checks, "mongodb_logs_circuit")
		assert.Equal(t, "closed", checks["mongodb_field_config_circuit"])
		assert.Equal(t, "closed", checks["mongodb_logs_circuit"])
	})
}
