package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/carton-service/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestNewRouter(t *testing.T) {
	solver := service.NewArrangementSolver()
	handler := NewHandler(solver, nil) // nil means the record store is disabled
	healthHandler := NewHealthHandler()

	tests := []struct {
		name string
		cfg  RouterConfig
		test func(*testing.T, *gin.Engine)
	}{
		{
			name: "creates router with default config",
			cfg:  DefaultRouterConfig(),
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with auth enabled",
			cfg: RouterConfig{
				RateLimit:  100,
				RateWindow: time.Minute,
				EnableAuth: true,
				APIKeys:    map[string]bool{"test-key": true},
			},
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with idempotency enabled",
			cfg: RouterConfig{
				RateLimit:         100,
				RateWindow:        time.Minute,
				EnableIdempotency: true,
			},
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with rate limiting",
			cfg: RouterConfig{
				RateLimit:  5,
				RateWindow: time.Second,
			},
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(handler, healthHandler, tt.cfg)
			if tt.test != nil {
				tt.test(t, router)
			}
		})
	}
}

func TestRouter_PerKeyRateLimiting(t *testing.T) {
	solver := service.NewArrangementSolver()
	handler := NewHandler(solver, nil)
	healthHandler := NewHealthHandler()
	router := NewRouter(handler, healthHandler, RouterConfig{
		RateLimit:  2,
		RateWindow: time.Minute,
		EnableAuth: true,
		APIKeys:    map[string]bool{"key-a": true, "key-b": true},
	})

	do := func(key string) int {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-API-Key", key)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("key-a"))
	assert.Equal(t, http.StatusOK, do("key-a"))
	assert.Equal(t, http.StatusTooManyRequests, do("key-a"))

	// A different key carries its own budget.
	assert.Equal(t, http.StatusOK, do("key-b"))
}

func TestRouter_Endpoints(t *testing.T) {
	solver := service.NewArrangementSolver()
	handler := NewHandler(solver, nil) // nil means the record store is disabled
	healthHandler := NewHealthHandler()
	router := NewRouter(handler, healthHandler, DefaultRouterConfig())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "healthz endpoint",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "readyz endpoint",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics endpoint",
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "swagger endpoint",
			method:         http.MethodGet,
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "arrange endpoint",
			method:         http.MethodPost,
			path:           "/api/arrange",
			expectedStatus: http.StatusBadRequest, // Missing body
		},
		{
			name:           "pack endpoint",
			method:         http.MethodPost,
			path:           "/api/pack",
			expectedStatus: http.StatusBadRequest, // Missing body
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
