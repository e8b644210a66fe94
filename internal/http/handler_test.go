package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/carton-service/config"
	"github.com/guttosm/carton-service/internal/domain/dto"
	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// nilSolver always reports no feasible arrangement.
type nilSolver struct{}

func (nilSolver) Solve(quantity int, unit model.Dimensions, bufferInches float64) *model.Arrangement {
	return nil
}

// stubPacker returns a canned summary or error and captures the options it
// was invoked with.
type stubPacker struct {
	summary *model.RunSummary
	err     error
	gotOpts *model.RunOptions
}

func (s *stubPacker) ProcessRecords(ctx context.Context, opts model.RunOptions) (*model.RunSummary, error) {
	s.gotOpts = &opts
	if s.err != nil {
		return nil, s.err
	}
	return s.summary, nil
}

func setupRouter() *gin.Engine {
	solver := service.NewArrangementSolver()
	handler := NewHandler(solver, nil) // nil packer: record store disabled
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig())
}

func setupRouterWithPacker(packer service.Packer) *gin.Engine {
	solver := service.NewArrangementSolver()
	handler := NewHandler(solver, packer)
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig())
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeArrangement(t *testing.T, w *httptest.ResponseRecorder) model.Arrangement {
	t.Helper()
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.NotZero(t, resp.Timestamp)

	dataBytes, _ := json.Marshal(resp.Data)
	var arrangement model.Arrangement
	require.NoError(t, json.Unmarshal(dataBytes, &arrangement))
	return arrangement
}

func TestArrange(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "valid request",
			body:           `{"quantity": 8, "width": 2, "depth": 1, "height": 1, "unit": "in"}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				arrangement := decodeArrangement(t, w)
				assert.Equal(t, 8, arrangement.Counts.Product())
				assert.Greater(t, arrangement.VolumeCubicFeet, 0.0)
			},
		},
		{
			name:           "buffer added once per axis",
			body:           `{"quantity": 1, "width": 2, "depth": 3, "height": 4, "unit": "in", "buffer": 0.5}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				arrangement := decodeArrangement(t, w)
				assert.InDelta(t, 2.5, arrangement.Width, 1e-9)
				assert.InDelta(t, 3.5, arrangement.Depth, 1e-9)
				assert.InDelta(t, 4.5, arrangement.Height, 1e-9)
			},
		},
		{
			name:           "centimeter dimensions normalized to inches",
			body:           `{"quantity": 1, "width": 2.54, "depth": 2.54, "height": 2.54, "unit": "cm"}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				arrangement := decodeArrangement(t, w)
				assert.InDelta(t, 1.0, arrangement.Width, 1e-9)
				assert.InDelta(t, 1.0, arrangement.Depth, 1e-9)
				assert.InDelta(t, 1.0, arrangement.Height, 1e-9)
			},
		},
		{
			name:           "invalid JSON",
			body:           `{"quantity": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero quantity",
			body:           `{"quantity": 0, "width": 1, "depth": 1, "height": 1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative dimension",
			body:           `{"quantity": 4, "width": -1, "depth": 1, "height": 1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown unit",
			body:           `{"quantity": 4, "width": 1, "depth": 1, "height": 1, "unit": "yd"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative buffer",
			body:           `{"quantity": 4, "width": 1, "depth": 1, "height": 1, "buffer": -0.5}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/arrange", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
			if tt.expectedStatus != http.StatusOK {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}

func TestArrange_NoFeasibleArrangement(t *testing.T) {
	handler := NewHandler(nilSolver{}, nil)
	healthHandler := NewHealthHandler()
	router := NewRouter(handler, healthHandler, DefaultRouterConfig())

	w := postJSON(router, "/api/arrange", `{"quantity": 4, "width": 1, "depth": 1, "height": 1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPack(t *testing.T) {
	t.Run("successful run returns summary", func(t *testing.T) {
		packer := &stubPacker{summary: &model.RunSummary{
			RunID:     "run-1",
			Requested: 2,
			Processed: 2,
			Records: []model.RecordOutcome{
				{RecordID: "a", Code: model.OutcomePacked},
				{RecordID: "b", Code: model.OutcomeMasterQtyMissing},
			},
		}}
		router := setupRouterWithPacker(packer)

		w := postJSON(router, "/api/pack", `{"record_ids": ["a", "b"]}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		dataBytes, _ := json.Marshal(resp.Data)
		var summary model.RunSummary
		require.NoError(t, json.Unmarshal(dataBytes, &summary))
		assert.Equal(t, "run-1", summary.RunID)
		assert.Len(t, summary.Records, 2)
	})

	t.Run("record store disabled returns 503", func(t *testing.T) {
		router := setupRouter()

		w := postJSON(router, "/api/pack", `{}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		router := setupRouterWithPacker(&stubPacker{})

		w := postJSON(router, "/api/pack", `{"record_ids": `)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid buffer unit returns 400", func(t *testing.T) {
		router := setupRouterWithPacker(&stubPacker{})

		w := postJSON(router, "/api/pack", `{"inner_buffer": 1, "inner_buffer_unit": "yd"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("packer failure returns 500", func(t *testing.T) {
		packer := &stubPacker{err: errors.New("record host unreachable")}
		router := setupRouterWithPacker(packer)

		w := postJSON(router, "/api/pack", `{}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandler_RunOptions(t *testing.T) {
	defaults := config.PackingConfig{
		InnerBuffer:      0.25,
		InnerBufferUnit:  "in",
		MasterBuffer:     1,
		MasterBufferUnit: "cm",
		InnerMaterial:    "box",
	}
	handler := NewHandler(service.NewArrangementSolver(), nil, WithPackingDefaults(defaults))

	t.Run("defaults apply when request omits overrides", func(t *testing.T) {
		opts := handler.runOptions(&dto.PackRunRequest{})
		assert.Equal(t, 0.25, opts.InnerBuffer)
		assert.Equal(t, model.LengthUnitInch, opts.InnerBufferUnit)
		assert.Equal(t, 1.0, opts.MasterBuffer)
		assert.Equal(t, model.LengthUnitCentimeter, opts.MasterBufferUnit)
		assert.Equal(t, model.MaterialBox, opts.InnerMaterial)
	})

	t.Run("request overrides win", func(t *testing.T) {
		innerBuffer := 2.0
		opts := handler.runOptions(&dto.PackRunRequest{
			InnerBuffer:     &innerBuffer,
			InnerBufferUnit: "cm",
			InnerMaterial:   "polybag",
		})
		assert.Equal(t, 2.0, opts.InnerBuffer)
		assert.Equal(t, model.LengthUnitCentimeter, opts.InnerBufferUnit)
		assert.Equal(t, model.MaterialPolyBag, opts.InnerMaterial)
		// Master level keeps the defaults.
		assert.Equal(t, 1.0, opts.MasterBuffer)
	})

	t.Run("zero override is respected", func(t *testing.T) {
		zero := 0.0
		opts := handler.runOptions(&dto.PackRunRequest{InnerBuffer: &zero})
		assert.Equal(t, 0.0, opts.InnerBuffer)
	})
}
