package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/carton-service/internal/domain/model"
)

func TestArrangeRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ArrangeRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "valid request",
			request:   ArrangeRequest{Quantity: 8, Width: 2, Depth: 1, Height: 1},
			wantError: false,
		},
		{
			name:      "valid request with unit and buffer",
			request:   ArrangeRequest{Quantity: 12, Width: 10, Depth: 5, Height: 4, Unit: "cm", Buffer: 0.25},
			wantError: false,
		},
		{
			name:      "zero quantity",
			request:   ArrangeRequest{Quantity: 0, Width: 2, Depth: 1, Height: 1},
			wantError: true,
			errorMsg:  "must be a positive integer",
		},
		{
			name:      "negative quantity",
			request:   ArrangeRequest{Quantity: -5, Width: 2, Depth: 1, Height: 1},
			wantError: true,
			errorMsg:  "must be a positive integer",
		},
		{
			name:      "zero width",
			request:   ArrangeRequest{Quantity: 8, Width: 0, Depth: 1, Height: 1},
			wantError: true,
			errorMsg:  "width, depth and height must be positive numbers",
		},
		{
			name:      "negative height",
			request:   ArrangeRequest{Quantity: 8, Width: 2, Depth: 1, Height: -1},
			wantError: true,
			errorMsg:  "width, depth and height must be positive numbers",
		},
		{
			name:      "unknown unit",
			request:   ArrangeRequest{Quantity: 8, Width: 2, Depth: 1, Height: 1, Unit: "mm"},
			wantError: true,
			errorMsg:  "must be \"in\" or \"cm\"",
		},
		{
			name:      "negative buffer",
			request:   ArrangeRequest{Quantity: 8, Width: 2, Depth: 1, Height: 1, Buffer: -0.5},
			wantError: true,
			errorMsg:  "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantError {
				assert.Error(t, err)
				if validationErr, ok := err.(*ValidationError); ok {
					assert.Equal(t, tt.errorMsg, validationErr.Message)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArrangeRequest_LengthUnit(t *testing.T) {
	assert.Equal(t, model.LengthUnitInch, (&ArrangeRequest{}).LengthUnit())
	assert.Equal(t, model.LengthUnitInch, (&ArrangeRequest{Unit: "in"}).LengthUnit())
	assert.Equal(t, model.LengthUnitCentimeter, (&ArrangeRequest{Unit: "cm"}).LengthUnit())
}

func TestPackRunRequest_Validate(t *testing.T) {
	negative := -0.5
	quarter := 0.25

	tests := []struct {
		name      string
		request   PackRunRequest
		wantError bool
	}{
		{
			name:      "empty request",
			request:   PackRunRequest{},
			wantError: false,
		},
		{
			name:      "explicit record ids",
			request:   PackRunRequest{RecordIDs: []string{"sku-1", "sku-2"}},
			wantError: false,
		},
		{
			name:      "valid buffers and material",
			request:   PackRunRequest{InnerBuffer: &quarter, InnerBufferUnit: "cm", InnerMaterial: "polybag"},
			wantError: false,
		},
		{
			name:      "unknown buffer unit",
			request:   PackRunRequest{InnerBufferUnit: "ft"},
			wantError: true,
		},
		{
			name:      "negative inner buffer",
			request:   PackRunRequest{InnerBuffer: &negative},
			wantError: true,
		},
		{
			name:      "negative master buffer",
			request:   PackRunRequest{MasterBuffer: &negative},
			wantError: true,
		},
		{
			name:      "unknown material",
			request:   PackRunRequest{InnerMaterial: "foam"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPackRunRequest_Material(t *testing.T) {
	assert.Equal(t, model.MaterialBox, (&PackRunRequest{}).Material())
	assert.Equal(t, model.MaterialBox, (&PackRunRequest{InnerMaterial: "box"}).Material())
	assert.Equal(t, model.MaterialPolyBag, (&PackRunRequest{InnerMaterial: "polybag"}).Material())
}

func TestUpdateFieldConfigRequest_Validate(t *testing.T) {
	t.Run("valid mapping", func(t *testing.T) {
		req := UpdateFieldConfigRequest{
			Mapping: map[string]string{
				"unit_width": "fld_a1",
				"unit_depth": "fld_a2",
			},
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty mapping", func(t *testing.T) {
		req := UpdateFieldConfigRequest{Mapping: map[string]string{}}
		assert.Error(t, req.Validate())
	})

	t.Run("unknown field key", func(t *testing.T) {
		req := UpdateFieldConfigRequest{
			Mapping: map[string]string{"not_a_key": "fld_x"},
		}
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown field key")
	})
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "quantity", Message: "must be a positive integer"}
	assert.Equal(t, "quantity: must be a positive integer", err.Error())
}
