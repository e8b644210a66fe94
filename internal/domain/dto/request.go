// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "github.com/guttosm/carton-service/internal/domain/model"

// ArrangeRequest represents the JSON request body for the arrangement endpoint.
//
// Quantity is required and must be a positive integer. Dimensions are the
// outer dimensions of one unit; Unit selects their length unit and defaults
// to inches. Buffer is added to every axis of the carton.
//
// @Description Request to calculate the minimum-volume carton arrangement
// @Example {"quantity": 8, "width": 2, "depth": 1, "height": 1}
// @Example {"quantity": 12, "width": 10, "depth": 5, "height": 4, "unit": "cm", "buffer": 0.25}
type ArrangeRequest struct {
	// Quantity is the number of units to arrange. Must be greater than 0.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"8" minimum:"1"`
	// Width is the unit width. Must be greater than 0.
	Width float64 `json:"width" binding:"required,gt=0" example:"2"`
	// Depth is the unit depth. Must be greater than 0.
	Depth float64 `json:"depth" binding:"required,gt=0" example:"1"`
	// Height is the unit height. Must be greater than 0.
	Height float64 `json:"height" binding:"required,gt=0" example:"1"`
	// Unit is the length unit of the dimensions and buffer ("in" or "cm").
	Unit string `json:"unit,omitempty" example:"in" enums:"in,cm"`
	// Buffer is extra space added to every axis, in the same unit.
	Buffer float64 `json:"buffer,omitempty" example:"0.25"`
} // @name ArrangeRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidQuantity is returned when quantity is invalid.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
	// ErrInvalidDimensions is returned when a dimension is not positive.
	ErrInvalidDimensions = &ValidationError{
		Field:   "dimensions",
		Message: "width, depth and height must be positive numbers",
	}
	// ErrInvalidUnit is returned when the length unit is not recognized.
	ErrInvalidUnit = &ValidationError{
		Field:   "unit",
		Message: "must be \"in\" or \"cm\"",
	}
	// ErrInvalidMaterial is returned when the inner material is not recognized.
	ErrInvalidMaterial = &ValidationError{
		Field:   "inner_material",
		Message: "must be \"box\" or \"polybag\"",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *ArrangeRequest) Validate() error {
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if r.Width <= 0 || r.Depth <= 0 || r.Height <= 0 {
		return ErrInvalidDimensions
	}
	if !validUnit(r.Unit) {
		return ErrInvalidUnit
	}
	if r.Buffer < 0 {
		return &ValidationError{Field: "buffer", Message: "must not be negative"}
	}
	return nil
}

// LengthUnit returns the parsed length unit, defaulting to inches.
func (r *ArrangeRequest) LengthUnit() model.LengthUnit {
	if r.Unit == string(model.LengthUnitCentimeter) {
		return model.LengthUnitCentimeter
	}
	return model.LengthUnitInch
}

// PackRunRequest represents the JSON request body for the packing run endpoint.
//
// When RecordIDs is empty or ForceAll is set, the run covers every visible
// record. Buffers default to the server configuration when omitted.
//
// @Description Request to run the packing cascade over a record set
// @Example {"record_ids": ["sku-1", "sku-2"]}
// @Example {"force_all": true, "inner_buffer": 0.25, "master_buffer": 0.5, "inner_material": "polybag"}
type PackRunRequest struct {
	// RecordIDs selects the records to process. Empty means all records.
	RecordIDs []string `json:"record_ids,omitempty" example:"sku-1,sku-2"`
	// ForceAll processes every visible record regardless of RecordIDs.
	ForceAll bool `json:"force_all,omitempty" example:"false"`
	// InnerBuffer is extra space per axis for inner cartons.
	InnerBuffer *float64 `json:"inner_buffer,omitempty" example:"0.25"`
	// InnerBufferUnit is the length unit of InnerBuffer ("in" or "cm").
	InnerBufferUnit string `json:"inner_buffer_unit,omitempty" example:"in" enums:"in,cm"`
	// MasterBuffer is extra space per axis for master cartons.
	MasterBuffer *float64 `json:"master_buffer,omitempty" example:"0.5"`
	// MasterBufferUnit is the length unit of MasterBuffer ("in" or "cm").
	MasterBufferUnit string `json:"master_buffer_unit,omitempty" example:"in" enums:"in,cm"`
	// InnerMaterial is the inner packaging material ("box" or "polybag").
	InnerMaterial string `json:"inner_material,omitempty" example:"box" enums:"box,polybag"`
} // @name PackRunRequest

// Validate performs custom validation on the request.
func (r *PackRunRequest) Validate() error {
	if !validUnit(r.InnerBufferUnit) {
		return &ValidationError{Field: "inner_buffer_unit", Message: "must be \"in\" or \"cm\""}
	}
	if !validUnit(r.MasterBufferUnit) {
		return &ValidationError{Field: "master_buffer_unit", Message: "must be \"in\" or \"cm\""}
	}
	if r.InnerBuffer != nil && *r.InnerBuffer < 0 {
		return &ValidationError{Field: "inner_buffer", Message: "must not be negative"}
	}
	if r.MasterBuffer != nil && *r.MasterBuffer < 0 {
		return &ValidationError{Field: "master_buffer", Message: "must not be negative"}
	}
	switch r.InnerMaterial {
	case "", string(model.MaterialBox), string(model.MaterialPolyBag):
	default:
		return ErrInvalidMaterial
	}
	return nil
}

// Material returns the parsed inner material, defaulting to box.
func (r *PackRunRequest) Material() model.Material {
	if r.InnerMaterial == string(model.MaterialPolyBag) {
		return model.MaterialPolyBag
	}
	return model.MaterialBox
}

// UpdateFieldConfigRequest represents the JSON request body for updating the field mapping.
type UpdateFieldConfigRequest struct {
	// Mapping resolves logical field keys to record-store field ids.
	Mapping map[string]string `json:"mapping" binding:"required,min=1"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateFieldConfigRequest

// Validate checks that every mapping key is a known field key.
func (r *UpdateFieldConfigRequest) Validate() error {
	if len(r.Mapping) == 0 {
		return &ValidationError{Field: "mapping", Message: "must not be empty"}
	}
	known := make(map[string]bool, len(model.AllFieldKeys()))
	for _, key := range model.AllFieldKeys() {
		known[string(key)] = true
	}
	for key := range r.Mapping {
		if !known[key] {
			return &ValidationError{Field: "mapping", Message: "unknown field key: " + key}
		}
	}
	return nil
}

func validUnit(unit string) bool {
	switch unit {
	case "", string(model.LengthUnitInch), string(model.LengthUnitCentimeter):
		return true
	}
	return false
}
