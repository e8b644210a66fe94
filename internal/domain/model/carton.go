// Package model defines the core domain entities for the carton service.
package model

import "math"

// LengthUnit identifies the unit a buffer magnitude is expressed in.
type LengthUnit string

const (
	// LengthUnitInch is the base unit for all stored dimensions.
	LengthUnitInch LengthUnit = "in"
	// LengthUnitCentimeter is accepted on input and normalized to inches.
	LengthUnitCentimeter LengthUnit = "cm"
)

// Material identifies the inner carton packaging material.
type Material string

const (
	// MaterialBox is a rigid inner carton. Adds packaging mass and honors
	// the configured inner buffer.
	MaterialBox Material = "box"
	// MaterialPolyBag is a flexible bag. No packaging mass, and the inner
	// buffer is forced to zero.
	MaterialPolyBag Material = "polybag"
)

// Conversion constants used by the packing computations.
const (
	// CentimetersPerInch converts centimetre inputs to inches.
	CentimetersPerInch = 2.54
	// CubicInchesPerCubicFoot converts in³ volumes to ft³.
	CubicInchesPerCubicFoot = 1728.0
	// PoundsPerGram converts gram masses to pounds.
	PoundsPerGram = 0.00220462
	// BoxPackagingGrams is the fixed mass added for a rigid inner carton.
	BoxPackagingGrams = 100.0
)

// Dimensions represents an axis-aligned box in inches: a single unit, an
// inner carton, or a master carton.
//
// @Description Box dimensions in inches
// @Example {"width": 4.5, "depth": 3.25, "height": 2}
type Dimensions struct {
	// Width of the box in inches
	Width float64 `json:"width" example:"4.5"`
	// Depth of the box in inches
	Depth float64 `json:"depth" example:"3.25"`
	// Height of the box in inches
	Height float64 `json:"height" example:"2"`
}

// Valid reports whether all three dimensions are strictly positive and finite.
func (d Dimensions) Valid() bool {
	for _, v := range []float64{d.Width, d.Depth, d.Height} {
		if !(v > 0) || math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// AxisCounts is the number of units stacked along each axis of an arrangement.
type AxisCounts struct {
	// Width is the unit count along the width axis
	Width int `json:"width" example:"2"`
	// Depth is the unit count along the depth axis
	Depth int `json:"depth" example:"2"`
	// Height is the unit count along the height axis
	Height int `json:"height" example:"2"`
}

// Product returns the total number of units the counts accommodate.
func (c AxisCounts) Product() int {
	return c.Width * c.Depth * c.Height
}

// Arrangement is the result of a minimum-volume packing search: the grid
// counts along each axis and the resulting outer box.
//
// @Description Minimum-volume grid arrangement for a quantity of units
// @Example {"counts": {"width": 2, "depth": 2, "height": 2}, "width": 4, "depth": 2, "height": 2, "volume_cubic_feet": 0.009259}
type Arrangement struct {
	// Counts holds the unit count along each axis
	Counts AxisCounts `json:"counts"`
	// Width is the outer width in inches (count × unit width + buffer)
	Width float64 `json:"width" example:"4"`
	// Depth is the outer depth in inches
	Depth float64 `json:"depth" example:"2"`
	// Height is the outer height in inches
	Height float64 `json:"height" example:"2"`
	// VolumeCubicFeet is the outer volume in cubic feet
	VolumeCubicFeet float64 `json:"volume_cubic_feet" example:"0.009259"`
}

// Outer returns the arrangement's outer box dimensions.
func (a Arrangement) Outer() Dimensions {
	return Dimensions{Width: a.Width, Depth: a.Depth, Height: a.Height}
}
