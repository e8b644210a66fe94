package model

import "time"

// RunOptions are the caller-supplied parameters for one cascade run. They are
// immutable for the duration of the run.
type RunOptions struct {
	// ForceAll processes every visible record even when RecordIDs is set.
	ForceAll bool `json:"force_all"`
	// RecordIDs is the explicit selection. Empty means "use the visible set".
	RecordIDs []string `json:"record_ids,omitempty"`

	// InnerBuffer is the clearance added per axis at the inner level.
	InnerBuffer float64 `json:"inner_buffer"`
	// InnerBufferUnit is the unit InnerBuffer is expressed in.
	InnerBufferUnit LengthUnit `json:"inner_buffer_unit"`
	// MasterBuffer is the clearance added per axis at the master level.
	MasterBuffer float64 `json:"master_buffer"`
	// MasterBufferUnit is the unit MasterBuffer is expressed in.
	MasterBufferUnit LengthUnit `json:"master_buffer_unit"`
	// InnerMaterial selects the inner packaging. PolyBag forces the inner
	// buffer to zero and contributes no packaging mass.
	InnerMaterial Material `json:"inner_material"`
}

// OutcomeCode classifies how processing a single record ended.
type OutcomeCode string

const (
	// OutcomePacked means master dimensions were computed and written.
	OutcomePacked OutcomeCode = "packed"
	// OutcomeIncompleteDimensions means a unit dimension was missing or
	// non-positive.
	OutcomeIncompleteDimensions OutcomeCode = "incomplete_dimensions"
	// OutcomeQuantityNotInteger means a quantity field held a non-integer.
	OutcomeQuantityNotInteger OutcomeCode = "quantity_not_integer"
	// OutcomeMasterQtyMissing means the master quantity was absent or zero.
	OutcomeMasterQtyMissing OutcomeCode = "master_qty_missing"
	// OutcomeRatioNotIntegral means the master quantity was not an exact
	// multiple of the inner quantity.
	OutcomeRatioNotIntegral OutcomeCode = "ratio_not_integral"
	// OutcomeMissingInnerDimensions means no usable master cell dimension
	// could be resolved on some axis.
	OutcomeMissingInnerDimensions OutcomeCode = "missing_inner_dimensions"
	// OutcomeNoArrangement means the solver found no feasible master
	// arrangement.
	OutcomeNoArrangement OutcomeCode = "no_arrangement"
	// OutcomeError means an accessor or write failure interrupted the record.
	OutcomeError OutcomeCode = "error"
)

// RecordOutcome captures what the cascade computed (or why it stopped) for a
// single record.
type RecordOutcome struct {
	// RecordID identifies the processed record.
	RecordID string `json:"record_id"`
	// Label is the human-readable record name used in log lines.
	Label string `json:"label"`
	// Code classifies the terminal branch taken for this record.
	Code OutcomeCode `json:"code"`
	// Inner is the computed inner-carton arrangement, when one was found.
	Inner *Arrangement `json:"inner,omitempty"`
	// Master is the computed master-carton arrangement, when one was found.
	Master *Arrangement `json:"master,omitempty"`
	// InnerWeightLb is the inner gross weight in pounds, when computed.
	InnerWeightLb *float64 `json:"inner_weight_lb,omitempty"`
	// NetWeightKg is the master net weight in kilograms, when computed.
	NetWeightKg *float64 `json:"net_weight_kg,omitempty"`
	// Error carries detail when Code is OutcomeError.
	Error string `json:"error,omitempty"`
}

// RunSummary aggregates one cascade run across the full record set.
type RunSummary struct {
	// RunID is the unique identifier assigned to this run.
	RunID string `json:"run_id"`
	// Requested is the number of records in the effective input set.
	Requested int `json:"requested"`
	// Processed counts records that completed a terminal branch, including
	// skips. Always equals Requested when the run finishes.
	Processed int `json:"processed"`
	// Records holds the per-record outcomes in processing order.
	Records []RecordOutcome `json:"records"`
	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`
	// FinishedAt is when the run completed.
	FinishedAt time.Time `json:"finished_at"`
}
