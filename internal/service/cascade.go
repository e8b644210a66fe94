package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/metrics"
)

// RecordStore is the boundary to the external record host. Implementations
// resolve logical field keys to concrete field ids via the active field
// configuration: an unmapped key reads as absent and writes as a silent
// no-op.
type RecordStore interface {
	// VisibleRecordIDs lists every record id in view order.
	VisibleRecordIDs(ctx context.Context) ([]string, error)
	// Fetch returns a snapshot of one record's raw field values.
	Fetch(ctx context.Context, id string) (*model.RecordSnapshot, error)
	// SetField writes a numeric value back to the record. A nil value clears
	// the field.
	SetField(ctx context.Context, id string, key model.FieldKey, value *float64) error
}

// Packer runs the two-stage packing cascade across a record set.
type Packer interface {
	ProcessRecords(ctx context.Context, opts model.RunOptions) (*model.RunSummary, error)
}

// PackerOption configures a PackingService.
type PackerOption func(*PackingService)

// PackingService implements Packer. Records are processed strictly
// sequentially; a failure inside one record is logged and never aborts the
// remaining records.
type PackingService struct {
	store  RecordStore
	solver Solver
	notify NotifierFactory
}

// NewPackingService creates a new PackingService with the given options.
func NewPackingService(store RecordStore, solver Solver, opts ...PackerOption) *PackingService {
	s := &PackingService{
		store:  store,
		solver: solver,
		notify: NewRunNotifier(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithNotifierFactory sets the notifier factory used for cascade runs.
func WithNotifierFactory(f NotifierFactory) PackerOption {
	return func(s *PackingService) {
		if f != nil {
			s.notify = f
		}
	}
}

// ProcessRecords runs the cascade over the effective record set: the explicit
// selection when one is given and ForceAll is false, otherwise the full
// visible set.
func (s *PackingService) ProcessRecords(ctx context.Context, opts model.RunOptions) (*model.RunSummary, error) {
	start := time.Now()
	runID := uuid.New().String()
	notifier := s.notify(runID)

	ids := opts.RecordIDs
	if opts.ForceAll || len(ids) == 0 {
		visible, err := s.store.VisibleRecordIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("list records: %w", err)
		}
		ids = visible
	}

	summary := &model.RunSummary{
		RunID:     runID,
		Requested: len(ids),
		Records:   make([]model.RecordOutcome, 0, len(ids)),
		StartedAt: start,
	}

	// Buffers are normalized once per run. PolyBag forces the inner buffer
	// to zero regardless of configuration.
	innerBuffer := ToInches(opts.InnerBuffer, opts.InnerBufferUnit)
	if opts.InnerMaterial == model.MaterialPolyBag {
		innerBuffer = 0
	}
	masterBuffer := ToInches(opts.MasterBuffer, opts.MasterBufferUnit)

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		outcome := s.processRecord(ctx, id, opts, innerBuffer, masterBuffer, notifier)
		summary.Records = append(summary.Records, outcome)
		summary.Processed++
		metrics.RecordProcessed(string(outcome.Code))
	}

	summary.FinishedAt = time.Now()
	notifier.Log(fmt.Sprintf("Processed %d/%d records", summary.Processed, summary.Requested))
	metrics.RecordCascadeRun(time.Since(start))
	return summary, nil
}

// processRecord isolates one record: accessor and write failures become an
// error outcome for this record only.
func (s *PackingService) processRecord(
	ctx context.Context,
	id string,
	opts model.RunOptions,
	innerBuffer, masterBuffer float64,
	notifier Notifier,
) model.RecordOutcome {
	outcome := model.RecordOutcome{RecordID: id, Label: id}

	snap, err := s.store.Fetch(ctx, id)
	if err != nil {
		outcome.Code = model.OutcomeError
		outcome.Error = err.Error()
		notifier.Log(fmt.Sprintf("%s: %v", id, err))
		return outcome
	}
	if snap.Label != "" {
		outcome.Label = snap.Label
	}

	if err := s.packRecord(ctx, snap, &outcome, opts, innerBuffer, masterBuffer, notifier); err != nil {
		outcome.Code = model.OutcomeError
		outcome.Error = err.Error()
		notifier.Log(fmt.Sprintf("%s: %v", outcome.Label, err))
	}
	return outcome
}

// packRecord is the per-record state machine. Skip branches set the outcome
// code and return nil; only accessor/write failures return an error.
func (s *PackingService) packRecord(
	ctx context.Context,
	snap *model.RecordSnapshot,
	out *model.RecordOutcome,
	opts model.RunOptions,
	innerBuffer, masterBuffer float64,
	notifier Notifier,
) error {
	label := out.Label

	unitWidth, _ := numberAt(snap, model.FieldUnitWidth)
	unitDepth, _ := numberAt(snap, model.FieldUnitDepth)
	unitHeight, _ := numberAt(snap, model.FieldUnitHeight)
	unitDims := model.Dimensions{Width: unitWidth, Depth: unitDepth, Height: unitHeight}
	if !unitDims.Valid() {
		notifier.Log(fmt.Sprintf("%s: incomplete unit dimensions, skipping", label))
		out.Code = model.OutcomeIncompleteDimensions
		return nil
	}

	unitWeight, hasWeight := numberAt(snap, model.FieldUnitWeight)
	hasWeight = hasWeight && unitWeight > 0

	innerQty, _, innerOK := quantityAt(snap, model.FieldInnerQty)
	if !innerOK {
		notifier.Log(fmt.Sprintf("%s: inner quantity is not a whole number, skipping", label))
		out.Code = model.OutcomeQuantityNotInteger
		return nil
	}
	masterQty, masterPresent, masterOK := quantityAt(snap, model.FieldMasterQty)
	if !masterOK {
		notifier.Log(fmt.Sprintf("%s: master quantity is not a whole number, skipping", label))
		out.Code = model.OutcomeQuantityNotInteger
		return nil
	}

	if innerQty > 0 {
		out.Inner = s.solver.Solve(innerQty, unitDims, innerBuffer)
		if out.Inner == nil {
			notifier.Log(fmt.Sprintf("%s: no suitable inner arrangement for %d units", label, innerQty))
		} else if err := s.writeDims(ctx, snap.ID, out.Inner,
			model.FieldInnerWidth, model.FieldInnerDepth, model.FieldInnerHeight); err != nil {
			return fmt.Errorf("write inner dimensions: %w", err)
		}

		if hasWeight {
			packaging := model.BoxPackagingGrams
			if opts.InnerMaterial == model.MaterialPolyBag {
				packaging = 0
			}
			weight := Round((float64(innerQty)*unitWeight+packaging)*model.PoundsPerGram, 3)
			if err := s.setNumber(ctx, snap.ID, model.FieldInnerWeight, weight); err != nil {
				return fmt.Errorf("write inner weight: %w", err)
			}
			out.InnerWeightLb = &weight
		} else {
			notifier.Log(fmt.Sprintf("%s: cannot compute inner weight without a unit weight", label))
		}
	} else {
		notifier.Log(fmt.Sprintf("%s: no inner carton", label))
		for _, key := range []model.FieldKey{
			model.FieldInnerWidth, model.FieldInnerDepth, model.FieldInnerHeight, model.FieldInnerWeight,
		} {
			if err := s.store.SetField(ctx, snap.ID, key, nil); err != nil {
				return fmt.Errorf("clear %s: %w", key, err)
			}
		}
	}

	if masterQty <= 0 {
		notifier.Log(fmt.Sprintf("%s: master quantity missing or zero, skipping master level", label))
		if masterPresent && masterQty == 0 {
			notifier.Warn(fmt.Sprintf("%s: case pack must be specified", label))
		}
		out.Code = model.OutcomeMasterQtyMissing
		return nil
	}

	innersPerMaster := masterQty
	cell := unitDims
	if innerQty > 0 {
		if masterQty%innerQty != 0 {
			notifier.Log(fmt.Sprintf("%s: master quantity %d is not an exact multiple of inner quantity %d, skipping",
				label, masterQty, innerQty))
			out.Code = model.OutcomeRatioNotIntegral
			return nil
		}
		innersPerMaster = masterQty / innerQty

		cell = masterCell(snap, out.Inner, unitDims)
		if !cell.Valid() {
			notifier.Log(fmt.Sprintf("%s: missing inner carton dimensions, skipping", label))
			out.Code = model.OutcomeMissingInnerDimensions
			return nil
		}
	}

	master := s.solver.Solve(innersPerMaster, cell, masterBuffer)
	if master == nil {
		notifier.Log(fmt.Sprintf("%s: no suitable master arrangement for %d inners", label, innersPerMaster))
		out.Code = model.OutcomeNoArrangement
		return nil
	}
	out.Master = master

	if hasWeight {
		net := Round(unitWeight/1000*float64(masterQty), 3)
		if err := s.setNumber(ctx, snap.ID, model.FieldNetWeight, net); err != nil {
			return fmt.Errorf("write net weight: %w", err)
		}
		out.NetWeightKg = &net
	} else {
		if err := s.store.SetField(ctx, snap.ID, model.FieldNetWeight, nil); err != nil {
			return fmt.Errorf("clear net weight: %w", err)
		}
		notifier.Log(fmt.Sprintf("%s: unit weight missing, net weight cleared", label))
	}

	if err := s.writeDims(ctx, snap.ID, master,
		model.FieldMasterWidth, model.FieldMasterDepth, model.FieldMasterHeight); err != nil {
		return fmt.Errorf("write master dimensions: %w", err)
	}

	notifier.Log(fmt.Sprintf("%s: master carton %.3f x %.3f x %.3f in",
		label, master.Width, master.Depth, master.Height))
	out.Code = model.OutcomePacked
	return nil
}

// masterCell resolves the master arrangement's unit cell per axis: the fresh
// inner arrangement first, then the record's stored inner dimensions, then
// the raw unit dimensions. Each axis resolves independently; the first
// positive value wins.
func masterCell(snap *model.RecordSnapshot, inner *model.Arrangement, unit model.Dimensions) model.Dimensions {
	storedWidth, _ := numberAt(snap, model.FieldInnerWidth)
	storedDepth, _ := numberAt(snap, model.FieldInnerDepth)
	storedHeight, _ := numberAt(snap, model.FieldInnerHeight)

	var freshWidth, freshDepth, freshHeight float64
	if inner != nil {
		freshWidth, freshDepth, freshHeight = inner.Width, inner.Depth, inner.Height
	}

	return model.Dimensions{
		Width:  firstPositive(freshWidth, storedWidth, unit.Width),
		Depth:  firstPositive(freshDepth, storedDepth, unit.Depth),
		Height: firstPositive(freshHeight, storedHeight, unit.Height),
	}
}

// writeDims writes an arrangement's outer dimensions, rounded to 3 decimals.
func (s *PackingService) writeDims(ctx context.Context, recordID string, arr *model.Arrangement, width, depth, height model.FieldKey) error {
	for _, write := range []struct {
		key   model.FieldKey
		value float64
	}{
		{width, arr.Width},
		{depth, arr.Depth},
		{height, arr.Height},
	} {
		if err := s.setNumber(ctx, recordID, write.key, Round(write.value, 3)); err != nil {
			return err
		}
	}
	return nil
}

func (s *PackingService) setNumber(ctx context.Context, recordID string, key model.FieldKey, value float64) error {
	return s.store.SetField(ctx, recordID, key, &value)
}

// numberAt extracts a numeric field value from the snapshot.
func numberAt(snap *model.RecordSnapshot, key model.FieldKey) (float64, bool) {
	raw, ok := snap.Value(key)
	if !ok {
		return 0, false
	}
	return ExtractNumber(raw)
}

// quantityAt extracts a quantity field. The returned flags distinguish an
// absent field (present=false) from a present value that is not a whole
// number (ok=false).
func quantityAt(snap *model.RecordSnapshot, key model.FieldKey) (value int, present, ok bool) {
	v, found := numberAt(snap, key)
	if !found {
		return 0, false, true
	}
	if v != float64(int(v)) {
		return 0, true, false
	}
	return int(v), true, true
}

// firstPositive returns the first strictly positive candidate, or 0.
func firstPositive(candidates ...float64) float64 {
	for _, v := range candidates {
		if v > 0 {
			return v
		}
	}
	return 0
}
