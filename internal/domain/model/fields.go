package model

// FieldKey identifies a logical product-record field the cascade reads or
// writes. The active field configuration maps each key to a concrete field id
// in the record store; a key without a mapping is "not configured" and behaves
// as missing on read and as a no-op on write.
type FieldKey string

const (
	FieldUnitWidth  FieldKey = "unit_width"
	FieldUnitDepth  FieldKey = "unit_depth"
	FieldUnitHeight FieldKey = "unit_height"
	FieldUnitWeight FieldKey = "unit_weight"

	FieldInnerQty    FieldKey = "inner_qty"
	FieldInnerWidth  FieldKey = "inner_width"
	FieldInnerDepth  FieldKey = "inner_depth"
	FieldInnerHeight FieldKey = "inner_height"
	FieldInnerWeight FieldKey = "inner_weight"

	FieldMasterQty    FieldKey = "master_qty"
	FieldMasterWidth  FieldKey = "master_width"
	FieldMasterDepth  FieldKey = "master_depth"
	FieldMasterHeight FieldKey = "master_height"

	FieldNetWeight FieldKey = "net_weight"
)

// AllFieldKeys returns every field key the cascade can touch, in a stable
// order suitable for building default configurations.
func AllFieldKeys() []FieldKey {
	return []FieldKey{
		FieldUnitWidth, FieldUnitDepth, FieldUnitHeight, FieldUnitWeight,
		FieldInnerQty, FieldInnerWidth, FieldInnerDepth, FieldInnerHeight, FieldInnerWeight,
		FieldMasterQty, FieldMasterWidth, FieldMasterDepth, FieldMasterHeight,
		FieldNetWeight,
	}
}

// IsWritable reports whether the cascade ever writes this key back to the
// record store. Input keys (unit dims, weight, quantities) are read-only.
func (k FieldKey) IsWritable() bool {
	switch k {
	case FieldInnerWidth, FieldInnerDepth, FieldInnerHeight, FieldInnerWeight,
		FieldMasterWidth, FieldMasterDepth, FieldMasterHeight, FieldNetWeight:
		return true
	}
	return false
}

// RecordSnapshot is one record's raw field values as fetched from the store.
// Cell values keep whatever heterogeneous shape the store returned; the
// permissive extraction helpers interpret them.
type RecordSnapshot struct {
	ID     string
	Label  string
	Fields map[FieldKey]interface{}
}

// Value returns the raw cell value for the key. The second return is false
// when the key is not configured or the cell is empty.
func (r *RecordSnapshot) Value(key FieldKey) (interface{}, bool) {
	raw, ok := r.Fields[key]
	if !ok || raw == nil {
		return nil, false
	}
	return raw, true
}
