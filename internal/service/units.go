// Package service contains the business logic for the carton service.
package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/guttosm/carton-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// roundEpsilon counters binary floating-point representation error so that
// values like 2.005 round up to 2.01 at two digits.
const roundEpsilon = 1e-9

// ToInches normalizes a length magnitude to inches. Centimetre values are
// divided by 2.54; non-finite inputs collapse to 0 rather than failing.
func ToInches(v float64, unit model.LengthUnit) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if unit == model.LengthUnitCentimeter {
		return v / model.CentimetersPerInch
	}
	return v
}

// Round rounds half away from zero at the given decimal precision.
func Round(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow(10, float64(digits))
	if v < 0 {
		return -math.Floor(-v*scale+0.5+roundEpsilon) / scale
	}
	return math.Floor(v*scale+0.5+roundEpsilon) / scale
}

// ExtractNumber pulls a numeric value out of a heterogeneous cell
// representation: a raw number, a numeric string, a wrapped {text|value}
// object, or a single-element array of one of those. Anything else yields
// false. It never panics.
func ExtractNumber(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	case bson.M:
		return numberFromWrapped(map[string]interface{}(v))
	case map[string]interface{}:
		return numberFromWrapped(v)
	case bson.A:
		return numberFromList([]interface{}(v))
	case []interface{}:
		return numberFromList(v)
	}
	return 0, false
}

// ExtractText mirrors ExtractNumber for free-text fields. The result is
// trimmed; an empty string after trimming counts as absent.
func ExtractText(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return nonEmpty(v)
	case float64:
		return nonEmpty(strconv.FormatFloat(v, 'f', -1, 64))
	case int:
		return nonEmpty(strconv.Itoa(v))
	case int32:
		return nonEmpty(strconv.FormatInt(int64(v), 10))
	case int64:
		return nonEmpty(strconv.FormatInt(v, 10))
	case bson.M:
		return textFromWrapped(map[string]interface{}(v))
	case map[string]interface{}:
		return textFromWrapped(v)
	case bson.A:
		return textFromList([]interface{}(v))
	case []interface{}:
		return textFromList(v)
	}
	return "", false
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func nonEmpty(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// numberFromWrapped handles the {text|value} object shape. Only the value
// member may carry a number; anything else is treated as absent.
func numberFromWrapped(m map[string]interface{}) (float64, bool) {
	inner, ok := m["value"]
	if !ok {
		return 0, false
	}
	switch inner.(type) {
	case bson.M, map[string]interface{}, bson.A, []interface{}:
		// One level of wrapping only.
		return 0, false
	}
	return ExtractNumber(inner)
}

// numberFromList handles the single-element array shape.
func numberFromList(list []interface{}) (float64, bool) {
	if len(list) != 1 {
		return 0, false
	}
	return ExtractNumber(list[0])
}

func textFromWrapped(m map[string]interface{}) (string, bool) {
	for _, key := range []string{"text", "value"} {
		inner, ok := m[key]
		if !ok {
			continue
		}
		switch inner.(type) {
		case bson.M, map[string]interface{}, bson.A, []interface{}:
			continue
		}
		if s, ok := ExtractText(inner); ok {
			return s, true
		}
	}
	return "", false
}

func textFromList(list []interface{}) (string, bool) {
	if len(list) != 1 {
		return "", false
	}
	return ExtractText(list[0])
}
