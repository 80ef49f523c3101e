package adapter

import (
	"math"
	"strings"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/spf13/cast"
)

// Coercion is the type conversion applied to a parameter before emission.
type Coercion int

const (
	CoerceNone Coercion = iota
	CoerceInt
	CoerceFloat
	CoerceBool
	CoerceString
	CoerceNullableInt
)

func (c Coercion) String() string {
	switch c {
	case CoerceInt:
		return "integer"
	case CoerceFloat:
		return "float"
	case CoerceBool:
		return "boolean"
	case CoerceString:
		return "string"
	case CoerceNullableInt:
		return "integer or None"
	}
	return "any"
}

// inferCoercion derives the conversion from the type of the catalog default.
func inferCoercion(def any) Coercion {
	switch def.(type) {
	case int, int64:
		return CoerceInt
	case float64, float32:
		return CoerceFloat
	case bool:
		return CoerceBool
	case string:
		return CoerceString
	}
	return CoerceNone
}

// Coerce converts value according to c. Only non-numeric text for a numeric
// coercion is an error; numeric values are converted the way Python's
// int() and float() would.
func Coerce(value any, c Coercion) (any, bool) {
	switch c {
	case CoerceInt:
		return toInt(value)
	case CoerceNullableInt:
		if isNone(value) {
			return nil, true
		}
		return toInt(value)
	case CoerceFloat:
		return toFloat(value)
	case CoerceBool:
		return toBool(value)
	case CoerceString:
		if value == nil {
			return nil, true
		}
		if s, ok := value.(string); ok {
			return s, true
		}
		return core.FormatValue(value), true
	}
	return value, true
}

func isNone(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(strings.ToLower(v))
		return s == "" || s == "none" || s == "null" || s == "random"
	}
	return false
}

// toInt truncates toward zero. Text goes through the float parser so that
// "010" stays decimal and "14.0" is accepted.
func toInt(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		value = strings.TrimSpace(v)
	case float64, float32:
	default:
		n, err := cast.ToIntE(value)
		return n, err == nil
	}
	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return int(f), true
}

// toFloat accepts "inf", "-inf" and "nan" in any case.
func toFloat(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		value = strings.TrimSpace(v)
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return nil, false
	}
	return f, true
}

func toBool(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case float64:
		value = v != 0
	case string:
		value = strings.TrimSpace(v)
	}
	b, err := cast.ToBoolE(value)
	if err != nil {
		return nil, false
	}
	return b, true
}
