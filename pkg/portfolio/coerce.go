package portfolio

import (
	"fmt"
	"math"
	"strings"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/spf13/cast"
)

// Coerce converts a raw value (JSON, YAML or command-line text) to the
// declared kind. Bounds are not checked here; see Check.
func (p Parameter) Coerce(value any) (any, error) {
	switch p.Kind {
	case KindFloat:
		return p.coerceFloat(value)
	case KindInt:
		return p.coerceInt(value)
	case KindBool:
		b, err := cast.ToBoolE(value)
		if err != nil {
			return nil, p.invalid(value)
		}
		return b, nil
	case KindEnum:
		return p.coerceEnum(value)
	case KindNullableInt:
		if isNone(value) {
			return nil, nil
		}
		return p.coerceInt(value)
	}
	return nil, p.invalid(value)
}

func (p Parameter) coerceFloat(value any) (any, error) {
	if p.Optional && isNone(value) {
		return math.NaN(), nil
	}
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, p.invalid(value)
		}
		value = s
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return nil, p.invalid(value)
	}
	if math.IsNaN(f) && !p.Optional {
		return nil, p.invalid(value)
	}
	return f, nil
}

func (p Parameter) coerceInt(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, p.invalid(value)
		}
		return int64(v), nil
	case string:
		value = strings.TrimSpace(v)
	}
	n, err := cast.ToInt64E(value)
	if err != nil {
		return nil, p.invalid(value)
	}
	return n, nil
}

func (p Parameter) coerceEnum(value any) (any, error) {
	s, err := cast.ToStringE(value)
	if err != nil {
		return nil, p.invalid(value)
	}
	s = strings.TrimSpace(s)
	for _, c := range p.Choices {
		if strings.EqualFold(c.Value, s) || strings.EqualFold(c.Label, s) {
			return c.Value, nil
		}
	}
	return nil, p.invalid(value)
}

func (p Parameter) invalid(value any) error {
	return fmt.Errorf("%w: %s=%v is not a valid %s", core.ErrInvalidValue, p.ID, value, p.Kind)
}

// Check verifies a coerced value against the declared bounds.
func (p Parameter) Check(value any) error {
	var f float64
	switch v := value.(type) {
	case nil:
		if p.Kind == KindNullableInt {
			return nil
		}
		return p.invalid(value)
	case float64:
		if math.IsNaN(v) {
			if p.Optional {
				return nil
			}
			return p.invalid(value)
		}
		f = v
	case int64:
		f = float64(v)
	default:
		return nil
	}

	if p.Min != nil && f < *p.Min {
		return fmt.Errorf("%w: %s=%s is below the minimum %s", core.ErrInvalidValue, p.ID, core.FormatValue(value), core.FormatValue(*p.Min))
	}
	if p.Max != nil && f > *p.Max {
		return fmt.Errorf("%w: %s=%s is above the maximum %s", core.ErrInvalidValue, p.ID, core.FormatValue(value), core.FormatValue(*p.Max))
	}
	return nil
}

func isNone(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "none", "null", "nan":
			return true
		}
	case float64:
		return math.IsNaN(v)
	}
	return false
}
