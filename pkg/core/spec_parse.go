package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIndicatorSpec reads the "library:name[:param=value,...]" form used
// on the command line. Values become int, float64 or bool when they parse
// as one; anything else stays a string.
func ParseIndicatorSpec(s string) (IndicatorSpec, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	if len(parts) < 2 || parts[1] == "" {
		return IndicatorSpec{}, fmt.Errorf("%w: indicator %q is not library:name", ErrInvalidValue, s)
	}

	library, err := ParseLibrary(parts[0])
	if err != nil {
		return IndicatorSpec{}, err
	}
	spec := IndicatorSpec{Library: library, Name: strings.TrimSpace(parts[1])}

	if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
		for _, pair := range strings.Split(parts[2], ",") {
			name, value, ok := strings.Cut(pair, "=")
			name = strings.TrimSpace(name)
			if !ok || name == "" {
				return IndicatorSpec{}, fmt.Errorf("%w: parameter %q is not name=value", ErrInvalidValue, pair)
			}
			spec.Params = spec.Params.With(name, parseScalar(strings.TrimSpace(value)))
		}
	}
	return spec, nil
}

func parseScalar(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
