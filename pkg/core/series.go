package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Series is an ordered run of values, one per candle.
type Series[T constraints.Ordered] []T

// Values returns the underlying slice of values
func (s Series[T]) Values() []T {
	return s
}

// Length returns the number of values in the series
func (s Series[T]) Length() int {
	return len(s)
}

// Last returns the value at a specified position from the end
// position 0 is the last value, 1 is the second-to-last, etc.
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// LastValues returns a slice with the last 'size' values
// If size exceeds the length, returns the entire series
func (s Series[T]) LastValues(size int) Series[T] {
	if l := len(s); l > size {
		return s[l-size:]
	}
	return s
}

// Window returns the half-open slice [start, end) clamped to the series bounds.
func (s Series[T]) Window(start, end int) Series[T] {
	start = Clamp(start, 0, len(s))
	end = Clamp(end, start, len(s))
	return s[start:end]
}

// Clamp bounds v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Finite drops NaN and infinite values, keeping order.
func Finite(s Series[float64]) Series[float64] {
	out := make(Series[float64], 0, len(s))
	for _, v := range s {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// LeadingNaN counts NaN values before the first finite value.
func LeadingNaN(s Series[float64]) int {
	for i, v := range s {
		if !math.IsNaN(v) {
			return i
		}
	}
	return len(s)
}
