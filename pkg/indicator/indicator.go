// Package indicator computes reference values for a subset of the catalog.
// The preview command uses them to show what a selection produces before a
// program is emitted, and tests use them as the expected output of the
// emitted computations.
package indicator

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/raykavin/vbtforge/pkg/adapter"
	"github.com/raykavin/vbtforge/pkg/core"
)

var (
	ErrUnsupported    = errors.New("no reference calculator")
	ErrVolumeRequired = errors.New("volume required")
)

// Output is one computed column.
type Output struct {
	Column string
	Values core.Series[float64]
}

// calculator returns one series per output column, in recipe order.
type calculator struct {
	volume bool
	calc   func(f *core.Frame, a args) []core.Series[float64]
}

var calculators = map[string]calculator{}

func register(library core.Library, name string, c calculator) {
	calculators[core.IndicatorKey(library, name)] = c
}

// Supported lists the keys with a reference calculator, sorted.
func Supported() []string {
	keys := make([]string, 0, len(calculators))
	for key := range calculators {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether a spec can be computed here.
func Has(spec core.IndicatorSpec) bool {
	_, ok := calculators[spec.Key()]
	return ok
}

// Compute evaluates a resolved call over a frame. Column names match the
// ones the emitted program writes.
func Compute(f *core.Frame, call adapter.Call) ([]Output, error) {
	c, ok := calculators[call.Spec.Key()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, call.Display)
	}
	if c.volume && !f.HasVolume() {
		return nil, fmt.Errorf("%s: %w", call.Display, ErrVolumeRequired)
	}

	series := c.calc(f, args{call})
	if len(series) != len(call.Columns) {
		return nil, fmt.Errorf("%s: %d outputs for %d columns", call.Display, len(series), len(call.Columns))
	}

	outputs := make([]Output, len(series))
	for i, s := range series {
		outputs[i] = Output{Column: call.Columns[i], Values: s}
	}
	return outputs, nil
}

// args reads coerced parameter values off a call.
type args struct {
	call adapter.Call
}

func (a args) int(name string) int {
	v, _ := a.call.Value(name)
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func (a args) float(name string) float64 {
	v, _ := a.call.Value(name)
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return math.NaN()
}

func (a args) string(name string) string {
	v, _ := a.call.Value(name)
	s, _ := v.(string)
	return s
}

// nanSeries returns n NaN values.
func nanSeries(n int) core.Series[float64] {
	s := make(core.Series[float64], n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

// warmup replaces the first n values, which TA-Lib leaves as zero, with NaN.
func warmup(values []float64, n int) core.Series[float64] {
	s := core.Series[float64](values)
	for i := 0; i < n && i < len(s); i++ {
		s[i] = math.NaN()
	}
	return s
}

// guarded runs fn only when the frame is longer than the lookback; shorter
// inputs yield all-NaN outputs.
func guarded(f *core.Frame, lookback, outputs int, fn func() []core.Series[float64]) []core.Series[float64] {
	if f.Len() <= lookback || lookback < 0 {
		out := make([]core.Series[float64], outputs)
		for i := range out {
			out[i] = nanSeries(f.Len())
		}
		return out
	}
	return fn()
}

// rollingMean averages a NaN-led series; windows touching NaN are NaN.
func rollingMean(values core.Series[float64], window int) core.Series[float64] {
	out := nanSeries(len(values))
	if window <= 0 {
		return out
	}
	sum, valid := 0.0, 0
	for i, v := range values {
		if math.IsNaN(v) {
			sum, valid = 0, 0
			continue
		}
		sum += v
		valid++
		if valid > window {
			sum -= values[i-window]
			valid = window
		}
		if valid == window {
			out[i] = sum / float64(window)
		}
	}
	return out
}
