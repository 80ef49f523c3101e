package adapter

import (
	"strconv"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/pysrc"
)

// InputTag names the price series an indicator consumes.
type InputTag int

const (
	InputClose InputTag = iota + 1
	InputOH
	InputHL
	InputHLC
	InputOHLC
	InputCV
	InputHLCV
	InputOHLCV
	InputShapeN
	InputNone
)

var inputTagNames = map[InputTag]string{
	InputClose:  "CLOSE",
	InputOH:     "OH",
	InputHL:     "HL",
	InputHLC:    "HLC",
	InputOHLC:   "OHLC",
	InputCV:     "CV",
	InputHLCV:   "HLCV",
	InputOHLCV:  "OHLCV",
	InputShapeN: "SHAPE-N",
	InputNone:   "NONE",
}

func (t InputTag) String() string {
	if name, ok := inputTagNames[t]; ok {
		return name
	}
	return "UNSET"
}

// Columns returns the emitted accessor names for the tag, in call order.
func (t InputTag) Columns() []string {
	switch t {
	case InputClose:
		return []string{"close"}
	case InputOH:
		return []string{"open_", "high"}
	case InputHL:
		return []string{"high", "low"}
	case InputHLC:
		return []string{"high", "low", "close"}
	case InputOHLC:
		return []string{"open_", "high", "low", "close"}
	case InputCV:
		return []string{"close", "volume"}
	case InputHLCV:
		return []string{"high", "low", "close", "volume"}
	case InputOHLCV:
		return []string{"open_", "high", "low", "close", "volume"}
	case InputShapeN:
		return []string{"close.shape"}
	}
	return nil
}

// NeedsVolume reports whether the tag includes the volume series.
func (t InputTag) NeedsVolume() bool {
	switch t {
	case InputCV, InputHLCV, InputOHLCV:
		return true
	}
	return false
}

// keywordName maps an accessor to the keyword argument most libraries use for it.
func keywordName(column string) string {
	if column == "open_" {
		return "open"
	}
	return column
}

// Selector picks an output out of an indicator result: an attribute, a
// method, a column or dict key by name, or a position.
type Selector struct {
	name       string
	index      int
	positional bool
}

// Attr selects by attribute, method, column or key name.
func Attr(name string) Selector {
	return Selector{name: name}
}

// Index selects by position in a tuple, list or DataFrame.
func Index(i int) Selector {
	return Selector{index: i, positional: true}
}

// Python renders the selector as the literal the emitted _extract helper expects.
func (s Selector) Python() string {
	if s.positional {
		return strconv.Itoa(s.index)
	}
	return pysrc.String(s.name)
}

func (s Selector) String() string {
	if s.positional {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return "." + s.name
}

// Output binds one result series to a column. An empty suffix names the
// column after the display name alone.
type Output struct {
	Suffix string
	Select []Selector
}

// out is shorthand for an output whose selectors are attribute names.
func out(suffix string, attrs ...string) Output {
	o := Output{Suffix: suffix}
	for _, attr := range attrs {
		o.Select = append(o.Select, Attr(attr))
	}
	return o
}

// pos is shorthand for an output picked by position.
func pos(suffix string, i int) Output {
	return Output{Suffix: suffix, Select: []Selector{Index(i)}}
}

// Binding maps one catalog parameter onto a library argument.
type Binding struct {
	Param       string   // catalog name
	Arg         string   // library keyword
	Aliases     []string // other names accepted from the selection
	Coerce      Coercion
	Default     any
	PreludeOnly bool // consumed by the prelude, not passed to the call
}

// Recipe describes how to invoke one indicator and read its outputs.
type Recipe struct {
	Library        core.Library
	Name           string
	Callee         string
	Inputs         InputTag
	Args           []string // explicit positional arguments; overrides Inputs.Columns
	KeywordInputs  bool     // pass input series as keyword arguments
	Bindings       []Binding
	Fixed          core.Params // constant keyword arguments appended after the bindings
	Prelude        string      // statement run before the call, {param} placeholders substituted
	Unwrap         bool        // take the first element of a tuple result
	Outputs        []Output
	Fallbacks      []Recipe
	SkipReason     string
	VolumeRequired bool
	Dropped        []string // catalog parameters deliberately not passed
	Params         []string // catalog parameter order
}

// Key returns the "library:name" identifier.
func (r Recipe) Key() string {
	return core.IndicatorKey(r.Library, r.Name)
}

// Blacklisted reports whether the indicator is never called.
func (r Recipe) Blacklisted() bool {
	return r.SkipReason != ""
}

// NeedsVolume reports whether the recipe cannot run without volume.
func (r Recipe) NeedsVolume() bool {
	return r.VolumeRequired || r.Inputs.NeedsVolume()
}

// Columns returns the output column names for a display name.
func (r Recipe) Columns(display string) []string {
	if len(r.Outputs) == 0 {
		return []string{display}
	}
	columns := make([]string, len(r.Outputs))
	for i, o := range r.Outputs {
		columns[i] = ColumnName(display, o.Suffix)
	}
	return columns
}

// ColumnName joins a display name and an output suffix.
func ColumnName(display, suffix string) string {
	if suffix == "" {
		return display
	}
	return display + "_" + suffix
}
