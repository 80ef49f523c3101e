package core

import (
	"fmt"
	"strings"
)

// IndicatorDescriptor is one catalog entry: the declared parameters of an
// indicator together with their default values.
type IndicatorDescriptor struct {
	Library    Library
	Name       string
	Category   string
	ParamNames []string
	Defaults   []any
}

// Key returns the "library:name" identifier of the descriptor.
func (d IndicatorDescriptor) Key() string {
	return IndicatorKey(d.Library, d.Name)
}

// DefaultParams returns the declared defaults as an ordered parameter list.
func (d IndicatorDescriptor) DefaultParams() Params {
	params := make(Params, 0, len(d.ParamNames))
	for i, name := range d.ParamNames {
		params = append(params, Param{Name: name, Value: d.Defaults[i]})
	}
	return params
}

// Default returns the declared default of a parameter.
func (d IndicatorDescriptor) Default(name string) (any, bool) {
	for i, paramName := range d.ParamNames {
		if paramName == name {
			return d.Defaults[i], true
		}
	}
	return nil, false
}

// Spec builds a selection from the descriptor using its defaults.
func (d IndicatorDescriptor) Spec() IndicatorSpec {
	return IndicatorSpec{Library: d.Library, Name: d.Name, Params: d.DefaultParams()}
}

// IndicatorKey formats the identifier shared by the catalog and the adapter table.
func IndicatorKey(library Library, name string) string {
	return string(library) + ":" + name
}

// IndicatorSpec is one configured indicator instance selected by the user.
type IndicatorSpec struct {
	Library Library `json:"library" yaml:"library" validate:"required"`
	Name    string  `json:"name" yaml:"name" validate:"required"`
	Params  Params  `json:"params" yaml:"params"`
}

// Key returns the "library:name" identifier of the spec.
func (s IndicatorSpec) Key() string {
	return IndicatorKey(s.Library, s.Name)
}

// DisplayName renders "Name(v1,v2,...)" following the parameter order, or
// the bare name when the spec carries no parameters.
func (s IndicatorSpec) DisplayName() string {
	if len(s.Params) == 0 {
		return s.Name
	}

	values := make([]string, len(s.Params))
	for i, param := range s.Params {
		values[i] = FormatValue(param.Value)
	}
	return fmt.Sprintf("%s(%s)", s.Name, strings.Join(values, ","))
}

// WithParam returns a copy of the spec with one parameter replaced or appended.
func (s IndicatorSpec) WithParam(name string, value any) IndicatorSpec {
	s.Params = s.Params.With(name, value)
	return s
}

func (s IndicatorSpec) String() string {
	return string(s.Library) + ":" + s.DisplayName()
}
