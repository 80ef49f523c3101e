package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownIndicator  = errors.New("unknown indicator")
	ErrParameterCoercion = errors.New("parameter coercion failed")
	ErrDatasetFormat     = errors.New("invalid dataset format")
	ErrInstrumentPreset  = errors.New("unknown instrument preset")
	ErrUnknownParameter  = errors.New("unknown parameter")
	ErrInvalidValue      = errors.New("invalid parameter value")
	ErrProfileNotFound   = errors.New("profile not found")
)

// UnknownIndicatorError is returned when a (library, name) pair is missing
// from the catalog or the adapter table.
type UnknownIndicatorError struct {
	Library Library
	Name    string
}

func (e *UnknownIndicatorError) Error() string {
	return fmt.Sprintf("unknown indicator %s:%s", e.Library, e.Name)
}

func (e *UnknownIndicatorError) Unwrap() error {
	return ErrUnknownIndicator
}

// CoercionError describes a parameter value that cannot be converted to the
// numeric type the library expects.
type CoercionError struct {
	Indicator string
	Param     string
	Value     any
	Want      string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: parameter %s=%v cannot be coerced to %s", e.Indicator, e.Param, e.Value, e.Want)
}

func (e *CoercionError) Unwrap() error {
	return ErrParameterCoercion
}

// DatasetFormatError reports a dataset that violates the column or manifest contract.
type DatasetFormatError struct {
	Path   string
	Reason string
}

func (e *DatasetFormatError) Error() string {
	return fmt.Sprintf("dataset %s: %s", e.Path, e.Reason)
}

func (e *DatasetFormatError) Unwrap() error {
	return ErrDatasetFormat
}

// PresetError reports an instrument preset name that is not registered.
type PresetError struct {
	Name string
}

func (e *PresetError) Error() string {
	return fmt.Sprintf("unknown instrument preset %q", e.Name)
}

func (e *PresetError) Unwrap() error {
	return ErrInstrumentPreset
}

// Report collects errors and warnings produced by validation or emission.
// Neither validation nor emission returns early on the first problem.
type Report struct {
	Errors   []error
	Warnings []string
}

// OK reports whether no error was recorded.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// AddError records an error.
func (r *Report) AddError(err error) {
	if err != nil {
		r.Errors = append(r.Errors, err)
	}
}

// Warnf records a formatted warning.
func (r *Report) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Merge appends another report's findings.
func (r *Report) Merge(other Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Err joins the recorded errors, or returns nil.
func (r Report) Err() error {
	return errors.Join(r.Errors...)
}

func (r Report) String() string {
	var b strings.Builder
	for _, err := range r.Errors {
		b.WriteString("error: " + err.Error() + "\n")
	}
	for _, warning := range r.Warnings {
		b.WriteString("warning: " + warning + "\n")
	}
	return b.String()
}
