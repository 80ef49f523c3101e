package snapshot

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/raykavin/vbtforge/pkg/catalog"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/plot"
	"github.com/samber/lo"
)

var validate = validator.New()

// Normalize canonicalizes library aliases, the visualization mode and the
// timeframe mode. Unknown spellings are left for Validate to report.
func (s *Snapshot) Normalize() {
	normalizeSpecs(s.Indicators)
	for _, specs := range s.PerTimeframe {
		normalizeSpecs(specs)
	}

	if mode, err := plot.ParseMode(string(s.Visualization.Mode)); err == nil {
		s.Visualization.Mode = mode
	}
	s.TimeframeMode = TimeframeMode(strings.ToLower(string(s.TimeframeMode)))
	s.MultiIndicatorMode = IndicatorMode(strings.ToLower(string(s.MultiIndicatorMode)))
}

func normalizeSpecs(specs []core.IndicatorSpec) {
	for i := range specs {
		if library, err := core.ParseLibrary(string(specs[i].Library)); err == nil {
			specs[i].Library = library
		}
	}
}

// Validate checks the snapshot structure, the dataset column contract and
// the indicator references.
// Structural problems and unknown indicators are errors; an unknown
// indicator fails only its own spec, so callers may still emit the rest.
func (s *Snapshot) Validate(cat *catalog.Catalog) core.Report {
	var report core.Report

	if err := validate.Struct(s); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			report.AddError(err)
			return report
		}
		for _, fe := range fieldErrors {
			report.AddError(fmt.Errorf("%w: %s", core.ErrInvalidValue, fieldMessage(fe)))
		}
	}

	if s.Dataset.Path != "" {
		s.Dataset.Check(&report)
	}

	if _, err := plot.ParseMode(string(s.Visualization.Mode)); err != nil {
		report.AddError(fmt.Errorf("%w: %v", core.ErrInvalidValue, err))
	}
	if s.Visualization.Mode.Charts() {
		if _, err := plot.LookupPeriod(s.Visualization.Period); err != nil {
			report.AddError(fmt.Errorf("%w: %v", core.ErrInvalidValue, err))
		}
	}

	if s.TimeframeMode == Single && len(s.Timeframes) > 1 {
		report.AddError(fmt.Errorf("%w: single timeframe mode with %d timeframes", core.ErrInvalidValue, len(s.Timeframes)))
	}
	for _, tf := range s.Timeframes {
		if _, err := plot.TimeframeDuration(tf); err != nil {
			report.AddError(fmt.Errorf("%w: %v", core.ErrInvalidValue, err))
		}
	}

	for _, spec := range s.AllIndicators() {
		if _, err := cat.Lookup(spec.Library, spec.Name); err != nil {
			report.AddError(err)
		}
	}
	if len(s.AllIndicators()) == 0 {
		report.Warnf("no indicators selected: the script will only load and summarize the dataset")
	}

	if s.TimeframeMode == Multi && s.MultiIndicatorMode == Individual {
		for tf := range s.PerTimeframe {
			if !lo.Contains(s.Timeframes, tf) {
				report.Warnf("indicators configured for unselected timeframe %s are ignored", tf)
			}
		}
	}

	return report
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at least %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
