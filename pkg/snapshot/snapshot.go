package snapshot

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/raykavin/vbtforge/pkg/adapter"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/dataset"
	"github.com/raykavin/vbtforge/pkg/plot"
)

// TimeframeMode selects single or multi-timeframe analysis.
type TimeframeMode string

const (
	Single TimeframeMode = "single"
	Multi  TimeframeMode = "multi"
)

// IndicatorMode tells whether every timeframe shares one indicator list.
type IndicatorMode string

const (
	Same       IndicatorMode = "same"
	Individual IndicatorMode = "individual"
)

// Snapshot is everything an analysis script is generated from.
type Snapshot struct {
	Dataset            Dataset                         `yaml:"dataset" json:"dataset" validate:"required"`
	TimeframeMode      TimeframeMode                   `yaml:"timeframe_mode" json:"timeframe_mode" default:"single" validate:"oneof=single multi"`
	Timeframes         []string                        `yaml:"timeframes" json:"timeframes" validate:"required,min=1,dive,required"`
	Indicators         []core.IndicatorSpec            `yaml:"indicators" json:"indicators" validate:"dive"`
	MultiIndicatorMode IndicatorMode                   `yaml:"multi_indicator_mode" json:"multi_indicator_mode" default:"same" validate:"oneof=same individual"`
	PerTimeframe       map[string][]core.IndicatorSpec `yaml:"per_timeframe,omitempty" json:"per_timeframe,omitempty" validate:"dive,dive"`
	Visualization      Visualization                   `yaml:"visualization" json:"visualization"`
	Save               SaveOptions                     `yaml:"save" json:"save"`
	Portfolio          map[string]any                  `yaml:"portfolio,omitempty" json:"portfolio,omitempty"`
}

// Dataset references the upstream artifact.
type Dataset struct {
	Path    string   `yaml:"path" json:"path" validate:"required"` // manifest or single data file
	Base    string   `yaml:"base,omitempty" json:"base,omitempty"`
	Columns []string `yaml:"columns,omitempty" json:"columns,omitempty"` // empty means OHLCV
}

// Visualization is the render policy of the generated script.
type Visualization struct {
	Mode            plot.Mode `yaml:"mode" json:"mode" default:"interactive"`
	Period          string    `yaml:"period" json:"period" default:"1 week"`
	Quality         string    `yaml:"quality" json:"quality" default:"high" validate:"oneof=low medium high"`
	Theme           string    `yaml:"theme" json:"theme" default:"plotly_dark"`
	Segmented       bool      `yaml:"segmented" json:"segmented"`
	CandlesPerChart int       `yaml:"candles_per_chart" json:"candles_per_chart" default:"1000" validate:"gte=0"`
}

// SaveOptions toggles the paragraphs of the save block. The manifest is
// always written.
type SaveOptions struct {
	Downstream bool   `yaml:"downstream" json:"downstream" default:"true"`
	Backup     bool   `yaml:"backup" json:"backup"`
	Charts     bool   `yaml:"charts" json:"charts"`
	Summary    bool   `yaml:"summary" json:"summary" default:"true"`
	OutputDir  string `yaml:"output_dir" json:"output_dir" default:"data/punkt4"`
	ChartsDir  string `yaml:"charts_dir" json:"charts_dir" default:"charts"`
}

// IsBundle reports whether the dataset path is a multi-timeframe manifest.
func (d Dataset) IsBundle() bool {
	return dataset.IsManifest(d.Path)
}

// BaseName returns the artifact base name used for downstream files.
func (d Dataset) BaseName() string {
	switch {
	case d.Base != "":
		return d.Base
	case d.IsBundle():
		if m, err := dataset.ReadManifest(d.Path); err == nil && m.FilenameBase != "" {
			return m.FilenameBase
		}
		return dataset.ManifestBase(d.Path)
	}
	return dataset.SingleBase(d.Path)
}

// Files returns the candidate data files of a timeframe in load order.
func (d Dataset) Files(timeframe string) []string {
	if !d.IsBundle() {
		return []string{d.Path}
	}
	return dataset.Candidates(filepath.Dir(d.Path), d.BaseName(), timeframe)
}

// Check enforces the open/high/low/close contract. Declared columns are
// checked as given; otherwise a dataset present on disk is resolved, which
// checks a CSV header or parses the manifest.
func (d Dataset) Check(report *core.Report) {
	if len(d.Columns) > 0 {
		if err := dataset.ValidateColumns(d.Path, d.Columns); err != nil {
			report.AddError(err)
		}
		return
	}

	_, err := dataset.Resolve(d.Path)
	switch {
	case err == nil:
	case errors.Is(err, core.ErrDatasetFormat):
		report.AddError(err)
	case errors.Is(err, fs.ErrNotExist):
		report.Warnf("dataset %s not found here: its columns were not checked", d.Path)
	default:
		report.Warnf("dataset %s could not be inspected: %v", d.Path, err)
	}
}

// Available returns the input set indicators are dispatched against.
func (d Dataset) Available() adapter.Available {
	if len(d.Columns) == 0 {
		return adapter.AllInputs()
	}
	return adapter.NewAvailable(d.Columns...)
}

// IndicatorsFor returns the ordered indicator list of a timeframe.
func (s *Snapshot) IndicatorsFor(timeframe string) []core.IndicatorSpec {
	if s.TimeframeMode == Multi && s.MultiIndicatorMode == Individual {
		return s.PerTimeframe[timeframe]
	}
	return s.Indicators
}

// AllIndicators returns every selected spec once per timeframe list entry,
// in timeframe order then selection order.
func (s *Snapshot) AllIndicators() []core.IndicatorSpec {
	if s.TimeframeMode == Multi && s.MultiIndicatorMode == Individual {
		var out []core.IndicatorSpec
		for _, tf := range s.Timeframes {
			out = append(out, s.PerTimeframe[tf]...)
		}
		return out
	}
	return s.Indicators
}

// FromReference builds a snapshot skeleton for a resolved dataset.
func FromReference(ref dataset.Reference) *Snapshot {
	s := New()
	s.Dataset = Dataset{Path: ref.Path, Base: ref.Base, Columns: ref.Columns}
	s.Timeframes = append([]string(nil), ref.Timeframes...)
	if len(s.Timeframes) > 1 {
		s.TimeframeMode = Multi
	}
	return s
}
