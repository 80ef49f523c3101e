// Package preview computes reference indicator values over a loaded dataset
// so a selection can be checked before a program is emitted.
package preview

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/raykavin/vbtforge/pkg/adapter"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/indicator"
	"github.com/raykavin/vbtforge/pkg/logger"
	"github.com/raykavin/vbtforge/pkg/metric"
	"github.com/schollz/progressbar/v3"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the finite values of one column.
type Summary struct {
	Count  int
	NaN    int
	Mean   float64
	StdDev float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
	MeanCI *metric.Interval // set when the previewer bootstraps the mean
}

// Column is one computed output.
type Column struct {
	Name    string
	Values  core.Series[float64]
	Summary Summary
}

// Skip records a spec the preview could not compute.
type Skip struct {
	Display string
	Reason  string
}

// Report is the outcome of a preview run.
type Report struct {
	Rows    int
	Columns []Column
	Skipped []Skip
}

// Previewer computes reference values for a list of specs.
type Previewer struct {
	table    *adapter.Table
	log      logger.Logger
	progress io.Writer
	samples  int
	level    float64
}

// Option configures a Previewer.
type Option func(*Previewer)

// WithTable resolves specs against t instead of the default table.
func WithTable(t *adapter.Table) Option {
	return func(p *Previewer) {
		p.table = t
	}
}

// WithLogger reports skipped specs through log.
func WithLogger(log logger.Logger) Option {
	return func(p *Previewer) {
		p.log = log
	}
}

// WithProgress draws a progress bar on w while computing.
func WithProgress(w io.Writer) Option {
	return func(p *Previewer) {
		p.progress = w
	}
}

// WithMeanInterval bootstraps a confidence interval of each column mean.
func WithMeanInterval(samples int, confidence float64) Option {
	return func(p *Previewer) {
		p.samples = samples
		p.level = confidence
	}
}

// New creates a Previewer.
func New(opts ...Option) *Previewer {
	p := &Previewer{}
	for _, opt := range opts {
		opt(p)
	}
	if p.table == nil {
		p.table = adapter.Default()
	}
	p.log = logger.OrNop(p.log)
	return p
}

// Run computes every spec over f. Specs that cannot be resolved or have no
// reference calculator are reported as skipped, not as errors.
func (p *Previewer) Run(f *core.Frame, specs []core.IndicatorSpec) (Report, error) {
	if f == nil || f.Len() == 0 {
		return Report{}, errors.New("preview: empty dataset")
	}

	var bar *progressbar.ProgressBar
	if p.progress != nil {
		bar = progressbar.NewOptions(len(specs),
			progressbar.OptionSetWriter(p.progress),
			progressbar.OptionSetDescription("computing indicators"),
			progressbar.OptionShowCount(),
		)
	}

	report := Report{Rows: f.Len()}
	for _, spec := range specs {
		if bar != nil {
			_ = bar.Add(1)
		}

		call, err := p.table.Resolve(spec)
		if err != nil {
			report.skip(p.log, spec.DisplayName(), err)
			continue
		}

		outputs, err := indicator.Compute(f, call)
		if err != nil {
			report.skip(p.log, call.Display, err)
			continue
		}
		for _, o := range outputs {
			report.Columns = append(report.Columns, Column{
				Name:    o.Column,
				Values:  o.Values,
				Summary: p.summarize(o.Values),
			})
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return report, nil
}

func (r *Report) skip(log logger.Logger, display string, err error) {
	reason := err.Error()
	switch {
	case errors.Is(err, indicator.ErrUnsupported):
		reason = "no reference calculator"
	case errors.Is(err, indicator.ErrVolumeRequired):
		reason = "volume required"
	}
	log.WithField("indicator", display).Debugf("preview skipped: %s", reason)
	r.Skipped = append(r.Skipped, Skip{Display: display, Reason: reason})
}

// Column returns the computed column with the given name.
func (r Report) Column(name string) (Column, bool) {
	for _, c := range r.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func (p *Previewer) summarize(values core.Series[float64]) Summary {
	s := Summarize(values)
	if p.samples > 0 && s.Count > 1 {
		interval := metric.Bootstrap(core.Finite(values), metric.Mean, p.samples, p.level, int64(s.Count))
		s.MeanCI = &interval
	}
	return s
}

// Summarize computes the distribution of the finite values.
func Summarize(values core.Series[float64]) Summary {
	finite := core.Finite(values)
	s := Summary{Count: len(finite), NaN: len(values) - len(finite)}
	if len(finite) == 0 {
		nan := math.NaN()
		s.Mean, s.StdDev, s.Min, s.Q25, s.Median, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}

	sorted := make([]float64, len(finite))
	copy(sorted, finite)
	sort.Float64s(sorted)

	s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		s.StdDev = 0
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Q25 = stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	s.Median = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	s.Q75 = stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.4f std=%.4f min=%.4f max=%.4f", s.Count, s.Mean, s.StdDev, s.Min, s.Max)
}
