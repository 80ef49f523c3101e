package script

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/raykavin/vbtforge/pkg/adapter"
	"github.com/raykavin/vbtforge/pkg/catalog"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/logger"
	"github.com/raykavin/vbtforge/pkg/plot"
	"github.com/raykavin/vbtforge/pkg/pysrc"
	"github.com/raykavin/vbtforge/pkg/snapshot"
)

//go:embed assets/helpers.py
var helpers string

// Option configures an Emitter.
type Option func(*Emitter)

// WithTable sets the adapter table used to dispatch indicator specs.
func WithTable(table *adapter.Table) Option {
	return func(e *Emitter) {
		e.table = table
	}
}

// WithCatalog sets the catalog snapshots are validated against.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(e *Emitter) {
		e.catalog = cat
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(e *Emitter) {
		e.log = log
	}
}

// Emitter turns a configuration snapshot into an analysis program.
type Emitter struct {
	table   *adapter.Table
	catalog *catalog.Catalog
	log     logger.Logger
}

// New creates an emitter over the default catalog and adapter table.
func New(opts ...Option) *Emitter {
	e := &Emitter{}
	for _, opt := range opts {
		opt(e)
	}
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	if e.table == nil {
		e.table = adapter.Default()
	}
	e.log = logger.OrNop(e.log)
	return e
}

// Result is the emitted program and the findings collected on the way.
type Result struct {
	Script  string
	Report  core.Report
	Columns map[string][]string // output columns per timeframe
}

// Generate emits the analysis program with a default emitter.
func Generate(s *snapshot.Snapshot) Result {
	return New().Generate(s)
}

// Generate validates the snapshot and emits the program. Structural errors
// leave Script empty; an unknown indicator or a parameter that cannot be
// coerced only drops that spec from the computation.
func (e *Emitter) Generate(s *snapshot.Snapshot) Result {
	res := Result{Columns: map[string][]string{}}

	res.Report = s.Validate(e.catalog)
	if blocking := blockingErrors(res.Report); len(blocking) > 0 {
		e.log.WithField("errors", len(blocking)).Warn("snapshot rejected, no script emitted")
		return res
	}

	p := e.plan(s, &res.Report)
	for _, tf := range p.timeframes {
		res.Columns[tf.name] = tf.columns
	}

	w := pysrc.NewWriter()
	writePreamble(w, p)
	writeConfig(w, p)
	writeLoad(w)
	writeCompute(w, p)
	writeVisualization(w, p)
	writeSave(w, p)
	writeSummary(w, p)
	writeMain(w, p)
	res.Script = w.String()

	e.log.WithFields(map[string]any{
		"timeframes": len(p.timeframes),
		"specs":      len(s.AllIndicators()),
		"errors":     len(res.Report.Errors),
	}).Info("analysis script generated")

	return res
}

// blockingErrors returns the errors that prevent emission altogether.
func blockingErrors(report core.Report) []error {
	var out []error
	for _, err := range report.Errors {
		if !errors.Is(err, core.ErrUnknownIndicator) {
			out = append(out, err)
		}
	}
	return out
}

type timeframePlan struct {
	name    string
	index   int
	calls   []adapter.Call
	columns []string
	layout  plot.Layout
	candles int
}

type program struct {
	snap       *snapshot.Snapshot
	table      *adapter.Table
	available  adapter.Available
	timeframes []timeframePlan
	libraries  map[core.Library]bool
	individual bool
}

func (e *Emitter) plan(s *snapshot.Snapshot, report *core.Report) program {
	p := program{
		snap:       s,
		table:      e.table,
		available:  s.Dataset.Available(),
		libraries:  map[core.Library]bool{},
		individual: s.TimeframeMode == snapshot.Multi && s.MultiIndicatorMode == snapshot.Individual,
	}

	// in "same" mode every timeframe shares one resolution pass
	var shared []adapter.Call
	if !p.individual {
		shared = e.resolve(s.Indicators, report)
	}

	for i, tf := range s.Timeframes {
		calls := shared
		if p.individual {
			calls = e.resolve(s.PerTimeframe[tf], report)
		}

		plan := timeframePlan{name: tf, index: i, calls: calls}
		var groups []plot.Group
		for _, call := range calls {
			p.libraries[call.Spec.Library] = true
			columns := call.OutputColumns(p.available)
			plan.columns = append(plan.columns, columns...)
			if len(columns) > 0 {
				groups = append(groups, plot.Group{Display: call.Display, Columns: columns})
			}
		}
		plan.layout = plot.Arrange(groups, p.available.HasVolume())
		if n, err := plot.PeriodCandles(s.Visualization.Period, tf); err == nil {
			plan.candles = n
		}
		p.timeframes = append(p.timeframes, plan)
	}

	return p
}

func (e *Emitter) resolve(specs []core.IndicatorSpec, report *core.Report) []adapter.Call {
	calls := make([]adapter.Call, 0, len(specs))
	for _, spec := range specs {
		call, err := e.table.Resolve(spec)
		if err != nil {
			// unknown indicators were already reported by validation
			if !errors.Is(err, core.ErrUnknownIndicator) {
				report.AddError(err)
			}
			e.log.WithError(err).Warnf("skipping %s", spec)
			continue
		}
		if len(call.Ignored) > 0 {
			report.Warnf("%s: ignored parameters %v", call.Display, call.Ignored)
		}
		e.log.Debugf("resolved %s as %s", call.Display, call.Recipe.Key())
		calls = append(calls, call)
	}
	return calls
}

func (p program) computeName(tf timeframePlan) string {
	if !p.individual {
		return "compute_indicators"
	}
	return fmt.Sprintf("compute_indicators_%d", tf.index)
}
