package script

import (
	"strings"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/plot"
	"github.com/raykavin/vbtforge/pkg/pysrc"
	"github.com/samber/lo"
)

// optionalImport is a third-party module the program tolerates missing.
type optionalImport struct {
	statements []string
	names      []string // bound to None when the import fails
	label      string
}

var libraryImports = map[core.Library]optionalImport{
	core.TALib: {
		statements: []string{"import talib"},
		names:      []string{"talib"},
		label:      "TA-Lib",
	},
	core.PandasTA: {
		statements: []string{"import pandas_ta as pta"},
		names:      []string{"pta"},
		label:      "pandas-ta",
	},
	core.Technical: {
		statements: []string{"import technical.indicators as ftt", "from technical import qtpylib"},
		names:      []string{"ftt", "qtpylib"},
		label:      "technical",
	},
	core.TA: {
		statements: []string{"import ta"},
		names:      []string{"ta"},
		label:      "ta",
	},
	core.SMC: {
		statements: []string{"from smartmoneyconcepts import smc"},
		names:      []string{"smc"},
		label:      "smartmoneyconcepts",
	},
	core.WQA101: {
		statements: []string{"import wqa101"},
		names:      []string{"wqa101"},
		label:      "wqa101",
	},
	core.TechCon: {
		statements: []string{"from technical.consensus import Consensus"},
		names:      []string{"Consensus"},
		label:      "technical.consensus",
	},
}

func writePreamble(w *pysrc.Writer, p program) {
	s := p.snap

	w.Line("#!/usr/bin/env python3")
	w.Line("# -*- coding: utf-8 -*-")
	w.Line(`"""`)
	w.Linef("Indicator analysis for %s", s.Dataset.BaseName())
	w.Blank()
	w.Linef("Timeframes: %s", strings.Join(s.Timeframes, ", "))
	w.Linef("Indicators: %d", len(s.AllIndicators()))
	w.Linef("Visualization: %s", s.Visualization.Mode)
	w.Blank()
	w.Line("Generated by vbtforge. Run with the indicator libraries on PYTHONPATH.")
	w.Line(`"""`)
	w.Blank()

	w.Line("import os")
	w.Line("import sys")
	w.Line("import json")
	w.Line("import inspect")
	w.Line("import warnings")
	w.Line("from datetime import datetime")
	w.Blank()
	w.Line("import numpy as np")
	w.Line("import pandas as pd")
	w.Line("import vectorbtpro as vbt")
	if s.Visualization.Mode.Charts() {
		w.Line("import plotly.graph_objects as go")
		w.Line("from plotly.subplots import make_subplots")
	}

	for _, library := range core.Libraries() {
		imp, ok := libraryImports[library]
		if !ok || !p.libraries[library] {
			continue
		}
		w.Blank()
		w.Block("try:", func() {
			for _, stmt := range imp.statements {
				w.Line(stmt)
			}
		})
		w.Block("except ImportError:", func() {
			w.Linef("%s = None", strings.Join(imp.names, " = "))
			w.Linef("print(%s)", pysrc.String("⚠️  "+imp.label+" is not installed, its indicators will fail"))
		})
	}

	w.Blank()
	w.Line(`warnings.filterwarnings("ignore")`)
	w.Line(`pd.set_option("display.width", 200)`)
	w.Line(`pd.set_option("display.max_columns", 50)`)

	w.Section("HELPERS")
	w.Raw(helpers)
}

var qualityScale = map[string]int{"low": 1, "medium": 2, "high": 3}

func writeConfig(w *pysrc.Writer, p program) {
	s := p.snap

	w.Section("CONFIGURATION")
	w.Linef("DATASET = %s", pysrc.String(s.Dataset.Path))
	w.Linef("BASE_NAME = %s", pysrc.String(s.Dataset.BaseName()))
	w.Linef("TIMEFRAMES = %s", pysrc.Repr(s.Timeframes))
	literal(w, "DATA_FILES = {", "}", func() {
		for _, tf := range s.Timeframes {
			w.Linef("%s: %s,", pysrc.String(tf), pysrc.Repr(s.Dataset.Files(tf)))
		}
	})
	w.Linef("OUTPUT_DIR = %s", pysrc.String(s.Save.OutputDir))
	w.Linef("CHARTS_DIR = %s", pysrc.String(s.Save.ChartsDir))
	w.Blank()

	literal(w, "INDICATORS = [", "]", func() {
		for _, spec := range s.AllIndicators() {
			w.Linef("%s,", specRecord(p.table.Canonical(spec)))
		}
	})
	w.Blank()

	literal(w, "COLUMNS = {", "}", func() {
		for _, tf := range p.timeframes {
			w.Linef("%s: %s,", pysrc.String(tf.name), pysrc.Repr(lo.Uniq(tf.columns)))
		}
	})

	if s.Visualization.Mode.Charts() {
		w.Blank()
		literal(w, "LAYOUT = {", "}", func() {
			for _, tf := range p.timeframes {
				l := tf.layout
				literal(w, pysrc.String(tf.name)+": {", "},", func() {
					w.Linef(`"main": %s,`, pysrc.Repr(l.Main))
					w.Linef(`"volume": %s,`, pysrc.Repr(l.Volume))
					w.Linef(`"oscillators": %s,`, nestedStrings(l.Oscillators))
					w.Linef(`"references": %s,`, nestedFloats(l.References))
					w.Linef(`"heights": %s,`, pysrc.Repr(l.Heights))
					w.Linef(`"heights_no_volume": %s,`, pysrc.Repr(plot.RowHeights(false, len(l.Oscillators))))
				})
			}
		})
		literal(w, "PERIOD_CANDLES = {", "}", func() {
			for _, tf := range p.timeframes {
				w.Linef("%s: %d,", pysrc.String(tf.name), tf.candles)
			}
		})
		w.Linef("PERIOD_LABEL = %s", pysrc.String(s.Visualization.Period))
		w.Linef("SEGMENTED = %s", pysrc.Repr(s.Visualization.Segmented))
		w.Linef("CANDLES_PER_CHART = %d", s.Visualization.CandlesPerChart)
		w.Linef("THEME = %s", pysrc.String(s.Visualization.Theme))
		w.Linef("IMAGE_SCALE = %d", qualityScale[s.Visualization.Quality])
	}
}

// literal writes a multi-line container literal; unlike Block an empty body
// stays empty.
func literal(w *pysrc.Writer, open, close string, body func()) {
	w.Line(open)
	w.Indent()
	body()
	w.Dedent()
	w.Line(close)
}

// specRecord renders a spec as a dict literal in its parameter order.
func specRecord(spec core.IndicatorSpec) string {
	params := lo.Map(spec.Params, func(param core.Param, _ int) string {
		return pysrc.String(param.Name) + ": " + pysrc.Repr(param.Value)
	})
	return "{" + strings.Join([]string{
		`"library": ` + pysrc.String(string(spec.Library)),
		`"name": ` + pysrc.String(spec.Name),
		`"params": {` + strings.Join(params, ", ") + "}",
		`"display": ` + pysrc.String(spec.DisplayName()),
	}, ", ") + "}"
}

func nestedStrings(rows [][]string) string {
	items := lo.Map(rows, func(row []string, _ int) string {
		return pysrc.Repr(row)
	})
	return "[" + strings.Join(items, ", ") + "]"
}

func nestedFloats(rows [][]float64) string {
	items := lo.Map(rows, func(row []float64, _ int) string {
		return pysrc.Repr(row)
	})
	return "[" + strings.Join(items, ", ") + "]"
}
