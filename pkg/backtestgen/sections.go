package backtestgen

import (
	"fmt"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/portfolio"
	"github.com/raykavin/vbtforge/pkg/pysrc"
)

func writeHeader(w *pysrc.Writer, m *portfolio.Model, cfg Config, v portfolio.Validation) {
	title := "Strategy scaffold"
	if cfg.Variant == Full {
		title = "Full backtest"
	}

	w.Line("#!/usr/bin/env python3")
	w.Line("# -*- coding: utf-8 -*-")
	w.Line(`"""`)
	w.Linef("%s for %s %s", title, cfg.BaseName, cfg.Timeframe)
	if m.Instrument() != "" {
		w.Blank()
		w.Linef("Instrument preset: %s", m.Instrument())
	}
	w.Blank()
	w.Line("Generated by vbtforge from the portfolio parameter state.")
	w.Line(`"""`)
	for _, warning := range v.Warnings {
		w.Commentf("warning: %s", warning)
	}
	w.Blank()
	w.Line("import os")
	w.Line("import sys")
	w.Line("from datetime import datetime")
	w.Blank()
	w.Line("import numpy as np")
	w.Line("import pandas as pd")
	w.Line("import vectorbtpro as vbt")
	w.Blank()
	w.Line(`pd.set_option("display.width", 200)`)
}

func writeLoad(w *pysrc.Writer) {
	w.Section("DATA")
	w.Block("def load_data():", func() {
		w.Line(`"""Load the indicator frame produced by the analysis stage."""`)
		w.Block("if not os.path.exists(DATA_FILE):", func() {
			w.Line(`print("❌ Indicator artifact not found: " + DATA_FILE)`)
			w.Line("sys.exit(1)")
		})
		w.Line("data = vbt.Data.load(DATA_FILE)")
		w.Line(`frame = data.get() if hasattr(data, "get") else data`)
		w.Line(`missing = [c for c in PRICE_COLUMNS[:4] if c not in frame.columns]`)
		w.Block("if missing:", func() {
			w.Line(`print("❌ Missing price columns: " + ", ".join(missing))`)
			w.Line("sys.exit(1)")
		})
		w.Line(`print("📂 Loaded %d rows, %d columns" % frame.shape)`)
		w.Line(`print("   Range: %s → %s" % (frame.index[0], frame.index[-1]))`)
		w.Line(`price = [c for c in PRICE_COLUMNS if c in frame.columns]`)
		w.Line(`print("   Indicator columns: %d" % (frame.shape[1] - len(price)))`)
		w.Line("return frame")
	})
}

func writeParameters(w *pysrc.Writer, m *portfolio.Model, cfg Config) {
	w.Section("PARAMETERS")
	w.Linef("DATA_DIR = %s", pysrc.String(cfg.DataDir))
	w.Linef("RESULTS_DIR = %s", pysrc.String(cfg.ResultsDir))
	w.Linef("BASE_NAME = %s", pysrc.String(cfg.BaseName))
	w.Linef("TIMEFRAME = %s", pysrc.String(cfg.Timeframe))
	w.Line(`DATA_FILE = os.path.join(DATA_DIR, "%s_%s_indicators_VBT.pickle" % (BASE_NAME, TIMEFRAME))`)
	w.Line(`PRICE_COLUMNS = ("open", "high", "low", "close", "volume")`)
	w.Blank()

	w.Commentf("instrument: tick_size=%s, tick_value=%s",
		core.FormatValue(m.Float(portfolio.TickSize)), core.FormatValue(m.Float(portfolio.TickValue)))
	w.Line("PORTFOLIO_PARAMS = dict(")
	w.Indent()
	for _, arg := range m.Arguments() {
		line := fmt.Sprintf("%s=%s,", arg.Name, pysrc.Repr(arg.Value))
		switch arg.Name {
		case "sl_stop":
			line += "  # " + m.DisplayStop(portfolio.Loss)
		case "tp_stop":
			line += "  # " + m.DisplayStop(portfolio.Profit)
		}
		w.Line(line)
	}
	w.Dedent()
	w.Line(")")
	w.Blank()

	w.Linef("SESSION_TIMEZONE = %s", pysrc.String(portfolio.ReferenceTimezone))
	w.Line("SESSIONS = [")
	w.Indent()
	for _, s := range cfg.Sessions {
		w.Linef("%s,", pysrc.Tuple(pysrc.String(s.Name), pysrc.String(s.Start), pysrc.String(s.End)))
	}
	w.Dedent()
	w.Line("]")
}

func writeSignals(w *pysrc.Writer, cfg Config) {
	w.Section("SIGNALS")
	w.Block("def session_masks(index):", func() {
		w.Line(`"""One boolean mask per session window; windows are kept separate."""`)
		w.Line(`local = (index.tz_localize("UTC") if index.tz is None else index).tz_convert(SESSION_TIMEZONE)`)
		w.Line("minutes = np.asarray(local.hour * 60 + local.minute)")
		w.Line("masks = {}")
		w.Block("for name, start, end in SESSIONS:", func() {
			w.Line("lo = int(start[:2]) * 60 + int(start[3:])")
			w.Line("hi = int(end[:2]) * 60 + int(end[3:])")
			w.Block("if hi > lo:", func() {
				w.Line("inside = (minutes >= lo) & (minutes < hi)")
			})
			w.Block("else:", func() {
				w.Line("inside = (minutes >= lo) | (minutes < hi)")
			})
			w.Line("masks[name] = pd.Series(inside, index=index)")
		})
		w.Line("return masks")
	})
	w.Blank()
	w.Blank()
	w.Block("def build_signals(frame):", func() {
		w.Line(`"""Return entry and exit signals. Both start empty."""`)
		w.Line("entries = pd.Series(False, index=frame.index)")
		w.Line("exits = pd.Series(False, index=frame.index)")
		w.Blank()
		w.Comment("Define the strategy here, for example:")
		w.Comment(`entries = frame["close"] > frame["SMA(20)"]`)
		w.Comment(`exits = frame["close"] < frame["SMA(20)"]`)
		if len(cfg.Sessions) > 0 {
			w.Blank()
			w.Line("masks = session_masks(frame.index)")
			w.Line("active = np.logical_or.reduce([m.to_numpy() for m in masks.values()])")
			w.Line("entries = entries & active")
		}
		w.Line("return entries, exits")
	})
}

func writeRun(w *pysrc.Writer) {
	w.Section("PORTFOLIO")
	w.Block("def run_portfolio(frame, entries, exits):", func() {
		w.Line("pf = vbt.Portfolio.from_signals(")
		w.Indent()
		w.Line(`close=frame["close"],`)
		w.Line(`open=frame["open"],`)
		w.Line(`high=frame["high"],`)
		w.Line(`low=frame["low"],`)
		w.Line("entries=entries,")
		w.Line("exits=exits,")
		w.Line("**PORTFOLIO_PARAMS,")
		w.Dedent()
		w.Line(")")
		w.Line(`print("\n📊 Portfolio statistics")`)
		w.Line("print(pf.stats())")
		w.Line("return pf")
	})
}

func writeAnalysis(w *pysrc.Writer, cfg Config) {
	w.Section("PERFORMANCE ANALYSIS")
	w.Block("def analyze(pf):", func() {
		w.Line("trades = pf.trades")
		w.Line("metrics = {")
		w.Indent()
		w.Line(`"total_return": pf.total_return,`)
		w.Line(`"win_rate": trades.win_rate if trades.count() > 0 else np.nan,`)
		w.Line(`"max_drawdown": pf.max_drawdown,`)
		w.Line(`"sharpe_ratio": pf.sharpe_ratio,`)
		w.Line(`"trades": trades.count(),`)
		w.Dedent()
		w.Line("}")
		w.Line(`print("\n📈 Performance")`)
		w.Block("for name, value in metrics.items():", func() {
			w.Line(`print("   %-14s %s" % (name, value))`)
		})
		w.Line("return metrics")
	})
	w.Blank()
	w.Blank()
	w.Block("def save_portfolio(pf):", func() {
		w.Line("os.makedirs(RESULTS_DIR, exist_ok=True)")
		w.Line(`path = os.path.join(RESULTS_DIR, "%s_%s_portfolio.pickle" % (BASE_NAME, TIMEFRAME))`)
		w.Line("pf.save(path)")
		w.Line(`print("💾 Portfolio saved: " + path)`)
		w.Line("return path")
	})
}

func writeMain(w *pysrc.Writer, cfg Config) {
	w.Section("MAIN")
	w.Block("def main():", func() {
		w.Line("started = datetime.now()")
		w.Line("frame = load_data()")
		w.Line("entries, exits = build_signals(frame)")
		w.Line(`print("   Entries: %d, exits: %d" % (entries.sum(), exits.sum()))`)
		w.Line("pf = run_portfolio(frame, entries, exits)")
		if cfg.Variant == Full {
			w.Line("analyze(pf)")
			w.Line("save_portfolio(pf)")
		}
		w.Line(`print("⏱️  %.1fs" % (datetime.now() - started).total_seconds())`)
		w.Line("return 0")
	})
	w.Blank()
	w.Blank()
	w.Block(`if __name__ == "__main__":`, func() {
		w.Line("sys.exit(main())")
	})
}
