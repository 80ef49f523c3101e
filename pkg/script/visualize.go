package script

import (
	"github.com/raykavin/vbtforge/pkg/pysrc"
)

func writeVisualization(w *pysrc.Writer, p program) {
	mode := p.snap.Visualization.Mode
	if !mode.Charts() && !mode.Tables() {
		return
	}

	w.Section("VISUALIZATION")
	if mode.Tables() {
		writeTables(w)
	}
	if mode.Charts() {
		writeFigure(w)
		writeRender(w, mode.Interactive(), p.snap.Save.Charts)
	}
}

func writeTables(w *pysrc.Writer) {
	w.Blank()
	w.Block("def show_tables(results):", func() {
		w.Block("for tf, frame in results.items():", func() {
			w.Line(`indicator_columns = [c for c in COLUMNS[tf] if c in frame.columns]`)
			w.Line(`shown = ["close"] + indicator_columns[:8]`)
			w.Line(`print("\n" + "=" * 80)`)
			w.Line(`print("📋 %s: %d rows, %d indicator columns" % (tf, len(frame), len(indicator_columns)))`)
			w.Line(`print("=" * 80)`)
			w.Line(`print(frame[shown].head(5).to_string())`)
			w.Line(`print("...")`)
			w.Line(`print(frame[shown].tail(5).to_string())`)
			w.Block("if indicator_columns:", func() {
				w.Line(`print("\nStatistics:")`)
				w.Line(`print(frame[indicator_columns].describe().T.to_string())`)
			})
			w.Line(`print("\nIndicator columns:")`)
			w.Block("for col in indicator_columns:", func() {
				w.Line(`print("   • " + col)`)
			})
		})
	})
}

func writeFigure(w *pysrc.Writer) {
	w.Blank()
	w.Block("def _figure(frame, tf, title):", func() {
		w.Line(`layout = LAYOUT[tf]`)
		w.Line(`has_volume = "volume" in frame.columns`)
		w.Line(`heights = layout["heights"] if has_volume else layout["heights_no_volume"]`)
		w.Line(`fig = make_subplots(rows=len(heights), cols=1, shared_xaxes=True, vertical_spacing=0.02, row_heights=heights)`)
		w.Line(`fig.add_trace(go.Candlestick(x=frame.index, open=frame["open"], high=frame["high"], low=frame["low"], close=frame["close"], name="OHLC"), row=1, col=1)`)
		w.Block(`for col in layout["main"]:`, func() {
			w.Block("if col in frame.columns:", func() {
				w.Line(`fig.add_trace(go.Scatter(x=frame.index, y=frame[col], name=col, mode="lines", line=dict(width=1)), row=1, col=1)`)
			})
		})
		w.Line("row = 2")
		w.Block("if has_volume:", func() {
			w.Line(`fig.add_trace(go.Bar(x=frame.index, y=frame["volume"], name="volume", marker_color="rgba(128, 128, 128, 0.5)"), row=row, col=1)`)
			w.Block(`for col in layout["volume"]:`, func() {
				w.Block("if col in frame.columns:", func() {
					w.Line(`fig.add_trace(go.Scatter(x=frame.index, y=frame[col], name=col, mode="lines"), row=row, col=1)`)
				})
			})
			w.Line("row += 1")
		})
		w.Block(`for columns, levels in zip(layout["oscillators"], layout["references"]):`, func() {
			w.Block("for col in columns:", func() {
				w.Block("if col in frame.columns:", func() {
					w.Line(`fig.add_trace(go.Scatter(x=frame.index, y=frame[col], name=col, mode="lines"), row=row, col=1)`)
				})
			})
			w.Block("for level in levels:", func() {
				w.Line(`fig.add_hline(y=level, line_dash="dot", line_color="gray", row=row, col=1)`)
			})
			w.Line("row += 1")
		})
		w.Line(`fig.update_layout(title=title, template=THEME, xaxis_rangeslider_visible=False, height=300 + 200 * len(heights), showlegend=True)`)
		w.Line("return fig")
	})
}

func writeRender(w *pysrc.Writer, interactive, saveCharts bool) {
	w.Blank()
	w.Block("def render_charts(results):", func() {
		if !interactive || saveCharts {
			w.Line("os.makedirs(CHARTS_DIR, exist_ok=True)")
		}
		w.Block("for tf, frame in results.items():", func() {
			w.Line("window = PERIOD_CANDLES[tf]")
			w.Line("view = frame.iloc[-window:] if 0 < window < len(frame) else frame")
			w.Block("if SEGMENTED and CANDLES_PER_CHART > 0 and len(view) > CANDLES_PER_CHART:", func() {
				w.Line("starts = list(range(0, len(view), CANDLES_PER_CHART))")
				w.Line("size = CANDLES_PER_CHART")
			})
			w.Block("else:", func() {
				w.Line("starts = [0]")
				w.Line("size = len(view)")
			})
			w.Line("total = len(starts)")
			w.Block("for part, start in enumerate(starts, 1):", func() {
				w.Line("chunk = view.iloc[start:start + size]")
				w.Line(`title = "%s %s (%s)" % (BASE_NAME, tf, PERIOD_LABEL)`)
				w.Line(`name = "%s_%s" % (BASE_NAME, tf)`)
				w.Block("if total > 1:", func() {
					w.Line(`title += " - part %d/%d" % (part, total)`)
					w.Line(`name += "_part%d" % part`)
				})
				w.Line("fig = _figure(chunk, tf, title)")
				if interactive {
					w.Line("fig.show()")
					if saveCharts {
						w.Line(`fig.write_html(os.path.join(CHARTS_DIR, name + ".html"))`)
					}
					return
				}
				w.Line(`path = os.path.join(CHARTS_DIR, name + ".png")`)
				w.Line("fig.write_image(path, scale=IMAGE_SCALE)")
				w.Line(`print("🖼️  saved " + path)`)
			})
		})
	})
}
