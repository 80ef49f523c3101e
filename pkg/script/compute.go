package script

import (
	"github.com/raykavin/vbtforge/pkg/pysrc"
)

func writeLoad(w *pysrc.Writer) {
	w.Section("DATA LOADING")
	w.Block("def load_timeframes():", func() {
		w.Line(`"""Load every timeframe from its first available data file."""`)
		w.Line("data = {}")
		w.Block("for tf in TIMEFRAMES:", func() {
			w.Block("for path in DATA_FILES[tf]:", func() {
				w.Block("if not os.path.exists(path):", func() {
					w.Line("continue")
				})
				w.Block("try:", func() {
					w.Line("frame = _load_frame(path)")
				})
				w.Block("except Exception as err:", func() {
					w.Line(`print("   ⚠️  %s: %s" % (os.path.basename(path), err))`)
					w.Line("continue")
				})
				w.Line("data[tf] = frame")
				w.Line(`print("📂 %s: %d rows from %s" % (tf, len(frame), os.path.basename(path)))`)
				w.Line("break")
			})
			w.Block("else:", func() {
				w.Line(`print("❌ %s: no loadable data file" % tf)`)
			})
		})
		w.Block("if not data:", func() {
			w.Line(`print("❌ No timeframe could be loaded from " + DATASET)`)
			w.Line("sys.exit(1)")
		})
		w.Line("return data")
	})
}

func writeCompute(w *pysrc.Writer, p program) {
	w.Section("INDICATOR COMPUTATION")

	if !p.individual {
		writeComputeFunc(w, p, p.timeframes[0])
		return
	}

	for _, tf := range p.timeframes {
		writeComputeFunc(w, p, tf)
		w.Blank()
	}
	literal(w, "COMPUTE = {", "}", func() {
		for _, tf := range p.timeframes {
			w.Linef("%s: %s,", pysrc.String(tf.name), p.computeName(tf))
		}
	})
}

func writeComputeFunc(w *pysrc.Writer, p program, tf timeframePlan) {
	w.Blank()
	w.Block("def "+p.computeName(tf)+"(data):", func() {
		if p.individual {
			w.Linef(`"""Compute the indicators selected for %s."""`, tf.name)
		} else {
			w.Line(`"""Compute the selected indicators on one timeframe frame."""`)
		}
		w.Line(`open_ = data["open"]`)
		w.Line(`high = data["high"]`)
		w.Line(`low = data["low"]`)
		w.Line(`close = data["close"]`)
		w.Line(`volume = data["volume"] if "volume" in data.columns else None`)
		w.Line(`ohlc = data[["open", "high", "low", "close"]]`)
		w.Line(`ohlcv = data[["open", "high", "low", "close", "volume"]] if volume is not None else ohlc`)
		w.Line("result = data.copy()")

		if len(tf.calls) == 0 {
			w.Blank()
			w.Comment("no indicators selected")
		}
		for _, call := range tf.calls {
			w.Blank()
			call.Write(w, p.available)
		}

		w.Blank()
		w.Line("return result")
	})
}
