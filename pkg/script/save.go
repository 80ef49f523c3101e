package script

import (
	"github.com/raykavin/vbtforge/pkg/dataset"
	"github.com/raykavin/vbtforge/pkg/pysrc"
)

func writeSave(w *pysrc.Writer, p program) {
	opts := p.snap.Save

	w.Section("SAVE")
	w.Block("def save_results(results):", func() {
		w.Line("os.makedirs(OUTPUT_DIR, exist_ok=True)")
		w.Line("vbt_files = []")
		w.Block("for tf, frame in results.items():", func() {
			if opts.Downstream {
				w.Line(`path = os.path.join(OUTPUT_DIR, "%s_%s_indicators_VBT.pickle" % (BASE_NAME, tf))`)
				w.Line("_save_vbt(frame, path)")
				w.Line("vbt_files.append(os.path.basename(path))")
				w.Line(`print("💾 %s: %s" % (tf, path))`)
			}
			if opts.Backup {
				w.Line(`csv_path = os.path.join(OUTPUT_DIR, "%s_%s_indicators.csv" % (BASE_NAME, tf))`)
				w.Line("frame.to_csv(csv_path)")
				w.Line(`print("💾 %s backup: %s" % (tf, csv_path))`)
			}
		})
		literal(w, "manifest = {", "}", func() {
			w.Line(`"created_at": datetime.now().isoformat(),`)
			w.Line(`"source": DATASET,`)
			w.Line(`"base_file": BASE_NAME,`)
			w.Line(`"timeframes": TIMEFRAMES,`)
			w.Line(`"indicators": INDICATORS,`)
			w.Line(`"vbt_files": vbt_files,`)
			w.Line(`"total_indicators": len(INDICATORS),`)
			w.Linef(`"vbt_optimized": %s,`, pysrc.Repr(opts.Downstream))
			w.Line(`"punkt4_ready": len(vbt_files) == len(results),`)
		})
		w.Linef("path = os.path.join(OUTPUT_DIR, BASE_NAME + %s)", pysrc.String(dataset.IndicatorManifestSuffix))
		w.Block(`with open(path, "w", encoding="utf-8") as fh:`, func() {
			w.Line("json.dump(manifest, fh, indent=2, default=str)")
		})
		w.Line(`print("📝 manifest: " + path)`)
		w.Line("return vbt_files")
	})
}

func writeSummary(w *pysrc.Writer, p program) {
	if !p.snap.Save.Summary {
		return
	}

	w.Section("SUMMARY")
	w.Block("def print_summary(results, elapsed):", func() {
		w.Line(`print("\n" + "=" * 80)`)
		w.Line(`print("📈 SUMMARY")`)
		w.Line(`print("=" * 80)`)
		w.Block("for tf, frame in results.items():", func() {
			w.Line(`computed = [c for c in COLUMNS[tf] if c in frame.columns and frame[c].notna().any()]`)
			w.Line(`print("   %s: %d columns, %d indicator columns with data" % (tf, frame.shape[1], len(computed)))`)
		})
		w.Line(`print("   indicator blocks ok: %d, failed: %d" % (_STATS["ok"], _STATS["failed"]))`)
		w.Line("start = min(frame.index.min() for frame in results.values())")
		w.Line("end = max(frame.index.max() for frame in results.values())")
		w.Line(`print("   date range: %s → %s" % (start, end))`)
		w.Line(`print("   elapsed: %.1fs" % elapsed)`)
	})
}

func writeMain(w *pysrc.Writer, p program) {
	s := p.snap

	w.Section("MAIN")
	w.Block("def main():", func() {
		w.Line("started = datetime.now()")
		w.Line(`print("🚀 Indicator analysis: %s (%d timeframes, %d indicators)" % (BASE_NAME, len(TIMEFRAMES), len(INDICATORS)))`)
		w.Line("data = load_timeframes()")
		w.Line("results = {}")
		w.Block("for tf, frame in data.items():", func() {
			w.Line(`print("\n🔧 %s: computing indicators on %d rows" % (tf, len(frame)))`)
			if p.individual {
				w.Line("results[tf] = COMPUTE[tf](frame)")
			} else {
				w.Line("results[tf] = compute_indicators(frame)")
			}
		})

		mode := s.Visualization.Mode
		if mode.Tables() {
			w.Line("show_tables(results)")
		}
		if mode.Charts() {
			w.Block("try:", func() {
				w.Line("render_charts(results)")
			})
			w.Block("except Exception as err:", func() {
				w.Line(`print("⚠️  chart rendering failed: %s" % err)`)
			})
		}

		w.Line("save_results(results)")
		if s.Save.Summary {
			w.Line("print_summary(results, (datetime.now() - started).total_seconds())")
		}
		w.Line("return 0")
	})
	w.Blank()
	w.Blank()
	w.Block(`if __name__ == "__main__":`, func() {
		w.Line("sys.exit(main())")
	})
}
