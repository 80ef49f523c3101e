package catalog

import "github.com/raykavin/vbtforge/pkg/core"

func init() {
	register(core.TechCon, []row{
		r("rsi", "Oscillators", "period", 14, "buy", 30, "sell", 70),
		r("stoch", "Oscillators", "buy", 20, "sell", 80),
		r("cci", "Oscillators", "period", 20, "buy", -100, "sell", 100),
		r("williams", "Oscillators", "period", 14, "buy", -80, "sell", -20),
		r("momentum", "Oscillators", "period", 20),
		r("ultimate_oscilator", "Oscillators", "buy", 30, "sell", 70),
		r("osc", "Oscillators", "period", 12),
		r("laguerre", "Oscillators"),
		r("macd", "Trend"),
		r("macd_cross_over", "Trend"),
		r("adx", "Trend", "period", 14),
		r("ichimoku", "Trend"),
		r("ema", "Moving Averages", "period", 9),
		r("sma", "Moving Averages", "period", 9),
		r("tema", "Moving Averages", "period", 9),
		r("hull", "Moving Averages", "period", 9),
		r("vwma", "Moving Averages", "period", 9),
		r("cmf", "Volume", "period", 12),
		r("mfi", "Volume", "period", 14, "buy", 20, "sell", 80),
		r("consensus", "Summary", "smooth", 0),
	})
}
