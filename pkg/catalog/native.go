package catalog

import "github.com/raykavin/vbtforge/pkg/core"

func init() {
	register(core.Native, []row{
		// Moving averages
		r("MA", "Moving Averages", "window", 14, "wtype", "simple"),
		r("SMA", "Moving Averages", "window", 20),
		r("EMA", "Moving Averages", "window", 20),
		r("WMA", "Moving Averages", "window", 20),

		// Volatility
		r("MSTD", "Volatility", "window", 20, "wtype", "simple"),
		r("BBANDS", "Volatility", "window", 20, "alpha", 2.0),
		r("ATR", "Volatility", "window", 14),

		// Momentum
		r("RSI", "Momentum", "window", 14),
		r("STOCH", "Momentum", "fast_k_window", 14, "slow_k_window", 3, "slow_d_window", 3),
		r("MACD", "Momentum", "fast", 12, "slow", 26, "signal", 9),

		// Trend
		r("ADX", "Trend", "window", 14),
		r("SUPERTREND", "Trend", "period", 7, "multiplier", 3.0),
		r("PIVOTINFO", "Trend", "up_th", 0.1, "down_th", 0.1),

		// Volume
		r("OBV", "Volume"),
		r("VWAP", "Volume", "anchor", "D"),

		// Statistics
		r("HURST", "Statistics", "window", 200),
		r("SIGDET", "Statistics", "lag", 14, "factor", 1.0, "influence", 1.0),
		r("PATSIM", "Pattern", "window", 20),

		// Random and probabilistic signal generators
		r("RAND", "Signal Generators", "n", 10, "seed", 42),
		r("RANDNX", "Signal Generators", "n", 10, "seed", 42),
		r("RPROB", "Signal Generators", "prob", 0.1, "seed", 42),
		r("RPROBX", "Signal Generators", "prob", 0.1, "seed", 42),
		r("RPROBCX", "Signal Generators", "prob", 0.1, "seed", 42),
		r("RPROBNX", "Signal Generators", "entry_prob", 0.1, "exit_prob", 0.1, "seed", 42),
		r("STX", "Signal Generators", "stop", 0.1),
		r("STCX", "Signal Generators", "stop", 0.1),
		r("OHLCSTX", "Signal Generators", "sl_stop", 0.1),
		r("OHLCSTCX", "Signal Generators", "sl_stop", 0.1),

		// Look-ahead labels
		r("FMEAN", "Labels", "window", 14, "wtype", "simple"),
		r("FSTD", "Labels", "window", 14, "wtype", "simple"),
		r("FMIN", "Labels", "window", 14),
		r("FMAX", "Labels", "window", 14),
		r("FIXLB", "Labels", "n", 5),
		r("MEANLB", "Labels", "window", 14, "wtype", "simple"),
		r("LEXLB", "Labels", "pos_th", 0.1, "neg_th", 0.1),
		r("TRENDLB", "Labels", "pos_th", 0.1, "neg_th", 0.1, "mode", "binary"),
		r("BOLB", "Labels", "window", 14, "pos_th", 0.1, "neg_th", 0.1),
	})
}
