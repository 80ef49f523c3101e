package catalog

import "github.com/raykavin/vbtforge/pkg/core"

func init() {
	register(core.Technical, []row{
		r("bollinger_bands", "Volatility", "period", 21, "stdv", 2),
		r("atr", "Volatility", "period", 14),
		r("atr_percent", "Volatility", "period", 14),
		r("hull_moving_average", "Overlap", "period", 9),
		r("sma", "Overlap", "period", 9),
		r("ema", "Overlap", "period", 9),
		r("tema", "Overlap", "period", 9),
		r("zema", "Overlap", "period", 9),
		r("vwma", "Overlap", "window", 9),
		r("tv_wma", "Overlap", "length", 9),
		r("tv_hma", "Overlap", "length", 9),
		r("laguerre", "Momentum", "gamma", 0.75, "smooth", 1),
		r("madrid_sqz", "Momentum", "length", 34, "ref", 13, "sqzLen", 5),
		r("mmar", "Trend", "matype", "EMA", "src", "close"),
		r("PMAX", "Trend", "period", 10, "multiplier", 3.0, "length", 12, "MAtype", 1),
		r("RMI", "Momentum", "length", 20, "mom", 5),
		r("SSLChannels", "Trend", "length", 10, "mode", "sma"),
		r("TKE", "Momentum", "length", 14, "emaperiod", 5),
		r("vfi", "Volume", "length", 130, "coef", 0.2, "vcoef", 2.5, "signalLength", 5),
		r("vpci", "Volume", "period_short", 5, "period_long", 20),
		r("vwmacd", "Volume", "fastperiod", 12, "slowperiod", 26, "signalperiod", 9),
		r("chaikin_money_flow", "Volume", "period", 21),
		r("williams_percent", "Momentum"),
		r("momdiv", "Momentum", "mom_length", 10, "bb_length", 20, "bb_dev", 2.0, "lookback", 30),
		r("fibonacci_retracements", "Levels", "field", "close"),
		r("ichimoku", "Trend",
			"conversion_line_period", 9, "base_line_periods", 26, "laggin_span", 52, "displacement", 26),

		r("qtpylib.typical_price", "qtpylib"),
		r("qtpylib.bollinger_bands", "qtpylib", "window", 20, "stds", 2),
		r("qtpylib.keltner_channel", "qtpylib", "window", 14, "atrs", 2),
		r("qtpylib.heikinashi", "qtpylib"),
		r("qtpylib.rolling_vwap", "qtpylib", "window", 200),
		r("qtpylib.vwap", "qtpylib"),
		r("qtpylib.awesome_oscillator", "qtpylib", "fast", 5, "slow", 34),
		r("qtpylib.stoch", "qtpylib", "window", 14, "d", 3, "k", 3),
		r("qtpylib.zlma", "qtpylib", "window", 20),
		r("qtpylib.zscore", "qtpylib", "window", 20),
		r("qtpylib.pvt", "qtpylib"),
		r("qtpylib.chopiness", "qtpylib", "window", 14),
		r("qtpylib.log_returns", "qtpylib"),
		r("qtpylib.returns", "qtpylib"),
		r("qtpylib.implied_volatility", "qtpylib", "window", 252),
		r("qtpylib.rsi", "qtpylib", "window", 14),
		r("qtpylib.macd", "qtpylib", "fast", 3, "slow", 10, "smooth", 16),
		r("qtpylib.cci", "qtpylib", "window", 14),
		r("qtpylib.atr", "qtpylib", "window", 14),
		r("qtpylib.roc", "qtpylib", "window", 14),
		r("qtpylib.hma", "qtpylib", "window", 200),
	})
}
