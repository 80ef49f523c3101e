package catalog

import "github.com/raykavin/vbtforge/pkg/core"

func init() {
	const (
		overlap     = "Overlap"
		momentum    = "Momentum"
		volatility  = "Volatility"
		volume      = "Volume"
		trend       = "Trend"
		statistics  = "Statistics"
		performance = "Performance"
		candles     = "Candles"
		cycles      = "Cycles"
	)

	register(core.PandasTA, []row{
		r("sma", overlap, "length", 10),
		r("ema", overlap, "length", 10),
		r("wma", overlap, "length", 10),
		r("dema", overlap, "length", 10),
		r("tema", overlap, "length", 10),
		r("trima", overlap, "length", 10),
		r("hma", overlap, "length", 10),
		r("zlma", overlap, "length", 10),
		r("alma", overlap, "length", 10, "sigma", 6.0, "distribution_offset", 0.85),
		r("kama", overlap, "length", 10, "fast", 2, "slow", 30),
		r("t3", overlap, "length", 10, "a", 0.7),
		r("fwma", overlap, "length", 10),
		r("linreg", overlap, "length", 14),
		r("midpoint", overlap, "length", 2),
		r("midprice", overlap, "length", 2),
		r("pwma", overlap, "length", 10),
		r("rma", overlap, "length", 10),
		r("sinwma", overlap, "length", 14),
		r("swma", overlap, "length", 10),
		r("jma", overlap, "length", 7, "phase", 0.0),
		r("mcgd", overlap, "length", 10, "c", 1.0),
		r("ssf", overlap, "length", 10, "poles", 2),
		r("vwma", overlap, "length", 10),
		r("vwap", overlap, "anchor", "D"),
		r("supertrend", overlap, "length", 7, "multiplier", 3.0),
		r("hilo", overlap, "high_length", 13, "low_length", 21),
		r("hl2", overlap),
		r("hlc3", overlap),
		r("ohlc4", overlap),
		r("ichimoku", overlap, "tenkan", 9, "kijun", 26, "senkou", 52),

		r("rsi", momentum, "length", 14),
		r("macd", momentum, "fast", 12, "slow", 26, "signal", 9),
		r("stoch", momentum, "k", 14, "d", 3, "smooth_k", 3),
		r("stochrsi", momentum, "length", 14, "rsi_length", 14, "k", 3, "d", 3),
		r("cci", momentum, "length", 14, "c", 0.015),
		r("cmo", momentum, "length", 14),
		r("mom", momentum, "length", 10),
		r("roc", momentum, "length", 10),
		r("willr", momentum, "length", 14),
		r("ao", momentum, "fast", 5, "slow", 34),
		r("apo", momentum, "fast", 12, "slow", 26),
		r("bias", momentum, "length", 26),
		r("bop", momentum),
		r("brar", momentum, "length", 26),
		r("cfo", momentum, "length", 9),
		r("cg", momentum, "length", 10),
		r("coppock", momentum, "length", 10, "fast", 11, "slow", 14),
		r("er", momentum, "length", 10),
		r("eri", momentum, "length", 13),
		r("fisher", momentum, "length", 9, "signal", 1),
		r("inertia", momentum, "length", 20, "rvi_length", 14),
		r("kdj", momentum, "length", 9, "signal", 3),
		r("kst", momentum, "signal", 9),
		r("ppo", momentum, "fast", 12, "slow", 26, "signal", 9),
		r("psl", momentum, "length", 12),
		r("pvo", momentum, "fast", 12, "slow", 26, "signal", 9),
		r("qqe", momentum, "length", 14, "smooth", 5, "factor", 4.236),
		r("rsx", momentum, "length", 14),
		r("rvgi", momentum, "length", 14, "swma_length", 4),
		r("slope", momentum, "length", 1),
		r("smi", momentum, "fast", 5, "slow", 20, "signal", 5),
		r("squeeze", momentum, "bb_length", 20, "bb_std", 2.0, "kc_length", 20, "kc_scalar", 1.5),
		r("stc", momentum, "tclength", 10, "fast", 12, "slow", 26, "factor", 0.5),
		r("trix", momentum, "length", 30, "signal", 9),
		r("tsi", momentum, "fast", 13, "slow", 25, "signal", 13),
		r("uo", momentum, "fast", 7, "medium", 14, "slow", 28),
		r("td_seq", momentum),
		r("dm", momentum, "length", 14),

		r("atr", volatility, "length", 14),
		r("natr", volatility, "length", 14),
		r("true_range", volatility),
		r("bbands", volatility, "length", 5, "std", 2.0),
		r("kc", volatility, "length", 20, "scalar", 2.0),
		r("donchian", volatility, "lower_length", 20, "upper_length", 20),
		r("accbands", volatility, "length", 20),
		r("massi", volatility, "fast", 9, "slow", 25),
		r("pdist", volatility),
		r("rvi", volatility, "length", 14),
		r("thermo", volatility, "length", 20, "long", 2.0, "short", 0.5),
		r("ui", volatility, "length", 14),
		r("aberration", volatility, "length", 5, "atr_length", 15),

		r("ad", volume),
		r("adosc", volume, "fast", 3, "slow", 10),
		r("aobv", volume, "fast", 4, "slow", 12),
		r("cmf", volume, "length", 20),
		r("efi", volume, "length", 13),
		r("eom", volume, "length", 14, "divisor", 100000000),
		r("kvo", volume, "fast", 34, "slow", 55, "signal", 13),
		r("mfi", volume, "length", 14),
		r("nvi", volume, "length", 1),
		r("obv", volume),
		r("pvi", volume, "length", 1),
		r("pvol", volume),
		r("pvr", volume),
		r("pvt", volume),
		r("vp", volume, "width", 10),

		r("adx", trend, "length", 14),
		r("amat", trend, "fast", 8, "slow", 21),
		r("aroon", trend, "length", 14),
		r("chop", trend, "length", 14),
		r("cksp", trend, "p", 10, "x", 1.0, "q", 9),
		r("decay", trend, "length", 5),
		r("decreasing", trend, "length", 1),
		r("dpo", trend, "length", 20),
		r("increasing", trend, "length", 1),
		r("long_run", trend, "length", 2),
		r("psar", trend, "af0", 0.02, "af", 0.02, "max_af", 0.2),
		r("qstick", trend, "length", 10),
		r("ttm_trend", trend, "length", 6),
		r("vhf", trend, "length", 28),
		r("vortex", trend, "length", 14),
		r("xsignals", trend),

		r("entropy", statistics, "length", 10),
		r("kurtosis", statistics, "length", 30),
		r("mad", statistics, "length", 30),
		r("median", statistics, "length", 30),
		r("quantile", statistics, "length", 30, "q", 0.5),
		r("skew", statistics, "length", 30),
		r("stdev", statistics, "length", 30),
		r("tos_stdevall", statistics),
		r("variance", statistics, "length", 30),
		r("zscore", statistics, "length", 30, "std", 1.0),

		r("log_return", performance, "length", 1),
		r("percent_return", performance, "length", 1),

		r("cdl_doji", candles, "length", 10),
		r("cdl_inside", candles),
		r("cdl_z", candles, "length", 30),
		r("ha", candles),
		r("cdl_pattern", candles, "name", "all"),

		r("ebsw", cycles, "length", 40, "bars", 10),
	})
}
