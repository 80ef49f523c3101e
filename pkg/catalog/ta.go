package catalog

import "github.com/raykavin/vbtforge/pkg/core"

func init() {
	register(core.TA, []row{
		r("SMAIndicator", "Trend", "window", 12),
		r("EMAIndicator", "Trend", "window", 14),
		r("WMAIndicator", "Trend", "window", 9),
		r("MACD", "Trend", "window_slow", 26, "window_fast", 12, "window_sign", 9),
		r("ADXIndicator", "Trend", "window", 14),
		r("AroonIndicator", "Trend", "window", 25),
		r("CCIIndicator", "Trend", "window", 20, "constant", 0.015),
		r("DPOIndicator", "Trend", "window", 20),
		r("IchimokuIndicator", "Trend", "window1", 9, "window2", 26, "window3", 52),
		r("KSTIndicator", "Trend",
			"roc1", 10, "roc2", 15, "roc3", 20, "roc4", 30,
			"window1", 10, "window2", 10, "window3", 10, "window4", 15, "nsig", 9),
		r("MassIndex", "Trend", "window_fast", 9, "window_slow", 25),
		r("PSARIndicator", "Trend", "step", 0.02, "max_step", 0.2),
		r("STCIndicator", "Trend", "window_slow", 50, "window_fast", 23, "cycle", 10, "smooth1", 3, "smooth2", 3),
		r("TRIXIndicator", "Trend", "window", 15),
		r("VortexIndicator", "Trend", "window", 14),

		r("AwesomeOscillatorIndicator", "Momentum", "window1", 5, "window2", 34),
		r("KAMAIndicator", "Momentum", "window", 10, "pow1", 2, "pow2", 30),
		r("PercentagePriceOscillator", "Momentum", "window_slow", 26, "window_fast", 12, "window_sign", 9),
		r("PercentageVolumeOscillator", "Momentum", "window_slow", 26, "window_fast", 12, "window_sign", 9),
		r("ROCIndicator", "Momentum", "window", 12),
		r("RSIIndicator", "Momentum", "window", 14),
		r("StochRSIIndicator", "Momentum", "window", 14, "smooth1", 3, "smooth2", 3),
		r("StochasticOscillator", "Momentum", "window", 14, "smooth_window", 3),
		r("TSIIndicator", "Momentum", "window_slow", 25, "window_fast", 13),
		r("UltimateOscillator", "Momentum",
			"window1", 7, "window2", 14, "window3", 28, "weight1", 4.0, "weight2", 2.0, "weight3", 1.0),
		r("WilliamsRIndicator", "Momentum", "lbp", 14),

		r("AverageTrueRange", "Volatility", "window", 14),
		r("BollingerBands", "Volatility", "window", 20, "window_dev", 2),
		r("DonchianChannel", "Volatility", "window", 20, "offset", 0),
		r("KeltnerChannel", "Volatility", "window", 20, "window_atr", 10),
		r("UlcerIndex", "Volatility", "window", 14),

		r("AccDistIndexIndicator", "Volume"),
		r("ChaikinMoneyFlowIndicator", "Volume", "window", 20),
		r("EaseOfMovementIndicator", "Volume", "window", 14),
		r("ForceIndexIndicator", "Volume", "window", 13),
		r("MFIIndicator", "Volume", "window", 14),
		r("NegativeVolumeIndexIndicator", "Volume"),
		r("OnBalanceVolumeIndicator", "Volume"),
		r("VolumePriceTrendIndicator", "Volume"),
		r("VolumeWeightedAveragePrice", "Volume", "window", 14),

		r("DailyReturnIndicator", "Others"),
		r("DailyLogReturnIndicator", "Others"),
		r("CumulativeReturnIndicator", "Others"),
	})
}
