package adapter

import "github.com/raykavin/vbtforge/pkg/core"

// taModules maps each class of the "ta" package to its submodule.
var taModules = map[string]string{
	"SMAIndicator": "trend", "EMAIndicator": "trend", "WMAIndicator": "trend", "MACD": "trend",
	"ADXIndicator": "trend", "AroonIndicator": "trend", "CCIIndicator": "trend", "DPOIndicator": "trend",
	"IchimokuIndicator": "trend", "KSTIndicator": "trend", "MassIndex": "trend", "PSARIndicator": "trend",
	"STCIndicator": "trend", "TRIXIndicator": "trend", "VortexIndicator": "trend",

	"AwesomeOscillatorIndicator": "momentum", "KAMAIndicator": "momentum",
	"PercentagePriceOscillator": "momentum", "PercentageVolumeOscillator": "momentum",
	"ROCIndicator": "momentum", "RSIIndicator": "momentum", "StochRSIIndicator": "momentum",
	"StochasticOscillator": "momentum", "TSIIndicator": "momentum", "UltimateOscillator": "momentum",
	"WilliamsRIndicator": "momentum",

	"AverageTrueRange": "volatility", "BollingerBands": "volatility", "DonchianChannel": "volatility",
	"KeltnerChannel": "volatility", "UlcerIndex": "volatility",

	"AccDistIndexIndicator": "volume", "ChaikinMoneyFlowIndicator": "volume",
	"EaseOfMovementIndicator": "volume", "ForceIndexIndicator": "volume", "MFIIndicator": "volume",
	"NegativeVolumeIndexIndicator": "volume", "OnBalanceVolumeIndicator": "volume",
	"VolumePriceTrendIndicator": "volume", "VolumeWeightedAveragePrice": "volume",

	"DailyReturnIndicator": "others", "DailyLogReturnIndicator": "others",
	"CumulativeReturnIndicator": "others",
}

// methods lists output methods as (suffix, method) pairs.
func methods(pairs ...string) []Output {
	outputs := make([]Output, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		outputs = append(outputs, out(pairs[i], pairs[i+1]))
	}
	return outputs
}

func single(method string) []Output {
	return []Output{out("", method)}
}

func init() {
	registerFamily(family{
		library: core.TA,
		base: func(name string) entry {
			return entry{
				callee:  "ta." + taModules[name] + "." + name,
				inputs:  InputClose,
				keyword: true,
				fixed:   core.Params{{Name: "fillna", Value: false}},
			}
		},
		entries: map[string]entry{
			"SMAIndicator": {outputs: single("sma_indicator")},
			"EMAIndicator": {outputs: single("ema_indicator")},
			"WMAIndicator": {outputs: single("wma")},
			"MACD":         {outputs: methods("macd", "macd", "signal", "macd_signal", "diff", "macd_diff")},
			"ADXIndicator": {inputs: InputHLC, outputs: methods("adx", "adx", "pos", "adx_pos", "neg", "adx_neg")},
			"AroonIndicator": {
				inputs:  InputHL,
				outputs: methods("up", "aroon_up", "down", "aroon_down", "indicator", "aroon_indicator"),
				fallbacks: []entry{
					// releases before 0.11 took the close series only
					{inputs: InputClose},
				},
			},
			"CCIIndicator": {inputs: InputHLC, outputs: single("cci")},
			"DPOIndicator": {outputs: single("dpo")},
			"IchimokuIndicator": {
				inputs: InputHL,
				outputs: methods("a", "ichimoku_a", "b", "ichimoku_b",
					"base", "ichimoku_base_line", "conversion", "ichimoku_conversion_line"),
			},
			"KSTIndicator":  {outputs: methods("kst", "kst", "signal", "kst_sig", "diff", "kst_diff")},
			"MassIndex":     {inputs: InputHL, outputs: single("mass_index")},
			"PSARIndicator": {inputs: InputHLC, outputs: methods("psar", "psar", "up", "psar_up", "down", "psar_down")},
			"STCIndicator":  {outputs: single("stc")},
			"TRIXIndicator": {outputs: single("trix")},
			"VortexIndicator": {
				inputs:  InputHLC,
				outputs: methods("pos", "vortex_indicator_pos", "neg", "vortex_indicator_neg", "diff", "vortex_indicator_diff"),
			},

			"AwesomeOscillatorIndicator": {inputs: InputHL, outputs: single("awesome_oscillator")},
			"KAMAIndicator":              {outputs: single("kama")},
			"PercentagePriceOscillator":  {outputs: methods("ppo", "ppo", "signal", "ppo_signal", "hist", "ppo_hist")},
			"PercentageVolumeOscillator": {
				inputs:  InputCV,
				args:    []string{"volume=volume"},
				outputs: methods("pvo", "pvo", "signal", "pvo_signal", "hist", "pvo_hist"),
			},
			"ROCIndicator":         {outputs: single("roc")},
			"RSIIndicator":         {outputs: single("rsi")},
			"StochRSIIndicator":    {outputs: methods("stochrsi", "stochrsi", "k", "stochrsi_k", "d", "stochrsi_d")},
			"StochasticOscillator": {inputs: InputHLC, outputs: methods("k", "stoch", "d", "stoch_signal")},
			"TSIIndicator":         {outputs: single("tsi")},
			"UltimateOscillator":   {inputs: InputHLC, outputs: single("ultimate_oscillator")},
			"WilliamsRIndicator":   {inputs: InputHLC, outputs: single("williams_r")},

			"AverageTrueRange": {inputs: InputHLC, outputs: single("average_true_range")},
			"BollingerBands": {
				outputs: methods("upper", "bollinger_hband", "middle", "bollinger_mavg", "lower", "bollinger_lband",
					"width", "bollinger_wband", "percent", "bollinger_pband"),
			},
			"DonchianChannel": {
				inputs: InputHLC,
				outputs: methods("upper", "donchian_channel_hband", "middle", "donchian_channel_mband",
					"lower", "donchian_channel_lband"),
			},
			"KeltnerChannel": {
				inputs: InputHLC,
				outputs: methods("upper", "keltner_channel_hband", "middle", "keltner_channel_mband",
					"lower", "keltner_channel_lband"),
			},
			"UlcerIndex": {outputs: single("ulcer_index")},

			"AccDistIndexIndicator":     {inputs: InputHLCV, outputs: single("acc_dist_index")},
			"ChaikinMoneyFlowIndicator": {inputs: InputHLCV, outputs: single("chaikin_money_flow")},
			"EaseOfMovementIndicator": {
				inputs:  InputHLCV,
				args:    []string{"high=high", "low=low", "volume=volume"},
				outputs: methods("eom", "ease_of_movement", "sma", "sma_ease_of_movement"),
			},
			"ForceIndexIndicator":          {inputs: InputCV, outputs: single("force_index")},
			"MFIIndicator":                 {inputs: InputHLCV, outputs: single("money_flow_index")},
			"NegativeVolumeIndexIndicator": {inputs: InputCV, outputs: single("negative_volume_index")},
			"OnBalanceVolumeIndicator":     {inputs: InputCV, outputs: single("on_balance_volume")},
			"VolumePriceTrendIndicator":    {inputs: InputCV, outputs: single("volume_price_trend")},
			"VolumeWeightedAveragePrice":   {inputs: InputHLCV, outputs: single("volume_weighted_average_price")},

			"DailyReturnIndicator":      {outputs: single("daily_return")},
			"DailyLogReturnIndicator":   {outputs: single("daily_log_return")},
			"CumulativeReturnIndicator": {outputs: single("cumulative_return")},
		},
	})
}
